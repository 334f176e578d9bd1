package designer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/agiangrant/stacklayout/layout"
	"github.com/agiangrant/stacklayout/widget"
)

func newSession(t *testing.T, names ...string) (*Session, map[string]*widget.Widget) {
	t.Helper()
	s := NewSession(layout.Options{})
	s.Panel.SetAxis(layout.Horizontal).SetAlignment(layout.AlignStart).Resize(100, 10)
	ws := map[string]*widget.Widget{}
	for _, n := range names {
		ws[n] = widget.Button(n, 10, 4)
		s.Panel.Add(ws[n])
	}
	return s, ws
}

func TestConnect(t *testing.T) {
	s, w := newSession(t, "a", "b", "c")
	if err := s.Connect(w["c"], w["a"], layout.FloatToBottomOf); err != nil {
		t.Fatal(err)
	}

	p := s.Panel
	if !p.Floating(w["c"]) || p.FloatTarget(w["c"]) != "a" || p.FloatAlignment(w["c"]) != layout.FloatToBottomOf {
		t.Errorf("attributes = %+v", p.Attributes(w["c"]))
	}
	if got := w["c"].Bounds(); got != (layout.Rect{X: 0, Y: 4, W: 10, H: 4}) {
		t.Errorf("c bounds = %v", got)
	}

	history := s.Host.History()
	if len(history) != 1 {
		t.Fatalf("history = %d transactions, want 1", len(history))
	}
	if history[0].Description != "Connect c to a" {
		t.Errorf("description = %q", history[0].Description)
	}
	var props []string
	for _, ch := range history[0].Changes {
		props = append(props, ch.Property)
	}
	want := []string{layout.PropFloatTarget, layout.PropFloatAlignment, layout.PropFloating}
	if diff := cmp.Diff(want, props); diff != "" {
		t.Errorf("changes mismatch (-want +got):\n%s", diff)
	}
}

func TestConnectUndo(t *testing.T) {
	s, w := newSession(t, "a", "b", "c")
	before := w["c"].Bounds()
	if err := s.Connect(w["c"], w["a"], layout.FloatToRightOf); err != nil {
		t.Fatal(err)
	}

	ok, err := s.Undo()
	if !ok || err != nil {
		t.Fatalf("Undo() = %v, %v", ok, err)
	}
	if s.Panel.Attributes(w["c"]) != (layout.Attributes{}) {
		t.Errorf("attributes after undo = %+v", s.Panel.Attributes(w["c"]))
	}
	if got := w["c"].Bounds(); got != before {
		t.Errorf("c bounds = %v, want %v", got, before)
	}
	if len(s.Host.History()) != 0 {
		t.Error("undo did not consume the transaction")
	}
	if ok, _ := s.Undo(); ok {
		t.Error("second Undo reported work")
	}
}

func TestConnectRejects(t *testing.T) {
	s, w := newSession(t, "a", "b")
	other := widget.Button("x", 1, 1)

	if err := s.Connect(w["a"], other, layout.FloatTopLeft); !errors.Is(err, ErrCrossPanel) {
		t.Errorf("cross panel: err = %v", err)
	}
	if err := s.Connect(other, w["a"], layout.FloatTopLeft); !errors.Is(err, layout.ErrNotChild) {
		t.Errorf("foreign source: err = %v", err)
	}

	if err := s.Connect(w["a"], w["b"], layout.FloatToRightOf); err != nil {
		t.Fatal(err)
	}
	if err := s.Connect(w["b"], w["a"], layout.FloatToLeftOf); !errors.Is(err, layout.ErrFloatCycle) {
		t.Errorf("cycle: err = %v", err)
	}
	if s.Panel.Attributes(w["b"]) != (layout.Attributes{}) {
		t.Errorf("rejected connect left attributes %+v", s.Panel.Attributes(w["b"]))
	}
	if len(s.Host.History()) != 1 {
		t.Errorf("history = %d, want 1", len(s.Host.History()))
	}
}

func TestConnectSelection(t *testing.T) {
	s, w := newSession(t, "x", "y", "t")
	s.Host.Select(w["x"], w["y"], w["t"])

	if err := s.ConnectSelection(w["t"], layout.FloatToTopOf); err != nil {
		t.Fatal(err)
	}
	for _, n := range []string{"x", "y"} {
		if s.Panel.FloatTarget(w[n]) != "t" {
			t.Errorf("%s target = %q", n, s.Panel.FloatTarget(w[n]))
		}
	}
	history := s.Host.History()
	if len(history) != 1 || len(history[0].Changes) != 6 {
		t.Fatalf("history = %+v, want one transaction of 6 changes", history)
	}
	if history[0].Description != "Connect 2 controls to t" {
		t.Errorf("description = %q", history[0].Description)
	}
}

func TestConnectSelectionFailsAsUnit(t *testing.T) {
	s, w := newSession(t, "x", "y", "t")
	if err := s.Connect(w["t"], w["x"], layout.FloatTopLeft); err != nil {
		t.Fatal(err)
	}
	s.Host.Select(w["y"], w["x"])

	err := s.ConnectSelection(w["t"], layout.FloatTopLeft)
	if !errors.Is(err, layout.ErrFloatCycle) {
		t.Fatalf("err = %v, want ErrFloatCycle", err)
	}
	if s.Panel.Floating(w["y"]) || s.Panel.FloatTarget(w["y"]) != "" {
		t.Errorf("y was left connected: %+v", s.Panel.Attributes(w["y"]))
	}
	if len(s.Host.History()) != 1 {
		t.Errorf("history = %d, want 1", len(s.Host.History()))
	}
}

func TestConnectSelectionEmpty(t *testing.T) {
	s, w := newSession(t, "t")
	if err := s.ConnectSelection(w["t"], layout.FloatTopLeft); !errors.Is(err, ErrNoSelection) {
		t.Errorf("empty: err = %v", err)
	}
	s.Host.Select(w["t"])
	if err := s.ConnectSelection(w["t"], layout.FloatTopLeft); !errors.Is(err, ErrNoSelection) {
		t.Errorf("target only: err = %v", err)
	}

	bare := &Session{Host: NewHost(), Panel: layout.NewPanel(layout.Options{})}
	if err := bare.ConnectSelection(w["t"], layout.FloatTopLeft); !errors.Is(err, ErrNoSelection) {
		t.Errorf("no selection service: err = %v", err)
	}
}

func TestConnectSelectionRejectsTarget(t *testing.T) {
	s, w := newSession(t, "a", "b")
	s.Host.Select(w["a"], w["b"])

	if err := s.ConnectSelection(nil, layout.FloatTopLeft); !errors.Is(err, ErrCrossPanel) {
		t.Errorf("nil target: err = %v", err)
	}
	if err := s.ConnectSelection(widget.Button("other", 1, 1), layout.FloatTopLeft); !errors.Is(err, ErrCrossPanel) {
		t.Errorf("foreign target: err = %v", err)
	}
	if s.Panel.Floating(w["a"]) || s.Panel.Floating(w["b"]) {
		t.Errorf("selection was connected")
	}
	if len(s.Host.History()) != 0 {
		t.Errorf("history = %+v, want empty", s.Host.History())
	}
}

func TestDisconnect(t *testing.T) {
	s, w := newSession(t, "a", "b")
	if err := s.Connect(w["b"], w["a"], layout.FloatToBottomOf); err != nil {
		t.Fatal(err)
	}
	if err := s.Disconnect(w["b"]); err != nil {
		t.Fatal(err)
	}
	if s.Panel.Floating(w["b"]) || s.Panel.FloatTarget(w["b"]) != "" {
		t.Errorf("attributes = %+v", s.Panel.Attributes(w["b"]))
	}
	if got := w["b"].Bounds(); got != (layout.Rect{X: 10, W: 10, H: 4}) {
		t.Errorf("b bounds = %v, want back in flow", got)
	}

	if _, err := s.Undo(); err != nil {
		t.Fatal(err)
	}
	if !s.Panel.Floating(w["b"]) || s.Panel.FloatTarget(w["b"]) != "a" {
		t.Errorf("undo did not reconnect: %+v", s.Panel.Attributes(w["b"]))
	}

	if err := s.Disconnect(widget.Button("x", 1, 1)); !errors.Is(err, layout.ErrNotChild) {
		t.Errorf("foreign: err = %v", err)
	}
}

func TestStandaloneChangeIsOwnTransaction(t *testing.T) {
	s, w := newSession(t, "a")
	if err := s.Panel.SetExpandWeight(w["a"], 2); err != nil {
		t.Fatal(err)
	}
	history := s.Host.History()
	if len(history) != 1 || history[0].Description != "Change ExpandWeight" {
		t.Fatalf("history = %+v", history)
	}
	if ch := history[0].Changes[0]; ch.Old != 0 || ch.New != 2 {
		t.Errorf("change = %v -> %v", ch.Old, ch.New)
	}
}

func TestFailedUndoCanBeRetried(t *testing.T) {
	s, w := newSession(t, "a", "b")
	if err := s.Connect(w["a"], w["b"], layout.FloatTopLeft); err != nil {
		t.Fatal(err)
	}
	// b used to target a; restoring that now would close a -> b -> a.
	s.Host.history = append(s.Host.history, Transaction{
		Description: "Disconnect b",
		Changes: []Change{
			{Child: w["b"], Property: layout.PropFloatTarget, Old: "a", New: ""},
			{Child: w["b"], Property: layout.PropFloatAlignment, Old: layout.FloatToRightOf, New: layout.FloatTopLeft},
		},
	})

	for attempt := 1; attempt <= 2; attempt++ {
		ok, err := s.Undo()
		if ok || !errors.Is(err, layout.ErrFloatCycle) {
			t.Fatalf("attempt %d: Undo() = %v, %v, want false, ErrFloatCycle", attempt, ok, err)
		}
		if got := s.Panel.FloatAlignment(w["b"]); got != layout.FloatTopLeft {
			t.Errorf("attempt %d: b alignment = %v, want restored to top-left", attempt, got)
		}
		if got := s.Panel.FloatTarget(w["b"]); got != "" {
			t.Errorf("attempt %d: b target = %q, want empty", attempt, got)
		}
		if n := len(s.Host.History()); n != 2 {
			t.Errorf("attempt %d: history = %d transactions, want 2", attempt, n)
		}
	}
}
