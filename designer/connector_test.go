package designer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/agiangrant/stacklayout/layout"
	"github.com/agiangrant/stacklayout/widget"
)

func TestConnectors(t *testing.T) {
	s, w := newSession(t, "a", "b", "c", "d")
	p := s.Panel
	for _, err := range []error{
		s.Connect(w["c"], w["a"], layout.FloatToRightOf),
		s.Connect(w["d"], w["b"], layout.FloatToBottomOf),
		p.SetFloatOffset(w["c"], 3, 1),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}
	w["b"].SetVisible(false)

	want := []Connector{{
		Source:    "c",
		Target:    "a",
		Alignment: layout.FloatToRightOf,
		From:      layout.Point{X: 13, Y: 1},
		To:        layout.Point{X: 10, Y: 0},
	}}
	if diff := cmp.Diff(want, Connectors(p)); diff != "" {
		t.Errorf("Connectors() mismatch (-want +got):\n%s", diff)
	}
}

func TestConnectorsSkipsUnresolved(t *testing.T) {
	p := layout.NewPanel(layout.Options{})
	f := widget.Button("f", 2, 2)
	p.Add(f)
	if err := p.SetFloating(f, true); err != nil {
		t.Fatal(err)
	}
	if err := p.SetFloatTarget(f, "gone"); err != nil {
		t.Fatal(err)
	}
	if got := Connectors(p); len(got) != 0 {
		t.Errorf("Connectors() = %v, want none", got)
	}
}
