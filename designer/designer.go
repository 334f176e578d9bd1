package designer

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/agiangrant/stacklayout/layout"
)

var (
	// ErrCrossPanel is returned when a float target lives in another panel.
	ErrCrossPanel = errors.New("designer: target is not a sibling")
	// ErrNoSelection is returned by ConnectSelection with nothing selected.
	ErrNoSelection = errors.New("designer: nothing selected")
)

// Session edits one panel on behalf of a designer host.
type Session struct {
	Host  *Host
	Panel *layout.Panel
}

// NewSession creates a panel wired to a new Host for change notification
// and selection. Other options are passed through.
func NewSession(opts layout.Options) *Session {
	h := NewHost()
	opts.Notifier = h
	opts.Selection = h
	return &Session{Host: h, Panel: layout.NewPanel(opts)}
}

// Connect makes source float relative to target, the equivalent of
// dragging a connector from source onto target. The change is one
// transaction; on error nothing is changed.
func (s *Session) Connect(source, target layout.Child, align layout.FloatAlignment) error {
	p := s.Panel
	if !p.Contains(source) {
		return fmt.Errorf("connect %q: %w", source.Name(), layout.ErrNotChild)
	}
	if target == nil || !p.Contains(target) {
		return fmt.Errorf("connect %q: %w", source.Name(), ErrCrossPanel)
	}

	s.Host.Begin(fmt.Sprintf("Connect %s to %s", source.Name(), target.Name()))
	steps := []func() error{
		func() error { return p.SetFloatTarget(source, target.Name()) },
		func() error { return p.SetFloatAlignment(source, align) },
		func() error { return p.SetFloating(source, true) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return multierr.Append(err, s.Host.Rollback(p))
		}
	}
	s.Host.Commit()
	return nil
}

// Disconnect returns source to the flow and clears its target.
func (s *Session) Disconnect(source layout.Child) error {
	p := s.Panel
	if !p.Contains(source) {
		return fmt.Errorf("disconnect %q: %w", source.Name(), layout.ErrNotChild)
	}

	s.Host.Begin("Disconnect " + source.Name())
	defer s.Host.Commit()
	return multierr.Combine(
		p.SetFloating(source, false),
		p.SetFloatTarget(source, ""),
	)
}

// ConnectSelection connects every selected child other than target. The
// whole selection is one transaction and fails as a unit.
func (s *Session) ConnectSelection(target layout.Child, align layout.FloatAlignment) error {
	sel := s.Panel.Selection()
	if sel == nil {
		return ErrNoSelection
	}
	if target == nil || !s.Panel.Contains(target) {
		return fmt.Errorf("connect selection: %w", ErrCrossPanel)
	}
	var sources []layout.Child
	for _, c := range sel.Selected() {
		if c != target {
			sources = append(sources, c)
		}
	}
	if len(sources) == 0 {
		return ErrNoSelection
	}

	s.Host.Begin(fmt.Sprintf("Connect %d controls to %s", len(sources), target.Name()))
	for _, c := range sources {
		if err := s.Connect(c, target, align); err != nil {
			return multierr.Append(err, s.Host.Rollback(s.Panel))
		}
	}
	s.Host.Commit()
	return nil
}

// Undo reverts the last designer action.
func (s *Session) Undo() (bool, error) {
	return s.Host.Undo(s.Panel)
}
