// Package chrome builds the browser navigation toolbar on a horizontal
// stack panel.
package chrome

import (
	"errors"
	"fmt"

	"github.com/agiangrant/stacklayout/config"
	"github.com/agiangrant/stacklayout/layout"
	"github.com/agiangrant/stacklayout/widget"
)

// ErrMissingControl is returned when a toolbar profile lacks one of the
// required controls.
var ErrMissingControl = errors.New("chrome: missing toolbar control")

// Control names a toolbar profile must define.
const (
	Back    = "back"
	Forward = "forward"
	Refresh = "refresh"
	Stop    = "stop"
	Address = "address"
	Menu    = "menu"
)

// Options configure NewToolbar.
type Options struct {
	Layout layout.Options
	// Profile defaults to the "toolbar" profile of config.Default.
	Profile *config.Profile
}

// Toolbar is the navigation bar: back, forward, refresh, address, menu in
// the flow, and a stop button floating exactly over refresh.
type Toolbar struct {
	Panel   *layout.Panel
	Surface *widget.Surface

	Back, Forward, Refresh, Stop, Address, Menu *widget.Widget

	loading bool
}

// NewToolbar builds and arranges a toolbar.
func NewToolbar(opts Options) (*Toolbar, error) {
	profile := opts.Profile
	if profile == nil {
		p, err := config.Default().Profile("toolbar")
		if err != nil {
			return nil, err
		}
		profile = &p
	}

	b, err := profile.Build(opts.Layout)
	if err != nil {
		return nil, fmt.Errorf("build toolbar: %w", err)
	}

	t := &Toolbar{Panel: b.Panel, Surface: b.Surface}
	for name, dst := range map[string]**widget.Widget{
		Back:    &t.Back,
		Forward: &t.Forward,
		Refresh: &t.Refresh,
		Stop:    &t.Stop,
		Address: &t.Address,
		Menu:    &t.Menu,
	} {
		*dst = b.Widget(name)
		if *dst == nil {
			return nil, fmt.Errorf("%q: %w", name, ErrMissingControl)
		}
	}

	// Stop keeps its own z-order; it always paints over refresh.
	if err := t.Panel.SetFloatZOrder(t.Stop, layout.ZManual); err != nil {
		return nil, err
	}
	t.Surface.BringAbove(t.Stop, t.Refresh)
	t.loading = t.Stop.Visible()
	return t, nil
}

// Loading reports whether the stop button is showing.
func (t *Toolbar) Loading() bool {
	return t.loading
}

// SetLoading shows the stop button over refresh while a page loads.
// Refresh keeps its slot so the flow does not shift.
func (t *Toolbar) SetLoading(loading bool) *Toolbar {
	if t.loading == loading {
		return t
	}
	t.loading = loading
	t.Panel.Suspend()
	t.Stop.SetVisible(loading)
	t.Panel.Resume()
	return t
}

// SetAddress sets the text shown in the address bar.
func (t *Toolbar) SetAddress(url string) *Toolbar {
	t.Address.SetLabel(url)
	return t
}

// Resize lays the toolbar out for a new window width.
func (t *Toolbar) Resize(w, h int) *Toolbar {
	t.Panel.Resize(w, h)
	return t
}
