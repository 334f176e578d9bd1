package config

import (
	"fmt"

	"github.com/agiangrant/stacklayout/layout"
	"github.com/agiangrant/stacklayout/widget"
)

// Built is a panel constructed from a profile.
type Built struct {
	Panel   *layout.Panel
	Surface *widget.Surface
	// Widgets in profile order.
	Widgets []*widget.Widget
}

// Widget returns the widget with the given name, or nil.
func (b *Built) Widget(name string) *widget.Widget {
	for _, w := range b.Widgets {
		if w.Name() == name {
			return w
		}
	}
	return nil
}

// Build creates the widgets of p on a new surface and arranges them in a
// single pass. Unset ZOrder and Invalidator options default to the surface.
func (p Profile) Build(opts layout.Options) (*Built, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	surface := widget.NewSurface()
	if opts.ZOrder == nil {
		opts.ZOrder = surface
	}
	if opts.Invalidator == nil {
		opts.Invalidator = surface
	}

	panel := layout.NewPanel(opts)
	panel.Suspend()
	defer panel.Resume()

	panel.SetAxis(p.Axis).
		SetSpacing(p.Spacing).
		SetAlignment(p.Alignment).
		SetPolicy(p.Policy).
		SetPadding(layout.Padding{Top: p.Padding.Top, Right: p.Padding.Right, Bottom: p.Padding.Bottom, Left: p.Padding.Left}).
		SetAutoScroll(p.AutoScroll).
		Resize(p.Width, p.Height)

	b := &Built{Panel: panel, Surface: surface}
	for _, c := range p.Children {
		w := c.widget()
		b.Widgets = append(b.Widgets, w)
		surface.Add(w)
		panel.Add(widget.Track(panel, w))
		if err := c.apply(panel, w); err != nil {
			return nil, fmt.Errorf("panel %q: %w", p.Name, err)
		}
	}

	// Targets are set once every sibling exists so the cycle check sees
	// the whole chain.
	for i, c := range p.Children {
		if c.Float == nil || c.Float.Target == "" {
			continue
		}
		if err := panel.SetFloatTarget(b.Widgets[i], c.Float.Target); err != nil {
			return nil, fmt.Errorf("panel %q: %w", p.Name, err)
		}
	}
	return b, nil
}

func (c ChildConfig) widget() *widget.Widget {
	kind := widget.Kind(c.Kind)
	if kind == "" {
		kind = widget.KindCustom
	}
	return widget.New(kind, c.Name).
		SetLabel(c.Label).
		SetSize(c.Width, c.Height).
		SetMinSize(c.MinWidth, c.MinHeight).
		SetMaxSize(c.MaxWidth, c.MaxHeight).
		SetPreferredSize(c.PreferredWidth, c.PreferredHeight).
		SetVisible(!c.Hidden)
}

func (c ChildConfig) apply(p *layout.Panel, w *widget.Widget) error {
	errs := []error{
		p.SetExpandWeight(w, c.Weight),
		p.SetIncludeHidden(w, c.IncludeHidden),
	}
	if f := c.Float; f != nil {
		errs = append(errs,
			p.SetFloating(w, true),
			p.SetFloatAlignment(w, f.Alignment),
			p.SetFloatOffset(w, f.OffsetX, f.OffsetY),
			p.SetFloatZOrder(w, f.ZOrder),
		)
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
