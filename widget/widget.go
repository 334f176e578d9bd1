// Package widget provides an in-memory retained widget tree that hosts
// layout panels. Widgets implement layout.Child; a Surface owns their
// paint order and repaint notifications.
//
// Widgets are safe for concurrent property updates. Observers run on the
// goroutine that made the change, after the widget lock is released.
package widget

import (
	"sync"
	"sync/atomic"

	"github.com/mattn/go-runewidth"

	"github.com/agiangrant/stacklayout/layout"
)

// ID uniquely identifies a widget for the lifetime of the process.
type ID uint64

var nextID atomic.Uint64

func newID() ID {
	return ID(nextID.Add(1))
}

// Kind identifies the type of widget for rendering.
type Kind string

const (
	KindPanel     Kind = "panel"
	KindButton    Kind = "button"
	KindLabel     Kind = "label"
	KindTextField Kind = "text_field"
	KindCustom    Kind = "custom"
)

// Property change flags for dirty tracking
const (
	DirtyPosition uint64 = 1 << iota
	DirtySize
	DirtyVisible
	DirtyText
	DirtyConstraints
)

// Observer is called after a widget property changes. mask holds the
// Dirty* flags of the change.
type Observer func(w *Widget, mask uint64)

// MeasureFunc returns the cell size of a text label.
type MeasureFunc func(text string) layout.Size

var measureText MeasureFunc = measureCells

// measureCells measures text as a single line of terminal cells.
func measureCells(text string) layout.Size {
	if text == "" {
		return layout.Size{}
	}
	return layout.Size{W: runewidth.StringWidth(text), H: 1}
}

// SetMeasureFunc replaces the text measurement used by PreferredSize.
// Passing nil restores the default cell measurement.
func SetMeasureFunc(fn MeasureFunc) {
	if fn == nil {
		fn = measureCells
	}
	measureText = fn
}

// Widget is a named box in a layout panel.
type Widget struct {
	mu sync.RWMutex

	id      ID
	kind    Kind
	name    string
	label   string
	visible bool

	bounds layout.Rect
	min    layout.Size
	max    layout.Size
	pref   layout.Size // zero means measure the label

	dirty     bool
	dirtyMask uint64
	observers []Observer
}

// New creates a visible widget. name identifies it among its siblings and
// is what floats use to name their target.
func New(kind Kind, name string) *Widget {
	return &Widget{
		id:      newID(),
		kind:    kind,
		name:    name,
		visible: true,
	}
}

// Button creates a button of the given size.
func Button(name string, w, h int) *Widget {
	return New(KindButton, name).SetSize(w, h)
}

// Label creates a label sized to its text.
func Label(name, text string) *Widget {
	l := New(KindLabel, name).SetLabel(text)
	s := measureText(text)
	return l.SetSize(s.W, s.H)
}

func (w *Widget) ID() ID { return w.id }

func (w *Widget) Kind() Kind {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.kind
}

// Name implements layout.Child.
func (w *Widget) Name() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.name
}

func (w *Widget) Label() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.label
}

// ============================================================================
// layout.Child
// ============================================================================

func (w *Widget) Bounds() layout.Rect {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.bounds
}

func (w *Widget) MinSize() layout.Size {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.min
}

func (w *Widget) MaxSize() layout.Size {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.max
}

func (w *Widget) Visible() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.visible
}

// PreferredSize returns the explicit preferred size if one was set, then
// the measured label, then the current size.
func (w *Widget) PreferredSize(available layout.Size) layout.Size {
	w.mu.RLock()
	pref, label, size := w.pref, w.label, w.bounds.Size()
	w.mu.RUnlock()

	if pref != (layout.Size{}) {
		return pref
	}
	if label != "" {
		return measureText(label)
	}
	return size
}

// SetBounds implements layout.Child. Use SetFrame for chaining.
func (w *Widget) SetBounds(r layout.Rect) {
	w.SetFrame(r.X, r.Y, r.W, r.H)
}

// ============================================================================
// Property Setters (all thread-safe, trigger dirty tracking)
// ============================================================================

// markDirty records flags and returns the observers to notify. Must be
// called with w.mu held.
func (w *Widget) markDirty(flags uint64) []Observer {
	w.dirty = true
	w.dirtyMask |= flags
	if len(w.observers) == 0 {
		return nil
	}
	obs := make([]Observer, len(w.observers))
	copy(obs, w.observers)
	return obs
}

func (w *Widget) notify(obs []Observer, flags uint64) {
	for _, fn := range obs {
		fn(w, flags)
	}
}

// SetFrame sets position and size.
func (w *Widget) SetFrame(x, y, width, height int) *Widget {
	r := layout.Rect{X: x, Y: y, W: max(width, 0), H: max(height, 0)}

	w.mu.Lock()
	var flags uint64
	if r.X != w.bounds.X || r.Y != w.bounds.Y {
		flags |= DirtyPosition
	}
	if r.W != w.bounds.W || r.H != w.bounds.H {
		flags |= DirtySize
	}
	var obs []Observer
	if flags != 0 {
		w.bounds = r
		obs = w.markDirty(flags)
	}
	w.mu.Unlock()

	w.notify(obs, flags)
	return w
}

// SetPosition moves the widget without resizing it.
func (w *Widget) SetPosition(x, y int) *Widget {
	b := w.Bounds()
	return w.SetFrame(x, y, b.W, b.H)
}

// SetSize resizes the widget in place.
func (w *Widget) SetSize(width, height int) *Widget {
	b := w.Bounds()
	return w.SetFrame(b.X, b.Y, width, height)
}

// SetMinSize sets the minimum size. Negative dimensions become 0.
func (w *Widget) SetMinSize(width, height int) *Widget {
	return w.setConstraint(&w.min, width, height)
}

// SetMaxSize sets the maximum size; 0 in a dimension means unbounded.
func (w *Widget) SetMaxSize(width, height int) *Widget {
	return w.setConstraint(&w.max, width, height)
}

// SetPreferredSize overrides the measured preferred size. The zero size
// restores measuring.
func (w *Widget) SetPreferredSize(width, height int) *Widget {
	return w.setConstraint(&w.pref, width, height)
}

func (w *Widget) setConstraint(field *layout.Size, width, height int) *Widget {
	s := layout.Size{W: max(width, 0), H: max(height, 0)}

	w.mu.Lock()
	var obs []Observer
	changed := *field != s
	if changed {
		*field = s
		obs = w.markDirty(DirtyConstraints)
	}
	w.mu.Unlock()

	if changed {
		w.notify(obs, DirtyConstraints)
	}
	return w
}

// SetVisible shows or hides the widget.
func (w *Widget) SetVisible(visible bool) *Widget {
	w.mu.Lock()
	var obs []Observer
	changed := w.visible != visible
	if changed {
		w.visible = visible
		obs = w.markDirty(DirtyVisible)
	}
	w.mu.Unlock()

	if changed {
		w.notify(obs, DirtyVisible)
	}
	return w
}

// SetLabel sets the text drawn inside the widget.
func (w *Widget) SetLabel(text string) *Widget {
	w.mu.Lock()
	var obs []Observer
	changed := w.label != text
	if changed {
		w.label = text
		obs = w.markDirty(DirtyText)
	}
	w.mu.Unlock()

	if changed {
		w.notify(obs, DirtyText)
	}
	return w
}

// Observe registers fn to run after every property change.
func (w *Widget) Observe(fn Observer) *Widget {
	if fn == nil {
		return w
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.observers = append(w.observers, fn)
	return w
}

// IsDirty returns whether the widget has pending changes.
func (w *Widget) IsDirty() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.dirty
}

// DirtyMask returns the bitmask of changed properties.
func (w *Widget) DirtyMask() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.dirtyMask
}

// ClearDirty resets the dirty state (called after a repaint).
func (w *Widget) ClearDirty() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dirty = false
	w.dirtyMask = 0
}

// Track makes p relayout when w changes size, position, visibility or
// constraints outside a layout pass. Label-only changes are ignored.
func Track(p *layout.Panel, w *Widget) *Widget {
	return w.Observe(func(w *Widget, mask uint64) {
		if mask&(DirtyPosition|DirtySize|DirtyVisible|DirtyConstraints) != 0 {
			p.OnChildChanged(w)
		}
	})
}
