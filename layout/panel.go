// Package layout implements a stack panel: flow children are stacked along
// a primary axis with weighted growth, and floating children are placed
// relative to a named sibling.
//
// A pass runs in two steps. FlowArranger commits bounds for the flow
// children, then FloatResolver reads those bounds to place the floats.
// All panel methods must be called on the UI goroutine.
package layout

import "fmt"

var layoutDebug = false // Set to true for debug logging

func debugLog(format string, args ...interface{}) {
	if layoutDebug {
		fmt.Printf(format+"\n", args...)
	}
}

// State is the layout driver state.
type State int

const (
	Idle State = iota
	Arranging
)

func (s State) String() string {
	if s == Arranging {
		return "arranging"
	}
	return "idle"
}

// Property names passed to the ChangeNotifier.
const (
	PropExpandWeight   = "ExpandWeight"
	PropFloating       = "Floating"
	PropFloatTarget    = "FloatTarget"
	PropFloatOffset    = "FloatOffset"
	PropFloatAlignment = "FloatAlignment"
	PropFloatZOrder    = "FloatZOrder"
	PropIncludeHidden  = "IncludeHidden"
)

// Options are the host services a panel is constructed with. Every field
// is optional.
type Options struct {
	ZOrder      ZOrderer
	Invalidator Invalidator
	Notifier    ChangeNotifier
	Selection   SelectionProvider
	// Dispatcher defers property-change layouts to the next UI turn.
	// Without one they run synchronously.
	Dispatcher  Dispatcher
	Diagnostics Diagnostics
}

// Panel is a stack layout container.
type Panel struct {
	children []Child
	store    *ExtenderStore

	axis      Axis
	spacing   int
	alignment CrossAlignment
	padding   Padding
	policy    SizingPolicy
	size      Size

	autoScroll   bool
	scrollExtent Size

	state      State
	suspended  int
	pending    bool
	pendingWhy LayoutReason
	scheduled  bool
	passes     int
	lastReason LayoutReason

	opts Options
	diag Diagnostics
}

// NewPanel creates an empty vertical panel using the fixed-first policy.
func NewPanel(opts Options) *Panel {
	p := &Panel{
		store:     NewExtenderStore(),
		axis:      Vertical,
		alignment: AlignStretch,
		policy:    PolicyFixedFirst,
		opts:      opts,
		diag:      opts.Diagnostics,
	}
	if p.diag == nil {
		p.diag = NopDiagnostics
	}
	if p.opts.Dispatcher == nil {
		p.opts.Dispatcher = immediate{}
	}
	return p
}

// ============================================================================
// Container Properties
// ============================================================================

func (p *Panel) Axis() Axis { return p.axis }
func (p *Panel) Spacing() int { return p.spacing }
func (p *Panel) Alignment() CrossAlignment { return p.alignment }
func (p *Panel) Padding() Padding { return p.padding }
func (p *Panel) Policy() SizingPolicy { return p.policy }
func (p *Panel) Size() Size { return p.size }
func (p *Panel) AutoScroll() bool { return p.autoScroll }

// SetAxis sets the primary axis.
func (p *Panel) SetAxis(a Axis) *Panel {
	if p.axis != a {
		p.axis = a
		p.requestLayout(ReasonPropertyChanged)
	}
	return p
}

// SetSpacing sets the gap between flow children. Negative values become 0.
func (p *Panel) SetSpacing(spacing int) *Panel {
	spacing = max(spacing, 0)
	if p.spacing != spacing {
		p.spacing = spacing
		p.requestLayout(ReasonPropertyChanged)
	}
	return p
}

func (p *Panel) SetAlignment(a CrossAlignment) *Panel {
	if p.alignment != a {
		p.alignment = a
		p.requestLayout(ReasonPropertyChanged)
	}
	return p
}

// SetPadding sets the content inset. Negative sides become 0.
func (p *Panel) SetPadding(pad Padding) *Panel {
	pad = pad.clamped()
	if p.padding != pad {
		p.padding = pad
		p.requestLayout(ReasonPaddingChanged)
	}
	return p
}

// SetPolicy selects the sizing policy used for flow children.
func (p *Panel) SetPolicy(policy SizingPolicy) *Panel {
	if p.policy != policy {
		p.policy = policy
		p.requestLayout(ReasonPropertyChanged)
	}
	return p
}

// SetAutoScroll controls whether ScrollExtent reports the content extent.
func (p *Panel) SetAutoScroll(on bool) *Panel {
	if p.autoScroll != on {
		p.autoScroll = on
		p.requestLayout(ReasonPropertyChanged)
	}
	return p
}

// Resize sets the panel's own size and lays out immediately.
func (p *Panel) Resize(w, h int) *Panel {
	s := Size{max(w, 0), max(h, 0)}
	if p.size != s {
		p.size = s
		p.layoutNow(ReasonResize)
	}
	return p
}

// ContentRect returns the area inside the padding.
func (p *Panel) ContentRect() Rect {
	pad := p.padding
	return Rect{
		X: pad.Left,
		Y: pad.Top,
		W: max(p.size.W-pad.Left-pad.Right, 0),
		H: max(p.size.H-pad.Top-pad.Bottom, 0),
	}
}

// ScrollExtent returns the size of the arranged content including padding,
// or the zero size when auto-scroll is off or nothing was arranged.
func (p *Panel) ScrollExtent() Size {
	if !p.autoScroll {
		return Size{}
	}
	return p.scrollExtent
}

// Selection returns the designer selection service, if any.
func (p *Panel) Selection() SelectionProvider {
	return p.opts.Selection
}

// ============================================================================
// Children
// ============================================================================

// Children returns a copy of the child list in stacking order.
func (p *Panel) Children() []Child {
	result := make([]Child, len(p.children))
	copy(result, p.children)
	return result
}

// Len returns the number of children.
func (p *Panel) Len() int {
	return len(p.children)
}

// Add appends a child. Adding a child twice is a no-op.
func (p *Panel) Add(c Child) *Panel {
	return p.Insert(len(p.children), c)
}

// Insert places a child at index, clamped to the valid range.
func (p *Panel) Insert(index int, c Child) *Panel {
	if c == nil || p.Contains(c) {
		return p
	}
	index = min(max(index, 0), len(p.children))
	p.children = append(p.children, nil)
	copy(p.children[index+1:], p.children[index:])
	p.children[index] = c
	p.layoutNow(ReasonChildAdded)
	return p
}

// Remove detaches a child and drops its attributes.
func (p *Panel) Remove(c Child) bool {
	for i, existing := range p.children {
		if existing == c {
			p.children = append(p.children[:i], p.children[i+1:]...)
			p.store.Remove(c)
			p.layoutNow(ReasonChildRemoved)
			return true
		}
	}
	return false
}

// Contains reports whether c is a child of the panel.
func (p *Panel) Contains(c Child) bool {
	for _, existing := range p.children {
		if existing == c {
			return true
		}
	}
	return false
}

// Find returns the first child with the given name, or nil.
func (p *Panel) Find(name string) Child {
	if name == "" {
		return nil
	}
	for _, c := range p.children {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// Dispose drops all children and attributes.
func (p *Panel) Dispose() {
	p.children = nil
	p.store.Clear()
	p.scrollExtent = Size{}
}

// ============================================================================
// Extender Properties
// ============================================================================

// Attributes returns a copy of c's layout attributes.
func (p *Panel) Attributes(c Child) Attributes {
	return p.store.Get(c)
}

func (p *Panel) ExpandWeight(c Child) int { return p.store.Get(c).ExpandWeight }
func (p *Panel) Floating(c Child) bool { return p.store.Get(c).Floating }
func (p *Panel) FloatTarget(c Child) string { return p.store.Get(c).FloatTarget }
func (p *Panel) FloatAlignment(c Child) FloatAlignment { return p.store.Get(c).FloatAlignment }
func (p *Panel) FloatZOrder(c Child) ZOrderPolicy { return p.store.Get(c).FloatZOrder }
func (p *Panel) IncludeHidden(c Child) bool { return p.store.Get(c).IncludeHidden }

// FloatOffset returns the pixel offset applied after the connector point.
func (p *Panel) FloatOffset(c Child) (x, y int) {
	a := p.store.Get(c)
	return a.FloatOffsetX, a.FloatOffsetY
}

// SetExpandWeight sets c's growth weight. Negative weights become 0.
func (p *Panel) SetExpandWeight(c Child, weight int) error {
	old := p.store.Get(c).ExpandWeight
	return p.setAttr(c, PropExpandWeight, old, func() bool {
		return p.store.SetExpandWeight(c, weight)
	}, func() any { return p.store.Get(c).ExpandWeight })
}

// SetFloating switches c between flow and floating placement.
func (p *Panel) SetFloating(c Child, floating bool) error {
	old := p.store.Get(c).Floating
	return p.setAttr(c, PropFloating, old, func() bool {
		return p.store.SetFloating(c, floating)
	}, func() any { return floating })
}

// SetFloatTarget names the sibling c floats relative to. It returns
// ErrFloatCycle if the name would make the float graph cyclic.
func (p *Panel) SetFloatTarget(c Child, target string) error {
	if !p.Contains(c) {
		return fmt.Errorf("set %s on %q: %w", PropFloatTarget, c.Name(), ErrNotChild)
	}
	old := p.store.Get(c).FloatTarget
	var setErr error
	err := p.setAttr(c, PropFloatTarget, old, func() bool {
		changed, err := p.store.SetFloatTarget(c, target, p.Find)
		setErr = err
		return changed
	}, func() any { return target })
	if setErr != nil {
		return fmt.Errorf("set %s on %q: %w", PropFloatTarget, c.Name(), setErr)
	}
	return err
}

func (p *Panel) SetFloatOffset(c Child, x, y int) error {
	ox, oy := p.FloatOffset(c)
	return p.setAttr(c, PropFloatOffset, Point{ox, oy}, func() bool {
		return p.store.SetFloatOffset(c, x, y)
	}, func() any { return Point{x, y} })
}

func (p *Panel) SetFloatAlignment(c Child, align FloatAlignment) error {
	old := p.store.Get(c).FloatAlignment
	return p.setAttr(c, PropFloatAlignment, old, func() bool {
		return p.store.SetFloatAlignment(c, align)
	}, func() any { return align })
}

func (p *Panel) SetFloatZOrder(c Child, z ZOrderPolicy) error {
	old := p.store.Get(c).FloatZOrder
	return p.setAttr(c, PropFloatZOrder, old, func() bool {
		return p.store.SetFloatZOrder(c, z)
	}, func() any { return z })
}

func (p *Panel) SetIncludeHidden(c Child, include bool) error {
	old := p.store.Get(c).IncludeHidden
	return p.setAttr(c, PropIncludeHidden, old, func() bool {
		return p.store.SetIncludeHidden(c, include)
	}, func() any { return include })
}

// setAttr wraps a store mutation in change notifications and schedules a
// deferred layout when the value changed.
func (p *Panel) setAttr(c Child, prop string, old any, set func() bool, current func() any) error {
	if !p.Contains(c) {
		return fmt.Errorf("set %s on %q: %w", prop, c.Name(), ErrNotChild)
	}
	if n := p.opts.Notifier; n != nil {
		n.ComponentChanging(c, prop)
	}
	changed := set()
	if !changed {
		return nil
	}
	if n := p.opts.Notifier; n != nil {
		n.ComponentChanged(c, prop, old, current())
	}
	p.requestLayout(ReasonPropertyChanged)
	return nil
}

// ============================================================================
// Layout Driver
// ============================================================================

// State returns whether a pass is running.
func (p *Panel) State() State { return p.state }

// Passes returns the number of completed arrangement passes.
func (p *Panel) Passes() int { return p.passes }

// LastReason returns the trigger of the most recent pass.
func (p *Panel) LastReason() LayoutReason { return p.lastReason }

// Suspend defers layout until the matching Resume. Calls nest.
func (p *Panel) Suspend() {
	p.suspended++
}

// Resume ends a Suspend. When the outermost Resume runs and a layout was
// requested in between, one pass runs immediately.
func (p *Panel) Resume() {
	if p.suspended == 0 {
		return
	}
	p.suspended--
	if p.suspended == 0 && p.pending {
		p.pending = false
		p.PerformLayout(p.pendingWhy)
	}
}

// OnChildChanged is the inbound notification for a child whose bounds or
// visibility changed outside a layout pass. The relayout is deferred to
// the next UI turn. Notifications raised by the panel's own commits are
// ignored.
func (p *Panel) OnChildChanged(c Child) {
	if p.state == Arranging || !p.Contains(c) {
		return
	}
	p.requestLayout(ReasonPropertyChanged)
}

// requestLayout posts a coalesced layout to the dispatcher.
func (p *Panel) requestLayout(reason LayoutReason) {
	if p.scheduled {
		return
	}
	p.scheduled = true
	p.opts.Dispatcher.Post(func() {
		p.scheduled = false
		p.PerformLayout(reason)
	})
}

func (p *Panel) layoutNow(reason LayoutReason) {
	p.PerformLayout(reason)
}

// PerformLayout arranges every child synchronously. A call made while a
// pass is already running is ignored. If the pass panics the panel is
// returned to Idle before the panic continues.
func (p *Panel) PerformLayout(reason LayoutReason) {
	if p.state == Arranging {
		p.diag.Log(LevelDebug, "layout re-entry ignored", "reason", reason.String())
		return
	}
	if p.suspended > 0 {
		p.pending = true
		p.pendingWhy = reason
		return
	}

	p.state = Arranging
	defer func() { p.state = Idle }()

	snapshot := acquireChildSlice(len(p.children))
	copy(snapshot, p.children)
	defer releaseChildSlice(snapshot)

	flow := acquireFlowItems()
	defer func() { releaseFlowItems(flow) }()
	var floats []FloatItem

	for _, c := range snapshot {
		a := p.store.Get(c)
		if !c.Visible() && !a.IncludeHidden {
			continue
		}
		if a.Floating {
			floats = append(floats, FloatItem{Child: c, Attrs: a})
			continue
		}
		flow = append(flow, FlowItem{Child: c, Weight: a.ExpandWeight})
	}

	p.lastReason = reason
	if len(flow) == 0 && len(floats) == 0 {
		p.scrollExtent = Size{}
		p.passes++
		return
	}

	completed := false
	if inv := p.opts.Invalidator; inv != nil {
		inv.SuspendPaint()
		defer func() {
			inv.ResumePaint()
			if completed {
				inv.Invalidate()
			}
		}()
	}

	content := p.ContentRect()
	arranger := FlowArranger{
		Axis:      p.axis,
		Spacing:   p.spacing,
		Alignment: p.alignment,
		Policy:    p.policy,
	}
	flowExtent := arranger.Arrange(content, flow)

	resolver := FloatResolver{
		Lookup: p.Find,
		ZOrder: p.opts.ZOrder,
		Diag:   p.diag,
	}
	resolver.Resolve(floats)

	p.scrollExtent = contentExtent(content, flowExtent, floats, p.padding)
	p.passes++
	completed = true

	p.diag.Log(LevelDebug, "layout pass",
		"reason", reason.String(), "flow", len(flow), "floats", len(floats))
}
