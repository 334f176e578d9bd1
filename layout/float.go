package layout

// FloatItem is a floating child together with its attributes.
type FloatItem struct {
	Child Child
	Attrs Attributes
}

// FloatResolver positions floating children relative to a named sibling.
// Floats are moved, never resized.
type FloatResolver struct {
	// Lookup resolves a sibling name within the same panel.
	Lookup func(name string) Child
	// ZOrder is optional; without it z-order policies are ignored.
	ZOrder ZOrderer
	Diag   Diagnostics
}

// Connector returns the anchor point on target for a float of the given
// size. ToRightOf and ToBottomOf anchor just past the target's right or
// bottom edge; ToLeftOf and ToTopOf anchor so the float ends at the
// target's left or top edge. The other coordinate follows the target's
// top-left corner.
func Connector(target Rect, align FloatAlignment, float Size) Point {
	switch align {
	case FloatToLeftOf:
		return Point{target.X - float.W, target.Y}
	case FloatToRightOf:
		return Point{target.Right(), target.Y}
	case FloatToTopOf:
		return Point{target.X, target.Y - float.H}
	case FloatToBottomOf:
		return Point{target.X, target.Bottom()}
	default:
		return Point{target.X, target.Y}
	}
}

// Resolve positions floats in order and returns how many were placed.
// A float whose target is missing, hidden or itself keeps its current
// position; resolution continues with the next float. Floats that target
// other floats read whatever position that target has at the time, so an
// earlier float sees a later target's position from the previous pass.
func (r FloatResolver) Resolve(floats []FloatItem) int {
	diag := r.Diag
	if diag == nil {
		diag = NopDiagnostics
	}

	placed := 0
	for _, f := range floats {
		c := f.Child
		if !c.Visible() {
			continue
		}
		target, reason := r.target(c, f.Attrs.FloatTarget)
		if target == nil {
			diag.Log(LevelWarn, "float target unresolved",
				"child", c.Name(), "target", f.Attrs.FloatTarget, "reason", reason)
			continue
		}

		b := c.Bounds()
		p := Connector(target.Bounds(), f.Attrs.FloatAlignment, b.Size())
		b.X = p.X + f.Attrs.FloatOffsetX
		b.Y = p.Y + f.Attrs.FloatOffsetY
		c.SetBounds(b)
		placed++
		debugLog("float: %s -> %s at %v", c.Name(), target.Name(), b)

		if r.ZOrder == nil {
			continue
		}
		switch f.Attrs.FloatZOrder {
		case ZInFrontOfTarget:
			r.ZOrder.BringAbove(c, target)
		case ZBehindTarget:
			r.ZOrder.SendBelow(c, target)
		}
	}
	return placed
}

func (r FloatResolver) target(c Child, name string) (Child, string) {
	if name == "" {
		return nil, "no target"
	}
	if r.Lookup == nil {
		return nil, "no lookup"
	}
	t := r.Lookup(name)
	switch {
	case t == nil:
		return nil, "not a sibling"
	case t == c:
		return nil, "targets itself"
	case !t.Visible():
		return nil, "target hidden"
	}
	return t, ""
}
