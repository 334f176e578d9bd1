package layout

// FlowItem is a flow child together with its expand weight.
type FlowItem struct {
	Child  Child
	Weight int
}

// FlowArranger stacks flow children along the primary axis, distributing
// leftover space by weight and placing each child on the cross axis.
type FlowArranger struct {
	Axis      Axis
	Spacing   int
	Alignment CrossAlignment
	Policy    SizingPolicy
}

// baseSize returns the size a child claims along the axis before leftover
// space is distributed. The current size is clamped first so the
// distributor never hands out pixels the final clamp takes back.
func (p SizingPolicy) baseSize(it FlowItem, axis Axis, available Size) int {
	c := it.Child
	current := clampDim(c.Bounds().Size().along(axis), c.MinSize().along(axis), c.MaxSize().along(axis))
	if it.Weight == 0 {
		return current
	}
	switch p {
	case PolicyCurrentSize:
		return current
	case PolicyPreferredSize:
		pref := it.Child.PreferredSize(available).along(axis)
		return max(pref, it.Child.MinSize().along(axis))
	default:
		return 0
	}
}

// Arrange commits bounds for every item inside content and returns the
// extent the items occupy, measured from content's origin. The primary
// extent may exceed content when children are clamped to their minimum.
func (f FlowArranger) Arrange(content Rect, items []FlowItem) Size {
	if len(items) == 0 {
		return Size{}
	}
	axis := f.Axis
	spacing := max(f.Spacing, 0)
	avail := content.Size()
	mainAvail := avail.along(axis)
	crossAvail := avail.across(axis)
	gaps := spacing * (len(items) - 1)

	dist := make([]DistItem, len(items))
	for i, it := range items {
		dist[i] = DistItem{
			Base:   f.Policy.baseSize(it, axis, avail),
			Weight: it.Weight,
		}
	}
	extra := Distribute(mainAvail, gaps, dist)

	mainOrigin, crossOrigin := content.Y, content.X
	if axis == Horizontal {
		mainOrigin, crossOrigin = content.X, content.Y
	}

	pos := mainOrigin
	maxCross := 0
	for i, it := range items {
		c := it.Child
		minSize, maxSize := c.MinSize(), c.MaxSize()

		mainSize := clampDim(dist[i].Base+extra[i], minSize.along(axis), maxSize.along(axis))
		crossSize, crossPos := f.cross(c, crossOrigin, crossAvail)

		c.SetBounds(axisRect(axis, pos, crossPos, mainSize, crossSize))
		debugLog("flow: %s main=%d+%d -> %d cross=%d@%d",
			c.Name(), dist[i].Base, extra[i], mainSize, crossSize, crossPos)

		pos += mainSize
		if i < len(items)-1 {
			pos += spacing
		}
		maxCross = max(maxCross, crossPos-crossOrigin+crossSize)
	}

	if axis == Horizontal {
		return Size{W: pos - mainOrigin, H: maxCross}
	}
	return Size{W: maxCross, H: pos - mainOrigin}
}

// cross computes a child's cross-axis size and position.
func (f FlowArranger) cross(c Child, origin, avail int) (size, pos int) {
	axis := f.Axis
	lo, hi := c.MinSize().across(axis), c.MaxSize().across(axis)

	if f.Alignment == AlignStretch {
		return clampDim(avail, lo, hi), origin
	}

	size = clampDim(c.Bounds().Size().across(axis), lo, hi)
	switch f.Alignment {
	case AlignCenter:
		pos = origin + (avail-size)/2
	case AlignEnd:
		pos = origin + avail - size
	default:
		pos = origin
	}
	return size, max(pos, origin)
}
