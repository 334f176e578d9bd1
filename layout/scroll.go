package layout

// contentExtent computes the auto-scroll extent of a pass: the flow extent
// measured from the content origin, grown to cover any placed float, plus
// the trailing padding.
func contentExtent(content Rect, flow Size, floats []FloatItem, pad Padding) Size {
	right := content.X + flow.W
	bottom := content.Y + flow.H

	for _, f := range floats {
		if !f.Child.Visible() {
			continue
		}
		b := f.Child.Bounds()
		right = max(right, b.Right())
		bottom = max(bottom, b.Bottom())
	}

	return Size{
		W: right + pad.Right,
		H: bottom + pad.Bottom,
	}
}
