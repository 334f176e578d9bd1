package layout

import "fmt"

// Rect is a box in panel coordinates, in whole pixels.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// Point is a position in panel coordinates.
type Point struct {
	X, Y int
}

// Size is a width/height pair. A zero dimension in a maximum size means
// the dimension is unbounded.
type Size struct {
	W, H int
}

// Padding is the inset between a panel's edge and its content area.
type Padding struct {
	Top, Right, Bottom, Left int
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// Right returns the x coordinate just past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate just past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{r.X, r.Y} }

// Size returns the rect's dimensions.
func (r Rect) Size() Size { return Size{r.W, r.H} }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Uniform returns padding with the same inset on every side.
func Uniform(n int) Padding {
	return Padding{n, n, n, n}
}

func (p Padding) clamped() Padding {
	return Padding{
		Top:    max(p.Top, 0),
		Right:  max(p.Right, 0),
		Bottom: max(p.Bottom, 0),
		Left:   max(p.Left, 0),
	}
}

// along returns the component of s along axis a.
func (s Size) along(a Axis) int {
	if a == Horizontal {
		return s.W
	}
	return s.H
}

// across returns the component of s perpendicular to axis a.
func (s Size) across(a Axis) int {
	if a == Horizontal {
		return s.H
	}
	return s.W
}

// clampDim clamps v into [lo, hi]; hi <= 0 means no upper bound.
// The minimum wins when the bounds conflict.
func clampDim(v, lo, hi int) int {
	if hi > 0 && v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// axisRect builds a Rect from primary/cross coordinates.
func axisRect(a Axis, mainPos, crossPos, mainSize, crossSize int) Rect {
	if a == Horizontal {
		return Rect{X: mainPos, Y: crossPos, W: mainSize, H: crossSize}
	}
	return Rect{X: crossPos, Y: mainPos, W: crossSize, H: mainSize}
}
