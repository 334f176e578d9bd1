// Package preview draws an arranged panel into a terminal with tcell.
package preview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/agiangrant/stacklayout/designer"
	"github.com/agiangrant/stacklayout/layout"
	"github.com/agiangrant/stacklayout/widget"
)

var (
	defStyle       = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	styleBox       = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xffffff)).Background(tcell.NewHexColor(0x001040))
	styleFloat     = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xffff00)).Background(tcell.NewHexColor(0x400010)).Bold(true)
	styleConnector = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x00ff00)).Background(tcell.ColorReset)
)

// Renderer maps layout units onto terminal cells.
type Renderer struct {
	screen tcell.Screen
	// ScaleX and ScaleY are layout units per cell.
	ScaleX, ScaleY int
}

// NewRenderer returns a renderer that draws one cell per layout unit.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, ScaleX: 1, ScaleY: 1}
}

// Cell converts a layout rect into a cell rect.
func (r *Renderer) Cell(b layout.Rect) layout.Rect {
	sx, sy := max(r.ScaleX, 1), max(r.ScaleY, 1)
	x0, y0 := b.X/sx, b.Y/sy
	x1, y1 := (b.Right()+sx-1)/sx, (b.Bottom()+sy-1)/sy
	return layout.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Draw clears the screen and paints the visible widgets of s back to
// front. floats are drawn in a highlighted style; conns mark connector
// points.
func (r *Renderer) Draw(s *widget.Surface, p *layout.Panel, conns []designer.Connector) {
	r.screen.SetStyle(defStyle)
	r.screen.Clear()

	for _, w := range s.Widgets() {
		if !w.Visible() {
			continue
		}
		style := styleBox
		if p != nil && p.Floating(w) {
			style = styleFloat
		}
		r.box(r.Cell(w.Bounds()), style, w.Label())
	}
	for _, c := range conns {
		r.screen.SetContent(c.To.X/max(r.ScaleX, 1), c.To.Y/max(r.ScaleY, 1), '◆', nil, styleConnector)
	}
	r.screen.Show()
}

func (r *Renderer) box(c layout.Rect, style tcell.Style, label string) {
	if c.W <= 0 || c.H <= 0 {
		return
	}
	for y := c.Y; y < c.Bottom(); y++ {
		for x := c.X; x < c.Right(); x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	inner := c
	if c.W >= 3 && c.H >= 3 {
		r.border(c, style)
		inner = layout.Rect{X: c.X + 1, Y: c.Y + 1, W: c.W - 2, H: c.H - 2}
	}
	r.text(inner.X, inner.Y+inner.H/2, inner.W, style, label)
}

func (r *Renderer) border(c layout.Rect, style tcell.Style) {
	right, bottom := c.Right()-1, c.Bottom()-1
	for x := c.X + 1; x < right; x++ {
		r.screen.SetContent(x, c.Y, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := c.Y + 1; y < bottom; y++ {
		r.screen.SetContent(c.X, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(c.X, c.Y, '┌', nil, style)
	r.screen.SetContent(right, c.Y, '┐', nil, style)
	r.screen.SetContent(c.X, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

// text centers label within width cells, truncating with an ellipsis.
func (r *Renderer) text(col, line, width int, style tcell.Style, label string) {
	if width < 1 || label == "" {
		return
	}
	label = runewidth.Truncate(label, width, "…")
	col += (width - runewidth.StringWidth(label)) / 2
	for _, ch := range label {
		r.screen.SetContent(col, line, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
