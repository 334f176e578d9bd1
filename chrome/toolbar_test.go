package chrome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/stacklayout/config"
	"github.com/agiangrant/stacklayout/layout"
)

func TestNewToolbar(t *testing.T) {
	tb, err := NewToolbar(Options{})
	require.NoError(t, err)

	assert.Equal(t, layout.Rect{X: 2, Y: 2, W: 24, H: 24}, tb.Back.Bounds())
	assert.Equal(t, layout.Rect{X: 58, Y: 2, W: 24, H: 24}, tb.Refresh.Bounds())
	assert.Equal(t, layout.Rect{X: 86, Y: 2, W: 284, H: 24}, tb.Address.Bounds())
	assert.Equal(t, layout.Rect{X: 374, Y: 2, W: 24, H: 24}, tb.Menu.Bounds())
	assert.False(t, tb.Loading())
	assert.False(t, tb.Stop.Visible())
	assert.Equal(t, layout.ZManual, tb.Panel.FloatZOrder(tb.Stop))
}

func TestToolbarLoading(t *testing.T) {
	tb, err := NewToolbar(Options{})
	require.NoError(t, err)
	address := tb.Address.Bounds()
	passes := tb.Panel.Passes()

	tb.SetLoading(true)
	assert.True(t, tb.Loading())
	assert.True(t, tb.Stop.Visible())
	assert.True(t, tb.Refresh.Visible(), "refresh keeps its slot under stop")
	assert.Equal(t, tb.Refresh.Bounds(), tb.Stop.Bounds())
	assert.Equal(t, address, tb.Address.Bounds())
	assert.Equal(t, passes+1, tb.Panel.Passes())

	order := tb.Surface.PaintOrder()
	assert.Greater(t, indexOf(order, Stop), indexOf(order, Refresh), "stop paints over refresh")

	tb.SetLoading(true)
	assert.Equal(t, passes+1, tb.Panel.Passes(), "no-op toggle")

	tb.SetLoading(false)
	assert.False(t, tb.Stop.Visible())
}

func TestToolbarResize(t *testing.T) {
	tb, err := NewToolbar(Options{})
	require.NoError(t, err)
	tb.SetLoading(true).Resize(600, 28)

	assert.Equal(t, 484, tb.Address.Bounds().W)
	assert.Equal(t, layout.Rect{X: 574, Y: 2, W: 24, H: 24}, tb.Menu.Bounds())
	assert.Equal(t, tb.Refresh.Bounds(), tb.Stop.Bounds())

	// Narrower than the fixed controls: the address bar keeps its minimum.
	tb.Resize(100, 28)
	assert.Equal(t, 40, tb.Address.Bounds().W)
}

func TestToolbarDeferredLayout(t *testing.T) {
	q := layout.NewQueue(8)
	tb, err := NewToolbar(Options{Layout: layout.Options{Dispatcher: q}})
	require.NoError(t, err)
	q.Drain()
	passes := tb.Panel.Passes()

	tb.SetLoading(true)
	tb.SetAddress("https://go.dev/doc")
	assert.Equal(t, passes, tb.Panel.Passes())

	q.Drain()
	assert.Equal(t, passes+1, tb.Panel.Passes())
	assert.Equal(t, tb.Refresh.Bounds(), tb.Stop.Bounds())
	assert.Equal(t, "https://go.dev/doc", tb.Address.Label())
}

func TestToolbarMissingControl(t *testing.T) {
	p := config.Profile{
		Name:   "bare",
		Axis:   layout.Horizontal,
		Width:  100,
		Height: 10,
		Children: []config.ChildConfig{
			{Name: Back, Width: 10, Height: 10},
		},
	}
	_, err := NewToolbar(Options{Profile: &p})
	assert.ErrorIs(t, err, ErrMissingControl)
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
