package widget

import (
	"slices"
	"sync"

	"github.com/agiangrant/stacklayout/layout"
)

// Surface is the top-level paint target for a set of widgets. It keeps
// their paint order (back to front) and coalesces repaint requests.
// Surface implements layout.ZOrderer and layout.Invalidator.
type Surface struct {
	mu sync.Mutex

	order     []*Widget
	suspended int
	deferred  bool
	frames    int
	onRepaint func()
}

// NewSurface returns an empty surface.
func NewSurface() *Surface {
	return &Surface{}
}

// Add appends widgets to the front of the paint order. Widgets already on
// the surface are skipped.
func (s *Surface) Add(ws ...*Widget) *Surface {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range ws {
		if w != nil && s.indexLocked(w) < 0 {
			s.order = append(s.order, w)
		}
	}
	return s
}

// Remove drops w from the surface.
func (s *Surface) Remove(w *Widget) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(w)
	if i < 0 {
		return false
	}
	s.order = slices.Delete(s.order, i, i+1)
	return true
}

// Widgets returns the widgets back to front.
func (s *Surface) Widgets() []*Widget {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.order)
}

// PaintOrder returns widget names back to front.
func (s *Surface) PaintOrder() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.order))
	for i, w := range s.order {
		names[i] = w.Name()
	}
	return names
}

// OnRepaint sets the function run for every repaint.
func (s *Surface) OnRepaint(fn func()) *Surface {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRepaint = fn
	return s
}

// Frames returns the number of repaints so far.
func (s *Surface) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

func (s *Surface) indexLocked(c layout.Child) int {
	for i, w := range s.order {
		if layout.Child(w) == c {
			return i
		}
	}
	return -1
}

// ============================================================================
// layout.ZOrderer
// ============================================================================

// BringAbove moves child directly in front of target unless it already
// paints after it.
func (s *Surface) BringAbove(child, target layout.Child) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ci, ti := s.indexLocked(child), s.indexLocked(target)
	if ci < 0 || ti < 0 || ci > ti {
		return
	}
	w := s.order[ci]
	s.order = slices.Delete(s.order, ci, ci+1)
	s.order = slices.Insert(s.order, s.indexLocked(target)+1, w)
}

// SendBelow moves child directly behind target unless it already paints
// before it.
func (s *Surface) SendBelow(child, target layout.Child) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ci, ti := s.indexLocked(child), s.indexLocked(target)
	if ci < 0 || ti < 0 || ci < ti {
		return
	}
	w := s.order[ci]
	s.order = slices.Delete(s.order, ci, ci+1)
	s.order = slices.Insert(s.order, s.indexLocked(target), w)
}

// ============================================================================
// layout.Invalidator
// ============================================================================

func (s *Surface) SuspendPaint() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suspended++
}

// ResumePaint ends a SuspendPaint. A repaint requested while suspended
// runs when the outermost suspension ends.
func (s *Surface) ResumePaint() {
	s.mu.Lock()
	if s.suspended > 0 {
		s.suspended--
	}
	run := s.suspended == 0 && s.deferred
	if run {
		s.deferred = false
	}
	s.mu.Unlock()

	if run {
		s.repaint()
	}
}

// Invalidate requests a repaint.
func (s *Surface) Invalidate() {
	s.mu.Lock()
	if s.suspended > 0 {
		s.deferred = true
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.repaint()
}

func (s *Surface) repaint() {
	s.mu.Lock()
	s.frames++
	fn := s.onRepaint
	ws := slices.Clone(s.order)
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
	for _, w := range ws {
		w.ClearDirty()
	}
}
