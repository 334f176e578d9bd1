package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrFloatCycle is returned when a float target would make the float
	// graph cyclic.
	ErrFloatCycle = errors.New("layout: float target creates a cycle")

	// ErrNotChild is returned for operations on a child the panel does not own.
	ErrNotChild = errors.New("layout: not a child of this panel")
)

// Attributes are the per-child layout properties a panel attaches to its
// children.
type Attributes struct {
	// ExpandWeight is the child's share of leftover primary-axis space.
	// 0 means the child never grows.
	ExpandWeight int

	// Floating children are positioned relative to FloatTarget instead of
	// by stack order.
	Floating       bool
	FloatTarget    string
	FloatOffsetX   int
	FloatOffsetY   int
	FloatAlignment FloatAlignment
	FloatZOrder    ZOrderPolicy

	// IncludeHidden makes a hidden child keep its flow space.
	IncludeHidden bool
}

// ExtenderStore is the side table of Attributes keyed by child identity.
// It is only touched from the UI goroutine.
type ExtenderStore struct {
	attrs map[Child]*Attributes
}

// NewExtenderStore returns an empty store.
func NewExtenderStore() *ExtenderStore {
	return &ExtenderStore{attrs: make(map[Child]*Attributes)}
}

// Get returns a copy of c's attributes, or the defaults if none were set.
func (s *ExtenderStore) Get(c Child) Attributes {
	if a, ok := s.attrs[c]; ok {
		return *a
	}
	return Attributes{}
}

func (s *ExtenderStore) entry(c Child) *Attributes {
	a, ok := s.attrs[c]
	if !ok {
		a = &Attributes{}
		s.attrs[c] = a
	}
	return a
}

// Remove drops c's attributes.
func (s *ExtenderStore) Remove(c Child) {
	delete(s.attrs, c)
}

// Clear drops every entry.
func (s *ExtenderStore) Clear() {
	clear(s.attrs)
}

// Len returns the number of children with stored attributes.
func (s *ExtenderStore) Len() int {
	return len(s.attrs)
}

// SetExpandWeight sets the weight, clamping negatives to 0. It reports
// whether the stored value changed.
func (s *ExtenderStore) SetExpandWeight(c Child, weight int) bool {
	weight = max(weight, 0)
	a := s.entry(c)
	if a.ExpandWeight == weight {
		return false
	}
	a.ExpandWeight = weight
	return true
}

func (s *ExtenderStore) SetFloating(c Child, floating bool) bool {
	a := s.entry(c)
	if a.Floating == floating {
		return false
	}
	a.Floating = floating
	return true
}

func (s *ExtenderStore) SetFloatOffset(c Child, x, y int) bool {
	a := s.entry(c)
	if a.FloatOffsetX == x && a.FloatOffsetY == y {
		return false
	}
	a.FloatOffsetX, a.FloatOffsetY = x, y
	return true
}

func (s *ExtenderStore) SetFloatAlignment(c Child, align FloatAlignment) bool {
	a := s.entry(c)
	if a.FloatAlignment == align {
		return false
	}
	a.FloatAlignment = align
	return true
}

func (s *ExtenderStore) SetFloatZOrder(c Child, z ZOrderPolicy) bool {
	a := s.entry(c)
	if a.FloatZOrder == z {
		return false
	}
	a.FloatZOrder = z
	return true
}

func (s *ExtenderStore) SetIncludeHidden(c Child, include bool) bool {
	a := s.entry(c)
	if a.IncludeHidden == include {
		return false
	}
	a.IncludeHidden = include
	return true
}

// SetFloatTarget sets the name c floats relative to. lookup resolves a
// sibling name to its child so the target chain can be walked; a name
// that would lead back to c is rejected with ErrFloatCycle.
func (s *ExtenderStore) SetFloatTarget(c Child, target string, lookup func(string) Child) (bool, error) {
	if target != "" {
		if err := s.checkCycle(c, target, lookup); err != nil {
			return false, err
		}
	}
	a := s.entry(c)
	if a.FloatTarget == target {
		return false, nil
	}
	a.FloatTarget = target
	return true, nil
}

func (s *ExtenderStore) checkCycle(c Child, target string, lookup func(string) Child) error {
	if target == c.Name() {
		return fmt.Errorf("%q targets itself: %w", target, ErrFloatCycle)
	}
	seen := map[Child]bool{c: true}
	name := target
	for name != "" {
		next := lookup(name)
		if next == nil {
			// Unresolved names end the chain; they are skipped at layout time.
			return nil
		}
		if seen[next] {
			return fmt.Errorf("%q -> %q: %w", c.Name(), target, ErrFloatCycle)
		}
		seen[next] = true
		// Followed whether or not next is floating.
		a, ok := s.attrs[next]
		if !ok {
			return nil
		}
		name = a.FloatTarget
	}
	return nil
}
