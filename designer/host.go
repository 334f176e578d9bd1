// Package designer implements the design-time side of a stack panel:
// connecting floats to their targets, grouping property changes into
// undoable transactions and computing the connector lines an adorner
// draws between a float and its target.
package designer

import (
	"slices"
	"sync"

	"go.uber.org/multierr"

	"github.com/agiangrant/stacklayout/layout"
)

// Change is one committed property change.
type Change struct {
	Child    layout.Child
	Property string
	Old, New any
}

// Transaction groups the changes made by one designer action.
type Transaction struct {
	Description string
	Changes     []Change
}

// Host is an in-memory designer host. It implements
// layout.ChangeNotifier and layout.SelectionProvider.
type Host struct {
	mu sync.Mutex

	selected []layout.Child

	open      *Transaction
	depth     int
	history   []Transaction
	replaying bool
}

// NewHost returns a host with an empty selection and history.
func NewHost() *Host {
	return &Host{}
}

// Select replaces the selection.
func (h *Host) Select(cs ...layout.Child) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.selected = slices.Clone(cs)
}

// Selected implements layout.SelectionProvider.
func (h *Host) Selected() []layout.Child {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.selected)
}

// ComponentChanging implements layout.ChangeNotifier. Only completed
// changes are recorded.
func (h *Host) ComponentChanging(c layout.Child, property string) {}

// ComponentChanged implements layout.ChangeNotifier. A change made outside
// Begin/Commit becomes its own transaction.
func (h *Host) ComponentChanged(c layout.Child, property string, old, new any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.replaying {
		return
	}
	ch := Change{Child: c, Property: property, Old: old, New: new}
	if h.open != nil {
		h.open.Changes = append(h.open.Changes, ch)
		return
	}
	h.history = append(h.history, Transaction{
		Description: "Change " + property,
		Changes:     []Change{ch},
	})
}

// Begin opens a transaction. Nested calls join the outer transaction.
func (h *Host) Begin(description string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.depth++
	if h.open == nil {
		h.open = &Transaction{Description: description}
	}
}

// Commit closes the innermost Begin. The outermost Commit records the
// transaction if it changed anything.
func (h *Host) Commit() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.depth == 0 {
		return
	}
	h.depth--
	if h.depth > 0 {
		return
	}
	if len(h.open.Changes) > 0 {
		h.history = append(h.history, *h.open)
	}
	h.open = nil
}

// Rollback abandons the open transaction and reverts its changes on p.
func (h *Host) Rollback(p *layout.Panel) error {
	h.mu.Lock()
	if h.open == nil {
		h.mu.Unlock()
		return nil
	}
	tx := *h.open
	h.open = nil
	h.depth = 0
	h.mu.Unlock()

	return h.revert(p, tx)
}

// Undo reverts the most recent transaction on p and drops it from the
// history. It reports false when there is nothing to undo. A failed undo
// leaves the panel and the history as they were, so it can be retried.
func (h *Host) Undo(p *layout.Panel) (bool, error) {
	h.mu.Lock()
	if len(h.history) == 0 || h.open != nil {
		h.mu.Unlock()
		return false, nil
	}
	n := len(h.history)
	tx := h.history[n-1]
	h.mu.Unlock()

	if err := h.revert(p, tx); err != nil {
		return false, err
	}
	h.mu.Lock()
	h.history = slices.Delete(h.history, n-1, n)
	h.mu.Unlock()
	return true, nil
}

// History returns the committed transactions, oldest first.
func (h *Host) History() []Transaction {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.history)
}

func (h *Host) revert(p *layout.Panel, tx Transaction) error {
	h.mu.Lock()
	h.replaying = true
	h.mu.Unlock()
	defer func() {
		h.mu.Lock()
		h.replaying = false
		h.mu.Unlock()
	}()

	for i := len(tx.Changes) - 1; i >= 0; i-- {
		ch := tx.Changes[i]
		if !p.Contains(ch.Child) {
			continue
		}
		if err := setProperty(p, ch.Child, ch.Property, ch.Old); err != nil {
			return multierr.Append(err, reapply(p, tx.Changes[i+1:]))
		}
	}
	return nil
}

// reapply restores changes a failed revert already undid, oldest first.
func reapply(p *layout.Panel, changes []Change) error {
	var err error
	for _, ch := range changes {
		if p.Contains(ch.Child) {
			err = multierr.Append(err, setProperty(p, ch.Child, ch.Property, ch.New))
		}
	}
	return err
}

func setProperty(p *layout.Panel, c layout.Child, property string, v any) error {
	switch property {
	case layout.PropExpandWeight:
		return p.SetExpandWeight(c, v.(int))
	case layout.PropFloating:
		return p.SetFloating(c, v.(bool))
	case layout.PropFloatTarget:
		return p.SetFloatTarget(c, v.(string))
	case layout.PropFloatOffset:
		pt := v.(layout.Point)
		return p.SetFloatOffset(c, pt.X, pt.Y)
	case layout.PropFloatAlignment:
		return p.SetFloatAlignment(c, v.(layout.FloatAlignment))
	case layout.PropFloatZOrder:
		return p.SetFloatZOrder(c, v.(layout.ZOrderPolicy))
	case layout.PropIncludeHidden:
		return p.SetIncludeHidden(c, v.(bool))
	}
	return nil
}
