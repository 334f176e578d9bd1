package layout

import "sync"

// ============================================================================
// Child Slice Pooling
// ============================================================================
//
// Every layout pass snapshots the child list and splits it into flow and
// float items. Resize drags run a pass per mouse move, so the scratch
// slices are pooled.

var childSlicePool = sync.Pool{
	New: func() interface{} {
		return make([]Child, 0, 16)
	},
}

// acquireChildSlice gets a slice with len == n from the pool.
// Caller must call releaseChildSlice when done.
func acquireChildSlice(n int) []Child {
	slice := childSlicePool.Get().([]Child)
	if cap(slice) < n {
		childSlicePool.Put(slice[:0])
		return make([]Child, n, n*2)
	}
	return slice[:n]
}

// releaseChildSlice clears references and returns the slice to the pool.
func releaseChildSlice(slice []Child) {
	if slice == nil {
		return
	}
	for i := range slice {
		slice[i] = nil
	}
	if cap(slice) <= 256 {
		childSlicePool.Put(slice[:0])
	}
}

var flowItemPool = sync.Pool{
	New: func() interface{} {
		return make([]FlowItem, 0, 16)
	},
}

func acquireFlowItems() []FlowItem {
	return flowItemPool.Get().([]FlowItem)[:0]
}

func releaseFlowItems(items []FlowItem) {
	for i := range items {
		items[i] = FlowItem{}
	}
	if cap(items) <= 256 {
		flowItemPool.Put(items[:0])
	}
}
