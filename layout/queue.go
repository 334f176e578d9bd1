package layout

import "sync"

// Queue is a UI message queue. Any goroutine may Post; the UI goroutine
// calls Drain once per turn. Work posted while a Drain is running is left
// for the next turn.
type Queue struct {
	pending chan func()

	mu       sync.Mutex
	overflow []func() // Used once the channel is full, keeps FIFO order
}

// NewQueue returns a queue whose channel buffers size items before
// spilling into an unbounded overflow list.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = 64
	}
	return &Queue{pending: make(chan func(), size)}
}

// Post queues fn for the next Drain. It never blocks.
func (q *Queue) Post(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.overflow) == 0 {
		select {
		case q.pending <- fn:
			return
		default:
		}
	}
	q.overflow = append(q.overflow, fn)
}

// Drain runs the work queued before the call, in posting order, and
// returns how many functions ran.
func (q *Queue) Drain() int {
	q.mu.Lock()
	n := len(q.pending)
	spilled := q.overflow
	q.overflow = nil
	q.mu.Unlock()

	for i := 0; i < n; i++ {
		(<-q.pending)()
	}
	for _, fn := range spilled {
		fn()
	}
	return n + len(spilled)
}

// Len returns the number of queued functions.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending) + len(q.overflow)
}
