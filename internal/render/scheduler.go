package render

// FrameHandle identifies a requested frame. The zero handle is never issued.
type FrameHandle uint64

// Scheduler runs callbacks once per display frame.
type Scheduler interface {
	// RequestFrame schedules f for the next frame.
	RequestFrame(f func()) FrameHandle
	// CancelFrame drops a pending callback. Unknown handles are ignored.
	CancelFrame(h FrameHandle)
}

type pendingFrame struct {
	handle FrameHandle
	f      func()
}

// FrameQueue is a Scheduler driven by the host: every Flush runs the
// callbacks that were pending when it began. Callbacks requested during a
// Flush wait for the next one. It is not safe for concurrent use.
type FrameQueue struct {
	pending []pendingFrame
	running []pendingFrame
	last    FrameHandle
}

var _ Scheduler = (*FrameQueue)(nil)

// RequestFrame implements Scheduler.
func (q *FrameQueue) RequestFrame(f func()) FrameHandle {
	q.last++
	q.pending = append(q.pending, pendingFrame{handle: q.last, f: f})
	return q.last
}

// CancelFrame implements Scheduler.
func (q *FrameQueue) CancelFrame(h FrameHandle) {
	for i, p := range q.pending {
		if p.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	// A callback may cancel another one from the batch being flushed.
	for i, p := range q.running {
		if p.handle == h {
			q.running[i].f = nil
			return
		}
	}
}

// Pending returns the number of callbacks waiting for the next Flush.
func (q *FrameQueue) Pending() int { return len(q.pending) }

// Flush runs the pending callbacks in request order and returns how many ran.
func (q *FrameQueue) Flush() int {
	q.running, q.pending = q.pending, nil
	defer func() { q.running = nil }()

	ran := 0
	for i := range q.running {
		f := q.running[i].f
		if f == nil {
			continue
		}
		q.running[i].f = nil
		f()
		ran++
	}
	return ran
}
