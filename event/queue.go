package event

// Queue buffers events emitted during a tick until the loop dispatches them
// Owned by the simulation goroutine; producers and the consumer never run concurrently
type Queue struct {
	pending []GameEvent
	tick    uint64
}

func NewQueue() *Queue {
	return &Queue{pending: make([]GameEvent, 0, 32)}
}

// SetTick stamps subsequently pushed events
func (q *Queue) SetTick(tick uint64) {
	q.tick = tick
}

// Push appends an event stamped with the current tick
func (q *Queue) Push(t EventType, payload any) {
	q.pending = append(q.pending, GameEvent{Type: t, Payload: payload, Tick: q.tick})
}

// Consume returns all pending events in FIFO order and empties the queue
// The returned slice is owned by the caller
func (q *Queue) Consume() []GameEvent {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = make([]GameEvent, 0, cap(out))
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.pending)
}
