package event

// Handler processes routed events
type Handler interface {
	// HandleEvent processes a single event, called synchronously during dispatch
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// HandlerFunc adapts a function to a Handler for a fixed set of types
type HandlerFunc struct {
	Types []EventType
	Fn    func(GameEvent)
}

func (h HandlerFunc) HandleEvent(ev GameEvent) { h.Fn(ev) }

func (h HandlerFunc) EventTypes() []EventType { return h.Types }

// Router dispatches queued events to handlers in registration order
type Router struct {
	handlers map[EventType][]Handler
	queue    *Queue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *Queue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(h Handler) {
	for _, t := range h.EventTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// DispatchAll consumes pending events and routes them in FIFO order
// Events pushed by handlers are delivered in the same call
func (r *Router) DispatchAll() int {
	n := 0
	for {
		batch := r.queue.Consume()
		if len(batch) == 0 {
			return n
		}
		for _, ev := range batch {
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ev)
			}
		}
		n += len(batch)
	}
}

// HandlerCount returns the number of handlers registered for t
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
