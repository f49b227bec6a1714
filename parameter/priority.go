package parameter

// System Execution Priorities (lower runs first)
// Order matches the tuned frame: fly, scroll, rings, birds, score, collide
const (
	PriorityFlight    = 10
	PriorityScroll    = 20
	PriorityRing      = 30
	PriorityBird      = 40
	PriorityScore     = 50
	PriorityCollision = 60
)
