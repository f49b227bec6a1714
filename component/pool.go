package component

// EntityID is a stable handle into a Pool, never reused within a session
type EntityID uint32

// Pool is an arena of T with stable IDs and deferred removal
// Removal during a scan marks the slot; Compact drops marked slots afterwards,
// preserving insertion order. Pointers from Get/Each are valid until the next Add or Compact
type Pool[T any] struct {
	nextID  EntityID
	ids     []EntityID
	items   []T
	removed []bool
	index   map[EntityID]int
	marked  int
}

// NewPool creates a pool with capacity hint
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{
		nextID:  1,
		ids:     make([]EntityID, 0, capacity),
		items:   make([]T, 0, capacity),
		removed: make([]bool, 0, capacity),
		index:   make(map[EntityID]int, capacity),
	}
}

// Add appends v and returns its ID
func (p *Pool[T]) Add(v T) EntityID {
	id := p.nextID
	p.nextID++
	p.index[id] = len(p.items)
	p.ids = append(p.ids, id)
	p.items = append(p.items, v)
	p.removed = append(p.removed, false)
	return id
}

// Get returns the live record for id
func (p *Pool[T]) Get(id EntityID) (*T, bool) {
	i, ok := p.index[id]
	if !ok || p.removed[i] {
		return nil, false
	}
	return &p.items[i], true
}

// Each visits live records in insertion order
// Records added during the scan are not visited; records marked during the scan are skipped
func (p *Pool[T]) Each(fn func(id EntityID, v *T)) {
	n := len(p.items)
	for i := 0; i < n; i++ {
		if p.removed[i] {
			continue
		}
		fn(p.ids[i], &p.items[i])
	}
}

// MarkRemoved schedules id for removal on the next Compact
// Returns false if id is unknown or already marked
func (p *Pool[T]) MarkRemoved(id EntityID) bool {
	i, ok := p.index[id]
	if !ok || p.removed[i] {
		return false
	}
	p.removed[i] = true
	p.marked++
	return true
}

// Compact drops marked records in a single pass and returns how many were dropped
func (p *Pool[T]) Compact() int {
	if p.marked == 0 {
		return 0
	}

	var zero T
	write := 0
	for read := range p.items {
		if p.removed[read] {
			delete(p.index, p.ids[read])
			continue
		}
		if write != read {
			p.ids[write] = p.ids[read]
			p.items[write] = p.items[read]
			p.index[p.ids[write]] = write
		}
		p.removed[write] = false
		write++
	}
	for i := write; i < len(p.items); i++ {
		p.items[i] = zero
	}

	dropped := p.marked
	p.ids = p.ids[:write]
	p.items = p.items[:write]
	p.removed = p.removed[:write]
	p.marked = 0
	return dropped
}

// Len returns the number of live records
func (p *Pool[T]) Len() int {
	return len(p.items) - p.marked
}

// Clear removes every record, IDs keep increasing
func (p *Pool[T]) Clear() {
	clear(p.index)
	p.ids = p.ids[:0]
	p.items = p.items[:0]
	p.removed = p.removed[:0]
	p.marked = 0
}
