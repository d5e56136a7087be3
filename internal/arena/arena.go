// Package arena provides a generational slot container for game entities.
//
// Insert and Remove are O(1). Removed slots are recycled with a bumped
// generation, so a stale Handle never resolves to the entity that reused
// its slot. Handles returns live handles in insertion order, which callers
// use as a tick-start snapshot: entities removed while the snapshot is being
// walked fail the Alive check and are skipped, entities inserted meanwhile
// are not part of it.
package arena

// Handle identifies one entity inside an Arena.
type Handle struct {
	index uint32
	gen   uint32
}

type slot[T any] struct {
	value T
	gen   uint32
	alive bool
}

// Arena stores values of type T in recyclable slots.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	order []Handle // insertion order, may contain stale handles
	live  int
}

// New creates an arena with room for capacity entities before growing.
func New[T any](capacity int) *Arena[T] {
	return &Arena[T]{
		slots: make([]slot[T], 0, capacity),
		order: make([]Handle, 0, capacity),
	}
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots)) //#nosec G115 -- entity counts stay far below 2^32
		a.slots = append(a.slots, slot[T]{})
	}

	s := &a.slots[idx]
	s.value = v
	s.alive = true

	h := Handle{index: idx, gen: s.gen}
	a.order = append(a.order, h)
	a.live++
	return h
}

// Get returns a pointer to the value for h, or false if h is stale.
// The pointer is valid until the next Insert.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if !a.Alive(h) {
		return nil, false
	}
	return &a.slots[h.index].value, true
}

// Alive reports whether h still refers to a live entity.
func (a *Arena[T]) Alive(h Handle) bool {
	if int(h.index) >= len(a.slots) {
		return false
	}
	s := &a.slots[h.index]
	return s.alive && s.gen == h.gen
}

// Remove deletes the entity for h. Returns false if h was already stale.
func (a *Arena[T]) Remove(h Handle) bool {
	if !a.Alive(h) {
		return false
	}
	s := &a.slots[h.index]
	var zero T
	s.value = zero
	s.alive = false
	s.gen++
	a.free = append(a.free, h.index)
	a.live--
	return true
}

// Len returns the number of live entities.
func (a *Arena[T]) Len() int {
	return a.live
}

// Handles returns a copy of all live handles, oldest first.
func (a *Arena[T]) Handles() []Handle {
	a.compact()
	out := make([]Handle, len(a.order))
	copy(out, a.order)
	return out
}

// compact drops stale handles from the insertion order list.
func (a *Arena[T]) compact() {
	if len(a.order) == a.live {
		return
	}
	kept := a.order[:0]
	for _, h := range a.order {
		if a.Alive(h) {
			kept = append(kept, h)
		}
	}
	a.order = kept
}

// Clear removes every entity. Outstanding handles become stale.
func (a *Arena[T]) Clear() {
	for _, h := range a.order {
		a.Remove(h)
	}
	a.order = a.order[:0]
}
