package memory

import (
	"sync"
)

// record is the constraint shared by every stored entity.
type record interface {
	EntityID() string
}

// store is a mutex-guarded id-keyed map with stable insertion order.
// Every repository adapter in this package owns one store, which keeps
// the single-writer assumption of the design safe under concurrent
// hosts: the mutex serializes all access to the map.
type store[T record] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func newStore[T record]() *store[T] {
	return &store[T]{
		items: make(map[string]T),
	}
}

// add stores an item by id. The last write for a given id wins; the
// item keeps its original position in the insertion order.
func (s *store[T]) add(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := item.EntityID()
	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
	}
	s.items[id] = item
}

// get retrieves an item by id
func (s *store[T]) get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	return item, ok
}

// list returns a snapshot of all items in insertion order
func (s *store[T]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]T, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.items[id])
	}
	return items
}

// find returns the first item matching the predicate, in insertion
// order
func (s *store[T]) find(match func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if item := s.items[id]; match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// delete removes an item by id; absent ids are a no-op
func (s *store[T]) delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}
