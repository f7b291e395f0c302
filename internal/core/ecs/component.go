package ecs

// Removable is implemented by every per-entity side table so the Registry
// can drop an entity's data when its ID is destroyed.
type Removable interface {
	Remove(id EntityID)
}

// PtrComponentStore is a generic typed map keyed by EntityID. Roles use it
// for data they attach to other entities (shield grants, for example).
type PtrComponentStore[T any] struct {
	data map[EntityID]*T
}

func NewPtrComponentStore[T any]() *PtrComponentStore[T] {
	return &PtrComponentStore[T]{
		data: make(map[EntityID]*T, 16),
	}
}

func (s *PtrComponentStore[T]) Set(id EntityID, c *T) {
	s.data[id] = c
}

func (s *PtrComponentStore[T]) Get(id EntityID) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *PtrComponentStore[T]) Remove(id EntityID) {
	delete(s.data, id)
}

func (s *PtrComponentStore[T]) Has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

func (s *PtrComponentStore[T]) Len() int {
	return len(s.data)
}

// Each visits entries in unspecified order. fn must not add entries; it may
// remove the entry it is visiting.
func (s *PtrComponentStore[T]) Each(fn func(EntityID, *T)) {
	for id, c := range s.data {
		fn(id, c)
	}
}

// Clear drops every entry.
func (s *PtrComponentStore[T]) Clear() {
	for id := range s.data {
		delete(s.data, id)
	}
}
