package engine

import (
	"github.com/kamstrup/intmap"

	"github.com/lixenwraith/gdl-engine/core"
)

// Store is a generic container for a specific component type T.
// Dense slices plus an integer sparse index keep iteration cache-friendly.
// Removal compacts in order rather than swap-removing, because dispatch
// and integration iterate entities in creation order.
//
// The simulation is single-threaded by contract, so stores carry no
// locking; all access happens on the tick goroutine.
type Store[T any] struct {
	index    *intmap.Map[core.Entity, int32]
	entities []core.Entity
	items    []T

	// check validates the entity id before access. World installs it on
	// its stores so component operations on unknown ids abort in strict
	// mode, same contract as World.Info. Standalone stores leave it nil.
	check func(core.Entity)
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    intmap.New[core.Entity, int32](64),
		entities: make([]core.Entity, 0, 64),
		items:    make([]T, 0, 64),
	}
}

// Set inserts or replaces the component for an entity.
// Attaching a kind that already exists on the entity replaces it; an
// entity never holds two components of the same kind.
func (s *Store[T]) Set(e core.Entity, val T) {
	if s.check != nil {
		s.check(e)
	}
	if idx, ok := s.index.Get(e); ok {
		s.items[idx] = val
		return
	}
	s.index.Put(e, int32(len(s.items)))
	s.entities = append(s.entities, e)
	s.items = append(s.items, val)
}

// Get retrieves a copy of the component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	if s.check != nil {
		s.check(e)
	}
	if idx, ok := s.index.Get(e); ok {
		return s.items[idx], true
	}
	var zero T
	return zero, false
}

// Ptr returns a mutable pointer to the entity's component, valid until
// the next structural change to this store
func (s *Store[T]) Ptr(e core.Entity) (*T, bool) {
	if s.check != nil {
		s.check(e)
	}
	if idx, ok := s.index.Get(e); ok {
		return &s.items[idx], true
	}
	return nil, false
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.index.Get(e)
	return ok
}

// Remove deletes the component from an entity, preserving the relative
// order of the remaining entries
func (s *Store[T]) Remove(e core.Entity) {
	idx, ok := s.index.Get(e)
	if !ok {
		return
	}
	s.index.Del(e)
	copy(s.entities[idx:], s.entities[idx+1:])
	s.entities = s.entities[:len(s.entities)-1]
	copy(s.items[idx:], s.items[idx+1:])
	s.items = s.items[:len(s.items)-1]
	for i := int(idx); i < len(s.entities); i++ {
		s.index.Put(s.entities[i], int32(i))
	}
}

// All returns all entities with this component, in insertion order.
// The returned slice is shared; callers must not retain it across
// structural changes.
func (s *Store[T]) All() []core.Entity {
	return s.entities
}

// Count returns the number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.items)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.index = intmap.New[core.Entity, int32](64)
	s.entities = s.entities[:0]
	s.items = s.items[:0]
}

// AnyStore provides type-erased operations for lifecycle management,
// letting World detach and clear uniformly across component kinds
type AnyStore interface {
	Remove(e core.Entity)
	Has(e core.Entity) bool
	Count() int
	Clear()
}
