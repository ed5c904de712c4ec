package ecs

import "github.com/milk9111/giftrunner/ecs/component"

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// World owns entities, their components and the per-tick event queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Query returns live entities that carry every listed kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]*sparseSet, 0, len(kinds))
	for _, k := range kinds {
		store := w.stores[k.ID()]
		if store == nil {
			return nil
		}
		stores = append(stores, store)
	}
	// iterate the smallest store
	smallest := stores[0]
	for _, s := range stores[1:] {
		if s.len() < smallest.len() {
			smallest = s
		}
	}

	var out []Entity
	for _, id := range smallest.ids() {
		matches := true
		for _, s := range stores {
			if !s.has(id) {
				matches = false
				break
			}
		}
		if !matches {
			continue
		}
		if e, ok := w.entities.entity(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns any live entity that carries every listed kind.
func (w *World) First(kinds ...component.Kind) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

func (w *World) store(id component.ComponentID, create bool) *sparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*sparseSet)
	}
	s := w.stores[id]
	if s == nil && create {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}
