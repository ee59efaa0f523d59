package ecs

import "github.com/milk9111/catjump/ecs/component"

// World owns entities, their components, and the frame clock.
type World struct {
	gens   []generation
	alive  []bool
	free   []entityID
	count  int
	stores map[component.ComponentID]*store

	dt    float32
	frame uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*store)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	var id entityID
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.gens = append(w.gens, 0)
		w.alive = append(w.alive, false)
		id = entityID(len(w.gens))
	}
	w.alive[id-1] = true
	w.count++
	return makeEntity(id, w.gens[id-1])
}

// DestroyEntity removes e and all of its components. It reports false when
// e was not alive.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	id := e.id()
	w.alive[id-1] = false
	w.gens[id-1]++
	w.free = append(w.free, id)
	w.count--
	return true
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil || !e.Valid() {
		return false
	}
	id := int(e.id())
	if id <= 0 || id > len(w.gens) {
		return false
	}
	return w.alive[id-1] && w.gens[id-1] == e.generation()
}

// Entities returns every live entity in id order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, w.count)
	for i, ok := range w.alive {
		if ok {
			out = append(out, makeEntity(entityID(i+1), w.gens[i]))
		}
	}
	return out
}

func (w *World) IsAlive(e Entity) bool {
	return IsAlive(w, e)
}

// Query returns the live entities that carry every given kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]*store, 0, len(kinds))
	for _, k := range kinds {
		s := w.storeFor(k)
		if s == nil {
			return nil
		}
		stores = append(stores, s)
	}
	smallest := stores[0]
	for _, s := range stores[1:] {
		if s.len() < smallest.len() {
			smallest = s
		}
	}
	var out []Entity
	for _, e := range smallest.dense {
		if !w.IsAlive(e) {
			continue
		}
		match := true
		for _, s := range stores {
			if _, ok := s.index(e); !ok {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// Advance moves the frame clock forward by dt seconds.
func (w *World) Advance(dt float32) {
	if w == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	w.dt = dt
	w.frame++
}

// Delta returns the seconds elapsed for the current frame.
func (w *World) Delta() float32 {
	if w == nil {
		return 0
	}
	return w.dt
}

// Frame returns the number of frames advanced so far.
func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}

func (w *World) storeFor(kind component.Kind) *store {
	if w == nil || kind == nil || w.stores == nil {
		return nil
	}
	return w.stores[kind.ID()]
}

func (w *World) ensureStore(id component.ComponentID) *store {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*store)
	}
	s, ok := w.stores[id]
	if !ok {
		s = &store{}
		w.stores[id] = s
	}
	return s
}
