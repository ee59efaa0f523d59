package ecs

import "github.com/milk9111/catjump/ecs/component"

// Handle is an optional reference to an expected-unique entity, resolved once
// when the scene is built. The zero Handle resolves to nothing.
type Handle struct {
	entity Entity
	ok     bool
}

// Resolve binds a handle to the only entity carrying kind. Zero or multiple
// matches give an empty handle.
func Resolve[T any](w *World, kind component.ComponentKind[T]) Handle {
	e, ok := Single(w, kind)
	return Handle{entity: e, ok: ok}
}

func HandleOf(e Entity) Handle {
	return Handle{entity: e, ok: e.Valid()}
}

// Entity returns the bound entity if the handle is set and still alive.
func (h Handle) Entity(w *World) (Entity, bool) {
	if !h.ok || !IsAlive(w, h.entity) {
		return 0, false
	}
	return h.entity, true
}

func (h Handle) Set() bool {
	return h.ok
}
