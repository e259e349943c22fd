package engine

import (
	"fmt"

	"github.com/lixenwraith/gdl-engine/component"
	"github.com/lixenwraith/gdl-engine/core"
)

// EntityInfo is the per-entity identity record: free-form type tag plus
// the visibility/liveness flags. Authoritative position lives in the
// TransformComponent.
type EntityInfo struct {
	ID   core.Entity
	Name string
	Type string

	// Visible gates rendering; pickups toggle it on collect/respawn
	Visible bool

	// Active=false removes the entity from physics, collision and
	// interaction targeting without deleting it, so respawn logic can
	// reuse the slot. The entity's own behaviors keep ticking.
	Active bool
}

// World owns entity identity and all typed component stores.
// It is the single source of truth for what exists.
type World struct {
	nextEntityID core.Entity
	infos        map[core.Entity]*EntityInfo
	order        []core.Entity // creation order, drives deterministic dispatch

	Transforms  *Store[component.TransformComponent]
	Sprites     *Store[component.SpriteComponent]
	Physics     *Store[component.PhysicsComponent]
	Colliders   *Store[component.ColliderComponent]
	Stats       *Store[component.StatsComponent]
	Inventories *Store[component.InventoryComponent]
	Behaviors   *Store[BehaviorComponent]

	// Strict aborts on component operations against unknown entity ids,
	// which are programming errors. Disabled by release builds.
	Strict bool

	allStores []AnyStore
}

// NewWorld creates an empty world
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		infos:        make(map[core.Entity]*EntityInfo),
		order:        make([]core.Entity, 0, 64),
		Transforms:   NewStore[component.TransformComponent](),
		Sprites:      NewStore[component.SpriteComponent](),
		Physics:      NewStore[component.PhysicsComponent](),
		Colliders:    NewStore[component.ColliderComponent](),
		Stats:        NewStore[component.StatsComponent](),
		Inventories:  NewStore[component.InventoryComponent](),
		Behaviors:    NewStore[BehaviorComponent](),
		Strict:       true,
	}
	w.allStores = []AnyStore{
		w.Transforms, w.Sprites, w.Physics, w.Colliders,
		w.Stats, w.Inventories, w.Behaviors,
	}
	w.Transforms.check = w.checkEntity
	w.Sprites.check = w.checkEntity
	w.Physics.check = w.checkEntity
	w.Colliders.check = w.checkEntity
	w.Stats.check = w.checkEntity
	w.Inventories.check = w.checkEntity
	w.Behaviors.check = w.checkEntity
	return w
}

// checkEntity aborts component operations against ids the world does
// not know about, mirroring Info's strict-mode contract
func (w *World) checkEntity(e core.Entity) {
	if !w.Strict {
		return
	}
	if _, ok := w.infos[e]; !ok {
		panic(fmt.Sprintf("engine: unknown entity id %d", e))
	}
}

// CreateEntity allocates a new entity id. Ids are monotonic and never
// reused within a session.
func (w *World) CreateEntity(name, typ string) core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.infos[id] = &EntityInfo{
		ID:      id,
		Name:    name,
		Type:    typ,
		Visible: true,
		Active:  true,
	}
	w.order = append(w.order, id)
	return id
}

// DestroyEntity removes an entity and detaches all its components.
// Most gameplay paths prefer Info(e).Active = false; destruction is for
// scene teardown.
func (w *World) DestroyEntity(e core.Entity) {
	if _, ok := w.infos[e]; !ok {
		return
	}
	for _, s := range w.allStores {
		s.Remove(e)
	}
	delete(w.infos, e)
	for i, id := range w.order {
		if id == e {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Info returns the identity record for a live entity.
// Referencing an id the world does not know about is a programming
// error; in strict mode it aborts the session.
func (w *World) Info(e core.Entity) *EntityInfo {
	info, ok := w.infos[e]
	if !ok {
		if w.Strict {
			panic(fmt.Sprintf("engine: unknown entity id %d", e))
		}
		return nil
	}
	return info
}

// Exists reports whether the entity id is live
func (w *World) Exists(e core.Entity) bool {
	_, ok := w.infos[e]
	return ok
}

// Entities returns all live entity ids in creation order.
// The returned slice is shared; callers must not retain it across
// create/destroy calls.
func (w *World) Entities() []core.Entity {
	return w.order
}

// FindByName returns the first entity whose record carries the given
// name, in creation order
func (w *World) FindByName(name string) (core.Entity, bool) {
	for _, e := range w.order {
		if w.infos[e].Name == name {
			return e, true
		}
	}
	return core.InvalidEntity, false
}

// FindByType returns the first active entity with the given type tag,
// in creation order. Ties between candidates resolve by creation order.
func (w *World) FindByType(typ string) (core.Entity, bool) {
	for _, e := range w.order {
		info := w.infos[e]
		if info.Type == typ && info.Active {
			return e, true
		}
	}
	return core.InvalidEntity, false
}

// Count returns the number of live entities
func (w *World) Count() int {
	return len(w.order)
}

// Clear removes all entities and components. Entity ids keep counting
// up; a session never reuses an id even across scene loads.
func (w *World) Clear() {
	for _, s := range w.allStores {
		s.Clear()
	}
	w.infos = make(map[core.Entity]*EntityInfo)
	w.order = w.order[:0]
}
