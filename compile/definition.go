package compile

import (
	"github.com/lixenwraith/gdl-engine/component"
	"github.com/lixenwraith/gdl-engine/core"
)

// GameDefinition is the compiled, immutable output of one GDL document
type GameDefinition struct {
	Title      string
	Width      float64
	Height     float64
	StartScene string

	Scenes   []SceneDefinition
	Entities []EntityDefinition

	// Presets are top-level `behavior` blocks: named property sets an
	// entity behavior block pulls in with `use`
	Presets map[string]BehaviorSpec
}

// SceneDefinition describes one scene: background, gravity, and the
// ordered entity-name references instantiated at scene load
type SceneDefinition struct {
	Name       string
	Background string
	Gravity    core.Vec2
	Entities   []string
}

// EntityDefinition is the immutable template a live entity is
// instantiated from. Component blocks are copied verbatim into typed
// structs; absent blocks stay nil.
type EntityDefinition struct {
	Name string
	Type string

	Transform *component.TransformComponent
	Sprite    *component.SpriteComponent
	Physics   *component.PhysicsComponent
	Collider  *component.ColliderComponent

	Behaviors []BehaviorSpec

	// State holds initial values from the entity's `state` block
	// (health, visible, ...), interpreted at spawn
	State map[string]any
}

// BehaviorSpec is one behavior attachment: a registry type key plus the
// raw designer-set property map, verbatim from GDL
type BehaviorSpec struct {
	Type  string
	Props map[string]any
}

// Scene returns the named scene definition, or nil
func (g *GameDefinition) Scene(name string) *SceneDefinition {
	for i := range g.Scenes {
		if g.Scenes[i].Name == name {
			return &g.Scenes[i]
		}
	}
	return nil
}

// Entity returns the named entity definition, or nil
func (g *GameDefinition) Entity(name string) *EntityDefinition {
	for i := range g.Entities {
		if g.Entities[i].Name == name {
			return &g.Entities[i]
		}
	}
	return nil
}
