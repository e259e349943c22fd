package engine

import (
	"fmt"

	"github.com/lixenwraith/gdl-engine/core"
	"github.com/lixenwraith/gdl-engine/registry"
)

// Behavior is the capability every behavior variant implements: advance
// one entity by one tick. All effects are side effects on the entity's
// components, the behavior's own state, or the game context; there is no
// return value.
type Behavior interface {
	Update(e core.Entity, dt float64, sim *Simulation)
}

// BehaviorComponent attaches zero or more behavior instances to an
// entity. Instances are pointers into behavior-owned state; designer
// properties inside them are decoded once and never written again.
type BehaviorComponent struct {
	Behaviors []Behavior
}

// decodeBehavior resolves a registry factory and asserts the concrete
// instance to the engine's Behavior capability
func decodeBehavior(typ string, props map[string]any) (Behavior, error) {
	factory, ok := registry.GetBehavior(typ)
	if !ok {
		return nil, fmt.Errorf("engine: behavior type %q not registered", typ)
	}
	v, err := factory(props)
	if err != nil {
		return nil, fmt.Errorf("engine: decoding behavior %q: %w", typ, err)
	}
	b, ok := v.(Behavior)
	if !ok {
		return nil, fmt.Errorf("engine: behavior factory %q returned %T, not a Behavior", typ, v)
	}
	return b, nil
}
