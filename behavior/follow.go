package behavior

import (
	"github.com/lixenwraith/gdl-engine/core"
	"github.com/lixenwraith/gdl-engine/engine"
	"github.com/lixenwraith/gdl-engine/registry"
)

func init() {
	registry.RegisterBehavior("follow", func(props map[string]any) (any, error) {
		return NewFollow(props), nil
	})
}

// FollowConfig names the entity to trail. Target "player" resolves to
// the active player regardless of entity name.
type FollowConfig struct {
	Target       string
	Speed        float64
	StopDistance float64
}

// Follow steers toward a named entity, stopping inside StopDistance.
// The target is looked up every tick so followers declared before
// their target in a scene still bind once the target spawns.
type Follow struct {
	Config FollowConfig
}

func NewFollow(props Props) *Follow {
	return &Follow{
		Config: FollowConfig{
			Target:       props.Str("target", "player"),
			Speed:        props.Float("speed", 100),
			StopDistance: props.Float("stopDistance", 24),
		},
	}
}

func (b *Follow) Update(e core.Entity, dt float64, sim *engine.Simulation) {
	if !sim.World.Info(e).Active {
		return
	}

	target := b.resolveTarget(sim)
	if target == core.InvalidEntity {
		halt(sim, e)
		return
	}

	tx, ty := position(sim, target)
	x, y := position(sim, e)
	if core.Dist(x, y, tx, ty) <= b.Config.StopDistance {
		halt(sim, e)
		return
	}
	moveToward(sim, e, tx, ty, b.Config.Speed, b.Config.StopDistance)
}

func (b *Follow) resolveTarget(sim *engine.Simulation) core.Entity {
	if b.Config.Target == "player" {
		if p, ok := sim.Player(); ok {
			return p
		}
	}
	if t, ok := sim.World.FindByName(b.Config.Target); ok {
		if sim.World.Info(t).Active {
			return t
		}
	}
	return core.InvalidEntity
}
