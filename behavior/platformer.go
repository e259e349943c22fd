package behavior

import (
	"github.com/lixenwraith/gdl-engine/core"
	"github.com/lixenwraith/gdl-engine/engine"
	"github.com/lixenwraith/gdl-engine/registry"
)

func init() {
	registry.RegisterBehavior("platformerMovement", func(props map[string]any) (any, error) {
		return NewPlatformerMovement(props), nil
	})
}

// PlatformerMovementConfig is the designer configuration for side-view
// movement
type PlatformerMovementConfig struct {
	Speed     float64
	JumpPower float64
}

// PlatformerMovement drives horizontal axis movement plus ground-gated
// jumps; vertical motion otherwise belongs to gravity
type PlatformerMovement struct {
	Config PlatformerMovementConfig
}

func NewPlatformerMovement(props Props) *PlatformerMovement {
	return &PlatformerMovement{
		Config: PlatformerMovementConfig{
			Speed:     props.Float("speed", 200),
			JumpPower: props.Float("jumpPower", 400),
		},
	}
}

func (b *PlatformerMovement) Update(e core.Entity, dt float64, sim *engine.Simulation) {
	if !sim.World.Info(e).Active {
		return
	}
	phys, ok := sim.World.Physics.Ptr(e)
	if !ok {
		return
	}

	var dx float64
	in := sim.Ctx.Input
	if in.IsKeyPressed(engine.ActionLeft) {
		dx = -1
	}
	if in.IsKeyPressed(engine.ActionRight) {
		dx = 1
	}
	phys.VelX = dx * b.Config.Speed

	// No double-jump: only from the ground
	if in.IsKeyPressed(engine.ActionJump) && phys.OnGround {
		phys.VelY = -b.Config.JumpPower
		phys.OnGround = false
	}

	// Animation priority: jump > walk > idle
	if spr, ok := sim.World.Sprites.Ptr(e); ok {
		switch {
		case !phys.OnGround:
			spr.Animation = "jump"
		case dx != 0:
			spr.Animation = "walk"
		default:
			spr.Animation = "idle"
		}
	}
}
