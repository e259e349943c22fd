package behavior

import (
	"github.com/lixenwraith/gdl-engine/core"
	"github.com/lixenwraith/gdl-engine/engine"
	"github.com/lixenwraith/gdl-engine/registry"
)

// diagonalFactor normalizes simultaneous two-axis input (1/sqrt2) so
// diagonal speed equals axial speed
const diagonalFactor = 0.707

func init() {
	registry.RegisterBehavior("topdownMovement", func(props map[string]any) (any, error) {
		return NewTopdownMovement(props), nil
	})
}

// TopdownMovementConfig is the designer configuration for four-direction
// movement
type TopdownMovementConfig struct {
	Speed float64
}

type topdownState struct {
	initialized bool
	facing      string
}

// TopdownMovement maps four-direction input onto axis velocity, with
// diagonal normalization and facing-based walk/idle animation selection
type TopdownMovement struct {
	Config TopdownMovementConfig
	state  topdownState
}

func NewTopdownMovement(props Props) *TopdownMovement {
	return &TopdownMovement{
		Config: TopdownMovementConfig{
			Speed: props.Float("speed", 200),
		},
	}
}

func (b *TopdownMovement) Update(e core.Entity, dt float64, sim *engine.Simulation) {
	if !b.state.initialized {
		b.state.initialized = true
		b.state.facing = "down"
	}
	if !sim.World.Info(e).Active {
		return
	}
	phys, ok := sim.World.Physics.Ptr(e)
	if !ok {
		return
	}

	var dx, dy float64
	in := sim.Ctx.Input
	if in.IsKeyPressed(engine.ActionLeft) {
		dx = -1
	}
	if in.IsKeyPressed(engine.ActionRight) {
		dx = 1
	}
	if in.IsKeyPressed(engine.ActionUp) {
		dy = -1
	}
	if in.IsKeyPressed(engine.ActionDown) {
		dy = 1
	}

	if dx != 0 && dy != 0 {
		dx *= diagonalFactor
		dy *= diagonalFactor
	}
	phys.VelX = dx * b.Config.Speed
	phys.VelY = dy * b.Config.Speed

	// Facing tracks the last nonzero axis; vertical wins on diagonals
	switch {
	case dy > 0:
		b.state.facing = "down"
	case dy < 0:
		b.state.facing = "up"
	case dx < 0:
		b.state.facing = "left"
	case dx > 0:
		b.state.facing = "right"
	}

	if spr, ok := sim.World.Sprites.Ptr(e); ok {
		if dx != 0 || dy != 0 {
			spr.Animation = "walk_" + b.state.facing
		} else {
			spr.Animation = "idle_" + b.state.facing
		}
	}
}
