package behavior

import (
	"math"

	"github.com/lixenwraith/gdl-engine/core"
	"github.com/lixenwraith/gdl-engine/engine"
	"github.com/lixenwraith/gdl-engine/registry"
)

// minSteerSpeed is the speed (units/s) below which steering input is
// ignored, so a parked vehicle cannot spin in place
const minSteerSpeed = 10.0

func init() {
	registry.RegisterBehavior("vehicleMovement", func(props map[string]any) (any, error) {
		return NewVehicleMovement(props), nil
	})
}

// VehicleMovementConfig is the designer configuration for heading-based
// driving
type VehicleMovementConfig struct {
	MaxSpeed     float64
	Acceleration float64
	TurnSpeed    float64 // degrees per second
	BrakePower   float64
}

type vehicleState struct {
	initialized bool
	rotation    float64 // persistent heading, degrees
}

// VehicleMovement accelerates along a persistent heading; steering only
// rotates the heading while the vehicle is already moving, and speed is
// clamped by rescaling the velocity vector.
type VehicleMovement struct {
	Config VehicleMovementConfig
	state  vehicleState
}

func NewVehicleMovement(props Props) *VehicleMovement {
	return &VehicleMovement{
		Config: VehicleMovementConfig{
			MaxSpeed:     props.Float("maxSpeed", 300),
			Acceleration: props.Float("acceleration", 200),
			TurnSpeed:    props.Float("turnSpeed", 180),
			BrakePower:   props.Float("brakePower", 300),
		},
	}
}

func (b *VehicleMovement) Update(e core.Entity, dt float64, sim *engine.Simulation) {
	phys, ok := sim.World.Physics.Ptr(e)
	if !ok {
		return
	}
	if !b.state.initialized {
		b.state.initialized = true
		if tr, ok := sim.World.Transforms.Get(e); ok {
			b.state.rotation = tr.Rotation
		}
	}
	if !sim.World.Info(e).Active {
		return
	}

	in := sim.Ctx.Input
	speed := math.Hypot(phys.VelX, phys.VelY)

	// Steering requires motion
	if speed > minSteerSpeed {
		if in.IsKeyPressed(engine.ActionLeft) {
			b.state.rotation -= b.Config.TurnSpeed * dt
		}
		if in.IsKeyPressed(engine.ActionRight) {
			b.state.rotation += b.Config.TurnSpeed * dt
		}
	}

	heading := b.state.rotation * math.Pi / 180
	dirX, dirY := math.Cos(heading), math.Sin(heading)

	switch {
	case in.IsKeyPressed(engine.ActionAccelerate) || in.IsKeyPressed(engine.ActionUp):
		phys.VelX += dirX * b.Config.Acceleration * dt
		phys.VelY += dirY * b.Config.Acceleration * dt
	case in.IsKeyPressed(engine.ActionBrake) || in.IsKeyPressed(engine.ActionDown):
		decel := b.Config.BrakePower * dt
		if speed <= decel {
			phys.VelX = 0
			phys.VelY = 0
		} else {
			scale := (speed - decel) / speed
			phys.VelX *= scale
			phys.VelY *= scale
		}
	default:
		// Rolling friction
		decay := 1 - dt
		if decay < 0 {
			decay = 0
		}
		phys.VelX *= decay
		phys.VelY *= decay
	}

	// Whole-vector clamp, never per-component
	core.CapSpeed(&phys.VelX, &phys.VelY, b.Config.MaxSpeed)

	if tr, ok := sim.World.Transforms.Ptr(e); ok {
		tr.Rotation = b.state.rotation
	}
	if spr, ok := sim.World.Sprites.Ptr(e); ok {
		if math.Hypot(phys.VelX, phys.VelY) > minSteerSpeed {
			spr.Animation = "drive"
		} else {
			spr.Animation = "idle"
		}
	}
}
