package behavior

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/gdl-engine/component"
	"github.com/lixenwraith/gdl-engine/engine"
)

func TestTopdown_AxisMovement(t *testing.T) {
	rig := newRig()
	hero := rig.addPlayer(100, 100)
	rig.sim.World.Sprites.Set(hero, component.SpriteComponent{Width: 16, Height: 16})
	rig.attach(hero, NewTopdownMovement(Props{"speed": 200.0}))

	rig.input.Press(engine.ActionRight)
	rig.tick(1, 0.016)
	vx, vy := rig.vel(hero)
	require.Equal(t, 200.0, vx)
	require.Equal(t, 0.0, vy)

	spr, _ := rig.sim.World.Sprites.Get(hero)
	require.Equal(t, "walk_right", spr.Animation)
}

func TestTopdown_DiagonalNormalized(t *testing.T) {
	rig := newRig()
	hero := rig.addPlayer(100, 100)
	rig.attach(hero, NewTopdownMovement(Props{"speed": 200.0}))

	rig.input.Press(engine.ActionRight)
	rig.input.Press(engine.ActionDown)
	rig.tick(1, 0.016)

	vx, vy := rig.vel(hero)
	require.InDelta(t, 200.0*diagonalFactor, vx, 1e-9)
	require.InDelta(t, 200.0*diagonalFactor, vy, 1e-9)
	// Diagonal speed roughly equals axial speed
	require.InDelta(t, 200.0, math.Hypot(vx, vy), 0.5)
}

func TestTopdown_FacingPersistsWhenIdle(t *testing.T) {
	rig := newRig()
	hero := rig.addPlayer(100, 100)
	rig.sim.World.Sprites.Set(hero, component.SpriteComponent{})
	rig.attach(hero, NewTopdownMovement(Props{}))

	rig.input.Press(engine.ActionUp)
	rig.tick(1, 0.016)
	rig.input.ReleaseAll()
	rig.tick(1, 0.016)

	spr, _ := rig.sim.World.Sprites.Get(hero)
	require.Equal(t, "idle_up", spr.Animation)
	vx, vy := rig.vel(hero)
	require.Zero(t, vx)
	require.Zero(t, vy)
}

func TestTopdown_VerticalWinsFacingOnDiagonal(t *testing.T) {
	rig := newRig()
	hero := rig.addPlayer(100, 100)
	rig.sim.World.Sprites.Set(hero, component.SpriteComponent{})
	rig.attach(hero, NewTopdownMovement(Props{}))

	rig.input.Press(engine.ActionLeft)
	rig.input.Press(engine.ActionDown)
	rig.tick(1, 0.016)

	spr, _ := rig.sim.World.Sprites.Get(hero)
	require.Equal(t, "walk_down", spr.Animation)
}

func TestPlatformer_GroundGatedJump(t *testing.T) {
	rig := newRig()
	rig.sim.Gravity.Y = 800

	ground := rig.addBody("ground", "platform", 400, 500)
	gp, _ := rig.sim.World.Physics.Ptr(ground)
	gp.Static = true
	rig.sim.World.Colliders.Set(ground, component.ColliderComponent{
		Shape: component.ShapeRectangle, Width: 800, Height: 40,
	})

	hero := rig.addPlayer(400, 470)
	hp, _ := rig.sim.World.Physics.Ptr(hero)
	hp.GravityScale = 1
	rig.sim.World.Sprites.Set(hero, component.SpriteComponent{Width: 24, Height: 32})
	rig.attach(hero, NewPlatformerMovement(Props{"jumpPower": 400.0}))

	// Settle onto the platform
	rig.tick(20, 1.0/60.0)
	hp, _ = rig.sim.World.Physics.Ptr(hero)
	require.True(t, hp.OnGround)

	rig.input.Press(engine.ActionJump)
	rig.tick(1, 1.0/60.0)
	hp, _ = rig.sim.World.Physics.Ptr(hero)
	require.Equal(t, -400.0, hp.VelY)

	spr, _ := rig.sim.World.Sprites.Get(hero)
	require.Equal(t, "jump", spr.Animation)

	// Held jump while airborne never re-fires
	rig.tick(1, 1.0/60.0)
	hp, _ = rig.sim.World.Physics.Ptr(hero)
	require.Greater(t, hp.VelY, -400.0, "no double jump")
}

func TestVehicle_ParkedCannotSteer(t *testing.T) {
	rig := newRig()
	rig.addPlayer(0, 0)
	car := rig.addBody("car", "vehicle", 300, 300)
	v := NewVehicleMovement(Props{"turnSpeed": 180.0})
	rig.attach(car, v)

	rig.input.Press(engine.ActionLeft)
	rig.tick(5, 0.1)

	tr, _ := rig.sim.World.Transforms.Get(car)
	require.Equal(t, 0.0, tr.Rotation, "steering requires motion")
}

func TestVehicle_AcceleratesAlongHeading(t *testing.T) {
	rig := newRig()
	rig.addPlayer(0, 0)
	car := rig.addBody("car", "vehicle", 300, 300)
	tr, _ := rig.sim.World.Transforms.Ptr(car)
	tr.Rotation = 90 // facing down
	rig.attach(car, NewVehicleMovement(Props{"acceleration": 200.0, "maxSpeed": 300.0}))

	rig.input.Press(engine.ActionAccelerate)
	rig.tick(1, 0.1)

	vx, vy := rig.vel(car)
	require.InDelta(t, 0.0, vx, 1e-9)
	require.InDelta(t, 20.0, vy, 1e-9)
}

func TestVehicle_SpeedClampPreservesDirection(t *testing.T) {
	rig := newRig()
	rig.addPlayer(0, 0)
	car := rig.addBody("car", "vehicle", 300, 300)
	rig.attach(car, NewVehicleMovement(Props{"acceleration": 1000.0, "maxSpeed": 100.0}))

	rig.input.Press(engine.ActionAccelerate)
	rig.tick(30, 0.1)

	vx, vy := rig.vel(car)
	require.InDelta(t, 100.0, math.Hypot(vx, vy), 1e-6, "whole-vector clamp")
	require.InDelta(t, 0.0, vy, 1e-6, "heading unchanged")
}

func TestVehicle_BrakeStopsCompletely(t *testing.T) {
	rig := newRig()
	rig.addPlayer(0, 0)
	car := rig.addBody("car", "vehicle", 300, 300)
	phys, _ := rig.sim.World.Physics.Ptr(car)
	phys.VelX = 50
	rig.attach(car, NewVehicleMovement(Props{"brakePower": 300.0}))

	rig.input.Press(engine.ActionBrake)
	rig.tick(10, 0.1)

	vx, vy := rig.vel(car)
	require.Zero(t, vx)
	require.Zero(t, vy)
}

func TestVehicle_RollingFriction(t *testing.T) {
	rig := newRig()
	rig.addPlayer(0, 0)
	car := rig.addBody("car", "vehicle", 300, 300)
	phys, _ := rig.sim.World.Physics.Ptr(car)
	phys.VelX = 100
	rig.attach(car, NewVehicleMovement(Props{}))

	rig.tick(1, 0.1)
	vx, _ := rig.vel(car)
	require.InDelta(t, 90.0, vx, 1e-9, "coasting decays speed")
}
