// Package behavior implements the movement, AI and interaction handlers
// attached to entities by GDL behavior blocks. Each behavior type is a
// typed variant: an immutable designer config decoded once at spawn and
// a private mutable state struct, advanced one tick at a time through
// the engine's Behavior capability.
//
// State is lazily initialized on the first tick rather than at
// construction, because defaults may depend on the entity's compiled
// starting position.
package behavior

import (
	"github.com/lixenwraith/gdl-engine/core"
	"github.com/lixenwraith/gdl-engine/engine"
)

// position returns the entity's transform position
func position(sim *engine.Simulation, e core.Entity) (float64, float64) {
	if tr, ok := sim.World.Transforms.Get(e); ok {
		return tr.X, tr.Y
	}
	return 0, 0
}

// playerDistance locates this tick's player and the Euclidean distance
// to it from entity e. ok is false when no active player exists.
func playerDistance(sim *engine.Simulation, e core.Entity) (player core.Entity, dist float64, ok bool) {
	player, ok = sim.Player()
	if !ok {
		return core.InvalidEntity, 0, false
	}
	x, y := position(sim, e)
	px, py := position(sim, player)
	return player, core.Dist(x, y, px, py), true
}

// moveToward points the entity's velocity at (tx, ty) with the given
// speed, stopping dead inside arriveRadius
func moveToward(sim *engine.Simulation, e core.Entity, tx, ty, speed, arriveRadius float64) {
	phys, ok := sim.World.Physics.Ptr(e)
	if !ok {
		return
	}
	x, y := position(sim, e)
	if core.Dist(x, y, tx, ty) <= arriveRadius {
		phys.VelX = 0
		phys.VelY = 0
		return
	}
	dir := core.Vec2{X: tx - x, Y: ty - y}.Normalized()
	phys.VelX = dir.X * speed
	phys.VelY = dir.Y * speed
}

// halt zeroes the entity's velocity
func halt(sim *engine.Simulation, e core.Entity) {
	if phys, ok := sim.World.Physics.Ptr(e); ok {
		phys.VelX = 0
		phys.VelY = 0
	}
}

// interactGate is the shared spam-prevention window for proximity
// interactions: an effect fires at most once per window.
type interactGate struct {
	last   float64
	window float64 // seconds
}

// newInteractGate creates a gate that allows an immediate first use
func newInteractGate(window float64) interactGate {
	return interactGate{last: -window, window: window}
}

// allow reports whether the effect may fire at time now, and records the
// use when it may
func (g *interactGate) allow(now float64) bool {
	if now-g.last < g.window {
		return false
	}
	g.last = now
	return true
}
