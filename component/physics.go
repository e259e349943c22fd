package component

// PhysicsComponent carries per-entity kinematics.
// Invariant: for capped entities the velocity magnitude never exceeds
// MaxSpeed after a tick completes; the cap is enforced by rescaling the
// whole vector after each acceleration step, not incrementally.
type PhysicsComponent struct {
	VelX, VelY float64

	// MaxSpeed of 0 means uncapped
	MaxSpeed float64

	// Drag is a per-second velocity decay factor (0 = none)
	Drag float64

	// GravityScale multiplies scene gravity; 0 opts out entirely
	GravityScale float64

	// Static bodies are never moved by the integrator
	Static bool

	// CollideWorldBounds clamps position (not velocity) to the world rect
	CollideWorldBounds bool

	// OnGround is set by the integrator's downward probe each tick
	OnGround bool
}
