package engine

// Input action names queried by movement and interaction behaviors.
// The host input layer maps physical keys to these.
const (
	ActionUp         = "up"
	ActionDown       = "down"
	ActionLeft       = "left"
	ActionRight      = "right"
	ActionJump       = "jump"
	ActionInteract   = "interact"
	ActionAccelerate = "accelerate"
	ActionBrake      = "brake"
)
