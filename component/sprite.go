package component

// SpriteComponent holds drawable state for the external render layer.
// Movement and animation logic writes Animation; nothing in the core
// reads it back.
type SpriteComponent struct {
	Texture string
	Width   float64
	Height  float64

	// Color is a fallback fill used when the texture is missing
	Color string

	// Animation is the current clip name, e.g. "walk_left" or "idle_down"
	Animation string
}
