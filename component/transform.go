package component

// TransformComponent is the authoritative spatial state of an entity.
// Mutated by physics integration and directly by behaviors (teleports,
// zone transitions).
type TransformComponent struct {
	X, Y     float64
	Rotation float64 // degrees
	ScaleX   float64
	ScaleY   float64
}
