package component

// ColliderShape is the closed set of supported collider shapes
type ColliderShape string

const (
	ShapeRectangle ColliderShape = "rectangle"
	ShapeCircle    ColliderShape = "circle"
)

// ValidShape reports whether s names a supported collider shape
func ValidShape(s string) bool {
	switch ColliderShape(s) {
	case ShapeRectangle, ShapeCircle:
		return true
	}
	return false
}

// ColliderComponent describes the collision footprint of an entity
type ColliderComponent struct {
	Shape  ColliderShape
	Width  float64 // rectangle
	Height float64 // rectangle
	Radius float64 // circle

	// IsTrigger marks overlap-detection-only colliders (sensors);
	// solid collision response does not apply to them
	IsTrigger bool
}
