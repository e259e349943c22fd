package core

import "math"

// Vec2 is a 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the vector magnitude
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns a unit-length copy of v, or zero for the zero vector
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Dist returns the Euclidean distance between two points
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Clamp limits v to the closed range [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// CapSpeed limits the velocity vector magnitude to maxSpeed by rescaling,
// never by clamping components independently.
// Returns true if velocity was clamped.
func CapSpeed(vx, vy *float64, maxSpeed float64) bool {
	magSq := *vx**vx + *vy**vy
	if maxSpeed <= 0 || magSq <= maxSpeed*maxSpeed {
		return false
	}
	mag := math.Sqrt(magSq)
	scale := maxSpeed / mag
	*vx *= scale
	*vy *= scale
	return true
}
