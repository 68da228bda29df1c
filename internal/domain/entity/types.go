package entity

import "math"

// EntityID is a unique identifier for an entity (never recycled, 0 is "nil")
type EntityID uint64

// Vec3 is a position or direction in world units.
// The play field is the XY plane; Z only carries depth for rendering.
type Vec3 struct {
	X, Y, Z float64
}

// Common unit vectors
var (
	UnitX = Vec3{X: 1}
	UnitY = Vec3{Y: 1}
	One   = Vec3{X: 1, Y: 1, Z: 1}
)

// Add returns v + o
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * s
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Mul returns the component-wise product of v and o
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{X: v.X * o.X, Y: v.Y * o.Y, Z: v.Z * o.Z}
}

// Lerp interpolates between v and o by t
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Add(o.Sub(v).Scale(t))
}

// Length returns the euclidean length of v
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// NormalizeOr returns v scaled to unit length, or fallback when v has no
// usable direction.
func (v Vec3) NormalizeOr(fallback Vec3) Vec3 {
	l := v.Length()
	if l < 1e-9 || math.IsNaN(l) || math.IsInf(l, 0) {
		return fallback
	}
	return v.Scale(1 / l)
}

// Transform is the placement of an entity in the play field
type Transform struct {
	Position Vec3
	Angle    float64 // rotation about Z, radians
	Scale    Vec3
}

// NewTransform creates a transform at pos with unit scale
func NewTransform(pos Vec3) Transform {
	return Transform{Position: pos, Scale: One}
}

// Side identifies who owns a bullet
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}
