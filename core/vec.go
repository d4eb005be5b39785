package core

import "math"

// Vec2 is a 2D vector in meters. Values are never mutated in place; every
// operation returns a fresh vector.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Dot returns the scalar product v·o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the 2D cross product v×o (the z-component of the 3D cross
// product). Positive when o lies counter-clockwise of v.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector along v and true, or the zero vector and
// false when v has zero length. Callers must treat the false case as
// invalid geometry, not as a direction.
func (v Vec2) Normalize() (Vec2, bool) {
	n := v.Norm()
	if n == 0 {
		return Vec2{}, false
	}
	return Vec2{X: v.X / n, Y: v.Y / n}, true
}

// Vec3 is a 3D vector in meters.
type Vec3 struct {
	X, Y, Z float64
}

// XY projects the vector onto the ground plane.
func (v Vec3) XY() Vec2 { return Vec2{X: v.X, Y: v.Y} }
