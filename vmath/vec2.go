package vmath

import "math"

// Vec2 is a 2D float vector used for positions, velocities and accelerations.
// All methods are value-receiver and return new vectors; nothing mutates.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Magnitude returns the Euclidean length of v.
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// MagnitudeSq returns the squared length without the sqrt.
func (v Vec2) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector of v, zero-safe: the zero vector
// normalizes to the zero vector rather than producing NaN.
func (v Vec2) Normalize() Vec2 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Magnitude()
}

// Limit clamps the magnitude of v to max while preserving direction.
// Vectors already within max are returned unchanged.
func (v Vec2) Limit(max float64) Vec2 {
	mag := v.Magnitude()
	if mag <= max || mag == 0 {
		return v
	}
	return v.Scale(max / mag)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// FromAngle builds a vector of the given magnitude pointing at angle radians.
func FromAngle(angle, magnitude float64) Vec2 {
	return Vec2{magnitude * math.Cos(angle), magnitude * math.Sin(angle)}
}
