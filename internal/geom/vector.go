// Package geom provides 2D vector math for the simulation.
package geom

import "math"

// Vector2 is a 2D vector. It is a value type; copy it freely.
type Vector2 struct {
	X, Y float64
}

// Add returns the sum of v and other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v minus other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v multiplied by scalar s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Magnitude returns the length of the vector.
func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vector2) Normalize() Vector2 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector2{}
	}
	return Vector2{v.X / mag, v.Y / mag}
}

// Heading returns the unit vector for a rotation given in degrees,
// where 0 points up the screen and angles increase clockwise.
func Heading(degrees float64) Vector2 {
	rad := degrees * math.Pi / 180
	return Vector2{math.Sin(rad), -math.Cos(rad)}
}
