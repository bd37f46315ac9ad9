// Package object implements the game entities: the player ship, bullets,
// asteroids and alien ships. All entities share movement, toroidal wrapping
// and circle collision through the embedded Entity base.
package object

import (
	"math"
	"math/rand"

	"planetoids/internal/geom"
	"planetoids/internal/physics"
)

// Playfield holds the logical world dimensions. The playfield is toroidal:
// entities leaving one edge reappear at the opposite edge.
type Playfield struct {
	Width  float64
	Height float64
}

// Center returns the center point of the playfield.
func (f Playfield) Center() geom.Vector2 {
	return geom.Vector2{X: f.Width / 2, Y: f.Height / 2}
}

// Wrap maps pos into [0, Width) x [0, Height) using true modulo, so
// negative coordinates wrap to the positive range.
func (f Playfield) Wrap(pos *geom.Vector2) {
	if f.Width > 0 {
		pos.X = math.Mod(pos.X, f.Width)
		if pos.X < 0 {
			pos.X += f.Width
		}
	}
	if f.Height > 0 {
		pos.Y = math.Mod(pos.Y, f.Height)
		if pos.Y < 0 {
			pos.Y += f.Height
		}
	}
}

// Entity is the shared state of every movable, collidable object.
// Only active entities participate in collision and rendering; a destroyed
// entity is marked inactive and swept from its collection at end of tick.
type Entity struct {
	Position geom.Vector2
	Velocity geom.Vector2
	Rotation float64 // Degrees, 0 points up, clockwise
	Radius   float64
	Active   bool
}

// Move advances the position by velocity*dt and wraps it into the playfield.
func (e *Entity) Move(dt float64, field Playfield) {
	e.Position = e.Position.Add(e.Velocity.Scale(dt))
	field.Wrap(&e.Position)
}

// CollidesWith reports whether the two entities' collision circles overlap.
// Inactive entities never collide.
func (e *Entity) CollidesWith(other *Entity) bool {
	if !e.Active || !other.Active {
		return false
	}
	return physics.CirclesOverlap(
		e.Position.X, e.Position.Y, e.Radius,
		other.Position.X, other.Position.Y, other.Radius,
	)
}

// DamageType identifies what hit the ship. It selects the damage flash
// color and the hit sound cue.
type DamageType int

const (
	DamageNone DamageType = iota
	DamageAsteroid
	DamageAlienShip
	DamageAlienBullet
	DamageHyperspace
)

// String returns the HUD caption shown while the damage flash is active.
func (d DamageType) String() string {
	switch d {
	case DamageAsteroid:
		return "Asteroid Hit!"
	case DamageAlienShip:
		return "Alien Collision!"
	case DamageAlienBullet:
		return "Alien Fire!"
	case DamageHyperspace:
		return "Hyperspace Malfunction!"
	default:
		return ""
	}
}

// CuePlayer receives fire-and-forget sound cue events from the simulation.
// Implementations must never block or fail in a way that reaches the caller.
type CuePlayer interface {
	Shoot()
	Explosion(size AsteroidSize)
	ShipHit(kind DamageType)
}

// randVelocity returns a velocity with a uniformly random direction and a
// speed drawn uniformly from [minSpeed, maxSpeed).
func randVelocity(rng *rand.Rand, minSpeed, maxSpeed float64) geom.Vector2 {
	speed := minSpeed + rng.Float64()*(maxSpeed-minSpeed)
	angle := rng.Float64() * 360
	return geom.Heading(angle).Scale(speed)
}
