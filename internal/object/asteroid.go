package object

import (
	"math/rand"

	"planetoids/internal/geom"
)

// AsteroidSize is the size category of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

// Radius returns the collision radius for the size category.
func (s AsteroidSize) Radius() float64 {
	return 10 + 8*float64(s)
}

// Score returns the points awarded for destroying an asteroid of this
// size. Small asteroids are worth the most.
func (s AsteroidSize) Score() int {
	switch s {
	case AsteroidSmall:
		return 100
	case AsteroidMedium:
		return 50
	default:
		return 20
	}
}

const (
	asteroidShapePoints = 8
	asteroidMinSpeed    = 20.0
	asteroidMaxSpeed    = 80.0
	splitMinSpeed       = 40.0
	splitMaxSpeed       = 120.0
)

// Asteroid is a drifting, splitting space rock. Its irregular outline is
// generated once at construction; collision uses the circular radius, so
// rotation only matters for drawing.
type Asteroid struct {
	Entity
	Size          AsteroidSize
	RotationSpeed float64 // Degrees per second
	shape         []geom.Vector2
}

// NewAsteroid creates an asteroid at (x, y) with a random velocity, spin
// and outline drawn from rng.
func NewAsteroid(rng *rand.Rand, x, y float64, size AsteroidSize) *Asteroid {
	a := &Asteroid{
		Entity: Entity{
			Position: geom.Vector2{X: x, Y: y},
			Velocity: randVelocity(rng, asteroidMinSpeed, asteroidMaxSpeed),
			Radius:   size.Radius(),
			Active:   true,
		},
		Size:          size,
		RotationSpeed: -180 + rng.Float64()*360,
	}

	// Outline: evenly spaced vertices with the radius jittered +-30%.
	a.shape = make([]geom.Vector2, asteroidShapePoints)
	for i := range a.shape {
		angle := 360 / float64(asteroidShapePoints) * float64(i)
		r := a.Radius * (0.7 + rng.Float64()*0.6)
		a.shape[i] = geom.Heading(angle).Scale(r)
	}

	return a
}

// Update moves the asteroid and spins it.
func (a *Asteroid) Update(dt float64, field Playfield) {
	a.Move(dt, field)
	a.Rotation += a.RotationSpeed * dt
}

// Split returns the fragments created by destroying this asteroid: 2 or 3
// asteroids one size smaller at the same position, each with an
// independent random velocity. A small asteroid yields no fragments.
func (a *Asteroid) Split(rng *rand.Rand) []*Asteroid {
	if a.Size <= AsteroidSmall {
		return nil
	}

	n := 2 + rng.Intn(2)
	children := make([]*Asteroid, 0, n)
	for i := 0; i < n; i++ {
		child := NewAsteroid(rng, a.Position.X, a.Position.Y, a.Size-1)
		child.Velocity = randVelocity(rng, splitMinSpeed, splitMaxSpeed)
		children = append(children, child)
	}
	return children
}

// Shape returns the asteroid outline transformed into world space.
func (a *Asteroid) Shape() []geom.Vector2 {
	return transformShape(a.shape, a.Rotation, a.Position)
}
