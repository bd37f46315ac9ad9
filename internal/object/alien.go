package object

import (
	"math"
	"math/rand"

	"planetoids/internal/geom"
)

// AlienShip tunables.
const (
	AlienRadius = 12.0

	alienMinSpeed = 50.0
	alienMaxSpeed = 100.0

	alienMinShootInterval = 1.5
	alienMaxShootInterval = 3.0
	alienMinTurnInterval  = 2.0
	alienMaxTurnInterval  = 4.0

	alienAimNoise = 30.0 // Degrees of shot inaccuracy, either way
)

// AlienShip is a hostile saucer. It drifts on a random heading,
// re-randomizes that heading every few seconds and periodically fires at
// the player with imperfect aim.
type AlienShip struct {
	Entity

	shootTimer        float64
	shootInterval     float64
	directionTimer    float64
	directionInterval float64

	rng *rand.Rand
}

// NewAlienShip creates an alien at (x, y) with a random initial heading.
func NewAlienShip(rng *rand.Rand, x, y float64) *AlienShip {
	return &AlienShip{
		Entity: Entity{
			Position: geom.Vector2{X: x, Y: y},
			Velocity: randVelocity(rng, alienMinSpeed, alienMaxSpeed),
			Radius:   AlienRadius,
			Active:   true,
		},
		shootInterval:     alienMinShootInterval + rng.Float64()*(alienMaxShootInterval-alienMinShootInterval),
		directionInterval: alienMinTurnInterval + rng.Float64()*(alienMaxTurnInterval-alienMinTurnInterval),
		rng:               rng,
	}
}

// NewAlienShipAtEdge creates an alien at a uniformly random point on a
// random edge of the playfield.
func NewAlienShipAtEdge(rng *rand.Rand, field Playfield) *AlienShip {
	var x, y float64
	switch rng.Intn(4) {
	case 0: // Top
		x, y = rng.Float64()*field.Width, 0
	case 1: // Right
		x, y = field.Width, rng.Float64()*field.Height
	case 2: // Bottom
		x, y = rng.Float64()*field.Width, field.Height
	default: // Left
		x, y = 0, rng.Float64()*field.Height
	}
	return NewAlienShip(rng, x, y)
}

// Update moves the alien and re-randomizes its heading when the direction
// interval elapses.
func (a *AlienShip) Update(dt float64, field Playfield) {
	a.Move(dt, field)

	a.shootTimer += dt
	a.directionTimer += dt

	if a.directionTimer >= a.directionInterval {
		a.Velocity = randVelocity(a.rng, alienMinSpeed, alienMaxSpeed)
		a.directionTimer = 0
		a.directionInterval = alienMinTurnInterval + a.rng.Float64()*(alienMaxTurnInterval-alienMinTurnInterval)
	}
}

// ShouldShoot polls the shoot timer. It returns true once per interval;
// firing resets the timer and draws a fresh random interval.
func (a *AlienShip) ShouldShoot() bool {
	if a.shootTimer >= a.shootInterval {
		a.shootTimer = 0
		a.shootInterval = alienMinShootInterval + a.rng.Float64()*(alienMaxShootInterval-alienMinShootInterval)
		return true
	}
	return false
}

// ShootAngle returns the bearing from the alien to target in degrees
// (0 = up), plus up to 30 degrees of noise either way. This noise is the
// only source of alien shot inaccuracy.
func (a *AlienShip) ShootAngle(target geom.Vector2) float64 {
	dx := target.X - a.Position.X
	dy := target.Y - a.Position.Y
	angle := math.Atan2(dx, -dy) * 180 / math.Pi
	return angle + (a.rng.Float64()*2-1)*alienAimNoise
}
