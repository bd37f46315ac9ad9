package object

import (
	"math"
	"math/rand"

	"planetoids/internal/geom"
)

// Ship tunables.
const (
	ShipRadius = 8.0
	MaxFuel    = 1000.0
	MaxHealth  = 3

	shipThrustPower   = 200.0 // Acceleration, units/s^2
	shipRotationSpeed = 300.0 // Degrees per second
	shipMaxSpeed      = 300.0
	shipDrag          = 0.98 // Velocity retained per tick
	fuelBurnRate      = 50.0 // Fuel per second of thrust

	hitFlashDuration   = 1.0
	invulnDuration     = 2.0
	hyperspaceCooldown = 3.0
	hyperspaceRisk     = 0.1
	hyperspaceMargin   = 50.0
)

// Ship is the player-controlled vessel. Exactly one Ship exists at a time;
// it is replaced by a fresh one on respawn and at level start.
type Ship struct {
	Entity

	Fuel   float64
	Health int

	// Countdown timers, all in seconds. An effect is over once its timer
	// reaches zero or below.
	InvulnerableTime   float64
	HyperspaceCooldown float64
	HitFlashTime       float64

	FlashIntensity float64 // 1.0 at hit, linear decay to 0 over the flash
	DamageType     DamageType

	cues CuePlayer // May be nil: cues are then dropped
}

// NewShip creates a ship at (x, y) pointing up, with full health and fuel.
// cues receives the ship's hit sounds; nil disables them.
func NewShip(x, y float64, cues CuePlayer) *Ship {
	return &Ship{
		Entity: Entity{
			Position: geom.Vector2{X: x, Y: y},
			Radius:   ShipRadius,
			Active:   true,
		},
		Fuel:   MaxFuel,
		Health: MaxHealth,
		cues:   cues,
	}
}

// Update advances position, applies passive drag and counts down timers.
func (s *Ship) Update(dt float64, field Playfield) {
	s.Move(dt, field)

	if s.InvulnerableTime > 0 {
		s.InvulnerableTime -= dt
	}
	if s.HyperspaceCooldown > 0 {
		s.HyperspaceCooldown -= dt
	}
	if s.HitFlashTime > 0 {
		s.HitFlashTime -= dt
		s.FlashIntensity = math.Max(0, s.HitFlashTime/hitFlashDuration)
	} else {
		s.FlashIntensity = 0
		s.DamageType = DamageNone
	}

	// Drag applies every tick, thrusting or not.
	s.Velocity = s.Velocity.Scale(shipDrag)
}

// Thrust accelerates along the current heading. A ship with no fuel
// cannot thrust. Speed is clamped to the maximum, preserving direction.
func (s *Ship) Thrust(dt float64) {
	if s.Fuel <= 0 {
		return
	}

	s.Velocity = s.Velocity.Add(geom.Heading(s.Rotation).Scale(shipThrustPower * dt))

	if s.Velocity.Magnitude() > shipMaxSpeed {
		s.Velocity = s.Velocity.Normalize().Scale(shipMaxSpeed)
	}

	s.Fuel -= fuelBurnRate * dt
	if s.Fuel < 0 {
		s.Fuel = 0
	}
}

// Rotate turns the ship. direction is -1 for left, +1 for right.
func (s *Ship) Rotate(direction float64, dt float64) {
	s.Rotation += direction * shipRotationSpeed * dt
	s.Rotation = math.Mod(s.Rotation, 360)
	if s.Rotation < 0 {
		s.Rotation += 360
	}
}

// TakeHit applies damage to the ship. It is a no-op while the
// invulnerability window is open. On a landed hit it starts the damage
// flash, grants a fresh invulnerability window and plays the hit cue.
// Returns true iff the hit reduced health to zero or below; the caller is
// responsible for deactivating the ship and handling life loss.
func (s *Ship) TakeHit(kind DamageType, damage int) bool {
	if s.InvulnerableTime > 0 {
		return false
	}

	s.Health -= damage
	s.HitFlashTime = hitFlashDuration
	s.FlashIntensity = 1.0
	s.DamageType = kind
	s.InvulnerableTime = invulnDuration

	if s.cues != nil {
		s.cues.ShipHit(kind)
	}

	return s.Health <= 0
}

// Hyperspace teleports the ship to a random point away from the playfield
// edges, killing its velocity. The jump carries a 10% chance of a lethal
// malfunction, resolved through TakeHit and therefore ineffective while
// the ship is invulnerable. Returns false iff the malfunction destroyed
// the ship. A jump attempted during the cooldown does nothing.
func (s *Ship) Hyperspace(rng *rand.Rand, field Playfield) bool {
	if s.HyperspaceCooldown > 0 {
		return true
	}

	s.Position.X = hyperspaceMargin + rng.Float64()*(field.Width-2*hyperspaceMargin)
	s.Position.Y = hyperspaceMargin + rng.Float64()*(field.Height-2*hyperspaceMargin)
	s.Velocity = geom.Vector2{}
	s.HyperspaceCooldown = hyperspaceCooldown

	if rng.Float64() < hyperspaceRisk {
		if s.TakeHit(DamageHyperspace, s.Health) {
			s.Active = false
			return false
		}
	}
	return true
}

// Visible reports whether the ship should be drawn this frame. While
// invulnerable the ship blinks at 5 Hz.
func (s *Ship) Visible() bool {
	if !s.Active {
		return false
	}
	return !(s.InvulnerableTime > 0 && int(s.InvulnerableTime*10)%2 == 1)
}

// Flash colors per damage type.
var damageColors = map[DamageType][3]uint8{
	DamageAsteroid:    {255, 100, 100},
	DamageAlienShip:   {255, 50, 50},
	DamageAlienBullet: {255, 255, 100},
	DamageHyperspace:  {150, 100, 255},
}

// FlashColor returns the ship's display color: white, shifted toward the
// damage-type color by the current flash intensity.
func (s *Ship) FlashColor() (r, g, b uint8) {
	if s.FlashIntensity <= 0 {
		return 255, 255, 255
	}
	base, ok := damageColors[s.DamageType]
	if !ok {
		base = damageColors[DamageAsteroid]
	}
	r = uint8(255 + (float64(base[0])-255)*s.FlashIntensity)
	g = uint8(255 + (float64(base[1])-255)*s.FlashIntensity)
	b = uint8(255 + (float64(base[2])-255)*s.FlashIntensity)
	return r, g, b
}

// shipShape is the ship outline in its local frame (pointing up).
var shipShape = []geom.Vector2{
	{X: 0, Y: -10},
	{X: -6, Y: 8},
	{X: 6, Y: 8},
}

// Shape returns the ship's triangle transformed into world space.
func (s *Ship) Shape() []geom.Vector2 {
	return transformShape(shipShape, s.Rotation, s.Position)
}

// transformShape rotates local points by rotation degrees and translates
// them to pos.
func transformShape(local []geom.Vector2, rotation float64, pos geom.Vector2) []geom.Vector2 {
	rad := rotation * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	out := make([]geom.Vector2, len(local))
	for i, p := range local {
		out[i] = geom.Vector2{
			X: p.X*cos - p.Y*sin + pos.X,
			Y: p.X*sin + p.Y*cos + pos.Y,
		}
	}
	return out
}
