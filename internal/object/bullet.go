package object

import "planetoids/internal/geom"

// Bullet tunables.
const (
	BulletRadius   = 2.0
	BulletSpeed    = 400.0 // Units per second, fixed at creation
	BulletLifetime = 2.0   // Seconds before a bullet expires
)

// Bullet is a projectile fired by the player or by an alien ship. The two
// kinds live in separate collections and never collide with their firer's
// side; the struct itself is identical.
type Bullet struct {
	Entity
	Lifetime float64
}

// NewBullet creates a bullet at pos traveling along the firer's heading.
// The velocity never changes afterwards.
func NewBullet(pos geom.Vector2, rotation float64) *Bullet {
	return &Bullet{
		Entity: Entity{
			Position: pos,
			Velocity: geom.Heading(rotation).Scale(BulletSpeed),
			Rotation: rotation,
			Radius:   BulletRadius,
			Active:   true,
		},
		Lifetime: BulletLifetime,
	}
}

// Update moves the bullet and counts down its lifetime. Expiry deactivates
// it with no side effect.
func (b *Bullet) Update(dt float64, field Playfield) {
	b.Move(dt, field)
	b.Lifetime -= dt
	if b.Lifetime <= 0 {
		b.Active = false
	}
}
