package loop

import "planetoids/internal/object"

// resolveCollisions runs the five collision passes in their fixed order.
// The order is load-bearing: entities deactivated by an earlier pass are
// skipped by later passes, so a bullet spent on an asteroid can never
// also destroy an alien in the same tick. Destroyed entities are marked
// inactive during the scans and compacted afterwards.
func (g *Game) resolveCollisions() {
	g.bulletAsteroidPass()
	g.bulletAlienPass()
	g.shipAsteroidPass()
	g.shipAlienPass()
	g.shipAlienBulletPass()
	g.sweepInactive()
}

// bulletAsteroidPass resolves player bullets against asteroids. A hit
// deactivates both, scores by asteroid size and appends the asteroid's
// fragments, which later bullets in this same pass can still hit. Each
// bullet stops at its first hit.
func (g *Game) bulletAsteroidPass() {
	for _, b := range g.Bullets {
		if !b.Active {
			continue
		}
		for i := 0; i < len(g.Asteroids); i++ {
			a := g.Asteroids[i]
			if !b.CollidesWith(&a.Entity) {
				continue
			}
			b.Active = false
			a.Active = false
			g.Score += a.Size.Score()
			if g.cues != nil {
				g.cues.Explosion(a.Size)
			}
			g.Asteroids = append(g.Asteroids, a.Split(g.rng)...)
			break
		}
	}
}

// bulletAlienPass resolves player bullets against alien ships: flat
// score, big explosion, both removed.
func (g *Game) bulletAlienPass() {
	for _, b := range g.Bullets {
		if !b.Active {
			continue
		}
		for _, alien := range g.AlienShips {
			if !b.CollidesWith(&alien.Entity) {
				continue
			}
			b.Active = false
			alien.Active = false
			g.Score += ScoreAlienShip
			if g.cues != nil {
				g.cues.Explosion(object.AsteroidLarge)
			}
			break
		}
	}
}

// shipVulnerable reports whether the ship can take damage this tick.
// Re-checked before every ship pass: a hit in an earlier pass opens an
// invulnerability window that shields the later passes too.
func (g *Game) shipVulnerable() bool {
	return g.Ship != nil && g.Ship.Active && g.Ship.InvulnerableTime <= 0
}

// shipAsteroidPass applies at most one asteroid ram per tick.
func (g *Game) shipAsteroidPass() {
	if !g.shipVulnerable() {
		return
	}
	for _, a := range g.Asteroids {
		if g.Ship.CollidesWith(&a.Entity) {
			g.hitShip(object.DamageAsteroid, asteroidRamDamage)
			break
		}
	}
}

// shipAlienPass resolves ship-alien rams: heavier damage, and the alien
// is destroyed too.
func (g *Game) shipAlienPass() {
	if !g.shipVulnerable() {
		return
	}
	for _, alien := range g.AlienShips {
		if g.Ship.CollidesWith(&alien.Entity) {
			g.hitShip(object.DamageAlienShip, alienRamDamage)
			alien.Active = false
			break
		}
	}
}

// shipAlienBulletPass resolves alien bullets striking the ship.
func (g *Game) shipAlienBulletPass() {
	if !g.shipVulnerable() {
		return
	}
	for _, b := range g.AlienBullets {
		if g.Ship.CollidesWith(&b.Entity) {
			g.hitShip(object.DamageAlienBullet, alienBulletDamage)
			b.Active = false
			break
		}
	}
}

// hitShip applies damage and deactivates the ship when it is destroyed.
// Life loss itself is handled at the end of the tick.
func (g *Game) hitShip(kind object.DamageType, damage int) {
	if g.Ship.TakeHit(kind, damage) {
		g.Ship.Active = false
	}
}

// sweepInactive compacts all entity collections after the passes.
func (g *Game) sweepInactive() {
	g.Bullets = sweepBullets(g.Bullets)
	g.AlienBullets = sweepBullets(g.AlienBullets)

	asteroids := g.Asteroids[:0]
	for _, a := range g.Asteroids {
		if a.Active {
			asteroids = append(asteroids, a)
		}
	}
	g.Asteroids = asteroids

	aliens := g.AlienShips[:0]
	for _, alien := range g.AlienShips {
		if alien.Active {
			aliens = append(aliens, alien)
		}
	}
	g.AlienShips = aliens
}
