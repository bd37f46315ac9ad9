// Package loop provides the game state machine, the fixed-timestep tick
// driver and the terminal frame loop.
package loop

import (
	"math/rand"

	"planetoids/internal/object"
	"planetoids/internal/physics"
)

// GameState represents the current phase of the game.
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// Command is one tick's worth of player input, already edge-resolved:
// Shoot, Hyperspace, Pause and Start are true for exactly one tick per
// press.
type Command struct {
	Left   bool
	Right  bool
	Thrust bool

	Shoot      bool
	Hyperspace bool
	Pause      bool
	Start      bool
}

// Game owns all simulation state: the state machine, the entity
// collections and the score/lives/level counters. It is mutated only by
// Update; rendering reads it between ticks.
type Game struct {
	State GameState

	Score int
	Lives int
	Level int

	Ship         *object.Ship
	Asteroids    []*object.Asteroid
	Bullets      []*object.Bullet
	AlienShips   []*object.AlienShip
	AlienBullets []*object.Bullet

	Field object.Playfield

	alienSpawnTimer float64

	rng  *rand.Rand
	cues object.CuePlayer
}

// NewGame creates a game in the menu state. rng is the single shared
// random source for all placement, velocities, shapes and AI timers.
// cues receives sound events; nil disables them.
func NewGame(field object.Playfield, rng *rand.Rand, cues object.CuePlayer) *Game {
	return &Game{
		State: StateMenu,
		Lives: InitialLives,
		Level: 1,
		Field: field,
		rng:   rng,
		cues:  cues,
	}
}

// Reset starts a fresh run: score zeroed, lives and level restored, first
// level populated.
func (g *Game) Reset() {
	g.Score = 0
	g.Lives = InitialLives
	g.Level = 1
	g.StartLevel()
}

// StartLevel builds the current level: a fresh ship at the center, all
// bullets and aliens cleared, and 4+level large asteroids placed away
// from the ship spawn.
func (g *Game) StartLevel() {
	g.spawnShip()

	g.Bullets = g.Bullets[:0]
	g.AlienShips = g.AlienShips[:0]
	g.AlienBullets = g.AlienBullets[:0]
	g.Asteroids = g.Asteroids[:0]

	for i := 0; i < LevelBaseAsteroids+g.Level; i++ {
		// Rejection-sample a spot clear of the ship spawn.
		for {
			x := SpawnMargin + g.rng.Float64()*(g.Field.Width-2*SpawnMargin)
			y := SpawnMargin + g.rng.Float64()*(g.Field.Height-2*SpawnMargin)
			if physics.Distance(x, y, g.Ship.Position.X, g.Ship.Position.Y) > SafeSpawnDistance {
				g.Asteroids = append(g.Asteroids, object.NewAsteroid(g.rng, x, y, object.AsteroidLarge))
				break
			}
		}
	}

	g.alienSpawnTimer = 0
}

// spawnShip replaces the ship with a fresh one at the playfield center,
// full health and fuel, briefly invulnerable.
func (g *Game) spawnShip() {
	center := g.Field.Center()
	g.Ship = object.NewShip(center.X, center.Y, g.cues)
	g.Ship.InvulnerableTime = SpawnInvulnSeconds
}

// Update advances the game by one tick. State transitions are driven by
// the command's edge events; the simulation itself only runs while
// playing. The tick always completes synchronously.
func (g *Game) Update(dt float64, cmd Command) {
	switch g.State {
	case StateMenu, StateGameOver:
		if cmd.Start {
			g.Reset()
			g.State = StatePlaying
		}
	case StatePaused:
		if cmd.Pause {
			g.State = StatePlaying
		}
	case StatePlaying:
		if cmd.Pause {
			g.State = StatePaused
			return
		}
		g.advance(dt, cmd)
	}
}

// advance runs one simulation tick: controls, entity updates, spawning,
// collision resolution, then the level-clear and life-loss checks.
func (g *Game) advance(dt float64, cmd Command) {
	g.applyControls(dt, cmd)

	if g.Ship != nil {
		g.Ship.Update(dt, g.Field)
	}

	for _, b := range g.Bullets {
		b.Update(dt, g.Field)
	}
	g.Bullets = sweepBullets(g.Bullets)

	for _, a := range g.Asteroids {
		a.Update(dt, g.Field)
	}

	for _, alien := range g.AlienShips {
		alien.Update(dt, g.Field)
		if alien.ShouldShoot() && g.Ship != nil && g.Ship.Active {
			angle := alien.ShootAngle(g.Ship.Position)
			g.AlienBullets = append(g.AlienBullets, object.NewBullet(alien.Position, angle))
		}
	}

	for _, b := range g.AlienBullets {
		b.Update(dt, g.Field)
	}
	g.AlienBullets = sweepBullets(g.AlienBullets)

	g.alienSpawnTimer += dt
	if g.alienSpawnTimer >= AlienSpawnInterval {
		g.AlienShips = append(g.AlienShips, object.NewAlienShipAtEdge(g.rng, g.Field))
		g.alienSpawnTimer = 0
	}

	g.resolveCollisions()

	// Level completes only when asteroids and aliens are both gone.
	if len(g.Asteroids) == 0 && len(g.AlienShips) == 0 {
		g.Level++
		g.StartLevel()
	}

	if g.Ship != nil && !g.Ship.Active {
		g.loseLife()
	}
}

// applyControls feeds the tick's input to the ship.
func (g *Game) applyControls(dt float64, cmd Command) {
	if g.Ship == nil || !g.Ship.Active {
		return
	}

	if cmd.Left {
		g.Ship.Rotate(-1, dt)
	}
	if cmd.Right {
		g.Ship.Rotate(1, dt)
	}
	if cmd.Thrust {
		g.Ship.Thrust(dt)
	}
	if cmd.Shoot {
		g.Bullets = append(g.Bullets, object.NewBullet(g.Ship.Position, g.Ship.Rotation))
		if g.cues != nil {
			g.cues.Shoot()
		}
	}
	if cmd.Hyperspace {
		// A fatal malfunction deactivates the ship; the life-loss
		// check at the end of the tick picks it up.
		g.Ship.Hyperspace(g.rng, g.Field)
	}
}

// loseLife handles a destroyed ship: game over on the last life,
// otherwise a fresh ship at the center. Asteroids, bullets and aliens
// stay as they are.
func (g *Game) loseLife() {
	g.Lives--
	if g.Lives <= 0 {
		g.State = StateGameOver
		return
	}
	g.spawnShip()
}

// sweepBullets compacts a bullet slice, dropping inactive ones. Reuses
// the backing array.
func sweepBullets(bullets []*object.Bullet) []*object.Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		if b.Active {
			kept = append(kept, b)
		}
	}
	return kept
}
