package loop

import (
	"math/rand"
	"testing"

	"planetoids/internal/geom"
	"planetoids/internal/object"
	"planetoids/internal/physics"
)

const tick = 1.0 / 60.0

func newTestGame(seed int64) *Game {
	rng := rand.New(rand.NewSource(seed))
	return NewGame(object.Playfield{Width: FieldWidth, Height: FieldHeight}, rng, nil)
}

// startPlaying drives a fresh game through the menu into the playing
// state.
func startPlaying(t *testing.T, seed int64) *Game {
	t.Helper()
	g := newTestGame(seed)
	g.Update(tick, Command{Start: true})
	if g.State != StatePlaying {
		t.Fatalf("expected StatePlaying after start, got %v", g.State)
	}
	return g
}

func TestStartFromMenu(t *testing.T) {
	g := newTestGame(1)
	if g.State != StateMenu {
		t.Fatalf("new game should begin in the menu, got %v", g.State)
	}

	// Non-start input does nothing in the menu.
	g.Update(tick, Command{Shoot: true, Thrust: true})
	if g.State != StateMenu || g.Ship != nil {
		t.Fatal("menu should ignore everything except start")
	}

	g.Update(tick, Command{Start: true})
	if g.State != StatePlaying {
		t.Fatalf("expected StatePlaying, got %v", g.State)
	}
	if g.Score != 0 || g.Lives != InitialLives || g.Level != 1 {
		t.Fatalf("fresh run should be 0/%d/1, got %d/%d/%d", InitialLives, g.Score, g.Lives, g.Level)
	}
	if got := len(g.Asteroids); got != LevelBaseAsteroids+1 {
		t.Fatalf("level 1 should have %d asteroids, got %d", LevelBaseAsteroids+1, got)
	}
	if g.Ship == nil || !g.Ship.Active {
		t.Fatal("start should spawn an active ship")
	}
	if g.Ship.InvulnerableTime != SpawnInvulnSeconds {
		t.Fatalf("spawned ship invulnerability = %v, want %v", g.Ship.InvulnerableTime, SpawnInvulnSeconds)
	}
}

func TestStartLevelPlacement(t *testing.T) {
	g := newTestGame(2)
	g.Level = 2
	g.StartLevel()

	if got := len(g.Asteroids); got != LevelBaseAsteroids+2 {
		t.Fatalf("level 2 should have %d asteroids, got %d", LevelBaseAsteroids+2, got)
	}
	for i, a := range g.Asteroids {
		if a.Size != object.AsteroidLarge {
			t.Fatalf("asteroid %d: level start should place large asteroids, got size %d", i, a.Size)
		}
		d := physics.Distance(a.Position.X, a.Position.Y, g.Ship.Position.X, g.Ship.Position.Y)
		if d <= SafeSpawnDistance {
			t.Fatalf("asteroid %d placed %v from the ship spawn, want > %v", i, d, SafeSpawnDistance)
		}
		if a.Position.X < SpawnMargin || a.Position.X > FieldWidth-SpawnMargin ||
			a.Position.Y < SpawnMargin || a.Position.Y > FieldHeight-SpawnMargin {
			t.Fatalf("asteroid %d placed outside the spawn margins at (%v,%v)", i, a.Position.X, a.Position.Y)
		}
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := startPlaying(t, 3)

	g.Update(tick, Command{Pause: true})
	if g.State != StatePaused {
		t.Fatalf("expected StatePaused, got %v", g.State)
	}

	before := g.Asteroids[0].Position
	for i := 0; i < 10; i++ {
		g.Update(tick, Command{Thrust: true, Shoot: true})
	}
	if g.Asteroids[0].Position != before {
		t.Fatal("entities moved while paused")
	}
	if len(g.Bullets) != 0 {
		t.Fatal("shooting while paused must not spawn bullets")
	}

	g.Update(tick, Command{Pause: true})
	if g.State != StatePlaying {
		t.Fatalf("expected StatePlaying after unpause, got %v", g.State)
	}
}

func TestShootSpawnsBullet(t *testing.T) {
	g := startPlaying(t, 4)
	g.Update(tick, Command{Shoot: true})
	if len(g.Bullets) != 1 {
		t.Fatalf("expected 1 bullet, got %d", len(g.Bullets))
	}
	// Edge-resolved input: one press, one bullet.
	g.Update(tick, Command{})
	if len(g.Bullets) != 1 {
		t.Fatalf("expected the single bullet to persist, got %d", len(g.Bullets))
	}
}

func TestLevelClearAdvances(t *testing.T) {
	g := startPlaying(t, 5)

	// Replace the level with a single small asteroid and a bullet on top
	// of it; one tick destroys it and clears the level.
	g.Asteroids = g.Asteroids[:0]
	g.Asteroids = append(g.Asteroids, object.NewAsteroid(g.rng, 200, 200, object.AsteroidSmall))
	g.Bullets = append(g.Bullets, object.NewBullet(geom.Vector2{X: 200, Y: 200}, 0))

	g.Update(tick, Command{})

	if g.Level != 2 {
		t.Fatalf("expected level 2 after clearing, got %d", g.Level)
	}
	if got := len(g.Asteroids); got != LevelBaseAsteroids+2 {
		t.Fatalf("level 2 should repopulate %d asteroids, got %d", LevelBaseAsteroids+2, got)
	}
	if !g.Ship.Active || g.Ship.InvulnerableTime != SpawnInvulnSeconds {
		t.Fatal("level start should spawn a fresh invulnerable ship")
	}
}

func TestLevelDoesNotAdvanceWithAliensLeft(t *testing.T) {
	g := startPlaying(t, 6)
	g.Asteroids = g.Asteroids[:0]
	g.AlienShips = append(g.AlienShips, object.NewAlienShip(g.rng, 100, 100))

	g.Update(tick, Command{})

	if g.Level != 1 {
		t.Fatalf("level advanced to %d with an alien still alive", g.Level)
	}
}

func TestLevelDoesNotAdvanceWithAsteroidsLeft(t *testing.T) {
	g := startPlaying(t, 6)
	for i := 0; i < 120; i++ {
		g.Update(tick, Command{})
	}
	if g.Level != 1 {
		t.Fatalf("level advanced to %d with asteroids still alive", g.Level)
	}
}

func TestLifeLossRespawns(t *testing.T) {
	g := startPlaying(t, 7)
	g.Ship.Active = false

	g.Update(tick, Command{})

	if g.Lives != InitialLives-1 {
		t.Fatalf("expected %d lives, got %d", InitialLives-1, g.Lives)
	}
	if g.State != StatePlaying {
		t.Fatalf("expected StatePlaying after respawn, got %v", g.State)
	}
	if g.Ship == nil || !g.Ship.Active {
		t.Fatal("expected a fresh active ship")
	}
	center := g.Field.Center()
	if g.Ship.Position != center {
		t.Fatalf("respawn position = %v, want center %v", g.Ship.Position, center)
	}
	if g.Ship.InvulnerableTime != SpawnInvulnSeconds {
		t.Fatalf("respawn invulnerability = %v, want %v", g.Ship.InvulnerableTime, SpawnInvulnSeconds)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := startPlaying(t, 8)
	g.Lives = 1
	g.Ship.Active = false
	g.Score = 1200

	g.Update(tick, Command{})
	if g.State != StateGameOver {
		t.Fatalf("expected StateGameOver, got %v", g.State)
	}
	if g.Score != 1200 {
		t.Fatalf("game over must not touch the final score, got %d", g.Score)
	}

	g.Update(tick, Command{Start: true})
	if g.State != StatePlaying {
		t.Fatalf("expected StatePlaying after restart, got %v", g.State)
	}
	if g.Score != 0 || g.Lives != InitialLives || g.Level != 1 {
		t.Fatalf("restart should reset to 0/%d/1, got %d/%d/%d", InitialLives, g.Score, g.Lives, g.Level)
	}
}

func TestAlienSpawnsOnTimer(t *testing.T) {
	g := startPlaying(t, 9)
	g.Ship.InvulnerableTime = 1e6 // Keep the ship out of the way

	for i := 0; i < 19; i++ {
		g.Update(1.0, Command{})
	}
	if len(g.AlienShips) != 0 {
		t.Fatalf("alien arrived after %v seconds, want none before %v", 19.0, AlienSpawnInterval)
	}

	g.Update(1.0, Command{})
	if len(g.AlienShips) != 1 {
		t.Fatalf("expected 1 alien after %v seconds, got %d", AlienSpawnInterval, len(g.AlienShips))
	}
}
