package loop

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// Playfield
const (
	FieldWidth  = 800.0 // Logical units; rendering scales to the terminal
	FieldHeight = 600.0
)

// Scoring
const (
	ScoreAlienShip = 500
)

// Player
const (
	InitialLives       = 3
	SpawnInvulnSeconds = 2.0
)

// Levels
const (
	LevelBaseAsteroids = 4     // Large asteroids at level 1 is base + level
	SpawnMargin        = 50.0  // Asteroids are placed this far from the edges
	SafeSpawnDistance  = 100.0 // Minimum asteroid distance from ship spawn
)

// Aliens
const (
	AlienSpawnInterval = 20.0 // Seconds between alien arrivals
)

// Damage
const (
	asteroidRamDamage = 1
	alienRamDamage    = 2
	alienBulletDamage = 1
)
