package loop

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"planetoids/internal/draw"
	"planetoids/internal/object"
)

// drawMenu draws the title screen.
func drawMenu(text *draw.ChunkWriter, canvas *draw.Canvas) {
	centerX := canvas.TerminalWidth() / 2
	centerY := canvas.TerminalHeight() / 2

	writeCentered(text, centerX, centerY-5, "P L A N E T O I D S")
	writeCentered(text, centerX, centerY-3, "ZX81 Classic Recreation")

	lines := []string{
		"A/D or Arrows: rotate   W or Up: thrust",
		"Space: shoot   H: hyperspace (panic button)",
		"P: pause   Q: quit",
		"",
		"Destroy asteroids and alien ships!",
		"Manage your fuel wisely to get home safely.",
		"",
		"Press ENTER to Start",
	}
	for i, line := range lines {
		if line != "" {
			writeCentered(text, centerX, centerY-1+i, line)
		}
	}
}

// drawGameOver draws the final score screen.
func drawGameOver(g *Game, text *draw.ChunkWriter, canvas *draw.Canvas) {
	centerX := canvas.TerminalWidth() / 2
	centerY := canvas.TerminalHeight() / 2

	writeCentered(text, centerX, centerY-2, "GAME OVER")
	writeCentered(text, centerX, centerY, fmt.Sprintf("Final Score: %d", g.Score))
	writeCentered(text, centerX, centerY+2, "Press ENTER to Play Again or Q to Quit")
}

// drawPaused overlays the pause banner on the frozen playfield.
func drawPaused(text *draw.ChunkWriter, canvas *draw.Canvas) {
	centerX := canvas.TerminalWidth() / 2
	centerY := canvas.TerminalHeight() / 2
	writeCentered(text, centerX, centerY, "  PAUSED - press P to resume  ")
}

const hudBarWidth = 10

// drawHUD draws score, lives, level, the health and fuel gauges, the
// hyperspace cooldown and the transient damage caption.
func drawHUD(g *Game, text *draw.ChunkWriter, canvas *draw.Canvas) {
	termWidth := canvas.TerminalWidth()

	text.WriteAt(2, 1, fmt.Sprintf("Score: %d", g.Score))
	text.WriteAt(2, 2, fmt.Sprintf("Lives: %d", g.Lives))
	text.WriteAt(2, 3, fmt.Sprintf("Level: %d", g.Level))

	if g.Ship == nil {
		return
	}

	health := fmt.Sprintf("Health: %d/%d %s", g.Ship.Health, object.MaxHealth,
		gauge(float64(g.Ship.Health)/float64(object.MaxHealth)))
	text.WriteAt(2, 4, health)

	fuelFrac := g.Ship.Fuel / object.MaxFuel
	fuel := fmt.Sprintf("Fuel: %3d%% %s", int(fuelFrac*100), gauge(fuelFrac))
	text.WriteAt(termWidth-utf8.RuneCountInString(fuel)-1, 1, fuel)

	if g.Ship.HyperspaceCooldown > 0 {
		cd := fmt.Sprintf("Hyperspace: %.1fs", g.Ship.HyperspaceCooldown)
		text.WriteAt(termWidth-len(cd)-1, 2, cd)
	}

	if g.Ship.FlashIntensity > 0 {
		writeCentered(text, termWidth/2, 2, g.Ship.DamageType.String())
	}
}

// gauge renders a fraction in [0, 1] as a fixed-width block bar.
func gauge(frac float64) string {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac*hudBarWidth + 0.5)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", hudBarWidth-filled) + "]"
}

// writeCentered writes s centered on centerX at the given row.
func writeCentered(text *draw.ChunkWriter, centerX, row int, s string) {
	col := centerX - len(s)/2
	if col < 1 {
		col = 1
	}
	text.WriteAt(col, row, s)
}
