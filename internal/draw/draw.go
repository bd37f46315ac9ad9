// Package draw renders the game to a terminal: a half-block pixel canvas
// scaled from logical playfield coordinates, plus buffered text output
// for HUD and menu screens.
package draw

// Point represents a 2D coordinate in logical space.
type Point struct {
	X, Y float64
}

// Block characters for the half-block canvas.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
