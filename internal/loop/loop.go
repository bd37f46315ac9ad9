package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"planetoids/internal/draw"
	"planetoids/internal/input"
	"planetoids/internal/object"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// Options configures a game session.
type Options struct {
	// TermSize reports the terminal dimensions each frame. Defaults to
	// querying os.Stdout.
	TermSize draw.TermSizeFunc
	// Cues receives sound events. nil plays nothing.
	Cues object.CuePlayer
	// Rand is the session's random source. Defaults to a time-seeded one.
	Rand *rand.Rand
}

// Run starts the game session with the standard input -> update -> draw
// cycle at a fixed frame rate. It returns when the player quits or the
// input stream ends.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSize == nil {
		opts.TermSize = draw.DefaultTermSizeFunc
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	stream := input.StartStream(r)
	game := NewGame(object.Playfield{Width: FieldWidth, Height: FieldHeight}, opts.Rand, opts.Cues)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := opts.TermSize()
	if err != nil {
		return err
	}
	canvas := draw.NewCanvas(termWidth, termHeight, FieldWidth, FieldHeight)
	text := draw.NewChunkWriter(w)

	lastTime := time.Now()

	for {
		frameStart := time.Now()
		dt := frameStart.Sub(lastTime).Seconds()
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Quit {
			break
		}

		// ===== UPDATE PHASE =====
		if tw, th, err := opts.TermSize(); err == nil {
			canvas.Resize(tw, th)
		}

		game.Update(dt, Command{
			Left:       in.Left,
			Right:      in.Right,
			Thrust:     in.Thrust,
			Shoot:      in.Shoot,
			Hyperspace: in.Hyperspace,
			Pause:      in.Pause,
			Start:      in.Start,
		})

		// ===== DRAW PHASE =====
		if err := drawFrame(game, canvas, text); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// drawFrame renders one frame: the entity canvas, then the text overlay
// for the current state, all flushed in one buffered write.
func drawFrame(g *Game, canvas *draw.Canvas, text *draw.ChunkWriter) error {
	draw.ClearScreen(text)
	canvas.Clear()

	switch g.State {
	case StateMenu:
		drawMenu(text, canvas)
	case StatePlaying, StatePaused:
		renderEntities(g, canvas)
		canvas.Render(text)
		drawHUD(g, text, canvas)
		if g.State == StatePaused {
			drawPaused(text, canvas)
		}
	case StateGameOver:
		drawGameOver(g, text, canvas)
	}

	return text.Flush()
}
