// Package input turns a raw terminal byte stream into per-tick input
// snapshots. Rotation and thrust are held states; shoot, hyperspace,
// pause and start are edge-triggered so that one press means one action,
// no matter how many ticks the key stays down.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last
// press. Terminals report no key-up events, so a held key is one whose
// auto-repeat bytes keep arriving within this window.
const keyHoldDuration = 30 * time.Millisecond

// retriggerDelay re-arms an edge-triggered key. Auto-repeat bytes arrive
// well inside this window, so holding a key fires its action only once.
const retriggerDelay = 200 * time.Millisecond

// Input represents one tick's input snapshot.
type Input struct {
	Quit bool

	// Held states.
	Left   bool
	Right  bool
	Thrust bool

	// Edge-triggered events: true for exactly one snapshot per press.
	Shoot      bool
	Hyperspace bool
	Pause      bool
	Start      bool
}

// keyState tracks last-press times for held keys and re-arm latches plus
// pending flags for edge keys.
type keyState struct {
	left   time.Time
	right  time.Time
	thrust time.Time

	lastShoot      time.Time
	lastHyperspace time.Time
	lastPause      time.Time
	lastStart      time.Time

	shoot      bool
	hyperspace bool
	pause      bool
	start      bool
	quit       bool
}

// Stream delivers input bytes via a channel and tracks key state.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The channel closes when the reader fails (session ended).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream without blocking
// and returns the resulting snapshot. Pending edge events are consumed.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequences: ESC [ <code> (arrow keys).
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.thrust = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			case 'B': // Down arrow, unused
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	in := Input{
		Quit:       s.state.quit,
		Left:       now.Sub(s.state.left) < keyHoldDuration,
		Right:      now.Sub(s.state.right) < keyHoldDuration,
		Thrust:     now.Sub(s.state.thrust) < keyHoldDuration,
		Shoot:      s.state.shoot,
		Hyperspace: s.state.hyperspace,
		Pause:      s.state.pause,
		Start:      s.state.start,
	}

	// Edge events fire once.
	s.state.shoot = false
	s.state.hyperspace = false
	s.state.pause = false
	s.state.start = false

	return in
}

// applyByteToState updates held timestamps and edge latches for one byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.thrust = now
	case ' ':
		if now.Sub(state.lastShoot) > retriggerDelay {
			state.shoot = true
		}
		state.lastShoot = now
	case 'h', 'H':
		if now.Sub(state.lastHyperspace) > retriggerDelay {
			state.hyperspace = true
		}
		state.lastHyperspace = now
	case 'p', 'P':
		if now.Sub(state.lastPause) > retriggerDelay {
			state.pause = true
		}
		state.lastPause = now
	case '\n', '\r':
		if now.Sub(state.lastStart) > retriggerDelay {
			state.start = true
		}
		state.lastStart = now
	case 'q', 'Q', '\x1b':
		state.quit = true
	}
}
