// Package audio renders the simulation's sound cues as synthesized tones.
// Cue delivery is fire-and-forget: playback failure never reaches the
// simulation, and a machine without an audio device degrades to silence.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"planetoids/internal/object"
)

const sampleRate = beep.SampleRate(22050)

// cue describes a single synthesized tone.
type cue struct {
	freq     float64
	duration time.Duration
	volume   float64
}

var shootCue = cue{freq: 600, duration: 100 * time.Millisecond, volume: 0.05}

var hitCues = map[object.DamageType]cue{
	object.DamageAsteroid:    {freq: 200, duration: 200 * time.Millisecond, volume: 0.1},
	object.DamageAlienShip:   {freq: 800, duration: 300 * time.Millisecond, volume: 0.1},
	object.DamageAlienBullet: {freq: 1200, duration: 150 * time.Millisecond, volume: 0.1},
	object.DamageHyperspace:  {freq: 400, duration: 400 * time.Millisecond, volume: 0.1},
}

// explosionCue scales the explosion rumble with the destroyed object's size.
func explosionCue(size object.AsteroidSize) cue {
	return cue{
		freq:     150,
		duration: time.Duration((0.2 + 0.1*float64(size)) * float64(time.Second)),
		volume:   0.08,
	}
}

// Synth plays cues through the system speaker.
type Synth struct {
	ready bool
}

// NewSynth initializes the speaker. If no audio backend is available the
// returned Synth silently drops every cue.
func NewSynth() *Synth {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return &Synth{}
	}
	return &Synth{ready: true}
}

func (s *Synth) play(c cue) {
	if s == nil || !s.ready {
		return
	}
	speaker.Play(newTone(c))
}

// Shoot plays the player's firing blip.
func (s *Synth) Shoot() { s.play(shootCue) }

// Explosion plays an explosion rumble sized by the destroyed object.
func (s *Synth) Explosion(size object.AsteroidSize) { s.play(explosionCue(size)) }

// ShipHit plays the hit sound for the given damage type.
func (s *Synth) ShipHit(kind object.DamageType) {
	if c, ok := hitCues[kind]; ok {
		s.play(c)
	}
}

// Discard drops every cue. Used by frontends with no local audio output,
// such as the SSH server.
type Discard struct{}

func (Discard) Shoot()                        {}
func (Discard) Explosion(object.AsteroidSize) {}
func (Discard) ShipHit(object.DamageType)     {}

var (
	_ object.CuePlayer = (*Synth)(nil)
	_ object.CuePlayer = Discard{}
)
