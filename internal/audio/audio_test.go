package audio

import (
	"math"
	"testing"
	"time"

	"planetoids/internal/object"
)

func TestExplosionCueScalesWithSize(t *testing.T) {
	small := explosionCue(object.AsteroidSmall)
	large := explosionCue(object.AsteroidLarge)

	if small.duration != 300*time.Millisecond {
		t.Fatalf("small explosion duration = %v, want 300ms", small.duration)
	}
	if large.duration != 500*time.Millisecond {
		t.Fatalf("large explosion duration = %v, want 500ms", large.duration)
	}
	if large.duration <= small.duration {
		t.Fatal("bigger objects should rumble longer")
	}
}

func TestHitCuesCoverAllDamageTypes(t *testing.T) {
	kinds := []object.DamageType{
		object.DamageAsteroid,
		object.DamageAlienShip,
		object.DamageAlienBullet,
		object.DamageHyperspace,
	}
	for _, kind := range kinds {
		if _, ok := hitCues[kind]; !ok {
			t.Fatalf("no hit cue for damage type %v", kind)
		}
	}
}

func TestToneLengthAndGain(t *testing.T) {
	c := cue{freq: 440, duration: 100 * time.Millisecond, volume: 0.1}
	tn := newTone(c)

	var total int
	buf := make([][2]float64, 512)
	for {
		n, ok := tn.Stream(buf)
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > c.volume || math.Abs(buf[i][1]) > c.volume {
				t.Fatalf("sample %d exceeds the gain: %v", total+i, buf[i])
			}
			if buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d is not mono: %v", total+i, buf[i])
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if want := sampleRate.N(c.duration); total != want {
		t.Fatalf("tone produced %d samples, want %d", total, want)
	}
}

func TestToneDrainedStaysDrained(t *testing.T) {
	tn := newTone(cue{freq: 440, duration: time.Millisecond, volume: 0.1})
	buf := make([][2]float64, 1024)
	for i := 0; i < 4; i++ {
		if n, ok := tn.Stream(buf); !ok && n == 0 {
			return
		}
	}
	t.Fatal("drained tone should report (0, false)")
}

func TestToneErr(t *testing.T) {
	if err := newTone(shootCue).Err(); err != nil {
		t.Fatalf("tone Err = %v, want nil", err)
	}
}

func TestDiscardDropsCues(t *testing.T) {
	var d Discard
	d.Shoot()
	d.Explosion(object.AsteroidLarge)
	d.ShipHit(object.DamageAsteroid)
}
