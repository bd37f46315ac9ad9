package audio

import "math"

// Envelope lengths, in seconds. A short attack and release avoid the
// click of a hard-edged sine burst.
const (
	toneAttack  = 0.005
	toneRelease = 0.02
)

// tone is a beep.Streamer producing a fixed-length sine wave with an
// attack/release envelope and a gain.
type tone struct {
	phase    float64
	phaseInc float64
	pos      int
	total    int
	gain     float64
}

func newTone(c cue) *tone {
	return &tone{
		phaseInc: c.freq / float64(sampleRate),
		total:    sampleRate.N(c.duration),
		gain:     c.volume,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	sr := float64(sampleRate)
	attackSamples := int(toneAttack * sr)
	releaseStart := t.total - int(toneRelease*sr)
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := range samples {
		if t.pos >= t.total {
			return i, false
		}

		v := math.Sin(2*math.Pi*t.phase) * t.gain
		switch {
		case t.pos < attackSamples && attackSamples > 0:
			v *= float64(t.pos) / float64(attackSamples)
		case t.pos >= releaseStart && t.total > releaseStart:
			v *= float64(t.total-t.pos) / float64(t.total-releaseStart)
		}

		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.phaseInc
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
