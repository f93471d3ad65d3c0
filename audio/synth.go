// Package audio synthesizes the short cues that accompany horizon phase
// transitions. Everything is generated at play time, no samples shipped;
// when the speaker cannot be initialized the whole package degrades to
// no-ops.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType selects the oscillator wave shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator streams a fixed-duration raw wave. Phase is kept in [0,1) so
// frequency changes never accumulate float error.
type oscillator struct {
	freq  float64
	phase float64
	total int
	pos   int
	wave  WaveType
	rate  beep.SampleRate
}

// NewOscillator returns a streamer producing the given wave for duration.
// Frequency is ignored for noise.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:  freq,
		total: rate.N(duration),
		wave:  wave,
		rate:  rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a streamer with linear attack and release ramps; the
// middle passes through at unit gain.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s in an attack/release envelope over duration. The
// release window is anchored to the end, so attack+release longer than the
// duration simply overlap.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) gain() float64 {
	g := 1.0
	if e.attack > 0 && e.pos < e.attack {
		g = float64(e.pos) / float64(e.attack)
	}
	if e.release > 0 {
		if remaining := e.total - e.pos; remaining < e.release {
			r := float64(remaining) / float64(e.release)
			if r < g {
				g = r
			}
		}
	}
	if g < 0 {
		return 0
	}
	return g
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, false
		}
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a streamer in a log-scaled volume effect.
// math.Log2(0) is -Inf, so zero volume is expressed as silence instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
