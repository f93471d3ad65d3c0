package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/love-developer/eras-horizons/horizon"
)

const sampleRate = beep.SampleRate(44100)

// Player owns speaker state and plays phase-transition cues. A zero-value
// or failed-init player is safe to use; every call becomes a no-op.
type Player struct {
	ready   bool
	enabled bool
	volume  float64
}

// NewPlayer initializes the speaker. The error is informational; the
// returned player still works as a silent no-op on failure.
func NewPlayer(volume float64) (*Player, error) {
	p := &Player{enabled: true, volume: volume}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return p, err
	}
	p.ready = true
	return p, nil
}

// SetEnabled toggles cue playback without touching the speaker.
func (p *Player) SetEnabled(enabled bool) {
	p.enabled = enabled
}

// Enabled reports whether cues will play.
func (p *Player) Enabled() bool {
	return p.enabled && p.ready
}

// PhaseCue plays the cue for entering a phase, if one is defined.
func (p *Player) PhaseCue(ph horizon.Phase) {
	if !p.Enabled() {
		return
	}

	var s beep.Streamer
	switch ph {
	case horizon.PhasePremonition:
		// Low sine swell.
		s = cue(55, 900*time.Millisecond, WaveSine, 400*time.Millisecond, 400*time.Millisecond, 0.5)
	case horizon.PhaseImplosion, horizon.PhaseCharge:
		// Rising rumble.
		s = cue(80, 1200*time.Millisecond, WaveSaw, 600*time.Millisecond, 300*time.Millisecond, 0.4)
	case horizon.PhaseExplosion, horizon.PhaseBurst:
		// Noise boom with a sine body.
		s = beep.Mix(
			cue(0, 700*time.Millisecond, WaveNoise, 5*time.Millisecond, 600*time.Millisecond, 0.6),
			cue(65, 700*time.Millisecond, WaveSine, 5*time.Millisecond, 500*time.Millisecond, 0.5),
		)
	case horizon.PhaseAftermath:
		// Soft high shimmer.
		s = cue(880, 600*time.Millisecond, WaveSine, 200*time.Millisecond, 350*time.Millisecond, 0.2)
	default:
		return
	}

	speaker.Play(newVolume(s, p.volume))
}

func cue(freq float64, dur time.Duration, wave WaveType, attack, release time.Duration, vol float64) beep.Streamer {
	osc := NewOscillator(freq, dur, wave, sampleRate)
	return newVolume(NewEnvelope(osc, dur, attack, release, sampleRate), vol)
}
