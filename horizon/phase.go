// Package horizon implements the timer-driven effect presets that sit on
// top of the particle engine: phase cycles, device-tier particle budgets
// and the built-in background animations. A horizon decides when to clear,
// burst and force a particle system; drawing it is the renderer's job.
package horizon

// Phase identifies one stage of a horizon's animation cycle.
type Phase int

const (
	PhaseCalm Phase = iota
	PhasePremonition
	PhaseImplosion
	PhaseExplosion
	PhaseAftermath
	PhaseDrift
	PhaseCharge
	PhaseBurst
	PhaseOrbit
)

var phaseNames = map[Phase]string{
	PhaseCalm:        "calm",
	PhasePremonition: "premonition",
	PhaseImplosion:   "implosion",
	PhaseExplosion:   "explosion",
	PhaseAftermath:   "aftermath",
	PhaseDrift:       "drift",
	PhaseCharge:      "charge",
	PhaseBurst:       "burst",
	PhaseOrbit:       "orbit",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// Stage pairs a phase with its duration in seconds.
type Stage struct {
	Phase    Phase
	Duration float64
}

// Cycle walks an ordered stage list on caller-supplied time, looping back
// to the first stage after the last. Zero stages is invalid; callers build
// cycles from built-in horizons or validated presets.
type Cycle struct {
	stages  []Stage
	index   int
	elapsed float64
}

// NewCycle builds a looping cycle over the given stages.
func NewCycle(stages ...Stage) *Cycle {
	return &Cycle{stages: stages}
}

// Phase returns the current phase.
func (c *Cycle) Phase() Phase {
	return c.stages[c.index].Phase
}

// PhaseElapsed returns seconds spent in the current phase.
func (c *Cycle) PhaseElapsed() float64 {
	return c.elapsed
}

// PhaseProgress returns completion of the current phase in [0,1].
func (c *Cycle) PhaseProgress() float64 {
	d := c.stages[c.index].Duration
	if d <= 0 {
		return 1
	}
	p := c.elapsed / d
	if p > 1 {
		p = 1
	}
	return p
}

// Total returns the full cycle length in seconds.
func (c *Cycle) Total() float64 {
	var sum float64
	for _, s := range c.stages {
		sum += s.Duration
	}
	return sum
}

// Advance moves the cycle forward by dt seconds and returns every phase
// entered during that window, in order. Large dt values may skip through
// several stages; each entered phase is still reported once.
func (c *Cycle) Advance(dt float64) []Phase {
	var entered []Phase
	c.elapsed += dt
	for c.elapsed >= c.stages[c.index].Duration {
		c.elapsed -= c.stages[c.index].Duration
		c.index = (c.index + 1) % len(c.stages)
		entered = append(entered, c.stages[c.index].Phase)
		// Guard against zero-duration stage lists spinning forever.
		if len(entered) > len(c.stages) {
			break
		}
	}
	return entered
}

// Reset rewinds the cycle to the start of its first stage.
func (c *Cycle) Reset() {
	c.index = 0
	c.elapsed = 0
}
