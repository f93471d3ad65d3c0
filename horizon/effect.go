package horizon

import (
	"github.com/love-developer/eras-horizons/particle"
	"github.com/love-developer/eras-horizons/vmath"
)

// Forces is the per-frame force environment a horizon feeds its system.
type Forces struct {
	Attractors []vmath.Vec2
	Repellers  []vmath.Vec2
}

// Horizon is an effect definition: palette, phase cycle, physics tuning and
// the hooks that drive a particle system through the cycle. Definitions are
// immutable templates; NewEffect binds one to a size and tier.
type Horizon struct {
	Name    string
	Palette []string
	Stages  []Stage
	Config  particle.PhysicsConfig

	// Bounded reports whether the effect simulates inside screen bounds
	// (wrap/bounce policies need them; one-shot bursts do not).
	Bounded bool

	// Enter runs once each time the cycle enters a phase, typically to
	// clear the system or inject a burst.
	Enter func(e *Effect, p Phase)

	// Frame runs every step and returns the force environment for this
	// frame. May also trickle-spawn. Nil means no forces.
	Frame func(e *Effect, dt float64) Forces
}

// Effect is a running instance of a Horizon bound to a simulation area and
// device tier. One effect owns exactly one particle system; the owning
// renderer drives Step once per frame and reads the system after.
type Effect struct {
	def    *Horizon
	sys    *particle.System
	cycle  *Cycle
	tier   Tier
	width  float64
	height float64
}

// NewEffect instantiates a horizon at the given simulation size. The first
// phase's Enter hook runs immediately so the effect is never blank.
func NewEffect(def *Horizon, width, height float64, tier Tier) *Effect {
	var bounds *particle.Bounds
	if def.Bounded {
		bounds = &particle.Bounds{Width: width, Height: height}
	}
	e := &Effect{
		def:    def,
		sys:    particle.NewSystem(def.Config, bounds),
		cycle:  NewCycle(def.Stages...),
		tier:   tier,
		width:  width,
		height: height,
	}
	if def.Enter != nil {
		def.Enter(e, e.cycle.Phase())
	}
	return e
}

// Step advances the cycle and the simulation by dt seconds. Phase entry
// hooks fire before the physics step so bursts injected on a transition
// are integrated the same frame. Returns the phases entered, if any.
func (e *Effect) Step(dt float64) []Phase {
	entered := e.cycle.Advance(dt)
	for _, p := range entered {
		if e.def.Enter != nil {
			e.def.Enter(e, p)
		}
	}

	var forces Forces
	if e.def.Frame != nil {
		forces = e.def.Frame(e, dt)
	}
	e.sys.Update(dt, forces.Attractors, forces.Repellers)
	return entered
}

// System exposes the underlying particle system for rendering.
func (e *Effect) System() *particle.System {
	return e.sys
}

// Name returns the horizon definition name.
func (e *Effect) Name() string {
	return e.def.Name
}

// Phase returns the current cycle phase.
func (e *Effect) Phase() Phase {
	return e.cycle.Phase()
}

// PhaseProgress returns completion of the current phase in [0,1].
func (e *Effect) PhaseProgress() float64 {
	return e.cycle.PhaseProgress()
}

// Palette returns the definition's color tokens.
func (e *Effect) Palette() []string {
	return e.def.Palette
}

// Center returns the middle of the simulation area.
func (e *Effect) Center() vmath.Vec2 {
	return vmath.Vec2{X: e.width / 2, Y: e.height / 2}
}

// Size returns the simulation area dimensions.
func (e *Effect) Size() (w, h float64) {
	return e.width, e.height
}

// Budget scales a base particle count for the effect's tier.
func (e *Effect) Budget(base int) int {
	return e.tier.Budget(base)
}

// Tier returns the device tier the effect was instantiated with.
func (e *Effect) Tier() Tier {
	return e.tier
}

// Restart clears particles, rewinds the cycle and re-runs the first
// phase's entry hook. Used when switching horizons in place.
func (e *Effect) Restart() {
	e.sys.Clear()
	e.cycle.Reset()
	if e.def.Enter != nil {
		e.def.Enter(e, e.cycle.Phase())
	}
}
