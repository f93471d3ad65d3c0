package particle

import (
	"github.com/love-developer/eras-horizons/vmath"
)

// BoundaryBehavior selects the policy applied to particles leaving the
// simulation bounds.
type BoundaryBehavior int

const (
	// BoundaryNone lets particles travel arbitrarily far; typical for
	// one-shot effects expected to die of old age on screen.
	BoundaryNone BoundaryBehavior = iota

	// BoundaryBounce reflects the violated velocity component with energy
	// loss and clamps position back into range.
	BoundaryBounce

	// BoundaryWrap teleports to the opposite edge (torus topology).
	BoundaryWrap

	// BoundaryDestroy does nothing in the integration step; callers filter
	// on position if they want out-of-bounds destruction.
	BoundaryDestroy
)

// PhysicsConfig is the per-system simulation tuning.
type PhysicsConfig struct {
	// Gravity is the shared force constant for attractors and repellers;
	// System.Update scales it by 100 before applying.
	Gravity float64

	// Drag multiplies velocity every step, 0..1.
	Drag float64

	// MaxSpeed is a hard clamp on velocity magnitude.
	MaxSpeed float64

	BoundaryBehavior BoundaryBehavior
}

// DefaultConfig returns the tuning used by the built-in effects.
func DefaultConfig() PhysicsConfig {
	return PhysicsConfig{
		Gravity:  0.5,
		Drag:     0.98,
		MaxSpeed: 500,
	}
}

// Bounds is the rectangular simulation area [0,Width] x [0,Height].
type Bounds struct {
	Width, Height float64
}

// gravityScale converts the config's gravity constant to the strength
// passed to point forces each step.
const gravityScale = 100

// System owns a collection of particles plus one config and optional
// bounds. One system per visual effect instance; single-goroutine use,
// driven by the owner's frame loop.
type System struct {
	particles []*Particle
	config    PhysicsConfig
	bounds    *Bounds
}

// NewSystem creates an empty system. bounds may be nil for unbounded
// simulation.
func NewSystem(config PhysicsConfig, bounds *Bounds) *System {
	return &System{
		config: config,
		bounds: bounds,
	}
}

// Add appends one particle. There is no capacity limit; callers bound
// particle counts for performance.
func (s *System) Add(p *Particle) {
	s.particles = append(s.particles, p)
}

// AddBatch appends a burst of particles.
func (s *System) AddBatch(batch []*Particle) {
	s.particles = append(s.particles, batch...)
}

// Clear drops all particles immediately, used on animation-phase resets.
func (s *System) Clear() {
	s.particles = s.particles[:0]
}

// Count returns the number of live particles.
func (s *System) Count() int {
	return len(s.particles)
}

// Config returns the system's physics tuning.
func (s *System) Config() PhysicsConfig {
	return s.config
}

// SetConfig replaces the physics tuning for subsequent steps.
func (s *System) SetConfig(cfg PhysicsConfig) {
	s.config = cfg
}

// Particles returns the live particle slice for read-only per-frame
// iteration by renderers. The slice is invalidated by the next Update;
// use Snapshot for a stable copy.
func (s *System) Particles() []*Particle {
	return s.particles
}

// Snapshot returns a copy of the current particle states, safe to hold
// across Update calls.
func (s *System) Snapshot() []Particle {
	out := make([]Particle, len(s.particles))
	for i, p := range s.particles {
		out[i] = *p
	}
	return out
}

// Update advances the simulation by dt seconds. Every attractor pulls and
// every repeller pushes each particle with the shared strength
// Gravity*gravityScale, then dead particles are filtered out in place.
// Dead particles never reappear.
func (s *System) Update(dt float64, attractors, repellers []vmath.Vec2) {
	strength := s.config.Gravity * gravityScale

	alive := s.particles[:0]
	for _, p := range s.particles {
		for _, a := range attractors {
			ApplyGravity(p, a, strength)
		}
		for _, r := range repellers {
			ApplyRepulsion(p, r, strength)
		}
		if UpdateParticle(p, dt, s.config, s.bounds) {
			alive = append(alive, p)
		}
	}
	// Release dropped tail pointers so dead particles can be collected.
	for i := len(alive); i < len(s.particles); i++ {
		s.particles[i] = nil
	}
	s.particles = alive
}
