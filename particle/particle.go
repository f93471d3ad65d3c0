// Package particle implements a lightweight 2D particle simulation core:
// particle lifecycle, point-source forces, semi-implicit integration,
// boundary policies and bulk-effect constructors. Rendering is out of
// scope; callers read particle state each frame and draw it themselves.
package particle

import (
	"github.com/love-developer/eras-horizons/vmath"
)

// Default field values applied by New before options run.
const (
	DefaultMass     = 1.0
	DefaultRadius   = 2.0
	DefaultColor    = "white"
	DefaultOpacity  = 1.0
	DefaultLifetime = 5.0

	// MinRadius is the floor applied to Radius at construction so drawing
	// primitives never receive a zero or negative size.
	MinRadius = 0.1

	// TrailCap bounds the position history kept for trail rendering.
	TrailCap = 10
)

// Particle is a single simulated point. Fields are exported for per-frame
// read access by renderers; mutation outside the engine is limited to the
// documented fields (Color, Opacity overrides between frames are fine).
type Particle struct {
	Position     vmath.Vec2
	Velocity     vmath.Vec2
	Acceleration vmath.Vec2

	// Mass scales force response. Always positive.
	Mass float64

	// Radius is the render size hint, floored at MinRadius.
	Radius float64

	// Color is an opaque display token; the engine never interprets it.
	Color string

	// Opacity in [0,1]. Ramps to zero over the last 30% of lifetime.
	Opacity float64

	// Lifetime is the total seconds the particle may exist; Age counts
	// seconds since creation. Alive iff Age < Lifetime.
	Lifetime float64
	Age      float64

	// Trail holds recent positions, oldest first, capped at TrailCap.
	// Nil unless the particle was created with WithTrail.
	Trail []vmath.Vec2
}

// Option mutates a freshly constructed particle before it is returned.
type Option func(*Particle)

// WithMass sets the particle mass.
func WithMass(m float64) Option {
	return func(p *Particle) { p.Mass = m }
}

// WithRadius sets the render radius. Values below MinRadius are floored.
func WithRadius(r float64) Option {
	return func(p *Particle) { p.Radius = r }
}

// WithColor sets the display color token.
func WithColor(c string) Option {
	return func(p *Particle) { p.Color = c }
}

// WithOpacity sets the initial opacity. The override persists until the
// end-of-life fade window begins.
func WithOpacity(o float64) Option {
	return func(p *Particle) { p.Opacity = o }
}

// WithLifetime sets the total lifetime in seconds.
func WithLifetime(t float64) Option {
	return func(p *Particle) { p.Lifetime = t }
}

// WithTrail enables position-history recording for trail rendering.
func WithTrail() Option {
	return func(p *Particle) { p.Trail = make([]vmath.Vec2, 0, TrailCap) }
}

// New builds a particle at the given position and velocity with defaults,
// then applies options in order. Particles are always freshly constructed;
// there is no pooling and dead particles are never resurrected.
func New(x, y, vx, vy float64, opts ...Option) *Particle {
	p := &Particle{
		Position: vmath.Vec2{X: x, Y: y},
		Velocity: vmath.Vec2{X: vx, Y: vy},
		Mass:     DefaultMass,
		Radius:   DefaultRadius,
		Color:    DefaultColor,
		Opacity:  DefaultOpacity,
		Lifetime: DefaultLifetime,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.Radius < MinRadius {
		p.Radius = MinRadius
	}
	return p
}

// Alive reports whether the particle has lifetime remaining.
func (p *Particle) Alive() bool {
	return p.Age < p.Lifetime
}
