package particle

import (
	"github.com/love-developer/eras-horizons/vmath"
)

// fadeThreshold is the fraction of lifetime after which opacity ramps
// linearly to zero over the remainder.
const fadeThreshold = 0.7

// bounceDamping is the energy-loss factor applied to the reflected velocity
// component on a boundary bounce.
const bounceDamping = 0.8

// UpdateParticle advances one particle by dt seconds and reports whether it
// is still alive; the caller drops dead particles.
//
// The integration deliberately mixes two frame-rate conventions for parity
// with the renderers tuned against it: the velocity update and drag are
// per-step (not dt-scaled) while the position update is dt-scaled. Force
// strengths at call sites are tuned for exactly this behavior.
func UpdateParticle(p *Particle, dt float64, cfg PhysicsConfig, bounds *Bounds) bool {
	p.Age += dt
	if p.Age >= p.Lifetime {
		return false
	}

	p.Velocity = p.Velocity.Add(p.Acceleration)
	p.Velocity = p.Velocity.Scale(cfg.Drag)
	p.Velocity = p.Velocity.Limit(cfg.MaxSpeed)
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.Acceleration = vmath.Vec2{}

	if bounds != nil {
		applyBoundary(p, cfg.BoundaryBehavior, bounds)
	}

	// Opacity is left untouched before the fade window so explicit
	// construction-time overrides persist until then.
	if progress := p.Age / p.Lifetime; progress > fadeThreshold {
		p.Opacity = 1 - (progress-fadeThreshold)/(1-fadeThreshold)
	}

	if p.Trail != nil {
		p.Trail = append(p.Trail, p.Position)
		if len(p.Trail) > TrailCap {
			p.Trail = p.Trail[1:]
		}
	}
	return true
}

// applyBoundary enforces the configured policy against the rectangle
// [0,width] x [0,height].
//
// BoundaryDestroy is a deliberate no-op: out-of-bounds destruction is left
// to the lifetime check or to callers filtering on position.
func applyBoundary(p *Particle, behavior BoundaryBehavior, b *Bounds) {
	switch behavior {
	case BoundaryBounce:
		if p.Position.X < 0 {
			p.Position.X = 0
			p.Velocity.X *= -bounceDamping
		} else if p.Position.X > b.Width {
			p.Position.X = b.Width
			p.Velocity.X *= -bounceDamping
		}
		if p.Position.Y < 0 {
			p.Position.Y = 0
			p.Velocity.Y *= -bounceDamping
		} else if p.Position.Y > b.Height {
			p.Position.Y = b.Height
			p.Velocity.Y *= -bounceDamping
		}

	case BoundaryWrap:
		if p.Position.X < 0 {
			p.Position.X = b.Width
		} else if p.Position.X > b.Width {
			p.Position.X = 0
		}
		if p.Position.Y < 0 {
			p.Position.Y = b.Height
		} else if p.Position.Y > b.Height {
			p.Position.Y = 0
		}

	case BoundaryDestroy, BoundaryNone:
	}
}
