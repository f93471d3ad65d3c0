package particle

import (
	"github.com/love-developer/eras-horizons/vmath"
)

// minForceDistance floors the separation used in the inverse-square law so
// near-zero distances cannot blow the force up.
const minForceDistance = 1.0

// ApplyGravity accumulates an inverse-square attraction toward a point into
// the particle's acceleration. Multiple attractors and repellers compose
// additively within one step; each call is a pure accumulation.
func ApplyGravity(p *Particle, attractor vmath.Vec2, strength float64) {
	applyPointForce(p, attractor.Sub(p.Position), strength)
}

// ApplyRepulsion is the same inverse-square law with the direction reversed,
// pushing the particle away from the point.
func ApplyRepulsion(p *Particle, repeller vmath.Vec2, strength float64) {
	applyPointForce(p, p.Position.Sub(repeller), strength)
}

func applyPointForce(p *Particle, dir vmath.Vec2, strength float64) {
	dist := dir.Magnitude()
	if dist < minForceDistance {
		dist = minForceDistance
	}
	magnitude := strength * p.Mass / (dist * dist)
	p.Acceleration = p.Acceleration.Add(dir.Normalize().Scale(magnitude))
}
