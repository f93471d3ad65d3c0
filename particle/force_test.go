package particle

import (
	"math"
	"testing"

	"github.com/love-developer/eras-horizons/vmath"
)

func TestApplyGravityPullsTowardAttractor(t *testing.T) {
	p := New(0, 0, 0, 0)
	attractor := vmath.Vec2{X: 10, Y: 0}

	ApplyGravity(p, attractor, 50)

	if p.Acceleration.X <= 0 {
		t.Errorf("acceleration.X = %v, want positive pull toward attractor", p.Acceleration.X)
	}
	if p.Acceleration.Y != 0 {
		t.Errorf("acceleration.Y = %v, want 0 on axis-aligned pull", p.Acceleration.Y)
	}
	// strength * mass / d^2 = 50 * 1 / 100
	if math.Abs(p.Acceleration.X-0.5) > 1e-9 {
		t.Errorf("acceleration.X = %v, want 0.5", p.Acceleration.X)
	}
}

func TestApplyRepulsionPushesAway(t *testing.T) {
	p := New(0, 0, 0, 0)
	repeller := vmath.Vec2{X: 10, Y: 0}

	ApplyRepulsion(p, repeller, 50)

	if p.Acceleration.X >= 0 {
		t.Errorf("acceleration.X = %v, want negative push away from repeller", p.Acceleration.X)
	}
}

func TestForcesComposeAdditively(t *testing.T) {
	p := New(0, 0, 0, 0)
	left := vmath.Vec2{X: -10, Y: 0}
	right := vmath.Vec2{X: 10, Y: 0}

	ApplyGravity(p, right, 50)
	ApplyGravity(p, left, 50)

	// Symmetric attractors cancel.
	if math.Abs(p.Acceleration.X) > 1e-9 || math.Abs(p.Acceleration.Y) > 1e-9 {
		t.Errorf("acceleration = %v, want zero from symmetric attractors", p.Acceleration)
	}
}

func TestForceDistanceFloor(t *testing.T) {
	// At near-zero separation the distance is floored at 1 so the force
	// cannot blow up.
	p := New(0, 0, 0, 0)
	ApplyGravity(p, vmath.Vec2{X: 0.001, Y: 0}, 50)

	if got := p.Acceleration.Magnitude(); math.Abs(got-50) > 1e-9 {
		t.Errorf("acceleration magnitude = %v, want 50 (strength/1^2)", got)
	}
}

func TestForceScalesWithMass(t *testing.T) {
	light := New(0, 0, 0, 0, WithMass(1))
	heavy := New(0, 0, 0, 0, WithMass(4))
	attractor := vmath.Vec2{X: 10, Y: 0}

	ApplyGravity(light, attractor, 50)
	ApplyGravity(heavy, attractor, 50)

	if math.Abs(heavy.Acceleration.X-4*light.Acceleration.X) > 1e-9 {
		t.Errorf("heavy accel = %v, want 4x light accel %v", heavy.Acceleration.X, light.Acceleration.X)
	}
}

func TestGravityThenStepMovesCloser(t *testing.T) {
	// Pure attraction with zero initial velocity: one force application and
	// one step must strictly shrink the distance to the attractor.
	attractor := vmath.Vec2{X: 40, Y: 30}
	p := New(0, 0, 0, 0, WithLifetime(100))

	before := p.Position.Distance(attractor)
	ApplyGravity(p, attractor, 100)
	UpdateParticle(p, 0.016, testConfig(), nil)
	after := p.Position.Distance(attractor)

	if after >= before {
		t.Errorf("distance %v -> %v, want strictly closer", before, after)
	}
}
