package particle

import (
	"math"
	"testing"

	"github.com/love-developer/eras-horizons/vmath"
)

func testConfig() PhysicsConfig {
	return PhysicsConfig{
		Gravity:  0.5,
		Drag:     1, // no damping unless a test wants it
		MaxSpeed: 1000,
	}
}

func TestUpdateParticleAgeAdvances(t *testing.T) {
	p := New(0, 0, 0, 0, WithLifetime(10))

	prev := 0.0
	for i := 0; i < 20; i++ {
		UpdateParticle(p, 0.016, testConfig(), nil)
		if p.Age < prev {
			t.Fatalf("age decreased: %v -> %v", prev, p.Age)
		}
		prev = p.Age
	}
	if math.Abs(p.Age-0.32) > 1e-9 {
		t.Errorf("age = %v, want 0.32", p.Age)
	}
}

func TestUpdateParticleDiesAtLifetime(t *testing.T) {
	p := New(0, 0, 5, 0, WithLifetime(1))

	if alive := UpdateParticle(p, 0.5, testConfig(), nil); !alive {
		t.Fatalf("died at age 0.5 with lifetime 1")
	}
	pos := p.Position
	if alive := UpdateParticle(p, 0.5, testConfig(), nil); alive {
		t.Fatalf("still alive at age == lifetime")
	}
	// Dead particles get no further processing: position untouched.
	if p.Position != pos {
		t.Errorf("dead particle moved from %v to %v", pos, p.Position)
	}
}

func TestUpdateParticlePositionIsDtScaled(t *testing.T) {
	p := New(0, 0, 10, 0)
	UpdateParticle(p, 0.5, testConfig(), nil)
	if math.Abs(p.Position.X-5) > 1e-9 {
		t.Errorf("position.X = %v, want 5", p.Position.X)
	}
}

func TestUpdateParticleVelocityStepIsNotDtScaled(t *testing.T) {
	// Acceleration is consumed as a per-step delta-velocity regardless of
	// dt; only the position update scales with dt.
	p := New(0, 0, 0, 0)
	p.Acceleration = vmath.Vec2{X: 4, Y: 0}
	UpdateParticle(p, 0.25, testConfig(), nil)
	if math.Abs(p.Velocity.X-4) > 1e-9 {
		t.Errorf("velocity.X = %v, want 4", p.Velocity.X)
	}
}

func TestUpdateParticleDragAndClamp(t *testing.T) {
	cfg := testConfig()
	cfg.Drag = 0.5
	cfg.MaxSpeed = 3

	p := New(0, 0, 100, 0)
	UpdateParticle(p, 0.016, cfg, nil)
	// 100 * 0.5 = 50, clamped to 3.
	if math.Abs(p.Velocity.X-3) > 1e-9 {
		t.Errorf("velocity.X = %v, want 3", p.Velocity.X)
	}
}

func TestUpdateParticleResetsAcceleration(t *testing.T) {
	p := New(0, 0, 0, 0)
	p.Acceleration = vmath.Vec2{X: 1, Y: 2}
	UpdateParticle(p, 0.016, testConfig(), nil)
	if p.Acceleration != (vmath.Vec2{}) {
		t.Errorf("acceleration = %v, want zero after step", p.Acceleration)
	}
}

func TestUpdateParticleOpacityFade(t *testing.T) {
	// At 92% of lifetime the fade window (last 30%) yields
	// 1 - (0.92-0.7)/0.3 = 0.2666...
	p := New(0, 0, 0, 0, WithLifetime(5))
	UpdateParticle(p, 4.6, testConfig(), nil)
	want := 1 - (0.92-0.7)/0.3
	if math.Abs(p.Opacity-want) > 1e-6 {
		t.Errorf("opacity = %v, want %v", p.Opacity, want)
	}
}

func TestUpdateParticleOpacityOverridePersistsBeforeFade(t *testing.T) {
	p := New(0, 0, 0, 0, WithLifetime(10), WithOpacity(0.4))
	UpdateParticle(p, 1, testConfig(), nil)
	if p.Opacity != 0.4 {
		t.Errorf("opacity = %v, want 0.4 untouched before fade window", p.Opacity)
	}
}

func TestUpdateParticleTrailFIFO(t *testing.T) {
	p := New(0, 0, 10, 0, WithLifetime(100), WithTrail())

	for i := 0; i < 25; i++ {
		UpdateParticle(p, 0.1, testConfig(), nil)
	}
	if len(p.Trail) != TrailCap {
		t.Fatalf("trail length = %d, want %d", len(p.Trail), TrailCap)
	}
	// Entries remain ordered oldest to newest.
	for i := 1; i < len(p.Trail); i++ {
		if p.Trail[i].X <= p.Trail[i-1].X {
			t.Errorf("trail not ordered at %d: %v <= %v", i, p.Trail[i].X, p.Trail[i-1].X)
		}
	}
	// Newest entry is the current position.
	if p.Trail[len(p.Trail)-1] != p.Position {
		t.Errorf("trail tail = %v, want current position %v", p.Trail[len(p.Trail)-1], p.Position)
	}
}

func TestBoundaryWrap(t *testing.T) {
	cfg := testConfig()
	cfg.BoundaryBehavior = BoundaryWrap
	bounds := &Bounds{Width: 100, Height: 80}

	p := New(99, 40, 600, 0)
	cfg.MaxSpeed = 1000
	UpdateParticle(p, 0.1, cfg, bounds) // x = 99 + 60 = 159, wraps to 0
	if p.Position.X != 0 {
		t.Errorf("x = %v, want 0 after wrapping past right edge", p.Position.X)
	}

	p = New(1, 40, -600, 0)
	UpdateParticle(p, 0.1, cfg, bounds) // x = 1 - 60 = -59, wraps to width
	if p.Position.X != 100 {
		t.Errorf("x = %v, want 100 after wrapping past left edge", p.Position.X)
	}
}

func TestBoundaryBounce(t *testing.T) {
	cfg := testConfig()
	cfg.BoundaryBehavior = BoundaryBounce
	bounds := &Bounds{Width: 100, Height: 80}

	p := New(99, 40, 100, 0)
	UpdateParticle(p, 0.1, cfg, bounds) // x = 109, past the right edge
	if p.Position.X != 100 {
		t.Errorf("x = %v, want clamped to 100", p.Position.X)
	}
	if math.Abs(p.Velocity.X-(-80)) > 1e-9 {
		t.Errorf("velocity.X = %v, want -80 (reversed, x0.8 damping)", p.Velocity.X)
	}

	p = New(50, 1, 0, -100)
	UpdateParticle(p, 0.1, cfg, bounds) // y = -9, past the top edge
	if p.Position.Y != 0 {
		t.Errorf("y = %v, want clamped to 0", p.Position.Y)
	}
	if math.Abs(p.Velocity.Y-80) > 1e-9 {
		t.Errorf("velocity.Y = %v, want 80", p.Velocity.Y)
	}
}

func TestBoundaryDestroyIsNoOp(t *testing.T) {
	cfg := testConfig()
	cfg.BoundaryBehavior = BoundaryDestroy
	bounds := &Bounds{Width: 100, Height: 80}

	p := New(99, 40, 600, 0, WithLifetime(100))
	if alive := UpdateParticle(p, 0.1, cfg, bounds); !alive {
		t.Fatalf("destroy policy must not kill in the step; callers filter on position")
	}
	if p.Position.X <= 100 {
		t.Errorf("x = %v, want past the edge untouched", p.Position.X)
	}
}

func TestBoundaryNone(t *testing.T) {
	cfg := testConfig()
	bounds := &Bounds{Width: 100, Height: 80}

	p := New(99, 40, 600, 0, WithLifetime(100))
	UpdateParticle(p, 0.1, cfg, bounds)
	if math.Abs(p.Position.X-159) > 1e-9 {
		t.Errorf("x = %v, want 159 with no boundary interaction", p.Position.X)
	}
}
