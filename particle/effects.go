package particle

import (
	"math"
	"math/rand"

	"github.com/love-developer/eras-horizons/vmath"
)

// ExplosionConfig tunes NewExplosion. Zero values fall back to the
// documented defaults derived from the speed argument.
type ExplosionConfig struct {
	// Spread in [0,1] controls angular jitter: 1 is a perfect ring,
	// 0 a wide random scatter. Jitter is added to an evenly spaced base
	// angle, so particles stay roughly even around the circle.
	Spread float64

	// Speed band. Defaults: 0.5x and 1.5x of the speed argument.
	MinSpeed, MaxSpeed float64

	// Radius band. Defaults: 1 and 3.
	MinSize, MaxSize float64

	// Lifetime in seconds. Default: 3.
	Lifetime float64

	// Trail enables position-history recording on every particle.
	Trail bool
}

func (c *ExplosionConfig) applyDefaults(speed float64) {
	if c.MinSpeed == 0 && c.MaxSpeed == 0 {
		c.MinSpeed = speed * 0.5
		c.MaxSpeed = speed * 1.5
	}
	if c.MinSize == 0 && c.MaxSize == 0 {
		c.MinSize = 1
		c.MaxSize = 3
	}
	if c.Lifetime == 0 {
		c.Lifetime = 3
	}
}

// NewExplosion produces count particles radiating from a shared origin,
// distributed around a full circle. Each particle's direction is the evenly
// spaced base angle (i/count)*2pi perturbed by (1-spread)*rand(-0.5,0.5)*pi/2,
// its speed uniform in [MinSpeed, MaxSpeed], size uniform in
// [MinSize, MaxSize], color uniform from the palette.
func NewExplosion(cx, cy float64, count int, speed float64, colors []string, cfg ExplosionConfig) []*Particle {
	cfg.applyDefaults(speed)

	particles := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		baseAngle := (float64(i) / float64(count)) * 2 * math.Pi
		jitter := (1 - cfg.Spread) * (rand.Float64() - 0.5) * math.Pi / 2
		angle := baseAngle + jitter

		spd := cfg.MinSpeed + rand.Float64()*(cfg.MaxSpeed-cfg.MinSpeed)
		vel := vmath.FromAngle(angle, spd)

		opts := []Option{
			WithRadius(cfg.MinSize + rand.Float64()*(cfg.MaxSize-cfg.MinSize)),
			WithColor(pickColor(colors)),
			WithLifetime(cfg.Lifetime),
		}
		if cfg.Trail {
			opts = append(opts, WithTrail())
		}
		particles = append(particles, New(cx, cy, vel.X, vel.Y, opts...))
	}
	return particles
}

// NewRadialBurst is a sharp circular shockwave: perfect ring, narrow speed
// band around the given speed, small sizes, short lifetime.
func NewRadialBurst(cx, cy float64, count int, speed float64, colors []string) []*Particle {
	return NewExplosion(cx, cy, count, speed, colors, ExplosionConfig{
		Spread:   1,
		MinSpeed: speed * 0.8,
		MaxSpeed: speed * 1.2,
		MinSize:  1,
		MaxSize:  4,
		Lifetime: 2.5,
	})
}

// NewSpiralTrajectory places particles along two full turns of a spiral and
// aims their velocity back at the center, simulating an implosion: particles
// appear already spread out and converge inward over their lifetime.
func NewSpiralTrajectory(cx, cy float64, count int, tightness, speed float64, colors []string) []*Particle {
	center := vmath.Vec2{X: cx, Y: cy}

	particles := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		t := float64(i) / float64(count)
		angle := t * 4 * math.Pi
		radius := t * 100 * tightness

		pos := center.Add(vmath.FromAngle(angle, radius))
		vel := center.Sub(pos).Normalize().Scale(speed)

		particles = append(particles, New(pos.X, pos.Y, vel.X, vel.Y,
			WithColor(pickColor(colors)),
		))
	}
	return particles
}

func pickColor(colors []string) string {
	if len(colors) == 0 {
		return DefaultColor
	}
	return colors[rand.Intn(len(colors))]
}
