package horizon

import (
	"math/rand"
	"sort"

	"github.com/love-developer/eras-horizons/particle"
	"github.com/love-developer/eras-horizons/vmath"
)

// Base burst counts before tier scaling.
const (
	ambientBase   = 60
	implosionBase = 150
	explosionBase = 220
	shockwaveBase = 80
	supernovaBase = 180
	orbitRingBase = 120
)

// BigBang is the flagship 30-second cycle:
// calm -> premonition -> implosion -> explosion -> aftermath.
func BigBang() *Horizon {
	return &Horizon{
		Name:    "bigbang",
		Palette: []string{"#ffffff", "#ffe9a8", "#ffb347", "#ff6b4a", "#b44cff"},
		Stages: []Stage{
			{PhaseCalm, 8},
			{PhasePremonition, 6},
			{PhaseImplosion, 6},
			{PhaseExplosion, 2},
			{PhaseAftermath, 8},
		},
		Config: particle.PhysicsConfig{
			Gravity:          0.6,
			Drag:             0.985,
			MaxSpeed:         220,
			BoundaryBehavior: particle.BoundaryNone,
		},
		Enter: bigBangEnter,
		Frame: bigBangFrame,
	}
}

func bigBangEnter(e *Effect, p Phase) {
	w, h := e.Size()
	c := e.Center()

	switch p {
	case PhaseCalm:
		e.System().Clear()
		e.System().AddBatch(ambientSpecks(e, w, h))

	case PhasePremonition:
		// Faint ring heralding the collapse.
		e.System().AddBatch(particle.NewRadialBurst(c.X, c.Y, e.Budget(shockwaveBase/2), 20, e.Palette()))

	case PhaseImplosion:
		e.System().Clear()
		e.System().AddBatch(particle.NewSpiralTrajectory(c.X, c.Y, e.Budget(implosionBase), 1.2, 35, e.Palette()))

	case PhaseExplosion:
		e.System().Clear()
		e.System().AddBatch(particle.NewExplosion(c.X, c.Y, e.Budget(explosionBase), 90, e.Palette(), particle.ExplosionConfig{
			Spread: 0.3,
			Trail:  true,
		}))
		e.System().AddBatch(particle.NewRadialBurst(c.X, c.Y, e.Budget(shockwaveBase), 130, e.Palette()))

	case PhaseAftermath:
		// Survivors drift and fade; nothing new spawns.
	}
}

func bigBangFrame(e *Effect, dt float64) Forces {
	switch e.Phase() {
	case PhaseImplosion:
		return Forces{Attractors: []vmath.Vec2{e.Center()}}
	case PhaseExplosion:
		return Forces{Repellers: []vmath.Vec2{e.Center()}}
	}
	return Forces{}
}

// Supernova is a shorter charge-and-release loop.
func Supernova() *Horizon {
	return &Horizon{
		Name:    "supernova",
		Palette: []string{"#fff7d6", "#ffd166", "#ef476f", "#9b5de5"},
		Stages: []Stage{
			{PhaseCharge, 5},
			{PhaseBurst, 3},
			{PhaseAftermath, 4},
		},
		Config: particle.PhysicsConfig{
			Gravity:          0.8,
			Drag:             0.99,
			MaxSpeed:         260,
			BoundaryBehavior: particle.BoundaryNone,
		},
		Enter: func(e *Effect, p Phase) {
			c := e.Center()
			switch p {
			case PhaseCharge:
				e.System().Clear()
				e.System().AddBatch(particle.NewSpiralTrajectory(c.X, c.Y, e.Budget(supernovaBase), 0.8, 25, e.Palette()))
			case PhaseBurst:
				e.System().Clear()
				e.System().AddBatch(particle.NewExplosion(c.X, c.Y, e.Budget(supernovaBase), 110, e.Palette(), particle.ExplosionConfig{
					Spread:   0.6,
					Lifetime: 4,
					Trail:    true,
				}))
			}
		},
		Frame: func(e *Effect, dt float64) Forces {
			if e.Phase() == PhaseCharge {
				return Forces{Attractors: []vmath.Vec2{e.Center()}}
			}
			return Forces{}
		},
	}
}

// Stardust is a continuous ambient drift with wrap-around edges; particles
// trickle in instead of arriving in bursts.
func Stardust() *Horizon {
	return &Horizon{
		Name:    "stardust",
		Palette: []string{"#e0e7ff", "#a5b4fc", "#f0f9ff", "#fdf4ff"},
		Stages:  []Stage{{PhaseDrift, 60}},
		Bounded: true,
		Config: particle.PhysicsConfig{
			Gravity:          0.1,
			Drag:             0.998,
			MaxSpeed:         30,
			BoundaryBehavior: particle.BoundaryWrap,
		},
		Enter: func(e *Effect, p Phase) {
			w, h := e.Size()
			e.System().Clear()
			e.System().AddBatch(ambientSpecks(e, w, h))
		},
		Frame: func(e *Effect, dt float64) Forces {
			// Trickle replacement keeps density steady as specks age out.
			w, h := e.Size()
			budget := e.Budget(ambientBase)
			if e.System().Count() < budget && rand.Float64() < dt*10 {
				e.System().Add(speck(w, h, e.Palette()))
			}
			return Forces{}
		},
	}
}

// Singularity keeps a ring of trailed particles orbiting a central
// attractor, re-seeding the ring as it decays.
func Singularity() *Horizon {
	return &Horizon{
		Name:    "singularity",
		Palette: []string{"#c4f1f9", "#76e4f7", "#0bc5ea", "#805ad5"},
		Stages:  []Stage{{PhaseOrbit, 12}},
		Config: particle.PhysicsConfig{
			Gravity:          1.4,
			Drag:             0.995,
			MaxSpeed:         160,
			BoundaryBehavior: particle.BoundaryNone,
		},
		Enter: func(e *Effect, p Phase) {
			c := e.Center()
			batch := particle.NewExplosion(c.X, c.Y, e.Budget(orbitRingBase), 70, e.Palette(), particle.ExplosionConfig{
				Spread:   1,
				Lifetime: 11,
				Trail:    true,
			})
			// Nudge the ring sideways so the attractor curls it into orbit.
			for _, pt := range batch {
				pt.Velocity = vmath.Vec2{X: -pt.Velocity.Y, Y: pt.Velocity.X}.Scale(0.8)
				pt.Position = pt.Position.Add(pt.Velocity.Normalize().Scale(-40))
			}
			e.System().AddBatch(batch)
		},
		Frame: func(e *Effect, dt float64) Forces {
			return Forces{Attractors: []vmath.Vec2{e.Center()}}
		},
	}
}

func ambientSpecks(e *Effect, w, h float64) []*particle.Particle {
	specks := make([]*particle.Particle, 0, e.Budget(ambientBase))
	for i := 0; i < e.Budget(ambientBase); i++ {
		specks = append(specks, speck(w, h, e.Palette()))
	}
	return specks
}

func speck(w, h float64, palette []string) *particle.Particle {
	color := particle.DefaultColor
	if len(palette) > 0 {
		color = palette[rand.Intn(len(palette))]
	}
	return particle.New(
		rand.Float64()*w, rand.Float64()*h,
		(rand.Float64()-0.5)*8, (rand.Float64()-0.5)*8,
		particle.WithRadius(0.5+rand.Float64()*1.5),
		particle.WithColor(color),
		particle.WithOpacity(0.3+rand.Float64()*0.7),
		particle.WithLifetime(6+rand.Float64()*6),
	)
}

// All returns the built-in horizon definitions, name-sorted.
func All() []*Horizon {
	hs := []*Horizon{BigBang(), Supernova(), Stardust(), Singularity()}
	sort.Slice(hs, func(i, j int) bool { return hs[i].Name < hs[j].Name })
	return hs
}

// ByName returns the built-in horizon with the given name, or nil.
func ByName(name string) *Horizon {
	for _, h := range All() {
		if h.Name == name {
			return h
		}
	}
	return nil
}
