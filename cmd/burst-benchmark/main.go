// Throughput sanity check for the particle engine: spawns repeated bursts
// into a bounded system and reports update cost per frame at various
// particle counts.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/love-developer/eras-horizons/particle"
	"github.com/love-developer/eras-horizons/vmath"
)

var (
	duration = flag.Duration("duration", 5*time.Second, "Benchmark duration per scenario")
	burst    = flag.Int("burst", 500, "Particles per explosion burst")
)

func main() {
	flag.Parse()

	scenarios := []struct {
		name       string
		attractors int
		boundary   particle.BoundaryBehavior
	}{
		{"free", 0, particle.BoundaryNone},
		{"attracted", 2, particle.BoundaryNone},
		{"bounded-wrap", 2, particle.BoundaryWrap},
	}

	for _, sc := range scenarios {
		run(sc.name, sc.attractors, sc.boundary)
	}
}

func run(name string, attractorCount int, boundary particle.BoundaryBehavior) {
	cfg := particle.DefaultConfig()
	cfg.BoundaryBehavior = boundary
	sys := particle.NewSystem(cfg, &particle.Bounds{Width: 1920, Height: 1080})

	var attractors []vmath.Vec2
	for i := 0; i < attractorCount; i++ {
		attractors = append(attractors, vmath.Vec2{X: float64(400 + i*800), Y: 540})
	}

	palette := []string{"#fff", "#f80", "#80f"}
	const dt = 1.0 / 60

	var frames, updated int64
	var worst time.Duration
	start := time.Now()
	for time.Since(start) < *duration {
		// Keep the system churning: top up with a burst when it thins out.
		if sys.Count() < *burst {
			sys.AddBatch(particle.NewExplosion(960, 540, *burst, 120, palette, particle.ExplosionConfig{
				Spread: 0.5,
			}))
		}

		frameStart := time.Now()
		sys.Update(dt, attractors, nil)
		cost := time.Since(frameStart)

		if cost > worst {
			worst = cost
		}
		frames++
		updated += int64(sys.Count())
	}
	elapsed := time.Since(start)

	fmt.Printf("%-13s %8d frames  %10.0f particle-updates/s  worst frame %v\n",
		name, frames, float64(updated)/elapsed.Seconds(), worst)
}
