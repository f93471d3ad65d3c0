// Package stream serves a horizon simulation to browser canvases: an HTTP
// server hosts the static client and a websocket endpoint broadcasts one
// JSON frame per simulation tick.
package stream

import (
	"github.com/love-developer/eras-horizons/horizon"
)

// WireParticle is the per-particle payload drawn by the canvas client.
// Field names are kept short; a frame carries hundreds of these.
type WireParticle struct {
	X       float64      `json:"x"`
	Y       float64      `json:"y"`
	R       float64      `json:"r"`
	Color   string       `json:"c"`
	Opacity float64      `json:"o"`
	Trail   [][2]float64 `json:"t,omitempty"`
}

// Frame is one broadcast simulation snapshot.
type Frame struct {
	Horizon   string         `json:"horizon"`
	Phase     string         `json:"phase"`
	Elapsed   float64        `json:"elapsed"`
	Width     float64        `json:"width"`
	Height    float64        `json:"height"`
	Particles []WireParticle `json:"particles"`
}

// BuildFrame snapshots an effect into its wire form.
func BuildFrame(e *horizon.Effect, elapsed float64) Frame {
	w, h := e.Size()
	snap := e.System().Snapshot()

	particles := make([]WireParticle, 0, len(snap))
	for i := range snap {
		p := &snap[i]
		wp := WireParticle{
			X:       p.Position.X,
			Y:       p.Position.Y,
			R:       p.Radius,
			Color:   p.Color,
			Opacity: p.Opacity,
		}
		if len(p.Trail) > 0 {
			wp.Trail = make([][2]float64, len(p.Trail))
			for j, t := range p.Trail {
				wp.Trail[j] = [2]float64{t.X, t.Y}
			}
		}
		particles = append(particles, wp)
	}

	return Frame{
		Horizon:   e.Name(),
		Phase:     e.Phase().String(),
		Elapsed:   elapsed,
		Width:     w,
		Height:    h,
		Particles: particles,
	}
}
