// Package render draws particle systems into a tcell screen. The simulation
// runs in cell coordinates, so a system's bounds should match the screen
// size; Renderer just projects particle state onto the grid each frame.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/love-developer/eras-horizons/particle"
)

// MaxFrameDelta is the dt ceiling applied before stepping a simulation.
// Long frame gaps (terminal suspended, SIGSTOP) would otherwise teleport
// particles; the engine integrates whatever it is given, clamping is the
// caller's job.
const MaxFrameDelta = 0.1

// ClampDt bounds a frame delta to MaxFrameDelta seconds.
func ClampDt(dt float64) float64 {
	if dt > MaxFrameDelta {
		return MaxFrameDelta
	}
	if dt < 0 {
		return 0
	}
	return dt
}

// sizeRamp maps particle radius to a glyph, small to large.
var sizeRamp = []struct {
	maxRadius float64
	glyph     rune
}{
	{1.0, '·'},
	{2.0, '•'},
	{3.0, '●'},
}

const largeGlyph = '█'

// trailIntensity dims trail points relative to the particle itself.
const trailIntensity = 0.35

func glyphFor(radius float64) rune {
	for _, s := range sizeRamp {
		if radius <= s.maxRadius {
			return s.glyph
		}
	}
	return largeGlyph
}

// Renderer draws particle systems onto one tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// New wraps an initialized screen.
func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Size returns the current screen size in cells.
func (r *Renderer) Size() (w, h int) {
	return r.screen.Size()
}

// Draw clears the screen and renders every particle of the system, trails
// first so particle heads overdraw their own history. Show is left to the
// caller so HUD text can go on top.
func (r *Renderer) Draw(sys *particle.System) {
	r.screen.Clear()

	w, h := r.screen.Size()
	for _, p := range sys.Particles() {
		color := ParseColor(p.Color)

		for i, pos := range p.Trail {
			// Older trail points are dimmer.
			falloff := float64(i+1) / float64(len(p.Trail))
			r.plot(pos.X, pos.Y, w, h, '·', color.Dim(p.Opacity*trailIntensity*falloff))
		}
		r.plot(p.Position.X, p.Position.Y, w, h, glyphFor(p.Radius), color.Dim(p.Opacity))
	}
}

// DrawStatus writes a one-line HUD at the top of the screen.
func (r *Renderer) DrawStatus(text string) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, ch := range text {
		if i >= w {
			break
		}
		r.screen.SetContent(i, 0, ch, nil, style)
	}
}

// Show flushes the frame to the terminal.
func (r *Renderer) Show() {
	r.screen.Show()
}

func (r *Renderer) plot(x, y float64, w, h int, glyph rune, color RGB) {
	cx, cy := int(x), int(y)
	if cx < 0 || cx >= w || cy < 0 || cy >= h {
		return
	}
	r.screen.SetContent(cx, cy, glyph, nil, color.Style())
}
