// Interactive terminal demo: renders the built-in horizons with their
// phase cycles, audio cues and persisted preferences.
//
// Keys: q/ESC quit, space pause, n next horizon, t cycle tier,
// s toggle sound, r restart cycle.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/love-developer/eras-horizons/audio"
	"github.com/love-developer/eras-horizons/horizon"
	"github.com/love-developer/eras-horizons/render"
	"github.com/love-developer/eras-horizons/settings"
)

var (
	horizonFlag = flag.String("horizon", "", "Horizon to start with (default: last used)")
	tierFlag    = flag.String("tier", "", "Particle budget tier: low|medium|high (default: last used)")
	presetsFlag = flag.String("presets", "", "Optional YAML preset file overriding built-in horizons")
	noSoundFlag = flag.Bool("no-sound", false, "Disable audio cues for this run")
)

type demo struct {
	screen   tcell.Screen
	renderer *render.Renderer
	player   *audio.Player
	prefs    *settings.Manager

	defs   []*horizon.Horizon
	defIdx int
	tier   horizon.Tier
	effect *horizon.Effect

	paused bool
}

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal on both normal exit and panic; a crashed demo
	// must not leave the shell in raw mode.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "horizons crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	d, err := newDemo(screen)
	if err != nil {
		screen.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	d.run()

	if err := d.prefs.Save(); err != nil {
		log.Printf("saving preferences: %v", err)
	}
}

func newDemo(screen tcell.Screen) (*demo, error) {
	store, err := gdata.Open(gdata.Config{AppName: "eras_horizons"})
	if err != nil {
		// Non-fatal: run without persistence.
		store = nil
	}
	prefs := settings.NewManager(store)

	defs := horizon.All()
	if *presetsFlag != "" {
		presets, err := horizon.LoadPresets(*presetsFlag)
		if err != nil {
			return nil, err
		}
		for _, p := range presets {
			for _, def := range defs {
				if def.Name == p.Name {
					p.Apply(def)
				}
			}
		}
	}

	d := &demo{
		screen:   screen,
		renderer: render.New(screen),
		prefs:    prefs,
		defs:     defs,
		tier:     parseTier(firstNonEmpty(*tierFlag, prefs.Settings().Tier)),
	}

	start := firstNonEmpty(*horizonFlag, prefs.Settings().Horizon)
	for i, def := range defs {
		if def.Name == start {
			d.defIdx = i
		}
	}

	soundOn := prefs.Settings().SoundEnabled && !*noSoundFlag
	d.player, err = audio.NewPlayer(prefs.Settings().SoundVolume)
	if err != nil {
		// Non-fatal, the demo runs silent.
		d.player.SetEnabled(false)
	} else {
		d.player.SetEnabled(soundOn)
	}

	d.startEffect()
	return d, nil
}

func (d *demo) startEffect() {
	w, h := d.renderer.Size()
	d.effect = horizon.NewEffect(d.defs[d.defIdx], float64(w), float64(h), d.tier)
	d.prefs.Settings().Horizon = d.defs[d.defIdx].Name
	d.prefs.Settings().Tier = d.tier.String()
}

func (d *demo) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- d.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !d.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			dt := render.ClampDt(now.Sub(last).Seconds())
			last = now
			if d.paused {
				continue
			}

			for _, ph := range d.effect.Step(dt) {
				d.player.PhaseCue(ph)
			}
			d.draw()
		}
	}
}

func (d *demo) draw() {
	d.renderer.Draw(d.effect.System())
	status := fmt.Sprintf(" %s | %s %3.0f%% | %d particles | tier %s | sound %s ",
		d.effect.Name(),
		d.effect.Phase(),
		d.effect.PhaseProgress()*100,
		d.effect.System().Count(),
		d.tier,
		onOff(d.player.Enabled()),
	)
	d.renderer.DrawStatus(status)
	d.renderer.Show()
}

func (d *demo) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			d.paused = !d.paused
		case 'n':
			d.defIdx = (d.defIdx + 1) % len(d.defs)
			d.startEffect()
		case 't':
			d.tier = (d.tier + 1) % 3
			d.startEffect()
		case 's':
			d.player.SetEnabled(!d.player.Enabled())
			d.prefs.Settings().SoundEnabled = d.player.Enabled()
		case 'r':
			d.effect.Restart()
		}

	case *tcell.EventResize:
		d.screen.Sync()
		d.startEffect()
	}
	return true
}

func parseTier(s string) horizon.Tier {
	switch s {
	case "low":
		return horizon.TierLow
	case "medium":
		return horizon.TierMedium
	default:
		return horizon.TierHigh
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
