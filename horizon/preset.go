package horizon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/love-developer/eras-horizons/particle"
)

// Preset is a YAML-tunable overlay for a built-in horizon: palettes, phase
// durations and physics constants can be reskinned without recompiling.
//
// File format (one document, top-level "horizons" list):
//
//	horizons:
//	  - name: bigbang
//	    palette: ["#ffffff", "#ffb347"]
//	    gravity: 0.7
//	    drag: 0.98
//	    maxSpeed: 240
//	    boundary: none
//	    phases:
//	      calm: 10
//	      explosion: 3
type Preset struct {
	Name     string             `yaml:"name"`
	Palette  []string           `yaml:"palette"`
	Gravity  *float64           `yaml:"gravity"`
	Drag     *float64           `yaml:"drag"`
	MaxSpeed *float64           `yaml:"maxSpeed"`
	Boundary string             `yaml:"boundary"`
	Phases   map[string]float64 `yaml:"phases"`
}

type presetFile struct {
	Horizons []Preset `yaml:"horizons"`
}

var boundaryNames = map[string]particle.BoundaryBehavior{
	"none":    particle.BoundaryNone,
	"bounce":  particle.BoundaryBounce,
	"wrap":    particle.BoundaryWrap,
	"destroy": particle.BoundaryDestroy,
}

// LoadPresets reads and validates a preset file.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}

	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse presets %s: %w", path, err)
	}

	for i := range f.Horizons {
		if err := f.Horizons[i].validate(); err != nil {
			return nil, fmt.Errorf("preset %d (%q): %w", i, f.Horizons[i].Name, err)
		}
	}
	return f.Horizons, nil
}

func (p *Preset) validate() error {
	if p.Name == "" {
		return fmt.Errorf("missing name")
	}
	if p.Drag != nil && (*p.Drag < 0 || *p.Drag > 1) {
		return fmt.Errorf("drag %v out of range [0,1]", *p.Drag)
	}
	if p.MaxSpeed != nil && *p.MaxSpeed <= 0 {
		return fmt.Errorf("maxSpeed %v must be positive", *p.MaxSpeed)
	}
	if p.Boundary != "" {
		if _, ok := boundaryNames[p.Boundary]; !ok {
			return fmt.Errorf("unknown boundary %q", p.Boundary)
		}
	}
	for name, d := range p.Phases {
		if _, ok := phaseByName(name); !ok {
			return fmt.Errorf("unknown phase %q", name)
		}
		if d <= 0 {
			return fmt.Errorf("phase %q duration %v must be positive", name, d)
		}
	}
	return nil
}

// Apply overlays the preset onto a horizon definition. Only fields present
// in the preset change; phase overrides adjust durations of stages the
// horizon already has and ignore phases it does not.
func (p *Preset) Apply(h *Horizon) {
	if len(p.Palette) > 0 {
		h.Palette = p.Palette
	}
	if p.Gravity != nil {
		h.Config.Gravity = *p.Gravity
	}
	if p.Drag != nil {
		h.Config.Drag = *p.Drag
	}
	if p.MaxSpeed != nil {
		h.Config.MaxSpeed = *p.MaxSpeed
	}
	if p.Boundary != "" {
		h.Config.BoundaryBehavior = boundaryNames[p.Boundary]
	}
	for i := range h.Stages {
		if d, ok := p.Phases[h.Stages[i].Phase.String()]; ok {
			h.Stages[i].Duration = d
		}
	}
}

func phaseByName(name string) (Phase, bool) {
	for p, n := range phaseNames {
		if n == name {
			return p, true
		}
	}
	return 0, false
}
