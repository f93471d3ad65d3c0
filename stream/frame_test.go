package stream

import (
	"encoding/json"
	"testing"

	"github.com/love-developer/eras-horizons/horizon"
)

func TestBuildFrame(t *testing.T) {
	e := horizon.NewEffect(horizon.BigBang(), 320, 180, horizon.TierLow)
	f := BuildFrame(e, 1.5)

	if f.Horizon != "bigbang" {
		t.Errorf("horizon = %q, want bigbang", f.Horizon)
	}
	if f.Phase != "calm" {
		t.Errorf("phase = %q, want calm", f.Phase)
	}
	if f.Elapsed != 1.5 {
		t.Errorf("elapsed = %v, want 1.5", f.Elapsed)
	}
	if f.Width != 320 || f.Height != 180 {
		t.Errorf("size = %vx%v, want 320x180", f.Width, f.Height)
	}
	if len(f.Particles) != e.System().Count() {
		t.Errorf("particles = %d, want %d", len(f.Particles), e.System().Count())
	}
}

func TestFrameJSONShape(t *testing.T) {
	e := horizon.NewEffect(horizon.Singularity(), 100, 100, horizon.TierLow)
	e.Step(0.016)

	data, err := json.Marshal(BuildFrame(e, 0.016))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"horizon", "phase", "elapsed", "width", "height", "particles"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("frame JSON missing %q", key)
		}
	}

	particles := decoded["particles"].([]any)
	if len(particles) == 0 {
		t.Fatal("no particles in frame")
	}
	first := particles[0].(map[string]any)
	for _, key := range []string{"x", "y", "r", "c", "o"} {
		if _, ok := first[key]; !ok {
			t.Errorf("wire particle missing %q", key)
		}
	}
}

func TestBuildFrameCopiesTrail(t *testing.T) {
	e := horizon.NewEffect(horizon.Singularity(), 100, 100, horizon.TierLow)
	for i := 0; i < 10; i++ {
		e.Step(0.016)
	}

	f := BuildFrame(e, 0)
	found := false
	for _, p := range f.Particles {
		if len(p.Trail) > 0 {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("singularity particles should carry trails on the wire")
	}
}
