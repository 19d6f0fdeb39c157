package viewer

import (
	"math"
	"testing"

	"lowpoly_terrain/terrain_generation/lowpoly"
	"lowpoly_terrain/terrain_generation/lowpoly/core"

	"github.com/lucasb-eyer/go-colorful"
)

func TestParamsRoundTrip(t *testing.T) {
	cfg := lowpoly.DefaultTerrainConfig()
	p := ParamsFromConfig(cfg)
	p.Octaves = 5
	p.SeaLevel = 0.4
	got := p.Apply(cfg)
	if got.Octaves != 5 || got.SeaLevel != 0.4 {
		t.Errorf("Apply did not copy slider values: %+v", got)
	}
	if got.Width != cfg.Width || got.NoiseKind != cfg.NoiseKind {
		t.Error("Apply changed fields outside the panel")
	}
	if ParamsFromConfig(got) != p {
		t.Error("ParamsFromConfig(Apply(p)) != p")
	}
}

func TestSliderMapping(t *testing.T) {
	for _, v := range []float64{0.25, 1, 2.5, 4} {
		pos := valueToSlider(v, 0, 100, 0.25, 4)
		if got := sliderToValue(pos, 0, 100, 0.25, 4); math.Abs(got-v) > (4-0.25)/100 {
			t.Errorf("value %v -> slider %d -> %v", v, pos, got)
		}
	}
	if pos := valueToSlider(99, 0, 100, 0, 1); pos != 100 {
		t.Errorf("out of range value mapped to %d, want 100", pos)
	}
}

func TestScreenToWorld(t *testing.T) {
	v := NewTerrainView(800, 600)
	v.SetMesh(nil, lowpoly.Domain{Width: 20, Height: 10})
	if want := math.Min(800.0/20, 600.0/10) * 0.9; v.Scale != want {
		t.Fatalf("Scale = %v, want %v", v.Scale, want)
	}
	sx, sy := v.worldToScreen(3, -2)
	x, z := v.ScreenToWorld(int(math.Round(float64(sx))), int(math.Round(float64(sy))))
	if math.Abs(x-3) > 1/v.Scale || math.Abs(z+2) > 1/v.Scale {
		t.Errorf("round trip = (%v, %v), want (3, -2)", x, z)
	}
}

func TestShade(t *testing.T) {
	white := colorful.Color{R: 1, G: 1, B: 1}
	lit := Shade(white, core.Up, core.Up)
	if math.Abs(lit.R-1) > 1e-12 {
		t.Errorf("fully lit = %v, want 1", lit.R)
	}
	dark := Shade(white, core.Vec3{0, -1, 0}, core.Up)
	if math.Abs(dark.R-0.3) > 1e-12 {
		t.Errorf("facing away = %v, want ambient 0.3", dark.R)
	}
}

func TestFormatFloat(t *testing.T) {
	for in, want := range map[float64]string{0.5: "0.5", 1: "1.0", 0.125: "0.125", 10.25: "10.25"} {
		if got := formatFloat(in); got != want {
			t.Errorf("formatFloat(%v) = %q, want %q", in, got, want)
		}
	}
}
