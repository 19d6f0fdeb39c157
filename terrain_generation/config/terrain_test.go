package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"lowpoly_terrain/terrain_generation/lowpoly"
	"lowpoly_terrain/terrain_generation/lowpoly/core"
)

func TestParseTerrainConfigDefaults(t *testing.T) {
	for _, data := range []string{"", "{}\n", "# nothing here\n"} {
		cfg, err := ParseTerrainConfig([]byte(data))
		if err != nil {
			t.Fatalf("ParseTerrainConfig(%q): %v", data, err)
		}
		if want := lowpoly.DefaultTerrainConfig(); !reflect.DeepEqual(cfg, want) {
			t.Errorf("ParseTerrainConfig(%q) = %+v, want defaults %+v", data, cfg, want)
		}
	}
}

func TestParseTerrainConfigOverrides(t *testing.T) {
	data := []byte(`
width: 32
height: 24
min_distance: 1.5
octaves: 4
persistence: 0.5
offset: [3, -2]
height_scale: 5
sea_level: 0.3
dampening: 0.5
range_scale: 2
range_offset: -0.7
seed: 42
noise: simplex
noise_seed: 9
ramp:
  - {at: 0, color: "#000000"}
  - {at: 1, color: "#ffffff"}
`)
	cfg, err := ParseTerrainConfig(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 32 || cfg.Height != 24 || cfg.MinDistance != 1.5 || cfg.Octaves != 4 || cfg.Persistence != 0.5 {
		t.Errorf("sampling fields not applied: %+v", cfg)
	}
	if cfg.Offset != (core.Vec2{3, -2}) {
		t.Errorf("Offset = %v", cfg.Offset)
	}
	if cfg.HeightScale != 5 || cfg.SeaLevel != 0.3 || cfg.Dampening != 0.5 || cfg.RangeScale != 2 || cfg.RangeOffset != -0.7 {
		t.Errorf("shaping fields not applied: %+v", cfg.Shaping())
	}
	if cfg.Seed == nil || *cfg.Seed != 42 {
		t.Errorf("Seed = %v, want 42", cfg.Seed)
	}
	if cfg.NoiseKind != lowpoly.NoiseSimplex || cfg.NoiseSeed != 9 {
		t.Errorf("noise = %q/%d", cfg.NoiseKind, cfg.NoiseSeed)
	}
	if cfg.MaxTries != lowpoly.DefaultTerrainConfig().MaxTries {
		t.Errorf("MaxTries = %d, want the default", cfg.MaxTries)
	}
	if len(cfg.Ramp.Stops) != 2 || cfg.Ramp.Stops[1].Color.R != 1 {
		t.Errorf("ramp = %+v", cfg.Ramp)
	}
}

func TestParseTerrainConfigErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		data string
	}{
		{"unknown_key", "widht: 10\n"},
		{"bad_yaml", "width: [\n"},
		{"bad_type", "octaves: many\n"},
		{"zero_width", "width: 0\n"},
		{"bad_color", "ramp:\n  - {at: 0, color: teal}\n"},
		{"unsorted_ramp", "ramp:\n  - {at: 0.5, color: \"#000000\"}\n  - {at: 0.1, color: \"#ffffff\"}\n"},
		{"unknown_noise", "noise: worley\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseTerrainConfig([]byte(tc.data)); !errors.Is(err, core.ErrInvalidParameter) {
				t.Errorf("err = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestLoadTerrainConfig(t *testing.T) {
	dir := t.TempDir()

	cfg := lowpoly.DefaultTerrainConfig()
	seed := int64(7)
	cfg.Seed = &seed
	cfg.Width = 20
	data, err := MarshalTerrainConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "terrain.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadTerrainConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}

	if _, err := LoadTerrainConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: err = %v", err)
	}
}
