package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"lowpoly_terrain/terrain_generation/lowpoly"
	"lowpoly_terrain/terrain_generation/lowpoly/core"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// TerrainDoc is the YAML form of lowpoly.TerrainConfig. Colors are "#rrggbb".
type TerrainDoc struct {
	Width       float64    `yaml:"width"`
	Height      float64    `yaml:"height"`
	MinDistance float64    `yaml:"min_distance"`
	MaxTries    int        `yaml:"max_tries"`
	Octaves     int        `yaml:"octaves"`
	Persistence float64    `yaml:"persistence"`
	Offset      [2]float64 `yaml:"offset,flow"`
	HeightScale float64    `yaml:"height_scale"`
	SeaLevel    float64    `yaml:"sea_level"`
	Dampening   float64    `yaml:"dampening"`
	RangeScale  float64    `yaml:"range_scale"`
	RangeOffset float64    `yaml:"range_offset"`
	Seed        *int64     `yaml:"seed,omitempty"`
	Noise       string     `yaml:"noise"`
	NoiseSeed   int64      `yaml:"noise_seed"`
	Ramp        []StopDoc  `yaml:"ramp"`
}

type StopDoc struct {
	At    float64 `yaml:"at"`
	Color string  `yaml:"color"`
}

// DocFromConfig converts cfg to its YAML form.
func DocFromConfig(cfg lowpoly.TerrainConfig) TerrainDoc {
	doc := TerrainDoc{
		Width:       cfg.Width,
		Height:      cfg.Height,
		MinDistance: cfg.MinDistance,
		MaxTries:    cfg.MaxTries,
		Octaves:     cfg.Octaves,
		Persistence: cfg.Persistence,
		Offset:      [2]float64{cfg.Offset.X(), cfg.Offset.Y()},
		HeightScale: cfg.HeightScale,
		SeaLevel:    cfg.SeaLevel,
		Dampening:   cfg.Dampening,
		RangeScale:  cfg.RangeScale,
		RangeOffset: cfg.RangeOffset,
		Seed:        cfg.Seed,
		Noise:       string(cfg.NoiseKind),
		NoiseSeed:   cfg.NoiseSeed,
	}
	for _, s := range cfg.Ramp.Stops {
		doc.Ramp = append(doc.Ramp, StopDoc{At: s.At, Color: s.Color.Clamped().Hex()})
	}
	return doc
}

// Config converts the document back, parsing the ramp colors.
func (doc TerrainDoc) Config() (lowpoly.TerrainConfig, error) {
	cfg := lowpoly.TerrainConfig{
		Width:       doc.Width,
		Height:      doc.Height,
		MinDistance: doc.MinDistance,
		MaxTries:    doc.MaxTries,
		Octaves:     doc.Octaves,
		Persistence: doc.Persistence,
		Offset:      core.Vec2{doc.Offset[0], doc.Offset[1]},
		HeightScale: doc.HeightScale,
		SeaLevel:    doc.SeaLevel,
		Dampening:   doc.Dampening,
		RangeScale:  doc.RangeScale,
		RangeOffset: doc.RangeOffset,
		Seed:        doc.Seed,
		NoiseKind:   lowpoly.NoiseKind(doc.Noise),
		NoiseSeed:   doc.NoiseSeed,
	}
	for i, s := range doc.Ramp {
		c, err := colorful.Hex(s.Color)
		if err != nil {
			return lowpoly.TerrainConfig{}, fmt.Errorf("ramp stop %d: color %q: %w", i, s.Color, core.ErrInvalidParameter)
		}
		cfg.Ramp.Stops = append(cfg.Ramp.Stops, lowpoly.ColorStop{At: s.At, Color: c})
	}
	return cfg, nil
}

// ParseTerrainConfig decodes a YAML document on top of
// lowpoly.DefaultTerrainConfig and validates the result. Unknown keys are
// rejected.
func ParseTerrainConfig(data []byte) (lowpoly.TerrainConfig, error) {
	doc := DocFromConfig(lowpoly.DefaultTerrainConfig())

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return lowpoly.TerrainConfig{}, fmt.Errorf("parse terrain config: %v: %w", err, core.ErrInvalidParameter)
	}

	cfg, err := doc.Config()
	if err != nil {
		return lowpoly.TerrainConfig{}, fmt.Errorf("parse terrain config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return lowpoly.TerrainConfig{}, err
	}
	return cfg, nil
}

// LoadTerrainConfig reads and parses the YAML file at path.
func LoadTerrainConfig(path string) (lowpoly.TerrainConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return lowpoly.TerrainConfig{}, fmt.Errorf("load terrain config: %w", err)
	}
	return ParseTerrainConfig(data)
}

// MarshalTerrainConfig encodes cfg as YAML.
func MarshalTerrainConfig(cfg lowpoly.TerrainConfig) ([]byte, error) {
	return yaml.Marshal(DocFromConfig(cfg))
}
