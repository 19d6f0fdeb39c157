package lowpoly

import (
	"errors"
	"fmt"
	"strings"

	"lowpoly_terrain/terrain_generation/lowpoly/core"

	"github.com/go-playground/validator/v10"
)

// TerrainConfig holds every parameter of one terrain.
type TerrainConfig struct {
	Width       float64 `validate:"gt=0"`
	Height      float64 `validate:"gt=0"`
	MinDistance float64 `validate:"gt=0"`
	MaxTries    int     `validate:"gte=1"`

	Octaves     int     `validate:"gte=1"`
	Persistence float64 `validate:"gte=0"`
	Offset      core.Vec2

	HeightScale float64 `validate:"gt=0"`
	SeaLevel    float64
	Dampening   float64 `validate:"gte=0,lte=1"`
	RangeScale  float64
	RangeOffset float64

	Ramp ColorRamp

	Seed      *int64    // nil: different sample set every call
	NoiseKind NoiseKind `validate:"omitempty,oneof=perlin simplex"`
	NoiseSeed int64
}

// DefaultTerrainConfig returns the editor defaults: a 10x10 patch, spacing 2,
// one octave, no sea dampening.
func DefaultTerrainConfig() TerrainConfig {
	return TerrainConfig{
		Width:       10,
		Height:      10,
		MinDistance: 2,
		MaxTries:    10,
		Octaves:     1,
		Persistence: 1,
		HeightScale: 10,
		SeaLevel:    0,
		Dampening:   0,
		RangeScale:  1,
		RangeOffset: 0,
		Ramp:        DefaultColorRamp(),
		NoiseKind:   NoisePerlin,
	}
}

var validate = validator.New()

// Validate reports the first problem with cfg as a wrapped
// core.ErrInvalidParameter.
func (cfg TerrainConfig) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s must be %s %s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
			}
			return fmt.Errorf("terrain config: %s: %w", strings.Join(msgs, "; "), core.ErrInvalidParameter)
		}
		return fmt.Errorf("terrain config: %v: %w", err, core.ErrInvalidParameter)
	}
	if !finite(cfg.Width, cfg.Height, cfg.MinDistance, cfg.Persistence, cfg.Offset.X(), cfg.Offset.Y(),
		cfg.HeightScale, cfg.SeaLevel, cfg.RangeScale, cfg.RangeOffset) {
		return fmt.Errorf("terrain config: non-finite value: %w", core.ErrInvalidParameter)
	}
	return cfg.Ramp.Validate()
}

// Shaping returns the height shaping part of cfg.
func (cfg TerrainConfig) Shaping() HeightShaping {
	return HeightShaping{
		HeightScale: cfg.HeightScale,
		SeaLevel:    cfg.SeaLevel,
		Dampening:   cfg.Dampening,
		RangeScale:  cfg.RangeScale,
		RangeOffset: cfg.RangeOffset,
	}
}

// Field returns the height field of cfg.
func (cfg TerrainConfig) Field() (HeightField, error) {
	noise, err := NewNoise(cfg.NoiseKind, cfg.NoiseSeed)
	if err != nil {
		return HeightField{}, err
	}
	return HeightField{
		Noise:  noise,
		Domain: Domain{Width: cfg.Width, Height: cfg.Height},
		Params: HeightParams{Octaves: cfg.Octaves, Persistence: cfg.Persistence, Offset: cfg.Offset},
	}, nil
}

// Generate samples, triangulates and assembles one terrain. Every parameter
// is checked before any geometry work; on error the mesh is nil.
func Generate(cfg TerrainConfig) (*MeshBuffers, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	field, err := cfg.Field()
	if err != nil {
		return nil, err
	}

	points, err := GenerateBlueNoise(NewRand(cfg.Seed), cfg.Width, cfg.Height, BlueNoiseConfig{
		MinDist:  cfg.MinDistance,
		MaxTries: cfg.MaxTries,
	})
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	tri, err := core.Triangulate(points)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	return Assemble(tri, field.Domain, field, cfg.Shaping(), cfg.Ramp), nil
}
