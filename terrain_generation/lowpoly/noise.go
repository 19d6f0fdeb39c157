package lowpoly

import (
	"fmt"
	"math"

	"lowpoly_terrain/terrain_generation/lowpoly/core"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Domain is the sampled rectangle [0, Width) × [0, Height) in world units.
type Domain struct {
	Width  float64
	Height float64
}

// Noise2D is a coherent noise primitive bounded to [0, 1].
type Noise2D interface {
	Eval2(x, y float64) float64
}

// NoiseKind selects the noise primitive.
type NoiseKind string

const (
	NoisePerlin  NoiseKind = "perlin"
	NoiseSimplex NoiseKind = "simplex"
)

// perlinBound is the magnitude bound of 2D gradient noise with unit gradients.
const perlinBound = math.Sqrt2 / 2

// PerlinNoise is single-octave gradient noise remapped to [0, 1]. Octaves are
// layered by HeightAt, not by the generator.
type PerlinNoise struct {
	p *perlin.Perlin
}

func NewPerlinNoise(seed int64) *PerlinNoise {
	return &PerlinNoise{p: perlin.NewPerlin(2, 2, 1, seed)}
}

func (n *PerlinNoise) Eval2(x, y float64) float64 {
	v := (n.p.Noise2D(x, y) + perlinBound) / (2 * perlinBound)
	return clamp01(v)
}

// SimplexNoise is OpenSimplex noise, already normalized to [0, 1].
type SimplexNoise struct {
	n opensimplex.Noise
}

func NewSimplexNoise(seed int64) *SimplexNoise {
	return &SimplexNoise{n: opensimplex.NewNormalized(seed)}
}

func (n *SimplexNoise) Eval2(x, y float64) float64 {
	return clamp01(n.n.Eval2(x, y))
}

// NewNoise builds the primitive for kind. An empty kind means Perlin.
func NewNoise(kind NoiseKind, seed int64) (Noise2D, error) {
	switch kind {
	case "", NoisePerlin:
		return NewPerlinNoise(seed), nil
	case NoiseSimplex:
		return NewSimplexNoise(seed), nil
	}
	return nil, fmt.Errorf("noise kind %q: %w", kind, core.ErrInvalidParameter)
}

// HeightAt samples layered noise at world position (x, z). Each octave
// doubles the frequency and multiplies the amplitude by persistence; the sum
// is divided by the total amplitude, so the result stays in [0, 1].
func HeightAt(noise Noise2D, x, z float64, domain Domain, offset core.Vec2, octaves int, persistence float64) float64 {
	u := (x + offset.X()) / domain.Width
	v := (z + offset.Y()) / domain.Height

	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	total := 0.0
	for i := 0; i < octaves; i++ {
		sum += noise.Eval2(u*frequency, v*frequency) * amplitude
		total += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	if total == 0 {
		return 0
	}
	return sum / total
}

// HeightParams holds the layering parameters of a height field.
type HeightParams struct {
	Octaves     int
	Persistence float64
	Offset      core.Vec2
}

// HeightField binds a noise primitive to a domain.
type HeightField struct {
	Noise  Noise2D
	Domain Domain
	Params HeightParams
}

func (f HeightField) At(x, z float64) float64 {
	return HeightAt(f.Noise, x, z, f.Domain, f.Params.Offset, f.Params.Octaves, f.Params.Persistence)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
