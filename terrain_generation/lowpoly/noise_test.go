package lowpoly

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"lowpoly_terrain/terrain_generation/lowpoly/core"
)

type constNoise float64

func (c constNoise) Eval2(x, y float64) float64 { return float64(c) }

func TestHeightAtBoundedAndPure(t *testing.T) {
	domain := Domain{Width: 10, Height: 10}
	for _, kind := range []NoiseKind{NoisePerlin, NoiseSimplex} {
		noise, err := NewNoise(kind, 3)
		if err != nil {
			t.Fatal(err)
		}
		for _, params := range []HeightParams{
			{Octaves: 1, Persistence: 1},
			{Octaves: 4, Persistence: 0.5},
			{Octaves: 6, Persistence: 2, Offset: core.Vec2{13.5, -7}},
		} {
			t.Run(string(kind), func(t *testing.T) {
				rng := rand.New(rand.NewSource(1))
				for i := 0; i < 500; i++ {
					x, z := rng.Float64()*30-10, rng.Float64()*30-10
					h := HeightAt(noise, x, z, domain, params.Offset, params.Octaves, params.Persistence)
					if h < 0 || h > 1 || math.IsNaN(h) {
						t.Fatalf("HeightAt(%v, %v) = %v, want [0, 1]", x, z, h)
					}
					if again := HeightAt(noise, x, z, domain, params.Offset, params.Octaves, params.Persistence); again != h {
						t.Fatalf("HeightAt(%v, %v) not repeatable: %v then %v", x, z, h, again)
					}
				}
			})
		}
	}
}

func TestHeightAtWeightedAverage(t *testing.T) {
	domain := Domain{Width: 4, Height: 4}
	if got := HeightAt(constNoise(0.25), 1, 2, domain, core.Vec2{}, 5, 0.5); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("constant noise: got %v, want 0.25", got)
	}

	// Zero persistence leaves only the first octave.
	noise := NewPerlinNoise(11)
	want := noise.Eval2(1.0/4, 3.0/4)
	if got := HeightAt(noise, 1, 3, domain, core.Vec2{}, 4, 0); got != want {
		t.Errorf("persistence 0: got %v, want %v", got, want)
	}
}

func TestHeightFieldAt(t *testing.T) {
	noise := NewSimplexNoise(5)
	f := HeightField{
		Noise:  noise,
		Domain: Domain{Width: 8, Height: 6},
		Params: HeightParams{Octaves: 3, Persistence: 0.5, Offset: core.Vec2{1, 2}},
	}
	if got, want := f.At(2, 3), HeightAt(noise, 2, 3, f.Domain, core.Vec2{1, 2}, 3, 0.5); got != want {
		t.Errorf("At = %v, want %v", got, want)
	}
}

func TestNewNoise(t *testing.T) {
	for _, tc := range []struct {
		kind NoiseKind
		err  error
	}{
		{"", nil},
		{NoisePerlin, nil},
		{NoiseSimplex, nil},
		{"worley", core.ErrInvalidParameter},
	} {
		t.Run(string(tc.kind), func(t *testing.T) {
			n, err := NewNoise(tc.kind, 1)
			if !errors.Is(err, tc.err) {
				t.Fatalf("err = %v, want %v", err, tc.err)
			}
			if tc.err == nil && n == nil {
				t.Error("nil noise")
			}
		})
	}
}
