package lowpoly

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"lowpoly_terrain/terrain_generation/lowpoly/core"
)

func TestGenerateBlueNoiseProperties(t *testing.T) {
	for _, tc := range []struct {
		minDist, width, height float64
		tries                  int
		seed                   int64
	}{
		{2, 10, 10, 10, 42},
		{0.5, 10, 10, 30, 1},
		{1, 40, 5, 30, 2},
		{3, 3, 3, 1, 3},
		{20, 5, 5, 30, 4},
		{0.25, 4, 8, 5, 5},
	} {
		name := fmt.Sprintf("r=%v_%vx%v_k=%d_seed=%d", tc.minDist, tc.width, tc.height, tc.tries, tc.seed)
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(tc.seed))
			pts, err := GenerateBlueNoise(rng, tc.width, tc.height, BlueNoiseConfig{MinDist: tc.minDist, MaxTries: tc.tries})
			if err != nil {
				t.Fatalf("GenerateBlueNoise: %v", err)
			}
			if len(pts) == 0 {
				t.Fatal("no points")
			}
			for i, p := range pts {
				if p.X() < 0 || p.X() >= tc.width || p.Y() < 0 || p.Y() >= tc.height {
					t.Errorf("point %d %v outside domain", i, p)
				}
				for j := i + 1; j < len(pts); j++ {
					if d := p.Sub(pts[j]).Len(); d < tc.minDist {
						t.Errorf("points %d and %d are %v apart, want >= %v", i, j, d, tc.minDist)
					}
				}
			}
		})
	}
}

func TestGenerateBlueNoiseDeterministic(t *testing.T) {
	cfg := BlueNoiseConfig{MinDist: 1, MaxTries: 30}
	a, err := GenerateBlueNoise(rand.New(rand.NewSource(9)), 20, 20, cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateBlueNoise(rand.New(rand.NewSource(9)), 20, 20, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different samples")
	}

	seed := int64(9)
	c, err := SampleBlueNoise(1, 20, 20, 30, &seed)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, c) {
		t.Error("SampleBlueNoise with the same seed differs from GenerateBlueNoise")
	}
}

func TestSampleBlueNoiseUnseeded(t *testing.T) {
	pts, err := SampleBlueNoise(1, 10, 10, 30, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) == 0 {
		t.Error("no points")
	}
}

func TestGenerateBlueNoiseInvalid(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	for _, tc := range []struct {
		name          string
		rng           *rand.Rand
		width, height float64
		cfg           BlueNoiseConfig
	}{
		{"nil_rng", nil, 10, 10, BlueNoiseConfig{1, 10}},
		{"zero_width", rng, 0, 10, BlueNoiseConfig{1, 10}},
		{"negative_height", rng, 10, -1, BlueNoiseConfig{1, 10}},
		{"zero_distance", rng, 10, 10, BlueNoiseConfig{0, 10}},
		{"negative_distance", rng, 10, 10, BlueNoiseConfig{-2, 10}},
		{"zero_tries", rng, 10, 10, BlueNoiseConfig{1, 0}},
		{"nan_distance", rng, 10, 10, BlueNoiseConfig{math.NaN(), 10}},
		{"inf_width", rng, math.Inf(1), 10, BlueNoiseConfig{1, 10}},
		{"huge_width", rng, 1e300, 10, BlueNoiseConfig{1, 10}},
		{"grid_too_fine", rng, 1e5, 1e5, BlueNoiseConfig{0.001, 10}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			pts, err := GenerateBlueNoise(tc.rng, tc.width, tc.height, tc.cfg)
			if !errors.Is(err, core.ErrInvalidParameter) {
				t.Fatalf("err = %v, want ErrInvalidParameter", err)
			}
			if pts != nil {
				t.Errorf("got %d points on error", len(pts))
			}
		})
	}
}
