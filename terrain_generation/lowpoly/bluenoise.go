package lowpoly

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"lowpoly_terrain/terrain_generation/lowpoly/core"
)

// BlueNoiseConfig configures Poisson disk sampling.
type BlueNoiseConfig struct {
	MinDist  float64 // Minimum distance between points
	MaxTries int     // Attempts per active point before giving up
}

// DefaultBlueNoiseConfig returns the editor defaults for a given spacing.
func DefaultBlueNoiseConfig(minDist float64) BlueNoiseConfig {
	return BlueNoiseConfig{
		MinDist:  minDist,
		MaxTries: 10,
	}
}

// MaxGridCells bounds the background grid of GenerateBlueNoise. Larger
// domains, relative to MinDist, are rejected with core.ErrInvalidParameter.
const MaxGridCells = 1 << 22

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// GenerateBlueNoise generates Poisson disk–distributed points within the
// region [0, width) × [0, height) using Bridson's algorithm.
//
// rng is a seeded random source for determinism. Out of range parameters are
// rejected with core.ErrInvalidParameter; nothing is clamped.
func GenerateBlueNoise(rng *rand.Rand, width, height float64, cfg BlueNoiseConfig) ([]core.Vec2, error) {
	switch {
	case rng == nil:
		return nil, fmt.Errorf("blue noise: nil random source: %w", core.ErrInvalidParameter)
	case !finite(width, height, cfg.MinDist):
		return nil, fmt.Errorf("blue noise: non-finite parameter: %w", core.ErrInvalidParameter)
	case cfg.MinDist <= 0:
		return nil, fmt.Errorf("blue noise: min distance %v must be positive: %w", cfg.MinDist, core.ErrInvalidParameter)
	case width <= 0 || height <= 0:
		return nil, fmt.Errorf("blue noise: domain %vx%v must be positive: %w", width, height, core.ErrInvalidParameter)
	case cfg.MaxTries < 1:
		return nil, fmt.Errorf("blue noise: max tries %d must be at least 1: %w", cfg.MaxTries, core.ErrInvalidParameter)
	}

	// Cell size for the background grid: r / sqrt(2) guarantees at most one point per cell
	cellSize := cfg.MinDist / math.Sqrt2
	cellsW, cellsH := math.Ceil(width/cellSize), math.Ceil(height/cellSize)
	if cellsW*cellsH > MaxGridCells {
		return nil, fmt.Errorf("blue noise: %vx%v domain at min distance %v needs more than %d grid cells: %w",
			width, height, cfg.MinDist, MaxGridCells, core.ErrInvalidParameter)
	}
	gridW, gridH := int(cellsW), int(cellsH)

	// Grid stores index into points slice, or -1 if empty
	grid := make([]int, gridW*gridH)
	for i := range grid {
		grid[i] = -1
	}

	points := make([]core.Vec2, 0, gridW*gridH/4+1)
	active := make([]int, 0, 128)

	toGrid := func(p core.Vec2) (int, int) {
		gx := min(max(int(p.X()/cellSize), 0), gridW-1)
		gz := min(max(int(p.Y()/cellSize), 0), gridH-1)
		return gx, gz
	}

	// In bounds and far enough from every accepted neighbour
	isValid := func(p core.Vec2) bool {
		if p.X() < 0 || p.X() >= width || p.Y() < 0 || p.Y() >= height {
			return false
		}
		gx, gz := toGrid(p)

		// 5x5 neighbourhood is sufficient for r/sqrt(2) cells
		r2 := cfg.MinDist * cfg.MinDist
		for dz := -2; dz <= 2; dz++ {
			for dx := -2; dx <= 2; dx++ {
				nx, nz := gx+dx, gz+dz
				if nx < 0 || nx >= gridW || nz < 0 || nz >= gridH {
					continue
				}
				if idx := grid[nz*gridW+nx]; idx != -1 {
					diff := points[idx].Sub(p)
					if diff.Dot(diff) < r2 {
						return false
					}
				}
			}
		}
		return true
	}

	insert := func(p core.Vec2) {
		idx := len(points)
		points = append(points, p)
		active = append(active, idx)
		gx, gz := toGrid(p)
		grid[gz*gridW+gx] = idx
	}

	insert(core.Vec2{rng.Float64() * width, rng.Float64() * height})

	for len(active) > 0 {
		ai := rng.Intn(len(active))
		p := points[active[ai]]

		found := false
		for k := 0; k < cfg.MaxTries; k++ {
			// Random point in the annulus [r, 2r] around p
			angle := rng.Float64() * 2 * math.Pi
			dist := cfg.MinDist + rng.Float64()*cfg.MinDist
			candidate := core.Vec2{
				p.X() + dist*math.Cos(angle),
				p.Y() + dist*math.Sin(angle),
			}

			if isValid(candidate) {
				insert(candidate)
				found = true
				break
			}
		}

		if !found {
			// Swap with last, then pop
			active[ai] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}

	return points, nil
}

// NewRand returns a source seeded with *seed, or with the clock when seed is nil.
func NewRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// SampleBlueNoise is a convenience wrapper that creates the random source.
// A nil seed samples a different set on every call.
func SampleBlueNoise(minDist, width, height float64, maxTries int, seed *int64) ([]core.Vec2, error) {
	return GenerateBlueNoise(NewRand(seed), width, height, BlueNoiseConfig{MinDist: minDist, MaxTries: maxTries})
}
