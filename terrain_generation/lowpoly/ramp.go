package lowpoly

import (
	"fmt"
	"math"

	"lowpoly_terrain/terrain_generation/lowpoly/core"

	"github.com/lucasb-eyer/go-colorful"
)

// Ramp maps a normalized height to a color.
type Ramp interface {
	Evaluate(t float64) colorful.Color
}

// RampFunc adapts a plain function to Ramp.
type RampFunc func(t float64) colorful.Color

func (f RampFunc) Evaluate(t float64) colorful.Color { return f(t) }

// ColorStop pins a color at position At in [0, 1].
type ColorStop struct {
	At    float64
	Color colorful.Color
}

// ColorRamp is a piecewise linear gradient. Stops are sorted by At.
type ColorRamp struct {
	Stops []ColorStop
}

// DefaultColorRamp is water, sand, grass, rock and snow.
func DefaultColorRamp() ColorRamp {
	return ColorRamp{Stops: []ColorStop{
		{At: 0.00, Color: mustHex("#1f4e79")},
		{At: 0.15, Color: mustHex("#3a7bbf")},
		{At: 0.22, Color: mustHex("#d8c58a")},
		{At: 0.35, Color: mustHex("#5f9e3a")},
		{At: 0.60, Color: mustHex("#3d6b2a")},
		{At: 0.80, Color: mustHex("#7a6e64")},
		{At: 1.00, Color: mustHex("#f4f6f8")},
	}}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks that the ramp has at least one stop and that the stops are
// ascending inside [0, 1].
func (r ColorRamp) Validate() error {
	if len(r.Stops) == 0 {
		return fmt.Errorf("color ramp: no stops: %w", core.ErrInvalidParameter)
	}
	prev := math.Inf(-1)
	for i, s := range r.Stops {
		if !(s.At >= 0 && s.At <= 1) {
			return fmt.Errorf("color ramp: stop %d at %v is outside [0, 1]: %w", i, s.At, core.ErrInvalidParameter)
		}
		if s.At < prev {
			return fmt.Errorf("color ramp: stop %d at %v is out of order: %w", i, s.At, core.ErrInvalidParameter)
		}
		prev = s.At
	}
	return nil
}

// Evaluate returns the color at t. t is clamped to the first and last stop.
func (r ColorRamp) Evaluate(t float64) colorful.Color {
	n := len(r.Stops)
	if n == 0 {
		return colorful.Color{}
	}
	if t <= r.Stops[0].At {
		return r.Stops[0].Color
	}
	for i := 1; i < n; i++ {
		lo, hi := r.Stops[i-1], r.Stops[i]
		if t > hi.At {
			continue
		}
		span := hi.At - lo.At
		if span <= 0 {
			return hi.Color
		}
		return lo.Color.BlendRgb(hi.Color, (t-lo.At)/span).Clamped()
	}
	return r.Stops[n-1].Color
}
