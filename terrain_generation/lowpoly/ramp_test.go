package lowpoly

import (
	"errors"
	"math"
	"testing"

	"lowpoly_terrain/terrain_generation/lowpoly/core"

	"github.com/lucasb-eyer/go-colorful"
)

func TestColorRampEvaluate(t *testing.T) {
	black := colorful.Color{R: 0, G: 0, B: 0}
	white := colorful.Color{R: 1, G: 1, B: 1}
	ramp := ColorRamp{Stops: []ColorStop{{At: 0.2, Color: black}, {At: 0.6, Color: white}}}

	for _, tc := range []struct {
		name string
		t    float64
		want float64
	}{
		{"below_first", 0, 0},
		{"first", 0.2, 0},
		{"middle", 0.4, 0.5},
		{"last", 0.6, 1},
		{"above_last", 1, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := ramp.Evaluate(tc.t)
			if math.Abs(got.R-tc.want) > 1e-12 || math.Abs(got.G-tc.want) > 1e-12 || math.Abs(got.B-tc.want) > 1e-12 {
				t.Errorf("Evaluate(%v) = %+v, want gray %v", tc.t, got, tc.want)
			}
		})
	}
}

func TestColorRampValidate(t *testing.T) {
	c := colorful.Color{R: 1}
	for _, tc := range []struct {
		name  string
		stops []ColorStop
		err   error
	}{
		{"default", DefaultColorRamp().Stops, nil},
		{"single", []ColorStop{{At: 0.5, Color: c}}, nil},
		{"empty", nil, core.ErrInvalidParameter},
		{"out_of_order", []ColorStop{{At: 0.5, Color: c}, {At: 0.1, Color: c}}, core.ErrInvalidParameter},
		{"out_of_range", []ColorStop{{At: 1.5, Color: c}}, core.ErrInvalidParameter},
		{"nan", []ColorStop{{At: math.NaN(), Color: c}}, core.ErrInvalidParameter},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if err := (ColorRamp{Stops: tc.stops}).Validate(); !errors.Is(err, tc.err) {
				t.Errorf("err = %v, want %v", err, tc.err)
			}
		})
	}
}

func TestRampFunc(t *testing.T) {
	r := RampFunc(func(t float64) colorful.Color { return colorful.Color{R: t} })
	if got := r.Evaluate(0.3); got.R != 0.3 {
		t.Errorf("got %+v", got)
	}
}
