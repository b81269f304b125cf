package halftone_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/bookpictures/halftone"
)

func TestMapDensity(t *testing.T) {
	tests := []struct {
		name      string
		value     uint32
		curve     halftone.Curve
		maxInput  uint32
		maxOutput uint32
		want      uint32
	}{
		{name: "zero", value: 0, curve: halftone.Identity, maxInput: 100, maxOutput: 10, want: 0},
		{name: "full", value: 100, curve: halftone.Identity, maxInput: 100, maxOutput: 10, want: 10},
		{name: "half", value: 50, curve: halftone.Identity, maxInput: 100, maxOutput: 10, want: 5},
		{name: "rounds half away from zero", value: 25, curve: halftone.Identity, maxInput: 100, maxOutput: 10, want: 3},
		{name: "above max input clamps", value: 200, curve: halftone.Identity, maxInput: 100, maxOutput: 10, want: 10},
		{name: "sqrt", value: 25, curve: halftone.Sqrt, maxInput: 100, maxOutput: 10, want: 5},
		{name: "power", value: 50, curve: halftone.Power(2), maxInput: 100, maxOutput: 8, want: 2},
		{name: "negative curve clamps", value: 50, curve: func(v float64) float64 { return -v }, maxInput: 100, maxOutput: 10, want: 0},
		{name: "nan curve", value: 50, curve: func(float64) float64 { return math.NaN() }, maxInput: 100, maxOutput: 10, want: 0},
		{name: "steep curve clamps", value: 80, curve: func(v float64) float64 { return 3 * v }, maxInput: 100, maxOutput: 10, want: 10},
		{name: "zero max input", value: 5, curve: halftone.Identity, maxInput: 0, maxOutput: 10, want: 0},
		{name: "zero max output", value: 5, curve: halftone.Identity, maxInput: 10, maxOutput: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, halftone.MapDensity(tt.value, tt.curve, tt.maxInput, tt.maxOutput))
		})
	}
}

func TestMapDensityStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	curves := []halftone.Curve{halftone.Identity, halftone.Sqrt, halftone.Power(0.01), halftone.Power(40)}
	for range 5000 {
		maxInput := rng.Uint32N(1<<20) + 1
		maxOutput := rng.Uint32N(400)
		value := rng.Uint32N(2 * maxInput)
		for _, c := range curves {
			got := halftone.MapDensity(value, c, maxInput, maxOutput)
			assert.LessOrEqual(t, got, maxOutput)
		}
	}
}

func TestMapDensityMonotonic(t *testing.T) {
	for _, gamma := range []float64{0.1, 0.5, 1, 2.2, 10} {
		curve := halftone.Power(gamma)
		prev := uint32(0)
		for v := uint32(0); v <= 255*255; v += 97 {
			got := halftone.MapDensity(v, curve, 255*255, 64)
			assert.GreaterOrEqual(t, got, prev, "gamma %v value %d", gamma, v)
			prev = got
		}
	}
}

func TestMapDensityIsPure(t *testing.T) {
	curve := halftone.Power(0.7)
	first := halftone.MapDensity(1234, curve, 65025, 16)
	_ = halftone.MapDensity(60000, curve, 65025, 16)
	assert.Equal(t, first, halftone.MapDensity(1234, curve, 65025, 16))
}
