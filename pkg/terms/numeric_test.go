package terms_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turtacn/dockscore/pkg/terms"
)

func TestGaussian(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, terms.Gaussian(0, 0.5))
	assert.InDelta(t, math.Exp(-1), terms.Gaussian(0.5, 0.5), 1e-15)
	assert.InDelta(t, math.Exp(-1), terms.Gaussian(-0.5, 0.5), 1e-15)
	assert.InDelta(t, math.Exp(-4), terms.Gaussian(3, 1.5), 1e-15)
}

func TestSlopeStep(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name         string
		bad, good, x float64
		want         float64
	}{
		{"rising below bad", 0, 1, -1, 0},
		{"rising at bad", 0, 1, 0, 0},
		{"rising midpoint", 0, 1, 0.25, 0.25},
		{"rising at good", 0, 1, 1, 1},
		{"rising above good", 0, 1, 5, 1},
		{"falling above bad", 1.5, 0.5, 2, 0},
		{"falling at bad", 1.5, 0.5, 1.5, 0},
		{"falling midpoint", 1.5, 0.5, 1.0, 0.5},
		{"falling at good", 1.5, 0.5, 0.5, 1},
		{"falling below good", 1.5, 0.5, -3, 1},
		{"hbond ramp", 0, -0.7, -0.35, 0.5},
		{"degenerate step", 1, 1, 0.5, 1},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tc.want, terms.SlopeStep(tc.bad, tc.good, tc.x), 1e-12)
		})
	}
}

func TestSmoothDiv(t *testing.T) {
	t.Parallel()

	for _, y := range []float64{0, 1, -3, 1e-300} {
		assert.Equal(t, 0.0, terms.SmoothDiv(0, y))
	}
	assert.Equal(t, 0.0, terms.SmoothDiv(1e-17, 5))
	assert.Equal(t, terms.MaxFloat, terms.SmoothDiv(5, 0))
	assert.Equal(t, -terms.MaxFloat, terms.SmoothDiv(-5, 0))
	assert.Equal(t, -terms.MaxFloat, terms.SmoothDiv(5, -1e-20))
	assert.Equal(t, terms.MaxFloat, terms.SmoothDiv(-5, -1e-20))
	assert.Equal(t, 2.5, terms.SmoothDiv(5, 2))

	assert.False(t, math.IsInf(terms.SmoothDiv(5, 0), 0))
}

func TestIntPow(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, terms.IntPow(3.7, 0))
	assert.Equal(t, 3.7, terms.IntPow(3.7, 1))
	assert.InDelta(t, 3.7*3.7, terms.IntPow(3.7, 2), 1e-12)
	assert.InDelta(t, math.Pow(1.9, 8), terms.IntPow(1.9, 8), 1e-9)
	assert.InDelta(t, math.Pow(-2, 5), terms.IntPow(-2, 5), 1e-12)
	assert.Equal(t, 0.0, terms.IntPow(0, 4))
}

//Personal.AI order the ending
