package terms

import "math"

// Epsilon is the magnitude below which a value is treated as zero.
const Epsilon = 2.220446049250313e-16

// MaxFloat is the finite saturating sentinel returned instead of infinity.
const MaxFloat = math.MaxFloat64

// Gaussian returns exp(-(x/width)^2).
func Gaussian(x, width float64) float64 {
	t := x / width
	return math.Exp(-t * t)
}

// SlopeStep is a clamped linear ramp that is 0 at xBad and 1 at xGood.  Both
// orientations are supported: when xBad < xGood the ramp rises with x,
// otherwise it falls.
func SlopeStep(xBad, xGood, x float64) float64 {
	if xBad < xGood {
		if x <= xBad {
			return 0
		}
		if x >= xGood {
			return 1
		}
	} else {
		if x >= xBad {
			return 0
		}
		if x <= xGood {
			return 1
		}
	}
	return (x - xBad) / (xGood - xBad)
}

// SmoothDiv divides x by y without producing Inf or NaN.  A near-zero
// numerator yields 0 and a near-zero denominator yields ±MaxFloat with the
// sign of x*y.
func SmoothDiv(x, y float64) float64 {
	if math.Abs(x) < Epsilon {
		return 0
	}
	if math.Abs(y) < Epsilon {
		// y may be a signed zero; use the sign bits directly.
		if math.Signbit(x) == math.Signbit(y) {
			return MaxFloat
		}
		return -MaxFloat
	}
	return x / y
}

// IntPow computes x^n by repeated squaring.
func IntPow(x float64, n uint) float64 {
	result := 1.0
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}
	return result
}

//Personal.AI order the ending
