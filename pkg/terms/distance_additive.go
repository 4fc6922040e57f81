package terms

import (
	"fmt"
	"math"

	"github.com/turtacn/dockscore/pkg/errors"
	"github.com/turtacn/dockscore/pkg/types/atom"
)

// ─────────────────────────────────────────────────────────────────────────────
// Vdw
// ─────────────────────────────────────────────────────────────────────────────

// Vdw is an I-J dual power law whose well has depth 1 at the optimal distance.
type Vdw struct {
	base
	I, J      uint
	Smoothing float64
	Cap       float64
}

// NewVdw returns vdw(i, j).  The exponents must differ and be non-zero.
// capValue bounds the value from above, also at r near zero.
func NewVdw(i, j uint, smoothing, capValue, cutoff float64) (*Vdw, error) {
	if err := checkCutoff(KindVdw, cutoff); err != nil {
		return nil, err
	}
	if i == 0 || j == 0 || i == j {
		return nil, errors.New(errors.CodeTermConfigInvalid, "exponents must be distinct positive integers").
			WithDetailf("%s: i=%d j=%d", KindVdw, i, j)
	}
	if smoothing < 0 {
		return nil, errors.New(errors.CodeTermConfigInvalid, "smoothing must not be negative").
			WithDetailf("%s: s=%g", KindVdw, smoothing)
	}
	return &Vdw{
		base:      base{name: fmt.Sprintf("vdw(i=%d, j=%d, s=%g, ^=%g, c=%g)", i, j, smoothing, capValue, cutoff), cutoff: cutoff},
		I:         i,
		J:         j,
		Smoothing: smoothing,
		Cap:       capValue,
	}, nil
}

// vdwCoefficients solves c_n/r^n + c_m/r^m for a minimum of -depth at position.
func vdwCoefficients(n, m uint, position, depth float64) (cn, cm float64) {
	fn, fm := float64(n), float64(m)
	cn = IntPow(position, n) * depth * fm / (fn - fm)
	cm = IntPow(position, m) * depth * fn / (fm - fn)
	return cn, cm
}

// EvalTypes evaluates ci/r^I + cj/r^J after smoothing r towards d0.
func (v *Vdw) EvalTypes(t1, t2 atom.XSType, r float64) float64 {
	d0 := atom.OptimalDistance(t1, t2)
	ci, cj := vdwCoefficients(v.I, v.J, d0, 1)

	// Flatten the bottom of the well by pulling r towards d0.
	switch {
	case r > d0+v.Smoothing:
		r -= v.Smoothing
	case r < d0-v.Smoothing:
		r += v.Smoothing
	default:
		r = d0
	}

	ri := IntPow(r, v.I)
	rj := IntPow(r, v.J)
	if ri > Epsilon && rj > Epsilon {
		return math.Min(v.Cap, ci/ri+cj/rj)
	}
	return v.Cap
}

func (v *Vdw) Eval(a, b *atom.Atom, r float64) (float64, error) {
	return v.EvalTypes(a.XS, b.XS, r), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Electrostatic
// ─────────────────────────────────────────────────────────────────────────────

// Electrostatic is a capped q1*q2/r^N Coulomb-like term.
type Electrostatic struct {
	base
	N   uint
	Cap float64
}

// NewElectrostatic returns electrostatic(n).
func NewElectrostatic(n uint, capValue, cutoff float64) (*Electrostatic, error) {
	if err := checkCutoff(KindElectrostatic, cutoff); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, errors.New(errors.CodeTermConfigInvalid, "exponent must be positive").
			WithDetail(KindElectrostatic)
	}
	return &Electrostatic{
		base: base{name: fmt.Sprintf("electrostatic(i=%d, ^=%g, c=%g)", n, capValue, cutoff), cutoff: cutoff},
		N:    n,
		Cap:  capValue,
	}, nil
}

// Eval returns q1*q2*min(Cap, 1/r^N).  When r^N underflows Epsilon the value
// saturates at q1*q2*Cap.
func (e *Electrostatic) Eval(a, b *atom.Atom, r float64) (float64, error) {
	q1q2 := a.Charge * b.Charge
	rn := IntPow(r, e.N)
	if rn < Epsilon {
		return q1q2 * e.Cap, nil
	}
	return q1q2 * math.Min(e.Cap, 1/rn), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// AD4Solvation
// ─────────────────────────────────────────────────────────────────────────────

// AD4Solvation is the AutoDock 4 volume-weighted desolvation term.
type AD4Solvation struct {
	base
	Sigma           float64
	SolvationQ      float64
	ChargeDependent bool
}

// NewAD4Solvation returns ad4_solvation(sigma, solvationQ).  With
// chargeDependent false the charge coefficient is ignored.
func NewAD4Solvation(sigma, solvationQ float64, chargeDependent bool, cutoff float64) (*AD4Solvation, error) {
	if err := checkCutoff(KindAD4Solvation, cutoff); err != nil {
		return nil, err
	}
	if err := checkPositive(KindAD4Solvation, "sigma", sigma); err != nil {
		return nil, err
	}
	q := 0
	if chargeDependent {
		q = 1
	}
	return &AD4Solvation{
		base: base{
			name:   fmt.Sprintf("ad4_solvation(d-sigma=%g, s/q=%g, q=%d, c=%g)", sigma, solvationQ, q, cutoff),
			cutoff: cutoff,
		},
		Sigma:           sigma,
		SolvationQ:      solvationQ,
		ChargeDependent: chargeDependent,
	}, nil
}

// CheckAtom rejects atoms whose solvation parameter cannot be resolved and
// charges that hold the saturation sentinel.
func (s *AD4Solvation) CheckAtom(a atom.Atom) error {
	if _, ok := atom.SolvationParameter(a); !ok {
		return errors.UnsupportedAtom("no solvation parameter for atom").
			WithDetailf("%s: xs=%s ad=%q", s.name, a.XS, a.AD)
	}
	if math.Abs(a.Charge) >= MaxFloat || math.IsNaN(a.Charge) {
		return errors.New(errors.CodeTermInvalidPairInput, "atom charge is not a finite value").
			WithDetailf("%s: charge=%g", s.name, a.Charge)
	}
	return nil
}

// Eval fails with a configuration error for atoms CheckAtom rejects.
func (s *AD4Solvation) Eval(a, b *atom.Atom, r float64) (float64, error) {
	if err := s.CheckAtom(*a); err != nil {
		return 0, err
	}
	if err := s.CheckAtom(*b); err != nil {
		return 0, err
	}
	solv1, _ := atom.SolvationParameter(*a)
	solv2, _ := atom.SolvationParameter(*b)
	vol1 := atom.Volume(*a)
	vol2 := atom.Volume(*b)

	k := 0.0
	if s.ChargeDependent {
		k = s.SolvationQ
	}
	return ((solv1+k*math.Abs(a.Charge))*vol2 + (solv2+k*math.Abs(b.Charge))*vol1) *
		Gaussian(r, 2*s.Sigma), nil
}

//Personal.AI order the ending
