package terms

import (
	"fmt"
	"math"

	"github.com/turtacn/dockscore/pkg/errors"
	"github.com/turtacn/dockscore/pkg/types/atom"
)

// Fixed offsets added to the optimal distance by the modern contact terms.
const (
	halogenBondOffset    = 0.3
	piStackingOffset     = 1.0
	sulfurAromaticOffset = 0.5
)

// Polarity factors and window of DesolvationImproved.
const (
	desolvPolarPolar  = 1.0
	desolvHydrophobic = -0.3
	desolvMixed       = 0.3
	desolvWidth       = 1.5
	desolvWindow      = 2.0
)

func checkCutoff(kind string, cutoff float64) error {
	if !(cutoff > 0) || math.IsInf(cutoff, 0) {
		return errors.New(errors.CodeTermConfigInvalid, "cutoff must be a positive finite distance").
			WithDetailf("%s: cutoff=%g", kind, cutoff)
	}
	return nil
}

func checkPositive(kind, param string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return errors.New(errors.CodeTermConfigInvalid, "parameter must be positive").
			WithDetailf("%s: %s=%g", kind, param, v)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Gauss
// ─────────────────────────────────────────────────────────────────────────────

// Gauss is a gaussian well centred at optimal distance + Offset.
type Gauss struct {
	base
	Offset float64
	Width  float64
}

// NewGauss returns gauss(offset, width).  width must be positive.
func NewGauss(offset, width, cutoff float64) (*Gauss, error) {
	if err := checkCutoff(KindGauss, cutoff); err != nil {
		return nil, err
	}
	if err := checkPositive(KindGauss, "width", width); err != nil {
		return nil, err
	}
	return &Gauss{
		base:   base{name: fmt.Sprintf("gauss(o=%g, w=%g, c=%g)", offset, width, cutoff), cutoff: cutoff},
		Offset: offset,
		Width:  width,
	}, nil
}

// EvalTypes evaluates the well on the surface distance r - (d0 + Offset).
func (g *Gauss) EvalTypes(t1, t2 atom.XSType, r float64) float64 {
	return Gaussian(r-(atom.OptimalDistance(t1, t2)+g.Offset), g.Width)
}

// Eval is EvalTypes on the atoms' XS types; it never fails.
func (g *Gauss) Eval(a, b *atom.Atom, r float64) (float64, error) {
	return g.EvalTypes(a.XS, b.XS, r), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Repulsion
// ─────────────────────────────────────────────────────────────────────────────

// Repulsion is the squared overlap below optimal distance + Offset.
type Repulsion struct {
	base
	Offset float64
}

// NewRepulsion returns repulsion(offset).
func NewRepulsion(offset, cutoff float64) (*Repulsion, error) {
	if err := checkCutoff(KindRepulsion, cutoff); err != nil {
		return nil, err
	}
	return &Repulsion{
		base:   base{name: fmt.Sprintf("repulsion(o=%g)", offset), cutoff: cutoff},
		Offset: offset,
	}, nil
}

// EvalTypes is zero once the surface distance turns positive.
func (p *Repulsion) EvalTypes(t1, t2 atom.XSType, r float64) float64 {
	d := r - (atom.OptimalDistance(t1, t2) + p.Offset)
	if d > 0 {
		return 0
	}
	return d * d
}

func (p *Repulsion) Eval(a, b *atom.Atom, r float64) (float64, error) {
	return p.EvalTypes(a.XS, b.XS, r), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Ramp terms
// ─────────────────────────────────────────────────────────────────────────────

// ramp holds the good/bad pair shared by every slope-step term.  The ramp is
// evaluated on the surface distance r - (d0 + offset).
type ramp struct {
	base
	Good float64
	Bad  float64
}

func newRamp(kind string, good, bad, cutoff float64, withCutoffInName bool) (ramp, error) {
	if err := checkCutoff(kind, cutoff); err != nil {
		return ramp{}, err
	}
	name := fmt.Sprintf("%s(g=%g, b=%g, c=%g)", kind, good, bad, cutoff)
	if !withCutoffInName {
		name = fmt.Sprintf("%s(g=%g, b=%g)", kind, good, bad)
	}
	return ramp{base: base{name: name, cutoff: cutoff}, Good: good, Bad: bad}, nil
}

func (p ramp) step(t1, t2 atom.XSType, r, offset float64) float64 {
	return SlopeStep(p.Bad, p.Good, r-(atom.OptimalDistance(t1, t2)+offset))
}

// Hydrophobic rewards contacts between two hydrophobic atoms.
type Hydrophobic struct{ ramp }

// NewHydrophobic returns a falling ramp when bad > good.
func NewHydrophobic(good, bad, cutoff float64) (*Hydrophobic, error) {
	r, err := newRamp(KindHydrophobic, good, bad, cutoff, true)
	if err != nil {
		return nil, err
	}
	return &Hydrophobic{r}, nil
}

func (h *Hydrophobic) EvalTypes(t1, t2 atom.XSType, r float64) float64 {
	if t1.IsHydrophobic() && t2.IsHydrophobic() {
		return h.step(t1, t2, r, 0)
	}
	return 0
}

func (h *Hydrophobic) Eval(a, b *atom.Atom, r float64) (float64, error) {
	return h.EvalTypes(a.XS, b.XS, r), nil
}

// NonHydrophobic rewards contacts between two polar atoms.
type NonHydrophobic struct{ ramp }

// NewNonHydrophobic returns the polar counterpart of NewHydrophobic.
func NewNonHydrophobic(good, bad, cutoff float64) (*NonHydrophobic, error) {
	r, err := newRamp(KindNonHydrophobic, good, bad, cutoff, true)
	if err != nil {
		return nil, err
	}
	return &NonHydrophobic{r}, nil
}

func (h *NonHydrophobic) EvalTypes(t1, t2 atom.XSType, r float64) float64 {
	if !t1.IsHydrophobic() && !t2.IsHydrophobic() {
		return h.step(t1, t2, r, 0)
	}
	return 0
}

func (h *NonHydrophobic) Eval(a, b *atom.Atom, r float64) (float64, error) {
	return h.EvalTypes(a.XS, b.XS, r), nil
}

// NonDirHBond is a non-directional hydrogen bond between a donor and an
// acceptor.
type NonDirHBond struct{ ramp }

// NewNonDirHBond returns non_dir_h_bond(good, bad).  The default good=-0.7,
// bad=0 ramp reaches 1 at 0.7 Å inside the optimal distance.
func NewNonDirHBond(good, bad, cutoff float64) (*NonDirHBond, error) {
	r, err := newRamp(KindNonDirHBond, good, bad, cutoff, false)
	if err != nil {
		return nil, err
	}
	return &NonDirHBond{r}, nil
}

func (h *NonDirHBond) EvalTypes(t1, t2 atom.XSType, r float64) float64 {
	if atom.HBondPossible(t1, t2) {
		return h.step(t1, t2, r, 0)
	}
	return 0
}

func (h *NonDirHBond) Eval(a, b *atom.Atom, r float64) (float64, error) {
	return h.EvalTypes(a.XS, b.XS, r), nil
}

// HalogenBond is a Cl/Br/I contact with a hydrogen-bond acceptor.
type HalogenBond struct{ ramp }

// NewHalogenBond returns halogen_bond(good, bad).  The ramp is offset by 0.3 Å.
func NewHalogenBond(good, bad, cutoff float64) (*HalogenBond, error) {
	r, err := newRamp(KindHalogenBond, good, bad, cutoff, true)
	if err != nil {
		return nil, err
	}
	return &HalogenBond{r}, nil
}

// EvalTypes is symmetric in t1 and t2.
func (h *HalogenBond) EvalTypes(t1, t2 atom.XSType, r float64) float64 {
	if (t1.IsHalogen() && t2.IsAcceptor()) || (t2.IsHalogen() && t1.IsAcceptor()) {
		return h.step(t1, t2, r, halogenBondOffset)
	}
	return 0
}

func (h *HalogenBond) Eval(a, b *atom.Atom, r float64) (float64, error) {
	return h.EvalTypes(a.XS, b.XS, r), nil
}

// PiStacking is a contact between two aromatic carbons.
type PiStacking struct{ ramp }

// NewPiStacking returns pi_stacking(good, bad), offset by 1 Å.
func NewPiStacking(good, bad, cutoff float64) (*PiStacking, error) {
	r, err := newRamp(KindPiStacking, good, bad, cutoff, true)
	if err != nil {
		return nil, err
	}
	return &PiStacking{r}, nil
}

func (p *PiStacking) EvalTypes(t1, t2 atom.XSType, r float64) float64 {
	if t1.IsAromatic() && t2.IsAromatic() {
		return p.step(t1, t2, r, piStackingOffset)
	}
	return 0
}

func (p *PiStacking) Eval(a, b *atom.Atom, r float64) (float64, error) {
	return p.EvalTypes(a.XS, b.XS, r), nil
}

// SulfurAromatic is a sulfur contact with an aromatic carbon.
type SulfurAromatic struct{ ramp }

// NewSulfurAromatic returns sulfur_aromatic(good, bad), offset by 0.5 Å.
func NewSulfurAromatic(good, bad, cutoff float64) (*SulfurAromatic, error) {
	r, err := newRamp(KindSulfurAromatic, good, bad, cutoff, true)
	if err != nil {
		return nil, err
	}
	return &SulfurAromatic{r}, nil
}

func (s *SulfurAromatic) EvalTypes(t1, t2 atom.XSType, r float64) float64 {
	if (t1.IsSulfur() && t2.IsAromatic()) || (t2.IsSulfur() && t1.IsAromatic()) {
		return s.step(t1, t2, r, sulfurAromaticOffset)
	}
	return 0
}

func (s *SulfurAromatic) Eval(a, b *atom.Atom, r float64) (float64, error) {
	return s.EvalTypes(a.XS, b.XS, r), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// DesolvationImproved
// ─────────────────────────────────────────────────────────────────────────────

// DesolvationImproved penalises burying polar atoms and mildly rewards burying
// hydrophobic ones.  It vanishes beyond optimal distance + 2 Å.
type DesolvationImproved struct {
	base
	Weight float64
}

// NewDesolvationImproved returns desolvation_improved(weight).
func NewDesolvationImproved(weight, cutoff float64) (*DesolvationImproved, error) {
	if err := checkCutoff(KindDesolvationImproved, cutoff); err != nil {
		return nil, err
	}
	return &DesolvationImproved{
		base:   base{name: fmt.Sprintf("desolvation_improved(w=%g, c=%g)", weight, cutoff), cutoff: cutoff},
		Weight: weight,
	}, nil
}

// EvalTypes scales a width-1.5 gaussian by the pair's polarity factor: 1 for
// polar/polar, -0.3 for hydrophobic/hydrophobic and 0.3 otherwise.
func (d *DesolvationImproved) EvalTypes(t1, t2 atom.XSType, r float64) float64 {
	h1, h2 := t1.IsHydrophobic(), t2.IsHydrophobic()
	factor := desolvMixed
	switch {
	case !h1 && !h2:
		factor = desolvPolarPolar
	case h1 && h2:
		factor = desolvHydrophobic
	}
	d0 := atom.OptimalDistance(t1, t2)
	if r < d0+desolvWindow {
		return d.Weight * factor * Gaussian(r-d0, desolvWidth)
	}
	return 0
}

func (d *DesolvationImproved) Eval(a, b *atom.Atom, r float64) (float64, error) {
	return d.EvalTypes(a.XS, b.XS, r), nil
}

//Personal.AI order the ending
