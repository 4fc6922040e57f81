package terms

import (
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/cast"

	"github.com/turtacn/dockscore/pkg/errors"
)

// Term kinds known to the built-in catalog.
const (
	KindGauss               = "gauss"
	KindRepulsion           = "repulsion"
	KindHydrophobic         = "hydrophobic"
	KindNonHydrophobic      = "non_hydrophobic"
	KindNonDirHBond         = "non_dir_h_bond"
	KindHalogenBond         = "halogen_bond"
	KindPiStacking          = "pi_stacking"
	KindSulfurAromatic      = "sulfur_aromatic"
	KindDesolvationImproved = "desolvation_improved"
	KindVdw                 = "vdw"
	KindElectrostatic       = "electrostatic"
	KindAD4Solvation        = "ad4_solvation"

	KindNumTorsAdd          = "num_tors_add"
	KindNumTorsSqr          = "num_tors_sqr"
	KindNumTorsSqrt         = "num_tors_sqrt"
	KindNumTorsDiv          = "num_tors_div"
	KindLigandLength        = "ligand_length"
	KindNumLigands          = "num_ligands"
	KindNumHeavyAtomsDiv    = "num_heavy_atoms_div"
	KindNumHeavyAtoms       = "num_heavy_atoms"
	KindNumHydrophobicAtoms = "num_hydrophobic_atoms"
)

// DefaultCutoff is the pairwise cutoff used when a spec does not name one.
const DefaultCutoff = 8.0

// ─────────────────────────────────────────────────────────────────────────────
// Params
// ─────────────────────────────────────────────────────────────────────────────

// Params holds the loosely typed parameters of a TermSpec as decoded from
// YAML, JSON or environment variables.
type Params map[string]any

// Float returns key as a float64, or def when the key is absent.
func (p Params) Float(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, errors.Wrap(err, errors.CodeTermConfigInvalid, "parameter is not a number").WithDetail(key)
	}
	return f, nil
}

// Uint returns key as a non-negative integer, or def when the key is absent.
// Fractional numbers are rejected rather than truncated.
func (p Params) Uint(key string, def uint) (uint, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}
	if f, ferr := cast.ToFloat64E(v); ferr == nil && (f != math.Trunc(f) || math.IsInf(f, 0)) {
		return 0, errors.New(errors.CodeTermConfigInvalid, "parameter is not an integer").
			WithDetailf("%s=%v", key, v)
	}
	i, err := cast.ToIntE(v)
	if err != nil || i < 0 {
		return 0, errors.New(errors.CodeTermConfigInvalid, "parameter is not a non-negative integer").
			WithDetailf("%s=%v", key, v).WithCause(err)
	}
	return uint(i), nil
}

// Bool returns key as a bool, or def when the key is absent.
func (p Params) Bool(key string, def bool) (bool, error) {
	v, ok := p[key]
	if !ok || v == nil {
		return def, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, errors.Wrap(err, errors.CodeTermConfigInvalid, "parameter is not a boolean").WithDetail(key)
	}
	return b, nil
}

// floats reads several float parameters at once; defaults are given in the
// same order as keys.
func (p Params) floats(keys []string, defs ...float64) ([]float64, error) {
	out := make([]float64, len(keys))
	for i, k := range keys {
		f, err := p.Float(k, defs[i])
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Catalog
// ─────────────────────────────────────────────────────────────────────────────

// Factory builds a term from its parameters.  The returned term must
// implement either PairwiseTerm or ConfIndependentTerm.
type Factory func(p Params) (Term, error)

type kindEntry struct {
	build  Factory
	params map[string]struct{}
}

var (
	catalogMu sync.RWMutex
	catalog   = map[string]kindEntry{}
)

// RegisterKind adds a term kind to the catalog.  params lists the accepted
// parameter keys; when it is empty any key is passed through to the factory.
func RegisterKind(kind string, build Factory, params ...string) error {
	return registerKind(kind, build, len(params) > 0, params)
}

func registerKind(kind string, build Factory, strict bool, params []string) error {
	if kind == "" || build == nil {
		return errors.InvalidParam("kind name and factory are required")
	}
	catalogMu.Lock()
	defer catalogMu.Unlock()
	if _, exists := catalog[kind]; exists {
		return errors.New(errors.CodeTermDuplicateKind, "term kind already registered").WithDetail(kind)
	}
	e := kindEntry{build: build}
	if strict {
		e.params = make(map[string]struct{}, len(params))
		for _, k := range params {
			e.params[k] = struct{}{}
		}
	}
	catalog[kind] = e
	return nil
}

func mustRegisterKind(kind string, build Factory, params ...string) {
	if err := registerKind(kind, build, true, params); err != nil {
		panic(err)
	}
}

// Kinds returns every registered kind name in sorted order.
func Kinds() []string {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	out := make([]string, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// KnownKind reports whether kind is in the catalog.
func KnownKind(kind string) bool {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	_, ok := catalog[kind]
	return ok
}

// Build constructs the term described by spec.
func Build(spec TermSpec) (Term, error) {
	catalogMu.RLock()
	e, ok := catalog[spec.Kind]
	catalogMu.RUnlock()
	if !ok {
		return nil, errors.New(errors.CodeTermUnknownKind, "unknown term kind").WithDetail(spec.Kind)
	}
	if e.params != nil {
		var unknown []string
		for k := range spec.Params {
			if _, ok := e.params[k]; !ok {
				unknown = append(unknown, k)
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			return nil, errors.New(errors.CodeTermConfigInvalid, "unknown parameter").
				WithDetailf("%s: %s", spec.Kind, strings.Join(unknown, ","))
		}
	}
	t, err := e.build(spec.Params)
	if err != nil {
		return nil, err
	}
	switch t.(type) {
	case PairwiseTerm, ConfIndependentTerm:
		return t, nil
	}
	return nil, errors.Internal("factory returned a term with no evaluation capability").WithDetail(spec.Kind)
}

// ─────────────────────────────────────────────────────────────────────────────
// Built-in kinds
// ─────────────────────────────────────────────────────────────────────────────

func rampFactory[T Term](ctor func(good, bad, cutoff float64) (T, error)) Factory {
	return func(p Params) (Term, error) {
		v, err := p.floats([]string{"good", "bad", "cutoff"}, 0, 0, DefaultCutoff)
		if err != nil {
			return nil, err
		}
		t, err := ctor(v[0], v[1], v[2])
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}

func confFactory(ctor func() ConfIndependentTerm) Factory {
	return func(Params) (Term, error) { return ctor(), nil }
}

func init() {
	mustRegisterKind(KindGauss, func(p Params) (Term, error) {
		v, err := p.floats([]string{"offset", "width", "cutoff"}, 0, 0.5, DefaultCutoff)
		if err != nil {
			return nil, err
		}
		return NewGauss(v[0], v[1], v[2])
	}, "offset", "width", "cutoff")

	mustRegisterKind(KindRepulsion, func(p Params) (Term, error) {
		v, err := p.floats([]string{"offset", "cutoff"}, 0, DefaultCutoff)
		if err != nil {
			return nil, err
		}
		return NewRepulsion(v[0], v[1])
	}, "offset", "cutoff")

	rampParams := []string{"good", "bad", "cutoff"}
	mustRegisterKind(KindHydrophobic, rampFactory(NewHydrophobic), rampParams...)
	mustRegisterKind(KindNonHydrophobic, rampFactory(NewNonHydrophobic), rampParams...)
	mustRegisterKind(KindNonDirHBond, rampFactory(NewNonDirHBond), rampParams...)
	mustRegisterKind(KindHalogenBond, rampFactory(NewHalogenBond), rampParams...)
	mustRegisterKind(KindPiStacking, rampFactory(NewPiStacking), rampParams...)
	mustRegisterKind(KindSulfurAromatic, rampFactory(NewSulfurAromatic), rampParams...)

	mustRegisterKind(KindDesolvationImproved, func(p Params) (Term, error) {
		v, err := p.floats([]string{"weight", "cutoff"}, 0.02, DefaultCutoff)
		if err != nil {
			return nil, err
		}
		return NewDesolvationImproved(v[0], v[1])
	}, "weight", "cutoff")

	mustRegisterKind(KindVdw, func(p Params) (Term, error) {
		i, err := p.Uint("i", 4)
		if err != nil {
			return nil, err
		}
		j, err := p.Uint("j", 8)
		if err != nil {
			return nil, err
		}
		v, err := p.floats([]string{"smoothing", "cap", "cutoff"}, 0, 100, DefaultCutoff)
		if err != nil {
			return nil, err
		}
		return NewVdw(i, j, v[0], v[1], v[2])
	}, "i", "j", "smoothing", "cap", "cutoff")

	mustRegisterKind(KindElectrostatic, func(p Params) (Term, error) {
		n, err := p.Uint("n", 1)
		if err != nil {
			return nil, err
		}
		v, err := p.floats([]string{"cap", "cutoff"}, 100, DefaultCutoff)
		if err != nil {
			return nil, err
		}
		return NewElectrostatic(n, v[0], v[1])
	}, "n", "cap", "cutoff")

	mustRegisterKind(KindAD4Solvation, func(p Params) (Term, error) {
		v, err := p.floats([]string{"sigma", "solvation_q", "cutoff"}, 3.6, 0.01097, DefaultCutoff)
		if err != nil {
			return nil, err
		}
		q, err := p.Bool("charge_dependent", true)
		if err != nil {
			return nil, err
		}
		return NewAD4Solvation(v[0], v[1], q, v[2])
	}, "sigma", "solvation_q", "charge_dependent", "cutoff")

	// Conformation-independent kinds take no parameters.
	for kind, ctor := range map[string]func() ConfIndependentTerm{
		KindNumTorsAdd:          NewNumTorsAdd,
		KindNumTorsSqr:          NewNumTorsSqr,
		KindNumTorsSqrt:         NewNumTorsSqrt,
		KindNumTorsDiv:          NewNumTorsDiv,
		KindLigandLength:        NewLigandLength,
		KindNumLigands:          NewNumLigands,
		KindNumHeavyAtomsDiv:    NewNumHeavyAtomsDiv,
		KindNumHeavyAtoms:       NewNumHeavyAtoms,
		KindNumHydrophobicAtoms: NewNumHydrophobicAtoms,
	} {
		mustRegisterKind(kind, confFactory(ctor))
	}
}

//Personal.AI order the ending
