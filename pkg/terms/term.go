// Package terms implements the scoring-term framework: the numeric primitives
// shared by every term, the pairwise and conformation-independent term
// families, a declarative catalog that maps term kinds to constructors, and
// the Registry that assembles a fixed, ordered set of terms for one scoring
// configuration.
//
// Terms are immutable after construction and pure to evaluate, so a single
// Registry can be shared by any number of goroutines without locking.
//
// Pairwise terms never check their own cutoff.  Callers must only evaluate
// pairs already known to lie within Cutoff(); Registry.MaxCutoff gives the
// bound a spatial pruning layer should use.
package terms

import (
	"math"

	"github.com/turtacn/dockscore/pkg/errors"
	"github.com/turtacn/dockscore/pkg/types/atom"
)

// ─────────────────────────────────────────────────────────────────────────────
// Capability interfaces
// ─────────────────────────────────────────────────────────────────────────────

// Term is the behaviour shared by every scoring term.
type Term interface {
	// Name is a parameter-encoded diagnostic label.  It is never used for
	// dispatch.
	Name() string
}

// PairwiseTerm contributes an energy for one atom pair at separation r.
type PairwiseTerm interface {
	Term
	Cutoff() float64
	// Eval returns the contribution of the pair.  The only error it can
	// return is a configuration error for atoms the term cannot interpret.
	Eval(a, b *atom.Atom, r float64) (float64, error)
}

// TypedTerm is a PairwiseTerm that depends only on the two XS types and the
// distance.  Such terms can be precomputed into per-type-pair tables.
type TypedTerm interface {
	PairwiseTerm
	EvalTypes(t1, t2 atom.XSType, r float64) float64
}

// AtomChecker is implemented by pairwise terms that need more than the XS type
// of an atom.  CheckAtom reports a configuration error for atoms the term
// would reject at evaluation time.
type AtomChecker interface {
	CheckAtom(a atom.Atom) error
}

// ConfInputs holds the whole-ligand statistics consumed by
// conformation-independent terms.
type ConfInputs struct {
	NumTors             float64 `json:"num_tors"`
	NumHeavyAtoms       float64 `json:"num_heavy_atoms"`
	NumHydrophobicAtoms float64 `json:"num_hydrophobic_atoms"`
	LigandLengthsSum    float64 `json:"ligand_lengths_sum"`
	NumLigands          float64 `json:"num_ligands"`
}

// Validate rejects negative and non-finite statistics, which would make
// num_tors_sqrt and the division terms non-finite.
func (in *ConfInputs) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"num_tors", in.NumTors},
		{"num_heavy_atoms", in.NumHeavyAtoms},
		{"num_hydrophobic_atoms", in.NumHydrophobicAtoms},
		{"ligand_lengths_sum", in.LigandLengthsSum},
		{"num_ligands", in.NumLigands},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return errors.New(errors.CodeTermInvalidPairInput, "ligand statistic must be finite and non-negative").
				WithDetailf("%s=%g", f.name, f.v)
		}
	}
	return nil
}

// ConfIndependentTerm adjusts a running score from whole-ligand statistics.
type ConfIndependentTerm interface {
	Term
	// Size is the number of weights the term consumes.
	Size() int
	// Eval returns the updated score.  w holds exactly Size() weights.
	Eval(in *ConfInputs, x float64, w []float64) float64
}

// ─────────────────────────────────────────────────────────────────────────────
// Shared building blocks
// ─────────────────────────────────────────────────────────────────────────────

// base carries the name and cutoff every pairwise term reports.
type base struct {
	name   string
	cutoff float64
}

func (b base) Name() string    { return b.name }
func (b base) Cutoff() float64 { return b.cutoff }

//Personal.AI order the ending
