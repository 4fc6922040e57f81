package terms

import "math"

// confTerm implements ConfIndependentTerm for the single-weight update rules.
type confTerm struct {
	name   string
	update func(in *ConfInputs, x, w float64) float64
}

func (c *confTerm) Name() string { return c.name }
func (c *confTerm) Size() int    { return 1 }

func (c *confTerm) Eval(in *ConfInputs, x float64, w []float64) float64 {
	return c.update(in, x, w[0])
}

var sqrt5 = math.Sqrt(5)

// Conformation-independent term constructors.  Each consumes one weight.

// NewNumTorsAdd adds w per torsion.
func NewNumTorsAdd() ConfIndependentTerm {
	return &confTerm{KindNumTorsAdd, func(in *ConfInputs, x, w float64) float64 {
		return x + w*in.NumTors
	}}
}

// NewNumTorsSqr adds 0.1*w*tors²/5.
func NewNumTorsSqr() ConfIndependentTerm {
	return &confTerm{KindNumTorsSqr, func(in *ConfInputs, x, w float64) float64 {
		return x + 0.1*w*in.NumTors*in.NumTors/5
	}}
}

// NewNumTorsSqrt adds 0.1*w*sqrt(tors)/sqrt(5).
func NewNumTorsSqrt() ConfIndependentTerm {
	return &confTerm{KindNumTorsSqrt, func(in *ConfInputs, x, w float64) float64 {
		return x + 0.1*w*math.Sqrt(in.NumTors)/sqrt5
	}}
}

// NewNumTorsDiv divides the score by a torsion-count penalty; w is expected in
// [-1, 1] so the per-torsion factor stays within [0, 0.2].
func NewNumTorsDiv() ConfIndependentTerm {
	return &confTerm{KindNumTorsDiv, func(in *ConfInputs, x, w float64) float64 {
		return SmoothDiv(x, 1+0.1*(w+1)*in.NumTors/5)
	}}
}

// NewLigandLength adds w times the summed ligand lengths.
func NewLigandLength() ConfIndependentTerm {
	return &confTerm{KindLigandLength, func(in *ConfInputs, x, w float64) float64 {
		return x + w*in.LigandLengthsSum
	}}
}

func NewNumLigands() ConfIndependentTerm {
	return &confTerm{KindNumLigands, func(in *ConfInputs, x, w float64) float64 {
		return x + w*in.NumLigands
	}}
}

// NewNumHeavyAtomsDiv divides by 1 + 0.05*w*heavy atoms.
func NewNumHeavyAtomsDiv() ConfIndependentTerm {
	return &confTerm{KindNumHeavyAtomsDiv, func(in *ConfInputs, x, w float64) float64 {
		return SmoothDiv(x, 1+0.05*w*in.NumHeavyAtoms)
	}}
}

// NewNumHeavyAtoms adds 0.05*w per heavy atom.
func NewNumHeavyAtoms() ConfIndependentTerm {
	return &confTerm{KindNumHeavyAtoms, func(in *ConfInputs, x, w float64) float64 {
		return x + 0.05*w*in.NumHeavyAtoms
	}}
}

func NewNumHydrophobicAtoms() ConfIndependentTerm {
	return &confTerm{KindNumHydrophobicAtoms, func(in *ConfInputs, x, w float64) float64 {
		return x + 0.05*w*in.NumHydrophobicAtoms
	}}
}

//Personal.AI order the ending
