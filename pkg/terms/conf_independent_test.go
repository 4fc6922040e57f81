package terms_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turtacn/dockscore/pkg/errors"
	"github.com/turtacn/dockscore/pkg/terms"
)

func TestConfIndependent_Updates(t *testing.T) {
	t.Parallel()

	in := &terms.ConfInputs{
		NumTors:             4,
		NumHeavyAtoms:       20,
		NumHydrophobicAtoms: 6,
		LigandLengthsSum:    9,
		NumLigands:          2,
	}
	const x, w = -8.0, 0.5

	cases := []struct {
		term terms.ConfIndependentTerm
		name string
		want float64
	}{
		{terms.NewNumTorsAdd(), "num_tors_add", x + w*4},
		{terms.NewNumTorsSqr(), "num_tors_sqr", x + 0.1*w*16/5},
		{terms.NewNumTorsSqrt(), "num_tors_sqrt", x + 0.1*w*2/math.Sqrt(5)},
		{terms.NewNumTorsDiv(), "num_tors_div", x / (1 + 0.1*(w+1)*4/5)},
		{terms.NewLigandLength(), "ligand_length", x + w*9},
		{terms.NewNumLigands(), "num_ligands", x + w*2},
		{terms.NewNumHeavyAtomsDiv(), "num_heavy_atoms_div", x / (1 + 0.05*w*20)},
		{terms.NewNumHeavyAtoms(), "num_heavy_atoms", x + 0.05*w*20},
		{terms.NewNumHydrophobicAtoms(), "num_hydrophobic_atoms", x + 0.05*w*6},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.name, tc.term.Name())
			assert.Equal(t, 1, tc.term.Size())
			assert.InDelta(t, tc.want, tc.term.Eval(in, x, []float64{w}), 1e-12)
		})
	}
}

func TestNumTorsDiv_VanishingFactorIsNoop(t *testing.T) {
	t.Parallel()

	// A raw weight of -1 makes the per-torsion factor 0.1*(w+1) vanish.
	in := &terms.ConfInputs{NumTors: 10}
	assert.Equal(t, 2.0, terms.NewNumTorsDiv().Eval(in, 2, []float64{-1}))

	// A raw weight of 0 still divides by 1 + 0.1*tors/5.
	assert.InDelta(t, 2.0/1.2, terms.NewNumTorsDiv().Eval(in, 2, []float64{0}), 1e-12)
}

func TestNumTorsDiv_DegenerateDenominator(t *testing.T) {
	t.Parallel()

	// 1 + 0.1*(w+1)*5/5 == 0 when w = -11.
	in := &terms.ConfInputs{NumTors: 5}
	got := terms.NewNumTorsDiv().Eval(in, 3, []float64{-11})
	assert.False(t, math.IsInf(got, 0))
	assert.False(t, math.IsNaN(got))

	assert.Equal(t, 0.0, terms.NewNumHeavyAtomsDiv().Eval(&terms.ConfInputs{}, 0, []float64{1}))
}

func TestConfInputs_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&terms.ConfInputs{}).Validate())
	assert.NoError(t, (&terms.ConfInputs{NumTors: 3, NumHeavyAtoms: 20, NumLigands: 1}).Validate())

	for _, in := range []terms.ConfInputs{
		{NumTors: -1},
		{NumHydrophobicAtoms: math.NaN()},
		{LigandLengthsSum: math.Inf(-1)},
	} {
		err := in.Validate()
		assert.True(t, errors.IsCode(err, errors.CodeTermInvalidPairInput), "%+v: %v", in, err)
	}
}

//Personal.AI order the ending
