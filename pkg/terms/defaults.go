package terms

// TermSpec is one declarative entry of a scoring configuration.
type TermSpec struct {
	// Kind selects the catalog factory, e.g. "gauss".
	Kind string `mapstructure:"kind" json:"kind" yaml:"kind"`
	// WeightClass groups terms that share one external weight slot layout.
	WeightClass int `mapstructure:"weight_class" json:"weight_class" yaml:"weight_class"`
	// Enabled defaults to true when omitted.
	Enabled *bool  `mapstructure:"enabled" json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Params  Params `mapstructure:"params" json:"params,omitempty" yaml:"params,omitempty"`
}

// IsEnabled reports whether the spec should be registered.
func (s TermSpec) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// Weight classes of the default configuration.
const (
	ClassDefault  = 0
	ClassWeighted = 1
)

func on(kind string, class int, p Params) TermSpec {
	return TermSpec{Kind: kind, WeightClass: class, Params: p}
}

func off(kind string, p Params) TermSpec {
	disabled := false
	return TermSpec{Kind: kind, WeightClass: ClassDefault, Enabled: &disabled, Params: p}
}

// DefaultSpecs returns the stock Vina-style configuration.  The enabled
// entries, in order, are five weighted pairwise terms, four class-0 contact
// terms and num_tors_div.  The remaining catalog entries are listed disabled
// so they are still built and validated.
func DefaultSpecs() []TermSpec {
	const c = DefaultCutoff
	specs := []TermSpec{
		off(KindAD4Solvation, Params{"sigma": 3.6, "solvation_q": 0.01097, "charge_dependent": true, "cutoff": c}),
		off(KindAD4Solvation, Params{"sigma": 3.6, "solvation_q": 0.01097, "charge_dependent": false, "cutoff": c}),
		off(KindElectrostatic, Params{"n": 1, "cap": 100.0, "cutoff": c}),
		off(KindElectrostatic, Params{"n": 2, "cap": 100.0, "cutoff": c}),
	}

	for _, o := range []float64{0, 0.5, 1, 1.5, 2, 2.5} {
		specs = append(specs, off(KindGauss, Params{"offset": o, "width": 0.3, "cutoff": c}))
	}
	specs = append(specs,
		on(KindGauss, ClassWeighted, Params{"offset": 0.0, "width": 0.5, "cutoff": c}),
		off(KindGauss, Params{"offset": 1.0, "width": 0.5, "cutoff": c}),
		off(KindGauss, Params{"offset": 2.0, "width": 0.5, "cutoff": c}),
	)
	for _, w := range []struct {
		width   float64
		offsets []float64
	}{
		{0.7, []float64{0, 1, 2}},
		{0.9, []float64{0, 1, 2, 3}},
		{1.5, []float64{0, 1, 2, 3, 4}},
	} {
		for _, o := range w.offsets {
			specs = append(specs, off(KindGauss, Params{"offset": o, "width": w.width, "cutoff": c}))
		}
	}
	specs = append(specs,
		off(KindGauss, Params{"offset": 0.0, "width": 2.0, "cutoff": c}),
		off(KindGauss, Params{"offset": 1.0, "width": 2.0, "cutoff": c}),
		off(KindGauss, Params{"offset": 2.0, "width": 2.0, "cutoff": c}),
		on(KindGauss, ClassWeighted, Params{"offset": 3.0, "width": 2.0, "cutoff": c}),
		off(KindGauss, Params{"offset": 4.0, "width": 2.0, "cutoff": c}),
	)
	for _, o := range []float64{0, 1, 2, 3, 4} {
		specs = append(specs, off(KindGauss, Params{"offset": o, "width": 3.0, "cutoff": c}))
	}

	for _, o := range []float64{0.4, 0.2} {
		specs = append(specs, off(KindRepulsion, Params{"offset": o, "cutoff": c}))
	}
	specs = append(specs, on(KindRepulsion, ClassWeighted, Params{"offset": 0.0, "cutoff": c}))
	for _, o := range []float64{-0.2, -0.4, -0.6, -0.8, -1.0} {
		specs = append(specs, off(KindRepulsion, Params{"offset": o, "cutoff": c}))
	}

	specs = append(specs,
		off(KindHydrophobic, Params{"good": 0.5, "bad": 1.0, "cutoff": c}),
		on(KindHydrophobic, ClassWeighted, Params{"good": 0.5, "bad": 1.5, "cutoff": c}),
		off(KindHydrophobic, Params{"good": 0.5, "bad": 2.0, "cutoff": c}),
		off(KindHydrophobic, Params{"good": 0.5, "bad": 3.0, "cutoff": c}),
		off(KindNonHydrophobic, Params{"good": 0.5, "bad": 1.5, "cutoff": c}),
		off(KindVdw, Params{"i": 4, "j": 8, "smoothing": 0.0, "cap": 100.0, "cutoff": c}),

		on(KindNonDirHBond, ClassWeighted, Params{"good": -0.7, "bad": 0.0, "cutoff": c}),
		off(KindNonDirHBond, Params{"good": -0.7, "bad": 0.2, "cutoff": c}),
		off(KindNonDirHBond, Params{"good": -0.7, "bad": 0.4, "cutoff": c}),

		on(KindHalogenBond, ClassDefault, Params{"good": -0.5, "bad": 0.5, "cutoff": c}),
		on(KindPiStacking, ClassDefault, Params{"good": -0.4, "bad": 1.0, "cutoff": c}),
		on(KindSulfurAromatic, ClassDefault, Params{"good": -0.3, "bad": 0.8, "cutoff": c}),
		on(KindDesolvationImproved, ClassDefault, Params{"weight": 0.02, "cutoff": c}),

		off(KindNumLigands, nil),
		on(KindNumTorsDiv, ClassWeighted, nil),
		off(KindNumHeavyAtomsDiv, nil),
		off(KindNumHeavyAtoms, nil),
		off(KindNumTorsAdd, nil),
		off(KindNumTorsSqr, nil),
		off(KindNumTorsSqrt, nil),
		off(KindNumHydrophobicAtoms, nil),
		off(KindLigandLength, nil),
	)
	return specs
}

// DefaultWeights returns the fitted weights of DefaultSpecs: one per
// ClassWeighted pairwise term in registration order, then one per
// conformation-independent weight.
func DefaultWeights() []float64 {
	return []float64{-0.035579, -0.005156, 0.840245, -0.035069, -0.587439, 1.923}
}

//Personal.AI order the ending
