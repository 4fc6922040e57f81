package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/turtacn/dockscore/internal/scoring"
	"github.com/turtacn/dockscore/pkg/errors"
	"github.com/turtacn/dockscore/pkg/types/atom"
)

// EvalOptions are the flags of the eval command.
type EvalOptions struct {
	XS1, XS2 string
	AD1, AD2 string
	Q1, Q2   float64
	R        float64
}

// PairTermValue is the contribution of one term to a single pair.
type PairTermValue struct {
	Name        string   `json:"name"`
	WeightClass int      `json:"weight_class"`
	Value       float64  `json:"value"`
	Weighted    *float64 `json:"weighted,omitempty"`
}

// PairEvaluation is the output of the eval command.
type PairEvaluation struct {
	A              atom.Atom       `json:"a"`
	B              atom.Atom       `json:"b"`
	R              float64         `json:"r"`
	Pruned         bool            `json:"pruned"`
	Terms          []PairTermValue `json:"terms"`
	Intermolecular float64         `json:"intermolecular"`
}

func (p *PairEvaluation) TableHeaders() []string {
	return []string{"TERM", "CLASS", "VALUE", "WEIGHTED"}
}

func (p *PairEvaluation) TableRows() [][]string {
	rows := make([][]string, 0, len(p.Terms)+1)
	for _, t := range p.Terms {
		weighted := "-"
		if t.Weighted != nil {
			weighted = formatFloat(*t.Weighted)
		}
		rows = append(rows, []string{t.Name, strconv.Itoa(t.WeightClass), formatFloat(t.Value), weighted})
	}
	return append(rows, []string{"total", "", "", formatFloat(p.Intermolecular)})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func parseAtom(xs, ad string, q float64) (atom.Atom, error) {
	t, err := atom.ParseXSType(xs)
	if err != nil {
		return atom.Atom{}, errors.Wrap(err, errors.CodeInvalidParam, "invalid XS type")
	}
	a, err := atom.ParseADType(ad)
	if err != nil {
		return atom.Atom{}, errors.Wrap(err, errors.CodeInvalidParam, "invalid AD type")
	}
	return atom.Atom{XS: t, AD: a, Charge: q}, nil
}

func evaluatePair(ev *scoring.Evaluator, class int, weights []float64, a, b atom.Atom, r float64) (*PairEvaluation, error) {
	res, err := ev.ScorePose(&scoring.Pose{ID: "pair", Pairs: []scoring.Pair{{A: a, B: b, R: r}}})
	if err != nil {
		return nil, err
	}

	out := &PairEvaluation{A: a, B: b, R: r, Pruned: res.PairsPruned > 0, Intermolecular: res.Intermolecular}
	k := 0
	for i, e := range ev.Registry().Pairwise() {
		v := PairTermValue{Name: e.Term.Name(), WeightClass: e.WeightClass, Value: res.TermSums[i]}
		if e.WeightClass == class {
			w := weights[k] * res.TermSums[i]
			v.Weighted = &w
			k++
		}
		out.Terms = append(out.Terms, v)
	}
	return out, nil
}

func newEvalCmd() *cobra.Command {
	opts := &EvalOptions{}

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate every registered pairwise term for one atom pair",
		Example: "  dockscore eval --xs1 C_H --xs2 C_H --r 4.0\n" +
			"  dockscore eval --xs1 N_D --xs2 O_A --ad1 N --ad2 OA --q1 -0.3 --q2 0.2 --r 2.9",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			a, err := parseAtom(opts.XS1, opts.AD1, opts.Q1)
			if err != nil {
				return err
			}
			b, err := parseAtom(opts.XS2, opts.AD2, opts.Q2)
			if err != nil {
				return err
			}
			ev, err := buildEvaluator(cliCtx)
			if err != nil {
				return err
			}
			sc := cliCtx.Config.Scoring
			out, err := evaluatePair(ev, sc.WeightClass, sc.Weights, a, b, opts.R)
			if err != nil {
				return err
			}
			return PrintResult(cmd, out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.XS1, "xs1", "", "XS type of the first atom (e.g. C_H, N_DA)")
	f.StringVar(&opts.XS2, "xs2", "", "XS type of the second atom")
	f.StringVar(&opts.AD1, "ad1", "", "AutoDock type of the first atom")
	f.StringVar(&opts.AD2, "ad2", "", "AutoDock type of the second atom")
	f.Float64Var(&opts.Q1, "q1", 0, "partial charge of the first atom")
	f.Float64Var(&opts.Q2, "q2", 0, "partial charge of the second atom")
	f.Float64Var(&opts.R, "r", 0, "interatomic distance in angstroms")
	_ = cmd.MarkFlagRequired("xs1")
	_ = cmd.MarkFlagRequired("xs2")
	_ = cmd.MarkFlagRequired("r")
	return cmd
}

//Personal.AI order the ending
