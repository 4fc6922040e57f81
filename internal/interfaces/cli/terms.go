package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/turtacn/dockscore/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/dockscore/internal/scoring"
	"github.com/turtacn/dockscore/pkg/terms"
)

// TermRow describes one configured term.
type TermRow struct {
	Index       int      `json:"index"`
	Group       string   `json:"group"`
	WeightClass int      `json:"weight_class"`
	Name        string   `json:"name"`
	Cutoff      float64  `json:"cutoff,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
}

// TermList is the output of the terms command.
type TermList struct {
	MaxCutoff float64   `json:"max_cutoff"`
	Terms     []TermRow `json:"terms"`
}

func (l *TermList) TableHeaders() []string {
	return []string{"#", "GROUP", "CLASS", "NAME", "CUTOFF", "WEIGHT"}
}

func (l *TermList) TableRows() [][]string {
	rows := make([][]string, 0, len(l.Terms))
	for _, t := range l.Terms {
		cutoff, weight := "-", "-"
		if t.Cutoff > 0 {
			cutoff = strconv.FormatFloat(t.Cutoff, 'g', -1, 64)
		}
		if t.Weight != nil {
			weight = strconv.FormatFloat(*t.Weight, 'g', -1, 64)
		}
		rows = append(rows, []string{
			strconv.Itoa(t.Index), t.Group, strconv.Itoa(t.WeightClass), t.Name, cutoff, weight,
		})
	}
	return rows
}

// buildEvaluator assembles the configured registry and binds the configured
// weights to it.
func buildEvaluator(cliCtx *CLIContext, opts ...scoring.Option) (*scoring.Evaluator, error) {
	sc := cliCtx.Config.Scoring
	reg, err := terms.NewRegistry(sc.Terms, terms.WithLogger(logging.Zap(cliCtx.Logger.Named("terms"))))
	if err != nil {
		return nil, err
	}
	opts = append([]scoring.Option{
		scoring.WithLogger(cliCtx.Logger.Named("scoring")),
		scoring.WithWorkers(sc.Workers),
	}, opts...)
	return scoring.NewEvaluator(reg, sc.Weights, sc.WeightClass, opts...)
}

func listTerms(ev *scoring.Evaluator, class int, weights []float64, all bool) *TermList {
	reg := ev.Registry()
	out := &TermList{MaxCutoff: reg.MaxCutoff()}

	k := 0
	for _, e := range reg.Pairwise() {
		row := TermRow{Index: len(out.Terms), Group: "pairwise", WeightClass: e.WeightClass, Name: e.Term.Name(), Cutoff: e.Term.Cutoff()}
		if e.WeightClass == class {
			w := weights[k]
			row.Weight = &w
			k++
		}
		out.Terms = append(out.Terms, row)
	}
	for _, e := range reg.ConfIndependent() {
		row := TermRow{Index: len(out.Terms), Group: "conf_independent", WeightClass: e.WeightClass, Name: e.Term.Name()}
		if e.Term.Size() == 1 {
			w := weights[k]
			row.Weight = &w
		}
		k += e.Term.Size()
		out.Terms = append(out.Terms, row)
	}
	if all {
		for _, e := range reg.Inactive() {
			row := TermRow{Index: len(out.Terms), Group: "inactive", WeightClass: e.Spec.WeightClass, Name: e.Term.Name()}
			if p, ok := e.Term.(terms.PairwiseTerm); ok {
				row.Cutoff = p.Cutoff()
			}
			out.Terms = append(out.Terms, row)
		}
	}
	return out
}

func newTermsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "terms",
		Short: "List the registered scoring terms",
		Long:  "List the registered pairwise and conformation-independent terms in\nregistration order, with the weight bound to each.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			ev, err := buildEvaluator(cliCtx)
			if err != nil {
				return err
			}
			sc := cliCtx.Config.Scoring
			list := listTerms(ev, sc.WeightClass, sc.Weights, all)
			cliCtx.Logger.Debug("terms listed", logging.Int("count", len(list.Terms)), logging.Bool("all", all))

			if err := PrintResult(cmd, list); err != nil {
				return err
			}
			if cliCtx.OutputFormat == "table" {
				fmt.Fprintf(cmd.OutOrStdout(), "\nmax cutoff: %g\n", list.MaxCutoff)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "also list the inactive catalog entries")
	return cmd
}

//Personal.AI order the ending
