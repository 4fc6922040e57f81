// Package scoring evaluates a term Registry over pre-pruned atom pairs.  It is
// the caller side of the term framework: it enforces the cutoff, combines the
// per-term sums with an external weight vector and runs the
// conformation-independent pass.
package scoring

import (
	"math"

	"github.com/turtacn/dockscore/internal/infrastructure/monitoring/logging"
	prom "github.com/turtacn/dockscore/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/dockscore/pkg/errors"
	"github.com/turtacn/dockscore/pkg/terms"
	"github.com/turtacn/dockscore/pkg/types/atom"
)

// Pair is one ligand/receptor (or intra-ligand) atom pair at distance R.
type Pair struct {
	A atom.Atom `json:"a"`
	B atom.Atom `json:"b"`
	R float64   `json:"r"`
}

// Pose is a candidate binding pose reduced to its atom pairs and the ligand
// statistics used by conformation-independent terms.
type Pose struct {
	ID    string           `json:"id"`
	Pairs []Pair           `json:"pairs"`
	Stats terms.ConfInputs `json:"stats"`
}

// Result is the score of one pose.
type Result struct {
	PoseID string `json:"pose_id"`
	// TermSums holds the unweighted sum of every registered pairwise term,
	// in registration order.
	TermSums []float64 `json:"term_sums"`
	// Intermolecular is the weighted sum of the selected weight class.
	Intermolecular float64 `json:"intermolecular"`
	// Score is Intermolecular after the conformation-independent pass.
	Score          float64 `json:"score"`
	PairsEvaluated int     `json:"pairs_evaluated"`
	PairsPruned    int     `json:"pairs_pruned"`
}

// Evaluator scores poses against one Registry and weight vector.  It is safe
// for concurrent use.
type Evaluator struct {
	reg      *terms.Registry
	pairwise []terms.PairwiseEntry
	// weighted[k] is the pairwise index that pairWeights[k] applies to.
	weighted    []int
	pairWeights []float64
	confWeights []float64
	class       int

	workers int
	logger  logging.Logger
	metrics *prom.ScoringMetrics
}

// Option configures an Evaluator.
type Option func(*Evaluator)

func WithLogger(l logging.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

func WithMetrics(m *prom.ScoringMetrics) Option {
	return func(e *Evaluator) { e.metrics = m }
}

// WithWorkers bounds the goroutines ScoreBatch uses.  Values below 1 are
// ignored.
func WithWorkers(n int) Option {
	return func(e *Evaluator) {
		if n >= 1 {
			e.workers = n
		}
	}
}

// NewEvaluator binds weights to the registry.  weights holds one value per
// pairwise term of class, in registration order, followed by
// reg.ConfIndependentSize() values for the conformation-independent pass.
func NewEvaluator(reg *terms.Registry, weights []float64, class int, opts ...Option) (*Evaluator, error) {
	if reg == nil {
		return nil, errors.InvalidParam("registry is required")
	}
	if class < 0 {
		return nil, errors.New(errors.CodeTermConfigInvalid, "weight class must not be negative").
			WithDetailf("class=%d", class)
	}
	nPair := reg.CountPairwise(class)
	want := nPair + reg.ConfIndependentSize()
	if len(weights) != want {
		return nil, errors.New(errors.CodeTermWeightMismatch, "weight vector does not match registered terms").
			WithDetailf("class %d has %d pairwise terms and %d conformation-independent weights; want %d weights, got %d",
				class, nPair, reg.ConfIndependentSize(), want, len(weights))
	}
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, errors.New(errors.CodeTermConfigInvalid, "weight is not finite").WithDetailf("weights[%d]", i)
		}
	}

	e := &Evaluator{
		reg:         reg,
		pairwise:    reg.Pairwise(),
		pairWeights: append([]float64(nil), weights[:nPair]...),
		confWeights: append([]float64(nil), weights[nPair:]...),
		class:       class,
		workers:     1,
		logger:      logging.NewNopLogger(),
	}
	for i, p := range e.pairwise {
		if p.WeightClass == class {
			e.weighted = append(e.weighted, i)
		}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Registry returns the registry the evaluator was built with.
func (e *Evaluator) Registry() *terms.Registry { return e.reg }

// ScorePose scores one pose.  Pairs farther apart than the registry's
// maximum cutoff are pruned, and a pair is skipped by any term whose own
// cutoff it exceeds.  A distance equal to a cutoff is still evaluated.  Every atom is checked against the registered terms first, so a
// pose either scores completely or fails with a configuration error.
func (e *Evaluator) ScorePose(p *Pose) (*Result, error) {
	if p == nil {
		return nil, errors.InvalidParam("pose is required")
	}
	if err := p.Stats.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.CodeUnknown, "pose "+p.ID).WithDetail("stats")
	}
	for i := range p.Pairs {
		if err := e.checkPair(&p.Pairs[i]); err != nil {
			return nil, errors.Wrap(err, errors.CodeUnknown, "pose "+p.ID).WithDetailf("pair %d", i)
		}
	}

	res := &Result{PoseID: p.ID, TermSums: make([]float64, len(e.pairwise))}
	maxCutoff := e.reg.MaxCutoff()
	for i := range p.Pairs {
		pr := &p.Pairs[i]
		if pr.R > maxCutoff {
			res.PairsPruned++
			continue
		}
		res.PairsEvaluated++
		for k, entry := range e.pairwise {
			if pr.R > entry.Term.Cutoff() {
				continue
			}
			v, err := entry.Term.Eval(&pr.A, &pr.B, pr.R)
			if err != nil {
				return nil, errors.Wrap(err, errors.CodeUnknown, "pose "+p.ID).
					WithDetailf("pair %d, term %s", i, entry.Term.Name())
			}
			res.TermSums[k] += v
		}
	}

	for k, idx := range e.weighted {
		res.Intermolecular += e.pairWeights[k] * res.TermSums[idx]
	}
	score, err := e.reg.ApplyConfIndependent(&p.Stats, res.Intermolecular, e.confWeights)
	if err != nil {
		return nil, err
	}
	res.Score = score
	return res, nil
}

func (e *Evaluator) checkPair(pr *Pair) error {
	if math.IsNaN(pr.R) || math.IsInf(pr.R, 0) || pr.R < 0 {
		return errors.New(errors.CodeTermInvalidPairInput, "distance must be finite and non-negative").
			WithDetailf("r=%g", pr.R)
	}
	if err := e.reg.CheckAtom(pr.A); err != nil {
		return err
	}
	return e.reg.CheckAtom(pr.B)
}

//Personal.AI order the ending
