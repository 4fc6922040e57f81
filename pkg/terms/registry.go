package terms

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/turtacn/dockscore/pkg/errors"
	"github.com/turtacn/dockscore/pkg/types/atom"
)

// PairwiseEntry is a registered pairwise term tagged with its weight class.
type PairwiseEntry struct {
	WeightClass int
	Term        PairwiseTerm
}

// ConfIndependentEntry is a registered conformation-independent term.
type ConfIndependentEntry struct {
	WeightClass int
	Term        ConfIndependentTerm
}

// InactiveEntry is a catalog term that was built but not registered.
type InactiveEntry struct {
	Spec TermSpec
	Term Term
}

// Registry is the ordered, immutable set of terms of one scoring
// configuration.  Registration order is observable: conformation-independent
// terms consume external weights in exactly this order.
type Registry struct {
	pairwise []PairwiseEntry
	conf     []ConfIndependentEntry
	inactive []InactiveEntry
	checkers []AtomChecker

	maxCutoff float64
	confSize  int
}

// Option configures NewRegistry.
type Option func(*registryOptions)

type registryOptions struct {
	logger *zap.Logger
}

// WithLogger makes NewRegistry log each registration at debug level.  A nil
// logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *registryOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewRegistry builds every spec and registers the enabled ones in order.
// Disabled specs are still built so that a bad parameter anywhere in the
// configuration is reported.
func NewRegistry(specs []TermSpec, opts ...Option) (*Registry, error) {
	o := registryOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Registry{}
	for i, spec := range specs {
		if spec.WeightClass < 0 {
			return nil, errors.New(errors.CodeTermConfigInvalid, "weight class must not be negative").
				WithDetailf("term %d (%s): weight_class=%d", i, spec.Kind, spec.WeightClass)
		}
		t, err := Build(spec)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeUnknown, fmt.Sprintf("term %d (%s) rejected", i, spec.Kind))
		}
		if !spec.IsEnabled() {
			r.inactive = append(r.inactive, InactiveEntry{Spec: spec, Term: t})
			continue
		}
		switch tt := t.(type) {
		case PairwiseTerm:
			r.pairwise = append(r.pairwise, PairwiseEntry{WeightClass: spec.WeightClass, Term: tt})
			if tt.Cutoff() > r.maxCutoff {
				r.maxCutoff = tt.Cutoff()
			}
			if c, ok := tt.(AtomChecker); ok {
				r.checkers = append(r.checkers, c)
			}
		case ConfIndependentTerm:
			r.conf = append(r.conf, ConfIndependentEntry{WeightClass: spec.WeightClass, Term: tt})
			r.confSize += tt.Size()
		}
		o.logger.Debug("term registered",
			zap.Int("index", i),
			zap.String("name", t.Name()),
			zap.Int("weight_class", spec.WeightClass))
	}

	o.logger.Info("term registry assembled",
		zap.Int("pairwise", len(r.pairwise)),
		zap.Int("conf_independent", len(r.conf)),
		zap.Int("inactive", len(r.inactive)),
		zap.Float64("max_cutoff", r.maxCutoff))
	return r, nil
}

// NewDefaultRegistry builds the registry of DefaultSpecs.
func NewDefaultRegistry(opts ...Option) (*Registry, error) {
	return NewRegistry(DefaultSpecs(), opts...)
}

// Pairwise returns the registered pairwise terms in registration order.
func (r *Registry) Pairwise() []PairwiseEntry {
	return append([]PairwiseEntry(nil), r.pairwise...)
}

// ConfIndependent returns the registered conformation-independent terms in
// registration order.
func (r *Registry) ConfIndependent() []ConfIndependentEntry {
	return append([]ConfIndependentEntry(nil), r.conf...)
}

// Inactive returns the built but unregistered terms.
func (r *Registry) Inactive() []InactiveEntry {
	return append([]InactiveEntry(nil), r.inactive...)
}

// NumPairwise and NumConfIndependent count the registered terms per group.
func (r *Registry) NumPairwise() int        { return len(r.pairwise) }
func (r *Registry) NumConfIndependent() int { return len(r.conf) }

// ConfIndependentSize is the number of weights the conformation-independent
// pass consumes.
func (r *Registry) ConfIndependentSize() int { return r.confSize }

// CountPairwise returns how many pairwise terms carry the given weight class.
func (r *Registry) CountPairwise(class int) int {
	n := 0
	for _, e := range r.pairwise {
		if e.WeightClass == class {
			n++
		}
	}
	return n
}

// MaxCutoff is the largest cutoff among registered pairwise terms.  Callers
// only evaluate pairs whose distance is at most this value.
func (r *Registry) MaxCutoff() float64 { return r.maxCutoff }

// CheckAtom reports a configuration error if any registered term cannot
// interpret a.
func (r *Registry) CheckAtom(a atom.Atom) error {
	if !a.XS.Valid() {
		return errors.UnsupportedAtom("unknown XS type").WithDetail(a.XS.String())
	}
	for _, c := range r.checkers {
		if err := c.CheckAtom(a); err != nil {
			return err
		}
	}
	return nil
}

// ApplyConfIndependent runs every conformation-independent term over x in
// registration order.  weights must hold exactly ConfIndependentSize values;
// each term reads its own window of it, so concurrent callers may share the
// same slice.
func (r *Registry) ApplyConfIndependent(in *ConfInputs, x float64, weights []float64) (float64, error) {
	if len(weights) != r.confSize {
		return 0, errors.New(errors.CodeTermWeightMismatch, "conformation-independent weight count mismatch").
			WithDetailf("want %d, got %d", r.confSize, len(weights))
	}
	off := 0
	for _, e := range r.conf {
		n := e.Term.Size()
		x = e.Term.Eval(in, x, weights[off:off+n])
		off += n
	}
	return x, nil
}

//Personal.AI order the ending
