package scoring

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/turtacn/dockscore/internal/infrastructure/monitoring/logging"
	prom "github.com/turtacn/dockscore/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/dockscore/pkg/errors"
)

// Progress receives one Increment per finished pose.  *progress.Reporter
// satisfies it.
type Progress interface {
	Increment()
}

// BatchResult holds the results of ScoreBatch in input order.
type BatchResult struct {
	ID       string        `json:"id"`
	Results  []*Result     `json:"results"`
	Duration time.Duration `json:"duration_ns"`
}

// ScoreBatch scores poses on up to the configured number of goroutines.  The
// first error cancels the remaining work and is returned; results of a failed
// batch are discarded.  prog may be nil.
func (e *Evaluator) ScoreBatch(ctx context.Context, poses []Pose, prog Progress) (*BatchResult, error) {
	batch := &BatchResult{ID: uuid.NewString(), Results: make([]*Result, len(poses))}
	log := e.logger.With(logging.String("batch_id", batch.ID))
	log.Info("batch started",
		logging.Int("poses", len(poses)),
		logging.Int("workers", e.workers),
		logging.Int("weight_class", e.class))

	var batchTimer *prom.Timer
	if e.metrics != nil {
		batchTimer = prom.NewTimer(e.metrics.BatchDuration.WithLabelValues())
	}
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range poses {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if e.metrics != nil {
				e.metrics.ActiveWorkers.WithLabelValues().Add(1)
				defer e.metrics.ActiveWorkers.WithLabelValues().Add(-1)
			}

			t0 := time.Now()
			res, err := e.ScorePose(&poses[i])
			e.record(res, err, time.Since(t0))
			if err != nil {
				return err
			}
			batch.Results[i] = res
			if prog != nil {
				prog.Increment()
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	batch.Duration = time.Since(start)
	if batchTimer != nil {
		batchTimer.ObserveDuration()
	}

	if err != nil {
		if ctx.Err() != nil && !errors.IsConfigurationError(err) {
			err = errors.Wrap(err, errors.CodeCancelled, "batch cancelled")
		}
		log.Error("batch aborted",
			logging.Err(err),
			logging.String("code", errors.GetCode(err).String()),
			logging.Bool("configuration_error", errors.IsConfigurationError(err)),
			logging.Duration("elapsed", batch.Duration))
		return nil, err
	}

	log.Info("batch finished", logging.Duration("elapsed", batch.Duration))
	return batch, nil
}

func (e *Evaluator) record(res *Result, err error, d time.Duration) {
	if e.metrics == nil {
		return
	}
	var evaluated, pruned int
	if res != nil {
		evaluated, pruned = res.PairsEvaluated, res.PairsPruned
	}
	prom.RecordPose(e.metrics, err, errors.GetCode(err).String(), evaluated, pruned, d)
}

//Personal.AI order the ending
