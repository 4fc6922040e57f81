package prometheus

import (
	"time"
)

// ScoringMetrics holds the metrics emitted by batch scoring.
type ScoringMetrics struct {
	PosesScoredTotal    CounterVec
	PairsEvaluatedTotal CounterVec
	PairsPrunedTotal    CounterVec
	ErrorsTotal         CounterVec
	PoseDuration        HistogramVec
	BatchDuration       HistogramVec
	ActiveWorkers       GaugeVec
	RegisteredTerms     GaugeVec
}

var (
	DefaultPoseDurationBuckets  = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1}
	DefaultBatchDurationBuckets = []float64{.001, .01, .1, .5, 1, 5, 10, 30, 60, 300}
)

// NewScoringMetrics registers the scoring metrics on collector.
func NewScoringMetrics(collector MetricsCollector) *ScoringMetrics {
	return &ScoringMetrics{
		PosesScoredTotal:    collector.RegisterCounter("poses_scored_total", "Poses scored", "status"),
		PairsEvaluatedTotal: collector.RegisterCounter("pairs_evaluated_total", "Atom pairs passed to pairwise terms"),
		PairsPrunedTotal:    collector.RegisterCounter("pairs_pruned_total", "Atom pairs at or beyond the maximum cutoff"),
		ErrorsTotal:         collector.RegisterCounter("errors_total", "Scoring errors", "code"),
		PoseDuration:        collector.RegisterHistogram("pose_duration_seconds", "Time to score one pose", DefaultPoseDurationBuckets),
		BatchDuration:       collector.RegisterHistogram("batch_duration_seconds", "Time to score one batch", DefaultBatchDurationBuckets),
		ActiveWorkers:       collector.RegisterGauge("active_workers", "Goroutines currently scoring poses"),
		RegisteredTerms:     collector.RegisterGauge("registered_terms", "Enabled terms by group", "group"),
	}
}

// RecordPose records one pose outcome.  evaluated and pruned are pair counts.
func RecordPose(m *ScoringMetrics, err error, code string, evaluated, pruned int, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
		m.ErrorsTotal.WithLabelValues(code).Inc()
	}
	m.PosesScoredTotal.WithLabelValues(status).Inc()
	m.PairsEvaluatedTotal.WithLabelValues().Add(float64(evaluated))
	m.PairsPrunedTotal.WithLabelValues().Add(float64(pruned))
	m.PoseDuration.WithLabelValues().Observe(duration.Seconds())
}

// RecordTerms publishes the size of each term group.
func RecordTerms(m *ScoringMetrics, pairwise, confIndependent, inactive int) {
	if m == nil {
		return
	}
	m.RegisteredTerms.WithLabelValues("pairwise").Set(float64(pairwise))
	m.RegisteredTerms.WithLabelValues("conf_independent").Set(float64(confIndependent))
	m.RegisteredTerms.WithLabelValues("inactive").Set(float64(inactive))
}

//Personal.AI order the ending
