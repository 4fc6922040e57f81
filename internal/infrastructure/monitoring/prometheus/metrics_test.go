package prometheus

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScoringMetrics_AllRegistered(t *testing.T) {
	c := newTestCollector(t)
	m := NewScoringMetrics(c)
	require.NotNil(t, m)

	RecordPose(m, nil, "", 1, 1, time.Millisecond)
	m.BatchDuration.WithLabelValues().Observe(1)
	m.ActiveWorkers.WithLabelValues().Set(1)
	RecordTerms(m, 1, 1, 1)

	out := scrapeMetrics(t, c)
	for _, name := range []string{
		"test_unit_poses_scored_total",
		"test_unit_pairs_evaluated_total",
		"test_unit_pairs_pruned_total",
		"test_unit_pose_duration_seconds",
		"test_unit_batch_duration_seconds",
		"test_unit_active_workers",
		"test_unit_registered_terms",
	} {
		assert.Contains(t, out, name)
	}
}

func TestRecordPose(t *testing.T) {
	c := newTestCollector(t)
	m := NewScoringMetrics(c)

	RecordPose(m, nil, "", 12, 3, 2*time.Millisecond)
	RecordPose(m, nil, "", 8, 1, time.Millisecond)
	RecordPose(m, errors.New("bad atom"), "TERM_001", 0, 0, time.Microsecond)

	assert.Equal(t, 2.0, gatheredValue(t, c, "test_unit_poses_scored_total", map[string]string{"status": "ok"}))
	assert.Equal(t, 1.0, gatheredValue(t, c, "test_unit_poses_scored_total", map[string]string{"status": "error"}))
	assert.Equal(t, 1.0, gatheredValue(t, c, "test_unit_errors_total", map[string]string{"code": "TERM_001"}))
	assert.Equal(t, 20.0, gatheredValue(t, c, "test_unit_pairs_evaluated_total", nil))
	assert.Equal(t, 4.0, gatheredValue(t, c, "test_unit_pairs_pruned_total", nil))
	assert.Equal(t, 3.0, gatheredValue(t, c, "test_unit_pose_duration_seconds", nil))
}

func TestRecordTerms(t *testing.T) {
	c := newTestCollector(t)
	m := NewScoringMetrics(c)
	RecordTerms(m, 9, 1, 60)

	assert.Equal(t, 9.0, gatheredValue(t, c, "test_unit_registered_terms", map[string]string{"group": "pairwise"}))
	assert.Equal(t, 1.0, gatheredValue(t, c, "test_unit_registered_terms", map[string]string{"group": "conf_independent"}))
	assert.Equal(t, 60.0, gatheredValue(t, c, "test_unit_registered_terms", map[string]string{"group": "inactive"}))
}

func TestRecord_NilMetrics(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordPose(nil, nil, "", 1, 1, time.Second)
		RecordTerms(nil, 1, 1, 1)
	})
}

//Personal.AI order the ending
