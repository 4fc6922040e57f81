package testutil_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/dockscore/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/dockscore/internal/testutil"
)

func TestMockLogger(t *testing.T) {
	logger := testutil.NewMockLogger()

	logger.Info("test info", logging.String("key", "value"))

	messages := logger.GetMessages()
	require.Len(t, messages, 1)
	assert.Equal(t, "info", messages[0].Level)
	assert.Equal(t, "test info", messages[0].Message)
	v, ok := messages[0].Field("key")
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	logger.Clear()
	assert.Empty(t, logger.GetMessages())

	logger.Error("test error")
	assert.True(t, logger.HasMessage("error", "test error"))
	assert.False(t, logger.HasMessage("info", "test info"))
}

func TestMockLogger_ChildrenShareBuffer(t *testing.T) {
	logger := testutil.NewMockLogger()
	child := logger.Named("scoring").With(logging.String("batch_id", "b1")).Named("worker")

	child.Warn("slow pose", logging.Int("pairs", 3))
	logger.Debug("root")

	msgs := logger.Messages("slow pose")
	require.Len(t, msgs, 1)
	assert.Equal(t, "scoring.worker", msgs[0].Logger)
	id, _ := msgs[0].Field("batch_id")
	assert.Equal(t, "b1", id)
	pairs, _ := msgs[0].Field("pairs")
	assert.Equal(t, 3, pairs)

	root := logger.Messages("root")
	require.Len(t, root, 1)
	_, ok := root[0].Field("batch_id")
	assert.False(t, ok)
}

func TestMockLogger_Concurrent(t *testing.T) {
	logger := testutil.NewMockLogger()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.With(logging.Bool("child", true)).Info("tick")
		}()
	}
	wg.Wait()
	assert.Len(t, logger.Messages("tick"), 20)
}

func TestNopLogger(t *testing.T) {
	logger := testutil.NewNopLogger()
	assert.NotPanics(t, func() {
		logger.Info("test info")
		logger.Error("test error")
	})
	assert.NoError(t, logger.Sync())
}
