package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/dockscore/internal/scoring"
	"github.com/turtacn/dockscore/pkg/errors"
)

// lockedBuffer is a bytes.Buffer safe for a writer and a polling reader.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func decodeBatches(t *testing.T, out string) []scoring.BatchResult {
	t.Helper()
	var batches []scoring.BatchResult
	dec := json.NewDecoder(strings.NewReader(out))
	for {
		var b scoring.BatchResult
		err := dec.Decode(&b)
		if err == io.EOF {
			return batches
		}
		require.NoError(t, err)
		batches = append(batches, b)
	}
}

func TestScoreCommand_WatchRescoresOnConfigChange(t *testing.T) {
	cfgPath := writeFile(t, "dockscore.yaml", quietConfig)
	input := writeFile(t, "poses.json", posesJSON)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := NewRootCommand()
	stdout := &lockedBuffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&lockedBuffer{})
	cmd.SetArgs([]string{"score", "--input", input, "--config", cfgPath, "--watch", "-o", "json"})

	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool {
		return strings.Count(stdout.String(), `"results"`) >= 1
	}, 5*time.Second, 20*time.Millisecond)

	// Only the torsion weight survives, so every rescored pose scores zero.
	reweighted := quietConfig + "  weights: [0, 0, 0, 0, 0, 1]\n"
	require.Eventually(t, func() bool {
		tmp := cfgPath + ".tmp"
		if os.WriteFile(tmp, []byte(reweighted), 0o644) == nil {
			_ = os.Rename(tmp, cfgPath)
		}
		return strings.Count(stdout.String(), `"results"`) >= 2
	}, 10*time.Second, 100*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("score --watch did not stop after cancellation")
	}

	batches := decodeBatches(t, stdout.String())
	require.GreaterOrEqual(t, len(batches), 2)
	first, last := batches[0], batches[len(batches)-1]
	assert.Less(t, first.Results[0].Score, 0.0)
	assert.NotEqual(t, first.ID, last.ID)
	for _, res := range last.Results {
		assert.Zero(t, res.Score, res.PoseID)
	}
}

func TestScoreCommand_WatchNeedsConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	input := writeFile(t, "poses.json", posesJSON)

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"score", "--input", input, "--watch", "--log-level", "error"})
	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidParam))
}
