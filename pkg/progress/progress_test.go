package progress_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/dockscore/pkg/progress"
)

const header = "0%   10   20   30   40   50   60   70   80   90   100%\n" +
	"|----|----|----|----|----|----|----|----|----|----| "

// syncBuffer lets the race detector see writes from Reporter goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestReporter_ConcurrentIncrements(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	r := progress.New(out, 10)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Increment()
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(10), r.Count())
	require.NoError(t, r.Close())

	assert.Equal(t, header+strings.Repeat("*", 50)+"\n", out.String())
}

func TestReporter_CloseSynthesizesMissingTicks(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	r := progress.New(out, 10)
	for i := 0; i < 7; i++ {
		r.Increment()
	}
	assert.Equal(t, header+strings.Repeat("*", 35), out.String())

	require.NoError(t, r.Close())
	assert.Equal(t, header+strings.Repeat("*", 50)+"\n", out.String())
}

func TestReporter_ExtraIncrementsIgnored(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	r := progress.New(out, 3)
	for i := 0; i < 8; i++ {
		r.Increment()
	}
	assert.Equal(t, uint64(3), r.Count())
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
	r.Increment()

	assert.Equal(t, header+strings.Repeat("*", 50)+"\n", out.String())
}

func TestReporter_LargeExpectedCount(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	r := progress.New(out, 1000)
	for i := 0; i < 20; i++ {
		r.Increment()
	}
	assert.Equal(t, header+"*", out.String())
	require.NoError(t, r.Close())
	assert.Equal(t, 50, strings.Count(out.String(), "*"))
}

func TestReporter_ZeroExpectedIsSilent(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	r := progress.New(out, 0)
	r.Increment()
	require.NoError(t, r.Close())
	assert.Empty(t, out.String())
}
