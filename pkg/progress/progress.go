// Package progress renders a fixed-width textual progress bar for work
// counted from many goroutines.
package progress

import (
	"bufio"
	"io"
	"sync"
)

const (
	// Width is the number of tick characters in a full bar.
	Width = 50

	ruler = "0%   10   20   30   40   50   60   70   80   90   100%\n"
	bar   = "|----|----|----|----|----|----|----|----|----|----| "
	tick  = '*'
)

// Reporter is a mutex-guarded tick counter.  Increment may be called from any
// goroutine.  Close completes the bar and terminates the line; it must be
// called exactly once when the work is done or abandoned.
type Reporter struct {
	mu       sync.Mutex
	w        *bufio.Writer
	expected uint64
	count    uint64
	ticks    int
	closed   bool
}

// New prints the ruler and the empty bar to w.  With expected == 0 the
// reporter stays silent.
func New(w io.Writer, expected uint64) *Reporter {
	r := &Reporter{w: bufio.NewWriter(w), expected: expected}
	if expected > 0 {
		_, _ = r.w.WriteString(ruler)
		_, _ = r.w.WriteString(bar)
		_ = r.w.Flush()
	}
	return r
}

// Increment records one unit of completed work.  Counts past the expected
// total are ignored.
func (r *Reporter) Increment() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.expected == 0 || r.closed || r.count >= r.expected {
		return
	}
	r.count++
	r.display()
}

// Count returns the number of increments recorded so far.
func (r *Reporter) Count() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Close advances the bar to completion if fewer increments than expected were
// received and writes the terminating newline.  Later calls are no-ops.
func (r *Reporter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	if r.expected == 0 {
		return nil
	}
	r.count = r.expected
	r.display()
	_ = r.w.WriteByte('\n')
	return r.w.Flush()
}

// display prints the ticks owed for the current count.  Callers hold mu.
func (r *Reporter) display() {
	needed := int(r.count * Width / r.expected)
	if needed <= r.ticks {
		return
	}
	for ; r.ticks < needed; r.ticks++ {
		_ = r.w.WriteByte(tick)
	}
	_ = r.w.Flush()
}

//Personal.AI order the ending
