package fswatch

import (
	"sort"
	"time"

	"github.com/jonboulle/clockwork"
)

// debouncer coalesces a burst of change notifications into one batch. It
// holds the pending set of changed paths and a single timer that's pushed
// back on every observation; the batch is only released once a full quiet
// period passes with no new observations.
//
// A debouncer belongs to exactly one watcher event loop and must only be
// touched from that goroutine.
type debouncer struct {
	clock clockwork.Clock
	quiet time.Duration

	pending map[string]struct{}
	timer   clockwork.Timer
}

func newDebouncer(clock clockwork.Clock, quiet time.Duration) *debouncer {
	return &debouncer{
		clock:   clock,
		quiet:   quiet,
		pending: map[string]struct{}{},
	}
}

// Observe adds the path to the pending set and reschedules the timer for a
// full quiet period from now. Observing an already-pending path doesn't grow
// the batch, but still pushes the timer back.
func (d *debouncer) Observe(path string) {
	d.pending[path] = struct{}{}

	if d.timer == nil {
		d.timer = d.clock.NewTimer(d.quiet)
		return
	}

	// If the timer already fired, the fire is still buffered in its channel
	// and would release the batch on the next read. Drain it so the reset
	// buys the batch a full quiet period.
	if !d.timer.Stop() {
		select {
		case <-d.timer.Chan():
		default:
		}
	}
	d.timer.Reset(d.quiet)
}

// C returns the channel that fires when the quiet period elapses. It's nil
// until the first observation, which blocks forever in a select.
func (d *debouncer) C() <-chan time.Time {
	if d.timer == nil {
		return nil
	}
	return d.timer.Chan()
}

// Flush returns the sorted pending batch and clears it.
func (d *debouncer) Flush() []string {
	batch := make([]string, 0, len(d.pending))
	for path := range d.pending {
		batch = append(batch, path)
	}
	sort.Strings(batch)

	d.pending = map[string]struct{}{}
	return batch
}

// Cancel stops the timer. Pending paths are discarded by the caller never
// flushing them.
func (d *debouncer) Cancel() {
	if d.timer != nil {
		d.timer.Stop()
	}
}
