package fswatch

import (
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestDebounceBatches(t *testing.T) {
	fc := clockwork.NewFakeClock()
	d := newDebouncer(fc, QuietPeriod)

	d.Observe("b.js")
	d.Observe("a.js")
	d.Observe("b.js")

	fc.Advance(QuietPeriod)
	<-d.C()

	// Duplicate observations collapse, and the batch comes out sorted.
	assert.Equal(t, []string{"a.js", "b.js"}, d.Flush())
	assert.Empty(t, d.Flush())
}

func TestDebounceObservationExtendsQuietPeriod(t *testing.T) {
	fc := clockwork.NewFakeClock()
	d := newDebouncer(fc, QuietPeriod)

	d.Observe("a.js")
	fc.Advance(QuietPeriod / 2)

	// A new observation before the quiet period elapses pushes the timer
	// back, so the original deadline passes without a fire.
	d.Observe("b.js")
	fc.Advance(QuietPeriod / 2)
	select {
	case <-d.C():
		t.Fatal("batch released before the quiet period elapsed")
	default:
	}

	fc.Advance(QuietPeriod / 2)
	<-d.C()
	assert.Equal(t, []string{"a.js", "b.js"}, d.Flush())
}

func TestDebounceObservationAfterFireRestartsQuietPeriod(t *testing.T) {
	fc := clockwork.NewFakeClock()
	d := newDebouncer(fc, QuietPeriod)

	d.Observe("a.js")
	fc.Advance(QuietPeriod)

	// The timer has fired, but nothing has consumed the fire yet. A new
	// observation must discard it; otherwise the batch is released
	// immediately instead of after a fresh quiet period.
	d.Observe("b.js")
	select {
	case <-d.C():
		t.Fatal("batch released immediately after a new observation")
	default:
	}

	fc.Advance(QuietPeriod)
	<-d.C()
	assert.Equal(t, []string{"a.js", "b.js"}, d.Flush())
}

func TestDebounceNilChannelUntilObserved(t *testing.T) {
	fc := clockwork.NewFakeClock()
	d := newDebouncer(fc, QuietPeriod)
	assert.Nil(t, d.C())

	d.Observe("a.js")
	assert.NotNil(t, d.C())
}

func TestDebounceCancel(t *testing.T) {
	fc := clockwork.NewFakeClock()
	d := newDebouncer(fc, QuietPeriod)

	d.Observe("a.js")
	d.Cancel()

	fc.Advance(QuietPeriod)
	select {
	case <-d.C():
		t.Fatal("cancelled debouncer fired")
	default:
	}
}
