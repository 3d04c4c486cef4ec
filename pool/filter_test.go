package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicRampup(t *testing.T) {
	f := BasicRampup(0.5)
	assert.Equal(t, 5, f(10, 10)) // pressure == capacity: grow
	assert.Equal(t, 0, f(9, 10))  // below capacity: no-op
}

func TestBasicBackoff(t *testing.T) {
	f := BasicBackoff(0.5, 0.5)
	assert.Equal(t, -5, f(1, 10)) // well under threshold: shrink
	assert.Equal(t, 0, f(8, 10))  // at/above threshold: no-op
}

func TestBasicFilter_SumsBothHalves(t *testing.T) {
	f := BasicFilter(BasicRampup(0.5), BasicBackoff(0.5, 0.5))
	assert.Equal(t, 5, f(10, 10))
	assert.Equal(t, -5, f(1, 10))
	assert.Equal(t, 0, f(6, 10))
}

func TestRunningMeanBackoff_BacksOffOnlyWhenBothRatiosLow(t *testing.T) {
	b := NewRunningMeanBackoff(0.5, 0.5)

	// First call: instantaneous ratio is high, no backoff yet even though
	// the running mean (just this one sample) is also high.
	assert.Equal(t, 0, b.Apply(9, 10))

	// A zero-pressure reading brings the running mean to 9/20 = 0.45, so
	// both ratios are now below 0.5 and it backs off by floor(0.5 * 10).
	assert.Equal(t, -5, b.Apply(0, 10))
	got := b.Apply(1, 10)
	assert.True(t, got <= 0)
}

func TestRunningMeanBackoff_ResetClearsBothSums(t *testing.T) {
	b := NewRunningMeanBackoff(0.9, 0.5)
	b.Apply(10, 10)
	b.Apply(10, 10)
	b.Reset()

	// Immediately after reset, a single low-pressure sample should behave
	// exactly as it would on a brand-new RunningMeanBackoff.
	fresh := NewRunningMeanBackoff(0.9, 0.5)
	assert.Equal(t, fresh.Apply(0, 10), b.Apply(0, 10))
}
