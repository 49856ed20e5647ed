package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidence_When_SingleRun(t *testing.T) {
	t.Parallel()

	// sqrt(1) == 1, so the half-width is just Z99 * stddev.
	assert.InDelta(t, 2.576*0.5, Confidence(0.5, 1), 1e-12)
}

func TestConfidence_When_RepetitionCountGrows(t *testing.T) {
	t.Parallel()

	const stdDev = 0.25
	prev := math.Inf(1)
	for n := 1; n <= 64; n *= 2 {
		c := Confidence(stdDev, n)
		assert.InDelta(t, 2.576*stdDev/math.Sqrt(float64(n)), c, 1e-12)
		assert.LessOrEqual(t, c, prev, "confidence must not increase with n=%d", n)
		prev = c
	}
}

func TestConfidence_When_ZeroStdDev(t *testing.T) {
	t.Parallel()

	assert.Zero(t, Confidence(0, 10))
}

func TestSample_When_Unavailable(t *testing.T) {
	t.Parallel()

	assert.True(t, Unavailable.IsUnavailable())
	assert.True(t, Sample{Mean: -1, Confidence: 0.1}.IsUnavailable())
	assert.True(t, Sample{Mean: 0.1, Confidence: -1}.IsUnavailable())
	assert.False(t, Sample{Mean: 0, Confidence: 0}.IsUnavailable())
	assert.False(t, NewSample(1.5, 0.1, 4).IsUnavailable())
}

func TestNewSample_When_Built(t *testing.T) {
	t.Parallel()

	s := NewSample(3.2, 0.4, 16)

	assert.InDelta(t, 3.2, s.Mean, 1e-12)
	assert.InDelta(t, 2.576*0.4/4, s.Confidence, 1e-12)
}
