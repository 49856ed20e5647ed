// Package stats holds the timing sample type and the confidence interval
// math used to aggregate repeated benchmark runs.
package stats

import "math"

// Z99 is the z-score bounding a symmetric 99% confidence interval of a
// normal distribution.
const Z99 = 2.576

// Sample is an aggregated timing result: the mean wall-clock time in
// seconds and the half-width of its 99% confidence interval.
//
// Valid samples have non-negative components. A benchmark that was
// skipped, or that the timing utility could not run, is represented by
// Unavailable.
type Sample struct {
	Mean       float64
	Confidence float64
}

// Unavailable is the sentinel sample recorded when a benchmark is not run
// on an interpreter.
var Unavailable = Sample{Mean: -1, Confidence: -1}

// IsUnavailable reports whether s carries no measurement.
func (s Sample) IsUnavailable() bool {
	return s.Mean < 0 || s.Confidence < 0
}

// Confidence returns the half-width of the 99% confidence interval for a
// sample standard deviation stdDev measured over n repetitions.
func Confidence(stdDev float64, n int) float64 {
	return Z99 * stdDev / math.Sqrt(float64(n))
}

// NewSample pairs a mean with the confidence half-width derived from
// stdDev and n.
func NewSample(mean, stdDev float64, n int) Sample {
	return Sample{Mean: mean, Confidence: Confidence(stdDev, n)}
}
