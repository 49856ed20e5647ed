package multitime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleReport is a report captured from multitime 1.4.
const sampleReport = `===> multitime results
1: lua/lua ./benchmarks/fib.lua
            Mean        Std.Dev.    Min         Median      Max
real        1.337+/-0.0341 0.012       1.316       1.334       1.359
user        1.325       0.011       1.305       1.323       1.346
sys         0.008       0.003       0.003       0.008       0.013
`

func TestParseReport_When_WellFormed(t *testing.T) {
	t.Parallel()

	rep, err := ParseReport(sampleReport)
	require.NoError(t, err)

	wall := rep.Real()
	assert.InDelta(t, 1.337, wall.Mean, 1e-9)
	assert.InDelta(t, 0.012, wall.StdDev, 1e-9)
	assert.InDelta(t, 1.316, wall.Min, 1e-9)
	assert.InDelta(t, 1.334, wall.Median, 1e-9)
	assert.InDelta(t, 1.359, wall.Max, 1e-9)

	user, ok := rep.Row("user")
	require.True(t, ok)
	assert.InDelta(t, 1.325, user.Mean, 1e-9)

	sys, ok := rep.Row("sys")
	require.True(t, ok)
	assert.InDelta(t, 0.003, sys.StdDev, 1e-9)
}

func TestParseReport_When_MeanHasNoIntervalSuffix(t *testing.T) {
	t.Parallel()

	// Single-run reports print a bare mean.
	report := `===> multitime results
1: target/release/luavm ./benchmarks/fib.lua
            Mean        Std.Dev.    Min         Median      Max
real        2.816       0.000       2.816       2.816       2.816
`

	rep, err := ParseReport(report)
	require.NoError(t, err)
	assert.InDelta(t, 2.816, rep.Real().Mean, 1e-9)
	assert.Zero(t, rep.Real().StdDev)
}

func TestParseReport_When_HeaderMissing(t *testing.T) {
	t.Parallel()

	_, err := ParseReport("some unrelated output\nwithout a report\n")

	assert.ErrorContains(t, err, "no column header")
}

func TestParseReport_When_RealRowMissing(t *testing.T) {
	t.Parallel()

	report := `            Mean        Std.Dev.    Min         Median      Max
user        1.325       0.011       1.305       1.323       1.346
`

	_, err := ParseReport(report)

	assert.ErrorContains(t, err, "no real row")
}

func TestParseReport_When_RowTruncated(t *testing.T) {
	t.Parallel()

	report := `            Mean        Std.Dev.    Min         Median      Max
real        1.337       0.012
`

	_, err := ParseReport(report)

	assert.ErrorContains(t, err, "columns")
}

func TestParseReport_When_ColumnNotNumeric(t *testing.T) {
	t.Parallel()

	report := `            Mean        Std.Dev.    Min         Median      Max
real        fast        0.012       1.316       1.334       1.359
`

	_, err := ParseReport(report)

	assert.ErrorContains(t, err, "parsing")
}

func TestReportsError_When_MarkerPresent(t *testing.T) {
	t.Parallel()

	assert.True(t, ReportsError("multitime: Error: command failed to execute"))
	assert.False(t, ReportsError(sampleReport))
}
