// Package bench drives the configured interpreters over a single
// benchmark script and aggregates their timing samples.
package bench

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/luabench/luabench/internal/config"
	"github.com/luabench/luabench/internal/multitime"
	"github.com/luabench/luabench/internal/stats"
)

// Result pairs an interpreter with its aggregated sample for one
// benchmark run.
type Result struct {
	Interpreter config.Interpreter
	Sample      stats.Sample
	// StdDev is the raw standard deviation the sample's confidence was
	// derived from, kept for diagnostics.
	StdDev float64
}

// Runner executes one benchmark across every configured interpreter, in
// configuration order. That order fixes the column order of the produced
// samples, so all rows of one table must come from runners sharing the
// same interpreter list.
type Runner struct {
	interpreters []config.Interpreter
	timer        multitime.Timer
	log          *log.Logger
}

// NewRunner builds a Runner over interpreters using timer for the actual
// measurements. A nil logger discards diagnostics.
func NewRunner(interpreters []config.Interpreter, timer multitime.Timer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{interpreters: interpreters, timer: timer, log: logger}
}

// Run measures script with runs repetitions on every interpreter and
// returns one result per interpreter, in configuration order.
//
// Interpreters in skip, and interpreters the timing utility reports an
// error for, yield the unavailable sentinel and processing continues. A
// malformed timing report is fatal: no partial result set is returned.
func (r *Runner) Run(ctx context.Context, script string, runs int, skip []string) ([]Result, error) {
	if runs < 1 {
		return nil, fmt.Errorf("repetition count must be positive, got %d", runs)
	}

	skipSet := make(map[string]bool, len(skip))
	for _, name := range skip {
		skipSet[name] = true
	}

	results := make([]Result, 0, len(r.interpreters))
	for _, in := range r.interpreters {
		if skipSet[in.Name] {
			r.log.Warn("skipping interpreter", "interpreter", in.Name)
			results = append(results, Result{Interpreter: in, Sample: stats.Unavailable})
			continue
		}

		r.log.Info("running benchmark", "interpreter", in.Name, "script", script, "runs", runs)
		out, err := r.timer.Time(ctx, in.Executable, script, runs)
		if err != nil {
			return nil, fmt.Errorf("timing %s on %s: %w", script, in.Name, err)
		}
		if multitime.ReportsError(out) {
			r.log.Warn("benchmark not runnable", "interpreter", in.Name, "script", script)
			results = append(results, Result{Interpreter: in, Sample: stats.Unavailable})
			continue
		}

		rep, err := multitime.ParseReport(out)
		if err != nil {
			return nil, fmt.Errorf("interpreter %s: %w", in.Name, err)
		}
		wall := rep.Real()
		sample := stats.NewSample(wall.Mean, wall.StdDev, runs)
		r.log.Info("measured",
			"interpreter", in.Name,
			"mean", sample.Mean,
			"stddev", wall.StdDev,
			"confidence", sample.Confidence)
		results = append(results, Result{Interpreter: in, Sample: sample, StdDev: wall.StdDev})
	}
	return results, nil
}

// Samples projects the sample column out of results, preserving order.
func Samples(results []Result) []stats.Sample {
	samples := make([]stats.Sample, len(results))
	for i, res := range results {
		samples[i] = res.Sample
	}
	return samples
}
