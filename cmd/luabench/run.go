package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luabench/luabench/internal/bench"
	"github.com/luabench/luabench/internal/config"
	"github.com/luabench/luabench/internal/console"
	"github.com/luabench/luabench/internal/latex"
	"github.com/luabench/luabench/internal/multitime"
)

var (
	runScript string
	runCount  int
	runSkip   []string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one benchmark across all configured interpreters",
	Long: `Run one benchmark across all configured interpreters.

Each interpreter is invoked under multitime; the mean wall-clock time and
its 99% confidence half-width are printed per interpreter to stderr, and
one LaTeX table row covering all interpreters is printed to stdout.`,
	Args: cobra.NoArgs,
	RunE: runBenchmark,
}

func init() {
	runCmd.Flags().StringVarP(&runScript, "bench", "b", "", "benchmark script to run")
	runCmd.Flags().IntVarP(&runCount, "runs", "n", 0, "repetitions per interpreter")
	runCmd.Flags().StringSliceVar(&runSkip, "skip", nil, "interpreter names to skip (repeatable)")
	_ = runCmd.MarkFlagRequired("bench")
	_ = runCmd.MarkFlagRequired("runs")
}

func runBenchmark(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := validateSkip(cfg, runSkip); err != nil {
		return err
	}

	timer := &multitime.CommandTimer{Path: cfg.Multitime}
	runner := bench.NewRunner(cfg.Interpreters, timer, newLogger())
	results, err := runner.Run(cmd.Context(), runScript, runCount, runSkip)
	if err != nil {
		return err
	}

	if console.IsTTY(os.Stderr) {
		console.Summary(os.Stderr, runScript, results)
	}

	// The row is the command's machine-readable product; it must be the
	// last line on stdout.
	fmt.Fprintln(cmd.OutOrStdout(), latex.Row(bench.Samples(results)))
	return nil
}

func validateSkip(cfg *config.Config, skip []string) error {
	for _, name := range skip {
		if _, ok := cfg.Interpreter(name); !ok {
			return fmt.Errorf("unknown interpreter %q in --skip (configured: %v)",
				name, cfg.InterpreterNames())
		}
	}
	return nil
}
