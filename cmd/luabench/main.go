// luabench clones and builds a set of Lua virtual machines, measures them
// against a fixed set of micro-benchmarks through the multitime timing
// utility, and renders the results into a LaTeX table.
//
// Usage:
//
//	luabench setup
//	luabench run -b ./benchmarks/fib.lua -n 30
//	luabench run -b ./benchmarks/nsieve.lua -n 30 --skip luavm
//	luabench table
//
// Diagnostics go to stderr; `luabench run` prints exactly one formatted
// table row to stdout so `luabench table` can consume it as a child
// process.
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/luabench/luabench/internal/config"
)

var rootCmd = &cobra.Command{
	Use:          "luabench",
	Short:        "Benchmark harness for Lua virtual machines",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(setupCmd, runCmd, tableCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the stderr diagnostic logger shared by all
// subcommands. Timestamps are noise for an interactive harness.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
}

// loadConfig resolves the configuration from the working directory.
func loadConfig() (*config.Config, error) {
	return config.Load(".")
}
