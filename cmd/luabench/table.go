package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luabench/luabench/internal/config"
	"github.com/luabench/luabench/internal/latex"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Generate the LaTeX benchmark table",
	Long: `Generate the LaTeX benchmark table.

Each configured benchmark is measured by spawning this executable's own
"run" subcommand with a single repetition and capturing the row it prints.
The assembled document replaces the configured output file. Any child
failure aborts generation; no partial table is written.`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

func runTable(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating own executable: %w", err)
	}

	logger := newLogger()
	rows := make([]string, 0, len(cfg.Benchmarks))
	for _, b := range cfg.Benchmarks {
		logger.Info("collecting row", "benchmark", b.Label, "script", b.Script)
		row, err := collectRow(cmd.Context(), self, b)
		if err != nil {
			return fmt.Errorf("benchmark %s: %w", b.Label, err)
		}
		rows = append(rows, b.Label+row)
	}

	columns := make([]string, len(cfg.Interpreters))
	for i, in := range cfg.Interpreters {
		columns[i] = in.Display
	}

	if err := latex.WriteDocument(cfg.Output, latex.TableData{Columns: columns, Rows: rows}); err != nil {
		return err
	}
	logger.Info("wrote table", "path", cfg.Output)
	return nil
}

// collectRow runs `<self> run -b <script> -n 1 [--skip name]...` and
// returns the row the child printed: the last non-empty line of its
// stdout. The child's diagnostics go to stderr and pass through.
func collectRow(ctx context.Context, self string, b config.Benchmark) (string, error) {
	args := []string{"run", "-b", b.Script, "-n", "1"}
	for _, name := range b.Skip {
		args = append(args, "--skip", name)
	}

	child := exec.CommandContext(ctx, self, args...)
	var out bytes.Buffer
	child.Stdout = &out
	child.Stderr = os.Stderr
	if err := child.Run(); err != nil {
		return "", fmt.Errorf("running %s: %w", strings.Join(args, " "), err)
	}

	row := lastNonEmptyLine(out.String())
	if row == "" {
		return "", errors.New("runner printed no table row")
	}
	return row, nil
}

func lastNonEmptyLine(s string) string {
	lines := strings.Split(s, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimRight(lines[i], "\r"); line != "" {
			return line
		}
	}
	return ""
}
