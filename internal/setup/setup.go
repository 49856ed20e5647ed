// Package setup clones and builds the timing utility and the benchmarked
// Lua virtual machines.
//
// Processing is strictly sequential and fail-fast: the first clone or
// build step that exits non-zero aborts the remaining steps of that
// project and every project after it. There is no rollback and no retry;
// a rerun picks up with whatever trees already exist on disk.
package setup

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/luabench/luabench/internal/config"
)

// CommandRunner executes one clone or build step in dir.
type CommandRunner interface {
	Run(ctx context.Context, dir string, argv []string) error
}

// ExecRunner runs steps as real child processes with inherited stdio, so
// build output reaches the user directly.
type ExecRunner struct{}

// Run implements CommandRunner.
func (ExecRunner) Run(ctx context.Context, dir string, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Builder acquires and builds projects under a root directory.
type Builder struct {
	root   string
	runner CommandRunner
	log    *log.Logger
}

// NewBuilder builds under root using runner for every external command. A
// nil logger discards diagnostics.
func NewBuilder(root string, runner CommandRunner, logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Builder{root: root, runner: runner, log: logger}
}

// SetupAll processes projects in order and stops at the first failure.
func (b *Builder) SetupAll(ctx context.Context, projects []config.Project) error {
	for _, p := range projects {
		if err := b.setupOne(ctx, p); err != nil {
			b.log.Error("setup aborted", "project", p.Name, "err", err)
			return err
		}
		b.log.Info("finished building", "project", p.Name)
	}
	return nil
}

func (b *Builder) setupOne(ctx context.Context, p config.Project) error {
	if err := b.clone(ctx, p); err != nil {
		return fmt.Errorf("cloning %s: %w", p.Name, err)
	}
	dir := filepath.Join(b.root, p.Name)
	for i, step := range p.Steps {
		b.log.Info("running build step", "project", p.Name, "step", fmt.Sprintf("%d/%d", i+1, len(p.Steps)))
		if err := b.runner.Run(ctx, dir, step); err != nil {
			return fmt.Errorf("building %s (step %d): %w", p.Name, i+1, err)
		}
	}
	return nil
}

// clone fetches the project's source tree unless a directory with its
// name already exists. The check is presence only: a stale or partial
// tree counts as already fetched.
func (b *Builder) clone(ctx context.Context, p config.Project) error {
	dir := filepath.Join(b.root, p.Name)
	if _, err := os.Stat(dir); err == nil {
		b.log.Info("already cloned", "project", p.Name)
		return nil
	}
	b.log.Info("cloning", "project", p.Name, "url", p.URL)
	return b.runner.Run(ctx, b.root, []string{"git", "clone", p.URL, p.Name})
}
