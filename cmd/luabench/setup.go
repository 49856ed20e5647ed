package main

import (
	"github.com/spf13/cobra"

	"github.com/luabench/luabench/internal/setup"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Clone and build the timing utility and every Lua VM",
	Long: `Clone and build the timing utility and every configured Lua VM.

Projects are processed in configuration order; the first failing clone or
build step aborts the rest. Rerunning resumes with whatever source trees
already exist (presence of a project directory counts as cloned).`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func runSetup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	b := setup.NewBuilder(".", setup.ExecRunner{}, newLogger())
	return b.SetupAll(cmd.Context(), cfg.Projects)
}
