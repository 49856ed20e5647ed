package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luabench/luabench/internal/config"
)

func TestLastNonEmptyLine_When_TrailingNewline(t *testing.T) {
	t.Parallel()

	// The runner's stdout ends with a final newline; the row is the last
	// non-empty line.
	out := "&$1.0000 \\scriptstyle \\pm \\small{0.1000}$ \\\\\n"
	assert.Equal(t, "&$1.0000 \\scriptstyle \\pm \\small{0.1000}$ \\\\", lastNonEmptyLine(out))
}

func TestLastNonEmptyLine_When_MultipleLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "row", lastNonEmptyLine("noise\nrow\n\n"))
	assert.Equal(t, "row", lastNonEmptyLine("row\r\n"))
}

func TestLastNonEmptyLine_When_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, lastNonEmptyLine(""))
	assert.Empty(t, lastNonEmptyLine("\n\n"))
}

func TestValidateSkip_When_NamesKnown(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	assert.NoError(t, validateSkip(cfg, nil))
	assert.NoError(t, validateSkip(cfg, []string{"luavm", "luster"}))
}

func TestValidateSkip_When_NameUnknown(t *testing.T) {
	t.Parallel()

	err := validateSkip(config.Default(), []string{"mlua"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "mlua")
}

func TestRunCmd_When_FlagsRegistered(t *testing.T) {
	t.Parallel()

	require.NotNil(t, runCmd.Flags().Lookup("bench"))
	require.NotNil(t, runCmd.Flags().Lookup("runs"))
	require.NotNil(t, runCmd.Flags().Lookup("skip"))
	assert.Equal(t, "b", runCmd.Flags().Lookup("bench").Shorthand)
	assert.Equal(t, "n", runCmd.Flags().Lookup("runs").Shorthand)
}

func TestRootCmd_When_SubcommandsWired(t *testing.T) {
	t.Parallel()

	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["setup"])
	assert.True(t, names["run"])
	assert.True(t, names["table"])
}
