package multitime

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
)

// Timer measures an interpreter running a benchmark script and returns
// the timing utility's combined stdout and stderr text.
type Timer interface {
	Time(ctx context.Context, executable, script string, runs int) (string, error)
}

// CommandTimer shells out to a multitime binary.
type CommandTimer struct {
	// Path is the multitime executable, e.g. "multitime/multitime".
	Path string
}

// Time runs `multitime -n <runs> <executable> <script>` and captures its
// combined output.
//
// multitime exits non-zero when the measured command fails, but its
// report text still carries the Error marker the caller inspects, so an
// exit error with captured output is not treated as fatal here. Only
// failing to start the utility at all is.
func (t *CommandTimer) Time(ctx context.Context, executable, script string, runs int) (string, error) {
	cmd := exec.CommandContext(ctx, t.Path, "-n", strconv.Itoa(runs), executable, script)
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("running %s: %w", t.Path, err)
		}
	}
	return string(out), nil
}
