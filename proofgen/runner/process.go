package runner

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/pkg/errors"
)

// ProcessExecutor runs scripts as child processes of the current process.
// Children inherit the environment and are killed when ctx is canceled.
type ProcessExecutor struct{}

// Execute implements Executor.
func (ProcessExecutor) Execute(ctx context.Context, s Script) (*Result, error) {
	cmd := exec.CommandContext(ctx, s.Path) // #nosec G204
	cmd.Dir = s.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := &Result{
		Script:   s,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	if err == nil {
		return res, nil
	}
	if ctx.Err() != nil {
		return res, errors.Wrapf(ctx.Err(), "%s interrupted", s)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	return nil, errors.Wrapf(ErrScriptStart, "%s: %v", s, err)
}
