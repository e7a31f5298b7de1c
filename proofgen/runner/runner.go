// Package runner executes external scripts one after the other and stops at
// the first one that fails.
package runner

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrScriptStart is returned when a script could not be spawned.
	ErrScriptStart = errors.New("could not start script")
	// ErrScriptExit is returned when a script exits with a non-zero code.
	ErrScriptExit = errors.New("script exited with non-zero code")
	// ErrScriptStderr is returned when a script writes anything to stderr,
	// even if it exits with code 0.
	ErrScriptStderr = errors.New("script wrote to stderr")
)

// Script is an executable run without arguments.
type Script struct {
	Name string
	Path string
	// Dir is the working directory. Empty means the current directory.
	Dir string
}

func (s Script) String() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Path
}

// Result is the captured outcome of a single script execution.
type Result struct {
	Script   Script
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Executor runs a single script. It only returns an error when the script
// could not be run at all; exit codes and output are reported in the Result.
type Executor interface {
	Execute(ctx context.Context, s Script) (*Result, error)
}

// Runner applies the success policy to a sequence of scripts.
type Runner struct {
	exec Executor
}

// New returns a Runner that executes scripts through e.
func New(e Executor) *Runner {
	return &Runner{exec: e}
}

// Run executes scripts in order. It stops at the first script that fails to
// start, exits non-zero or writes to stderr, and returns the results
// collected so far along with the error.
func (r *Runner) Run(ctx context.Context, scripts ...Script) ([]*Result, error) {
	results := make([]*Result, 0, len(scripts))
	for _, s := range scripts {
		res, err := r.RunOne(ctx, s)
		if res != nil {
			results = append(results, res)
		}
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// RunOne executes a single script and checks its result.
func (r *Runner) RunOne(ctx context.Context, s Script) (*Result, error) {
	l := log.WithField("script", s.String())
	l.WithField("path", s.Path).Debug("Running script")
	res, err := r.exec.Execute(ctx, s)
	if err != nil {
		l.WithError(err).Error("Could not run script")
		return res, err
	}
	if res == nil {
		l.Error("Executor returned no result")
		return nil, errors.Wrapf(ErrScriptStart, "%s: no result", s)
	}
	l = l.WithFields(logrus.Fields{
		"exitCode": res.ExitCode,
		"duration": res.Duration,
	})
	if res.ExitCode != 0 {
		l.WithField("stderr", res.Stderr).Error("Script failed")
		return res, errors.Wrapf(ErrScriptExit, "%s exited with code %d", s, res.ExitCode)
	}
	if res.Stderr != "" {
		l.WithField("stderr", res.Stderr).Error("Script wrote to stderr")
		return res, errors.Wrapf(ErrScriptStderr, "%s: %s", s, strings.TrimSpace(res.Stderr))
	}
	l.Infof("stdout: %s", strings.TrimRight(res.Stdout, "\n"))
	return res, nil
}
