// Package proofgen downloads the header and state of a slot and then runs
// the scripts that turn them into a VerifyWithdrawalCredential proof.
package proofgen

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/wcproof/credfetch/proofgen/fetcher"
	"github.com/wcproof/credfetch/proofgen/runner"
)

// ErrAlreadyRunning is returned when Run or Fetch is called while another
// call on the same Pipeline is still in progress.
var ErrAlreadyRunning = errors.New("pipeline is already running")

// Fetcher downloads the two files a run needs.
type Fetcher interface {
	FetchHead(ctx context.Context, req fetcher.Request) (*fetcher.Output, error)
	FetchState(ctx context.Context, req fetcher.Request) (*fetcher.Output, error)
}

// Report summarizes a run. Fields of steps that did not run are zero.
type Report struct {
	RunID    string
	Head     *fetcher.Output
	State    *fetcher.Output
	Scripts  []*runner.Result
	Duration time.Duration
}

// Pipeline runs the steps strictly in order: head, state, then each script.
type Pipeline struct {
	cfg    Config
	fetch  Fetcher
	runner *runner.Runner
	mu     sync.Mutex
}

// New validates cfg and returns a Pipeline.
func New(cfg Config, f Fetcher, e runner.Executor) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if f == nil || e == nil {
		return nil, errors.New("fetcher and executor are required")
	}
	return &Pipeline{
		cfg:    cfg,
		fetch:  f,
		runner: runner.New(e),
	}, nil
}

// Fetch downloads the header and then the state. It does not run scripts.
func (p *Pipeline) Fetch(ctx context.Context) (*Report, error) {
	if !p.mu.TryLock() {
		return nil, ErrAlreadyRunning
	}
	defer p.mu.Unlock()
	rep, l := p.newReport()
	start := time.Now()
	err := p.fetchAll(ctx, rep, l)
	rep.Duration = time.Since(start)
	observeRun("fetch", err)
	if err != nil {
		return rep, err
	}
	l.Info("Files saved successfully.")
	return rep, nil
}

// Run downloads both files and then runs the scripts.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	if !p.mu.TryLock() {
		return nil, ErrAlreadyRunning
	}
	defer p.mu.Unlock()
	rep, l := p.newReport()
	start := time.Now()
	err := p.run(ctx, rep, l)
	rep.Duration = time.Since(start)
	observeRun("run", err)
	return rep, err
}

func (p *Pipeline) run(ctx context.Context, rep *Report, l *logrus.Entry) error {
	if err := p.fetchAll(ctx, rep, l); err != nil {
		return err
	}
	l.Info("Files saved successfully.")

	results, err := p.runner.Run(ctx, p.cfg.Scripts()...)
	rep.Scripts = results
	for _, r := range results {
		stepDuration.WithLabelValues(r.Script.Name).Observe(r.Duration.Seconds())
	}
	if err != nil {
		return err
	}
	l.Info("Successfully Created VerifyWithdrawalCredential JSON")
	return nil
}

func (p *Pipeline) fetchAll(ctx context.Context, rep *Report, l *logrus.Entry) error {
	l.WithField("slot", p.cfg.Slot).Debug("Fetching head and state")
	start := time.Now()
	head, err := p.fetch.FetchHead(ctx, p.cfg.HeadRequest())
	if err != nil {
		return err
	}
	rep.Head = head
	stepDuration.WithLabelValues("head").Observe(time.Since(start).Seconds())
	outputBytes.WithLabelValues("head").Add(float64(head.Bytes))

	start = time.Now()
	state, err := p.fetch.FetchState(ctx, p.cfg.StateRequest())
	if err != nil {
		return err
	}
	rep.State = state
	stepDuration.WithLabelValues("state").Observe(time.Since(start).Seconds())
	outputBytes.WithLabelValues("state").Add(float64(state.Bytes))
	return nil
}

func (p *Pipeline) newReport() (*Report, *logrus.Entry) {
	id := uuid.New().String()
	return &Report{RunID: id}, log.WithField("runId", id)
}

func observeRun(mode string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	runsTotal.WithLabelValues(mode, outcome).Inc()
}
