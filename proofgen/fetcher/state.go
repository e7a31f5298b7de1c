package fetcher

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/wcproof/credfetch/io/file"
	"github.com/wcproof/credfetch/runtime/version"
)

// ConsensusVersionHeader names the fork of a state returned by the debug state endpoint.
const ConsensusVersionHeader = "Eth-Consensus-Version"

// FetchState downloads a potentially large document and streams it to disk.
// The header timeout only bounds the wait for the response; once headers
// have arrived the body may take as long as it needs.
// Files left behind by a failed download are not removed.
func (f *Fetcher) FetchState(ctx context.Context, req Request) (*Output, error) {
	l := log.WithFields(logrus.Fields{
		"url":  f.maskedURL(req),
		"file": req.OutputPath,
	})
	l.Debug("Requesting state")
	r, err := f.open(ctx, req)
	if err != nil {
		l.WithError(err).Error("State request failed")
		return nil, errors.Wrap(err, "could not fetch state")
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			l.WithError(err).Debug("Could not close response body")
		}
	}()
	if cv := r.Header.Get(ConsensusVersionHeader); cv != "" {
		if fork, err := version.FromString(cv); err == nil {
			l = l.WithField("fork", version.String(fork))
		} else {
			l.WithField("consensusVersion", cv).Debug("Unrecognized consensus version")
		}
	}

	start := time.Now()
	n, err := f.SaveStream(req.OutputPath, r.Body, r.ContentLength)
	if err != nil {
		l.WithError(err).Error("Could not save state")
		return nil, err
	}
	l.WithFields(logrus.Fields{
		"size":     humanize.Bytes(uint64(n)),
		"duration": time.Since(start),
	}).Debug("Saved state")
	return &Output{Path: req.OutputPath, Bytes: n}, nil
}

// open issues the request and aborts it when no response headers arrive
// within the header timeout.
func (f *Fetcher) open(ctx context.Context, req Request) (*http.Response, error) {
	opts := req.options()
	if f.headerTimeout <= 0 {
		return f.api.Open(ctx, req.Path, opts...)
	}
	reqCtx, cancel := context.WithCancel(ctx)
	timer := time.AfterFunc(f.headerTimeout, cancel)
	r, err := f.api.Open(reqCtx, req.Path, opts...)
	fired := !timer.Stop()
	if fired && ctx.Err() == nil {
		if r != nil {
			_ = r.Body.Close()
		}
		cancel()
		return nil, errors.Wrapf(ErrResponseTimeout, "no response within %s", f.headerTimeout)
	}
	if err != nil {
		cancel()
		return nil, err
	}
	r.Body = &cancelOnClose{ReadCloser: r.Body, cancel: cancel}
	return r, nil
}

// SaveStream copies body into a freshly truncated file at path. The copy only
// counts as successful once the file has been closed.
func (f *Fetcher) SaveStream(path string, body io.Reader, size int64) (int64, error) {
	out, err := file.Create(path)
	if err != nil {
		return 0, errors.Wrapf(err, "could not create %s", path)
	}
	var w io.Writer = out
	var bar *progressbar.ProgressBar
	if f.progress != nil && size > 0 {
		bar = progressbar.NewOptions64(
			size,
			progressbar.OptionSetWriter(f.progress),
			progressbar.OptionSetDescription("downloading state"),
			progressbar.OptionShowBytes(true),
			progressbar.OptionFullWidth(),
		)
		w = io.MultiWriter(out, bar)
	}
	n, err := io.Copy(w, body)
	if err != nil {
		_ = out.Close()
		return n, errors.Wrapf(err, "could not stream to %s", path)
	}
	if err := out.Close(); err != nil {
		return n, errors.Wrapf(err, "could not close %s", path)
	}
	if bar != nil {
		if err := bar.Finish(); err != nil {
			log.WithError(err).Debug("Could not finish progress bar")
		}
	}
	return n, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	defer c.cancel()
	return c.ReadCloser.Close()
}
