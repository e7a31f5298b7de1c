package fetcher

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/wcproof/credfetch/io/file"
)

// FetchHead downloads a small JSON document, holds it in memory and saves it
// with two-space indentation.
func (f *Fetcher) FetchHead(ctx context.Context, req Request) (*Output, error) {
	l := log.WithFields(logrus.Fields{
		"url":  f.maskedURL(req),
		"file": req.OutputPath,
	})
	l.Debug("Requesting head")
	body, err := f.api.Get(ctx, req.Path, req.options()...)
	if err != nil {
		l.WithError(err).Error("Head request failed")
		return nil, errors.Wrap(err, "could not fetch head")
	}
	n, err := SaveJSON(req.OutputPath, body)
	if err != nil {
		l.WithError(err).Error("Could not save head")
		return nil, err
	}
	l.WithField("size", humanize.Bytes(uint64(n))).Info("File saved successfully.")
	return &Output{Path: req.OutputPath, Bytes: n}, nil
}

// SaveJSON validates body as a single JSON document and writes it to path
// indented with two spaces and without a trailing newline. Object key order
// and the text of scalar values are kept as received.
func SaveJSON(path string, body []byte) (int64, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return 0, errors.Wrapf(ErrInvalidJSON, "%d bytes", len(body))
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
		return 0, errors.Wrap(ErrInvalidJSON, err.Error())
	}
	if err := file.WriteFile(path, buf.Bytes()); err != nil {
		return 0, errors.Wrapf(err, "could not write %s", path)
	}
	return int64(buf.Len()), nil
}
