// Package fetcher downloads beacon API resources for a slot and persists
// them to local files. Small JSON documents are buffered and re-indented;
// large documents are streamed straight to disk.
package fetcher

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/wcproof/credfetch/api/client"
	"github.com/wcproof/credfetch/io/logs"
)

// DefaultHeaderTimeout bounds the wait for the response headers of a streamed download.
const DefaultHeaderTimeout = 30 * time.Second

var (
	// ErrResponseTimeout is returned when a streamed request gets no response headers in time.
	ErrResponseTimeout = errors.New("timed out waiting for response headers")
	// ErrInvalidJSON is returned when a buffered response body is not a JSON document.
	ErrInvalidJSON = errors.New("response body is not valid JSON")
)

// API issues GET requests against a beacon API base URL.
type API interface {
	Get(ctx context.Context, path string, opts ...client.ReqOption) ([]byte, error)
	Open(ctx context.Context, path string, opts ...client.ReqOption) (*http.Response, error)
	URL(path string) string
}

// Request describes one download: the API path, the file the body goes to,
// the key sent as X-API-Key and whether the body is requested as SSZ.
type Request struct {
	Path       string
	OutputPath string
	APIKey     string
	SSZ        bool
}

func (r Request) options() []client.ReqOption {
	opts := make([]client.ReqOption, 0, 2)
	if r.APIKey != "" {
		opts = append(opts, client.WithAPIKey(r.APIKey))
	}
	if r.SSZ {
		return append(opts, client.WithSSZEncoding())
	}
	return append(opts, client.WithJSONEncoding())
}

// Output describes a file written by the fetcher.
type Output struct {
	Path  string
	Bytes int64
}

// Fetcher performs the downloads described by a Request.
type Fetcher struct {
	api           API
	headerTimeout time.Duration
	progress      io.Writer
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHeaderTimeout overrides DefaultHeaderTimeout for streamed downloads.
// A zero or negative value disables the timeout.
func WithHeaderTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.headerTimeout = d
	}
}

// WithProgress renders a progress bar to w while streaming bodies of known length.
func WithProgress(w io.Writer) Option {
	return func(f *Fetcher) {
		f.progress = w
	}
}

// New returns a Fetcher issuing its requests through api.
func New(api API, opts ...Option) *Fetcher {
	f := &Fetcher{
		api:           api,
		headerTimeout: DefaultHeaderTimeout,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

func (f *Fetcher) maskedURL(req Request) string {
	return logs.MaskCredentialsLogging(f.api.URL(req.Path))
}
