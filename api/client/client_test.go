package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/wcproof/credfetch/testing/assert"
	"github.com/wcproof/credfetch/testing/require"
)

func TestValidHostname(t *testing.T) {
	cases := []struct {
		name    string
		hostArg string
		path    string
		joined  string
		err     error
	}{
		{
			name:    "hostname without port",
			hostArg: "mydomain.org",
			err:     ErrMalformedHostname,
		},
		{
			name:    "host:port",
			hostArg: "localhost:3500",
			path:    "eth/v1/beacon/headers/1",
			joined:  "http://localhost:3500/eth/v1/beacon/headers/1",
		},
		{
			name:    "base url with path prefix",
			hostArg: "https://data.spiceai.io/eth/beacon",
			path:    "eth/v1/beacon/headers/9179815",
			joined:  "https://data.spiceai.io/eth/beacon/eth/v1/beacon/headers/9179815",
		},
		{
			name:    "leading slash on path",
			hostArg: "https://data.spiceai.io/eth/beacon/",
			path:    "/eth/v2/debug/beacon/states/1",
			joined:  "https://data.spiceai.io/eth/beacon/eth/v2/debug/beacon/states/1",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cl, err := NewClient(c.hostArg)
			if c.err != nil {
				require.ErrorIs(t, err, c.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.joined, cl.URL(c.path))
		})
	}
}

func TestGet_SendsHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, err := w.Write([]byte(`{"ok":true}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, WithUserAgent("credfetch/test"))
	require.NoError(t, err)
	b, err := c.Get(context.Background(), "eth/v1/beacon/headers/1", WithAPIKey("secret"), WithJSONEncoding())
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(b))
	assert.Equal(t, "secret", got.Get(APIKeyHeader))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "credfetch/test", got.Get("User-Agent"))
}

func TestEncodingOptions(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "http://localhost:3500", nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "text/plain")
	WithSSZEncoding()(req)
	assert.Equal(t, "application/octet-stream", req.Header.Get("Accept"))
	WithJSONEncoding()(req)
	assert.DeepEqual(t, []string{"application/json"}, req.Header.Values("Accept"))
}

func TestOpen_Non200(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   error
	}{
		{name: "not found", status: http.StatusNotFound, want: ErrNotFound},
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, want: ErrUnauthorized},
		{name: "server error", status: http.StatusInternalServerError, want: ErrNotOK},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()
			cl, err := NewClient(srv.URL)
			require.NoError(t, err)
			_, err = cl.Open(context.Background(), "x")
			require.ErrorIs(t, err, c.want)
			assert.Equal(t, true, errors.Is(err, ErrNotOK))
			require.ErrorContains(t, "body=response body:\nnope", err)
		})
	}
}
