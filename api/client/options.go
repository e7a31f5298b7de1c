package client

import (
	"net/http"
)

// APIKeyHeader carries the key of hosted beacon API providers.
const APIKeyHeader = "X-API-Key"

type ReqOption func(*http.Request)

func WithSSZEncoding() ReqOption {
	return func(req *http.Request) {
		req.Header.Set("Accept", "application/octet-stream")
	}
}

func WithJSONEncoding() ReqOption {
	return func(req *http.Request) {
		req.Header.Set("Accept", "application/json")
	}
}

// WithAPIKey sets the X-API-Key header.
func WithAPIKey(key string) ReqOption {
	return func(req *http.Request) {
		req.Header.Set(APIKeyHeader, key)
	}
}

// ClientOpt is a functional option for the Client type (http.Client wrapper)
type ClientOpt func(*Client)

// WithUserAgent sets the User-Agent sent with every request.
func WithUserAgent(ua string) ClientOpt {
	return func(c *Client) {
		c.userAgent = ua
	}
}
