package client

import (
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// ErrMalformedHostname is used to indicate if a host name's format is incorrect.
var ErrMalformedHostname = errors.New("hostname must include port, separated by one colon, like example.com:3500")

// ErrNotOK is used to indicate when an HTTP request to the API failed with any non-2xx response code.
// More specific errors may be returned, but an error in reaction to a non-2xx response will always wrap ErrNotOK.
var ErrNotOK = errors.New("did not receive 2xx response from API")

// ErrNotFound specifically means that a '404 - NOT FOUND' response was received from the API.
var ErrNotFound = errors.Wrap(ErrNotOK, "recv 404 NotFound response from API")

// ErrUnauthorized means the API rejected the request credentials (401 or 403).
var ErrUnauthorized = errors.Wrap(ErrNotOK, "recv 401/403 response from API, check the API key")

// maxErrorBodyBytes bounds how much of an error response is kept in the error message.
const maxErrorBodyBytes = 4096

// Non200Err is a function that parses an HTTP response to handle responses that are not 200 with a formatted error.
func Non200Err(response *http.Response) error {
	bodyBytes, err := io.ReadAll(io.LimitReader(response.Body, maxErrorBodyBytes))
	var body string
	if err != nil {
		body = "(Unable to read response body.)"
	} else {
		body = "response body:\n" + string(bodyBytes)
	}
	u := ""
	if response.Request != nil && response.Request.URL != nil {
		u = response.Request.URL.String()
	}
	msg := fmt.Sprintf("code=%d, url=%s, body=%s", response.StatusCode, u, body)
	switch response.StatusCode {
	case http.StatusNotFound:
		return errors.Wrap(ErrNotFound, msg)
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.Wrap(ErrUnauthorized, msg)
	default:
		return errors.Wrap(ErrNotOK, msg)
	}
}
