package registry

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/samber/lo"
)

var (
	// ErrFetch means the registry could not be reached, answered with a
	// non-success status, or returned a body that is not JSON.
	ErrFetch = errors.New("fetch failed")

	// ErrSchema means the JSON payload does not have the expected shape.
	ErrSchema = errors.New("unexpected response schema")

	// ErrMalformedIdentifier means a GCR identifier has fewer than three
	// "/"-separated segments.
	ErrMalformedIdentifier = errors.New("malformed repository identifier")
)

// maxErrorBytes limits how much of an error response body ends up in the error.
const maxErrorBytes int64 = 8 * 1024 // 8 KiB

// success returns nil if the response status code is allowed, or an ErrFetch
// carrying the request line and the head of the body.
//
// The body is read but not closed.
func success(resp *http.Response, allowedCodes ...int) error {
	allowedCodes = lo.Uniq(append(allowedCodes, http.StatusOK))
	if lo.Contains(allowedCodes, resp.StatusCode) {
		return nil
	}

	msg := fmt.Sprintf("unexpected status code %d", resp.StatusCode)
	content, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBytes))
	// keep the error on one line
	content = bytes.Join(bytes.Fields(content), []byte(" "))
	switch {
	case err != nil:
		return requestError(resp.Request, ErrFetch, fmt.Errorf("%s: unable to read response body: %w", msg, err))
	case len(content) > 0:
		return requestError(resp.Request, ErrFetch, fmt.Errorf("%s: %s", msg, content))
	default:
		return requestError(resp.Request, ErrFetch, errors.New(msg))
	}
}

// requestError tags err with kind and the request line.
func requestError(req *http.Request, kind, err error) error {
	return fmt.Errorf("%w: %s %s: %w", kind, req.Method, req.URL.Redacted(), err)
}
