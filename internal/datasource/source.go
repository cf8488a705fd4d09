// Package datasource reads the site's JSON documents from a directory or an
// HTTP base URL.
package datasource

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Source reads named documents relative to a data root.
type Source interface {
	// Fetch returns the raw document body.
	Fetch(ctx context.Context, name string) ([]byte, error)
	// Exists reports whether the document can be read. Failures count as absent.
	Exists(ctx context.Context, name string) bool
}

// StatusError is returned when an HTTP source answers with a non-200 status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("datasource: unexpected status %d for %s", e.StatusCode, e.URL)
}

// Temporary reports whether retrying may help.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}

// IsRemote reports whether dir is an http(s) URL.
func IsRemote(dir string) bool {
	lower := strings.ToLower(dir)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// New picks a filesystem or HTTP source for dir. Remote sources retry
// transient failures up to retries times.
func New(dir string, timeout time.Duration, retries int, opts ...RetryOption) Source {
	if IsRemote(dir) {
		httpSource := NewHTTPSource(HTTPConfig{
			BaseURL:    dir,
			HTTPClient: &http.Client{Timeout: timeout},
		})
		return NewRetrying(httpSource, retries, opts...)
	}
	return NewFSSource(dir)
}
