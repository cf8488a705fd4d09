package datasource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultHTTPTimeout = 10 * time.Second

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPConfig controls how an HTTP source reaches the data host.
type HTTPConfig struct {
	BaseURL    string
	HTTPClient *http.Client
}

// HTTPSource fetches documents relative to a base URL. Every request carries
// a t=<unix ms> query parameter to defeat intermediate caches.
type HTTPSource struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewHTTPSource constructs an HTTP source.
func NewHTTPSource(cfg HTTPConfig) *HTTPSource {
	return &HTTPSource{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

// Fetch GETs the document and returns its body.
func (s *HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	req, err := s.buildRequest(ctx, http.MethodGet, name)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return nil, &StatusError{URL: req.URL.Path, StatusCode: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}

// Exists issues a HEAD request for the document.
func (s *HTTPSource) Exists(ctx context.Context, name string) bool {
	req, err := s.buildRequest(ctx, http.MethodHead, name)
	if err != nil {
		return false
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (s *HTTPSource) buildRequest(ctx context.Context, method, name string) (*http.Request, error) {
	if name == "" {
		return nil, fmt.Errorf("document name required")
	}
	u, err := url.Parse(s.baseURL + "/" + strings.TrimPrefix(name, "/"))
	if err != nil {
		return nil, fmt.Errorf("build url for %s: %w", name, err)
	}
	q := u.Query()
	q.Set("t", strconv.FormatInt(s.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}
