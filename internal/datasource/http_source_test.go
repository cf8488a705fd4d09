package datasource

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameday-hub/internal/testutil"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestHTTPSourceFetchAddsCacheBuster(t *testing.T) {
	var gotURL string
	client := &http.Client{Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		gotURL = r.URL.String()
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"ok":true}`)),
			Header:     make(http.Header),
		}, nil
	})}

	src := NewHTTPSource(HTTPConfig{BaseURL: "https://example.com/data/", HTTPClient: client})
	src.now = testutil.NowAt(time.UnixMilli(1725638400123))

	body, err := src.Fetch(context.Background(), "current/lines.json")
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
	assert.Equal(t, "https://example.com/data/current/lines.json?t=1725638400123", gotURL)
}

func TestHTTPSourceNon200IsStatusError(t *testing.T) {
	ds := testutil.NewDataServer(t, map[string]string{})
	src := NewHTTPSource(HTTPConfig{BaseURL: ds.URL})

	_, err := src.Fetch(context.Background(), "schedule.json")
	statusErr, ok := AsStatusError(err)
	require.True(t, ok, "expected status error, got %v", err)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.False(t, statusErr.Temporary())
	assert.Contains(t, err.Error(), "404")
}

func TestHTTPSourceTransportError(t *testing.T) {
	client := &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("dial failed")
	})}
	src := NewHTTPSource(HTTPConfig{BaseURL: "http://example.com", HTTPClient: client})

	_, err := src.Fetch(context.Background(), "meta_current.json")
	require.Error(t, err)
	assert.False(t, src.Exists(context.Background(), "meta_current.json"))
}

func TestHTTPSourceExistsUsesHead(t *testing.T) {
	ds := testutil.NewDataServer(t, map[string]string{"current/next.ics": "BEGIN:VCALENDAR"})
	src := NewHTTPSource(HTTPConfig{BaseURL: ds.URL})

	assert.True(t, src.Exists(context.Background(), "current/next.ics"))
	assert.False(t, src.Exists(context.Background(), "current/other.ics"))
	assert.False(t, src.Exists(context.Background(), ""))
}

func TestHTTPSourceRejectsEmptyName(t *testing.T) {
	src := NewHTTPSource(HTTPConfig{BaseURL: "http://example.com"})
	_, err := src.Fetch(context.Background(), "")
	require.Error(t, err)
}
