package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// DataServer serves fixed documents keyed by path (without leading slash).
type DataServer struct {
	*httptest.Server
	Requests atomic.Int32
}

// NewDataServer starts a server that returns docs[path] or 404. It is closed
// when the test ends.
func NewDataServer(t *testing.T, docs map[string]string) *DataServer {
	t.Helper()
	ds := &DataServer{}
	ds.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ds.Requests.Add(1)
		body, ok := docs[strings.TrimPrefix(r.URL.Path, "/")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ds.Close)
	return ds
}
