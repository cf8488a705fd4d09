package runner

import "time"

const (
	readHeaderTimeout = 5 * time.Second
	flushTask         = "page_flush"
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
