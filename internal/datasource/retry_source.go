package datasource

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"

	"gameday-hub/internal/logging"
)

const (
	defaultRetries         = 3
	defaultInitialInterval = 200 * time.Millisecond
	defaultMaxElapsed      = 15 * time.Second
)

// RetryOption customizes a retrying source.
type RetryOption func(*retryingSource)

// WithRetryLogger logs each retry.
func WithRetryLogger(logger *slog.Logger) RetryOption {
	return func(r *retryingSource) { r.logger = logger }
}

// WithBackoff overrides the backoff policy factory.
func WithBackoff(factory func() backoff.BackOff) RetryOption {
	return func(r *retryingSource) { r.newBackoff = factory }
}

// retryingSource wraps a Source with exponential backoff on Fetch.
type retryingSource struct {
	inner      Source
	retries    int
	logger     *slog.Logger
	newBackoff func() backoff.BackOff
}

// NewRetrying wraps inner so that transient Fetch failures are retried up to
// retries times. Existence probes are not retried.
func NewRetrying(inner Source, retries int, opts ...RetryOption) Source {
	if retries <= 0 {
		retries = defaultRetries
	}
	r := &retryingSource{
		inner:   inner,
		retries: retries,
		newBackoff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = defaultInitialInterval
			b.MaxElapsedTime = defaultMaxElapsed
			return b
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *retryingSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	attempt := 0
	op := func() ([]byte, error) {
		attempt++
		body, err := r.inner.Fetch(ctx, name)
		if err != nil && !retryable(err) {
			return nil, backoff.Permanent(err)
		}
		return body, err
	}
	notify := func(err error, delay time.Duration) {
		logging.Warn(logging.FromContext(ctx, r.logger), "data fetch retry", err,
			logging.FieldDocument, name,
			"attempt", attempt,
			"max_attempts", r.retries+1,
			logging.FieldDurationMS, delay.Milliseconds(),
		)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(r.newBackoff(), uint64(r.retries)), ctx)
	return backoff.RetryNotifyWithData(op, policy, notify)
}

func (r *retryingSource) Exists(ctx context.Context, name string) bool {
	return r.inner.Exists(ctx, name)
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	if statusErr, ok := AsStatusError(err); ok {
		return statusErr.Temporary()
	}
	return true
}
