package config

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const initialInterval = time.Millisecond * 500

const (
	// FetchRetryMaxInterval indicates the maximum interval between retries of
	// a failed playlist fetch
	FetchRetryMaxInterval = time.Second * 10
	// FetchRetryMaxElapsedTime indicates how long to retry before giving up on
	// a single fetch
	FetchRetryMaxElapsedTime = time.Minute
)

// NewFetchBackoff returns a new backoff set to the intended configuration
// for retrying playlist fetches, it stops after maxRetries retries
func NewFetchBackoff(ctx context.Context, maxRetries uint64) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(initialInterval),
		backoff.WithMaxInterval(FetchRetryMaxInterval),
		backoff.WithMaxElapsedTime(FetchRetryMaxElapsedTime),
	)

	return backoff.WithContext(backoff.WithMaxRetries(b, maxRetries), ctx)
}
