// Package retry wraps remote calls in a bounded exponential backoff that only
// retries errors the caller classifies as transient.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy bounds the retries of one call. MaxRetries 0 means a single attempt.
type Policy struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxElapsed      time.Duration
}

// Classifier reports whether err is worth another attempt.
type Classifier func(err error) bool

// Do runs op until it succeeds, returns a permanent error, or the policy is exhausted.
// The returned error is the last one op produced, or the context error when ctx ends first.
func Do(ctx context.Context, p Policy, transient Classifier, op func(ctx context.Context) error) error {
	eb := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		eb.InitialInterval = p.InitialInterval
	}
	eb.MaxElapsedTime = p.MaxElapsed

	retries := p.MaxRetries
	if retries < 0 {
		retries = 0
	}
	b := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(retries)), ctx)

	return backoff.Retry(func() error {
		err := op(ctx)
		if err != nil && (transient == nil || !transient(err)) {
			return backoff.Permanent(err)
		}
		return err
	}, b)
}
