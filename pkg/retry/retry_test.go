package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

var (
	errTransient = errors.New("429 too many requests")
	errPermanent = errors.New("401 unauthorized")
)

func isTransient(err error) bool { return errors.Is(err, errTransient) }

func fastPolicy(retries int) Policy {
	return Policy{MaxRetries: retries, InitialInterval: time.Millisecond, MaxElapsed: time.Second}
}

func TestDo(t *testing.T) {
	tests := []struct {
		name      string
		retries   int
		failures  []error
		wantCalls int
		wantErr   error
	}{
		{"success first try", 3, nil, 1, nil},
		{"transient then success", 3, []error{errTransient, errTransient}, 3, nil},
		{"permanent is not retried", 3, []error{errPermanent}, 1, errPermanent},
		{"transient exhausts retries", 2, []error{errTransient, errTransient, errTransient, errTransient}, 3, errTransient},
		{"zero retries means one attempt", 0, []error{errTransient}, 1, errTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Do(context.Background(), fastPolicy(tt.retries), isTransient, func(ctx context.Context) error {
				calls++
				if calls <= len(tt.failures) {
					return tt.failures[calls-1]
				}
				return nil
			})

			if !errors.Is(err, tt.wantErr) || (err == nil) != (tt.wantErr == nil) {
				t.Errorf("Do() error = %v, want %v", err, tt.wantErr)
			}
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
		})
	}
}

func TestDoStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Do(ctx, fastPolicy(5), isTransient, func(ctx context.Context) error {
		calls++
		return errTransient
	})
	if err == nil {
		t.Fatal("Do() should fail on a cancelled context")
	}
	if calls > 1 {
		t.Errorf("calls = %d, want at most 1", calls)
	}
}
