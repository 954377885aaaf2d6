package llm

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"
)

func TestIsTransient(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"rate limit", &UpstreamError{StatusCode: 429, Message: "rate limited"}, true},
		{"service unavailable", &UpstreamError{StatusCode: 503, Message: "overloaded"}, true},
		{"bad request", &UpstreamError{StatusCode: 400, Message: "bad prompt"}, false},
		{"auth failure", &UpstreamError{StatusCode: 401, Message: "bad key"}, false},
		{"connection reset", syscall.ECONNRESET, true},
		{"connection aborted", syscall.ECONNABORTED, true},
		{"plain error", errors.New("boom"), false},
		{"wrapped upstream", wrapped(&UpstreamError{StatusCode: 500, Message: "oops"}), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsTransient(tc.err); got != tc.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func wrapped(err error) error {
	return errors.Join(errors.New("call failed"), err)
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	t.Run("SucceedsAfterTransientFailures", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, 3, time.Millisecond, func() error {
			calls++
			if calls < 3 {
				return &UpstreamError{StatusCode: 429, Message: "slow down"}
			}
			return nil
		})
		if err != nil {
			t.Fatalf("expected success, got %v", err)
		}
		if calls != 3 {
			t.Errorf("expected 3 calls, got %d", calls)
		}
	})

	t.Run("NonTransientFailsImmediately", func(t *testing.T) {
		calls := 0
		wantErr := &UpstreamError{StatusCode: 400, Message: "bad prompt"}
		err := RetryWithBackoff(ctx, 3, time.Millisecond, func() error {
			calls++
			return wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Fatalf("expected %v, got %v", wantErr, err)
		}
		if calls != 1 {
			t.Errorf("non-transient error should not be retried, got %d calls", calls)
		}
	})

	t.Run("ExhaustsAttempts", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(ctx, 2, time.Millisecond, func() error {
			calls++
			return &UpstreamError{StatusCode: 503, Message: "down"}
		})
		if err == nil {
			t.Fatal("expected error after exhausting attempts")
		}
		if calls != 2 {
			t.Errorf("expected 2 calls, got %d", calls)
		}
	})

	t.Run("RespectsCancellation", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		err := RetryWithBackoff(cancelled, 3, time.Hour, func() error {
			return &UpstreamError{StatusCode: 429, Message: "slow down"}
		})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestLimiter(t *testing.T) {
	l := NewLimiter(1)
	ctx := context.Background()

	if err := l.Acquire(ctx); err != nil {
		t.Fatalf("first acquire should succeed: %v", err)
	}
	if err := l.Acquire(ctx); !errors.Is(err, ErrAtCapacity) {
		t.Fatalf("second acquire should fail fast, got %v", err)
	}

	l.Release()
	if err := l.Acquire(ctx); err != nil {
		t.Fatalf("acquire after release should succeed: %v", err)
	}
}
