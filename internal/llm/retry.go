package llm

import (
	"context"
	"errors"
	"io"
	"net"
	"syscall"
	"time"

	"github.com/learnhub-app/learnhub-api/internal/config"
)

// IsTransient reports whether an error is a passing network or rate-limit
// condition. Anything else propagates immediately without retry.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.Transient()
	}

	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNABORTED) ||
		errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return false
}

// RetryWithBackoff runs fn up to attempts times, sleeping
// initialDelay * 2^attempt between transient failures. The timer respects
// ctx so a cancelled request stops waiting immediately.
func RetryWithBackoff(ctx context.Context, attempts int, initialDelay time.Duration, fn func() error) error {
	log := config.WithContext(ctx)

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		if !IsTransient(err) || attempt == attempts-1 {
			return err
		}

		delay := initialDelay << attempt
		log.WithError(err).Warnf("Transient upstream error, retrying in %s (attempt %d/%d)",
			delay, attempt+1, attempts)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}
