package llm

import (
	"context"
	"errors"

	"golang.org/x/sync/semaphore"
)

// ErrAtCapacity is returned when all generation slots are in use.
var ErrAtCapacity = errors.New("generation capacity exhausted, try again later")

// Limiter caps the number of concurrent outbound generation calls.
type Limiter struct {
	sem *semaphore.Weighted
}

func NewLimiter(maxConcurrent int64) *Limiter {
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	return &Limiter{sem: semaphore.NewWeighted(maxConcurrent)}
}

// Acquire fails fast instead of queueing so saturated traffic surfaces as
// 503 rather than piling up behind slow upstream calls.
func (l *Limiter) Acquire(ctx context.Context) error {
	if l == nil {
		return nil
	}
	if !l.sem.TryAcquire(1) {
		return ErrAtCapacity
	}
	return nil
}

func (l *Limiter) Release() {
	if l == nil {
		return
	}
	l.sem.Release(1)
}
