package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/chanterm/internal/ports"
)

// Policy describes a bounded exponential backoff schedule. It is pure
// data; Do interprets it.
type Policy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:  3,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     8 * time.Second,
		Multiplier:   2,
	}
}

func (p Policy) Validate() error {
	if p.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be at least 1, got %d", p.MaxAttempts)
	}
	if p.InitialDelay <= 0 {
		return fmt.Errorf("initial delay must be positive, got %s", p.InitialDelay)
	}
	if p.MaxDelay < p.InitialDelay {
		return fmt.Errorf("max delay %s is below initial delay %s", p.MaxDelay, p.InitialDelay)
	}
	if p.Multiplier < 1 {
		return fmt.Errorf("multiplier must be at least 1, got %v", p.Multiplier)
	}

	return nil
}

// DelayForAttempt returns the sleep after the given zero-based failed
// attempt: min(InitialDelay * Multiplier^attempt, MaxDelay).
func (p Policy) DelayForAttempt(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	delay := float64(p.InitialDelay)
	for i := 0; i < attempt; i++ {
		delay *= p.Multiplier
		if time.Duration(delay) >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if time.Duration(delay) > p.MaxDelay {
		return p.MaxDelay
	}

	return time.Duration(delay)
}

// Attempt reports one failed invocation to the OnRetry observer.
// Number is 1-based; Delay is the sleep before the next invocation.
type Attempt struct {
	Number int
	Err    error
	Delay  time.Duration
}

// Options carries the collaborators Do needs beyond the policy. The
// zero value means system clock, every error retryable, no observer.
type Options struct {
	Clock     ports.Clock
	Retryable func(error) bool
	OnRetry   func(Attempt)
}

// Do runs fn until it succeeds, fails terminally, or the policy's
// attempt budget runs out. It sleeps between attempts, never after
// the last one, and aborts promptly when ctx is cancelled during a
// sleep. The error of the final attempt comes back unwrapped so
// callers can classify it.
func Do[T any](ctx context.Context, policy Policy, opts Options, fn func(context.Context) (T, error)) (T, error) {
	var zero T

	if err := policy.Validate(); err != nil {
		return zero, fmt.Errorf("invalid retry policy: %w", err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}
	retryable := opts.Retryable
	if retryable == nil {
		retryable = func(error) bool { return true }
	}

	var lastErr error
	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := policy.DelayForAttempt(attempt - 1)
			if opts.OnRetry != nil {
				opts.OnRetry(Attempt{Number: attempt, Err: lastErr, Delay: delay})
			}
			select {
			case <-ctx.Done():
				return zero, fmt.Errorf("retry aborted during backoff: %w", ctx.Err())
			case <-clock.After(delay):
			}
		}

		if err := ctx.Err(); err != nil {
			return zero, err
		}

		out, err := fn(ctx)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !retryable(err) {
			return zero, err
		}
	}

	return zero, lastErr
}
