// Package fallback centralizes the attempt-primary-then-alternates pattern
// used for unreliable external resources: run attempts in order, stop at the
// first success.
package fallback

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// Attempt is one named candidate in a fallback chain.
type Attempt[T any] struct {
	Name string
	Run  func(ctx context.Context) (T, error)
}

// TryEach runs attempts in order and returns the first successful result
// together with the name of the attempt that produced it. When every
// attempt fails, the errors are joined so no failure is lost.
func TryEach[T any](ctx context.Context, attempts []Attempt[T]) (T, string, error) {
	var zero T

	if len(attempts) == 0 {
		return zero, "", errors.New("fallback: no attempts configured")
	}

	var errs []error
	for _, a := range attempts {
		if err := ctx.Err(); err != nil {
			return zero, "", err
		}

		result, err := a.Run(ctx)
		if err == nil {
			return result, a.Name, nil
		}

		log.Printf("fallback: attempt=%s failed err=%v", a.Name, err)
		errs = append(errs, fmt.Errorf("%s: %w", a.Name, err))
	}

	return zero, "", fmt.Errorf("fallback: all %d attempts failed: %w", len(attempts), errors.Join(errs...))
}
