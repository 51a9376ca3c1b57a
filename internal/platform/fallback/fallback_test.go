package fallback

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestTryEachFirstSuccessWins(t *testing.T) {
	calls := 0
	attempts := []Attempt[int]{
		{Name: "primary", Run: func(ctx context.Context) (int, error) { calls++; return 1, nil }},
		{Name: "secondary", Run: func(ctx context.Context) (int, error) { calls++; return 2, nil }},
	}

	got, name, err := TryEach(context.Background(), attempts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 || name != "primary" {
		t.Fatalf("got %d from %q, want 1 from primary", got, name)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, later attempts must not run", calls)
	}
}

func TestTryEachFallsThrough(t *testing.T) {
	boom := errors.New("boom")
	attempts := []Attempt[string]{
		{Name: "a", Run: func(ctx context.Context) (string, error) { return "", boom }},
		{Name: "b", Run: func(ctx context.Context) (string, error) { return "ok", nil }},
	}

	got, name, err := TryEach(context.Background(), attempts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" || name != "b" {
		t.Fatalf("got %q from %q, want ok from b", got, name)
	}
}

func TestTryEachJoinsAllErrors(t *testing.T) {
	errA := errors.New("a down")
	errB := errors.New("b down")
	attempts := []Attempt[string]{
		{Name: "a", Run: func(ctx context.Context) (string, error) { return "", errA }},
		{Name: "b", Run: func(ctx context.Context) (string, error) { return "", errB }},
	}

	_, _, err := TryEach(context.Background(), attempts)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Fatalf("err = %v, want both failures preserved", err)
	}
	if !strings.Contains(err.Error(), "all 2 attempts failed") {
		t.Fatalf("err = %v", err)
	}
}

func TestTryEachEmpty(t *testing.T) {
	if _, _, err := TryEach[int](context.Background(), nil); err == nil {
		t.Fatal("expected an error for an empty chain")
	}
}

func TestTryEachStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	attempts := []Attempt[int]{
		{Name: "a", Run: func(ctx context.Context) (int, error) { ran = true; return 0, nil }},
	}

	_, _, err := TryEach(ctx, attempts)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if ran {
		t.Fatal("attempt must not run after cancellation")
	}
}
