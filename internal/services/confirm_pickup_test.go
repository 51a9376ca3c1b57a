package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"amor-service/internal/domain"
)

func TestConfirmPickup(t *testing.T) {
	p := pendingPickup(1, "Salon Y", 23.75, 90.37)
	p.EstimatedKg = 5
	repo := newFakePickupRepo(p)

	now := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	got, err := ConfirmPickup(context.Background(), repo, 1, "c1", 4.5, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Status != domain.PickupCompleted {
		t.Fatalf("status = %q, want completed", got.Status)
	}
	if got.ActualKg == nil || *got.ActualKg != 4.5 {
		t.Fatalf("actual kg = %v, want 4.5 (estimate must not be reused)", got.ActualKg)
	}
	if got.CollectorID == nil || *got.CollectorID != "c1" {
		t.Fatalf("collector = %v, want c1", got.CollectorID)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(now) {
		t.Fatalf("completed at = %v, want %v", got.CompletedAt, now)
	}
}

func TestConfirmPickupRejectsInvalidWeight(t *testing.T) {
	p := pendingPickup(1, "Salon Y", 23.75, 90.37)
	repo := newFakePickupRepo(p)

	for _, weight := range []float64{0, -1} {
		_, err := ConfirmPickup(context.Background(), repo, 1, "c1", weight, time.Now())
		if !errors.Is(err, ErrInvalidWeight) {
			t.Fatalf("weight %v: err = %v, want ErrInvalidWeight", weight, err)
		}
	}

	// Rejection happens before any store write.
	if p.Status != domain.PickupPending || p.ActualKg != nil {
		t.Fatalf("pickup mutated by rejected confirmation: %+v", p)
	}
}

func TestConfirmPickupOnlyOnce(t *testing.T) {
	repo := newFakePickupRepo(pendingPickup(1, "Salon Y", 23.75, 90.37))
	ctx := context.Background()

	if _, err := ConfirmPickup(ctx, repo, 1, "c1", 4.5, time.Now()); err != nil {
		t.Fatalf("first confirmation: %v", err)
	}

	_, err := ConfirmPickup(ctx, repo, 1, "c2", 6, time.Now())
	if !errors.Is(err, domain.ErrPickupAlreadyCompleted) {
		t.Fatalf("second confirmation: err = %v, want ErrPickupAlreadyCompleted", err)
	}

	p, _ := repo.Get(ctx, 1)
	if *p.ActualKg != 4.5 || *p.CollectorID != "c1" {
		t.Fatalf("first confirmation overwritten: %+v", p)
	}
}

func TestConfirmPickupUnknownID(t *testing.T) {
	repo := newFakePickupRepo()

	_, err := ConfirmPickup(context.Background(), repo, 42, "c1", 3, time.Now())
	if !errors.Is(err, domain.ErrPickupNotFound) {
		t.Fatalf("err = %v, want ErrPickupNotFound", err)
	}
}
