package services

import (
	"context"
	"testing"
	"time"
)

func TestBuildCollectorSummary(t *testing.T) {
	repo := newFakePickupRepo(
		pendingPickup(1, "Salon A", 23.76, 90.38),
		pendingPickup(2, "Salon B", 23.77, 90.39),
		pendingPickup(3, "Salon C", 23.78, 90.40),
		pendingPickup(4, "Salon D", 23.79, 90.41),
	)
	ctx := context.Background()

	if _, err := repo.Confirm(ctx, 3, "c1", 4.5, time.Now()); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if _, err := repo.Confirm(ctx, 4, "c2", 10, time.Now()); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	s, err := BuildCollectorSummary(ctx, repo, "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.PendingCount != 2 {
		t.Fatalf("pending = %d, want 2", s.PendingCount)
	}
	// Only c1's own confirmations count toward the totals.
	if s.CompletedCount != 1 {
		t.Fatalf("completed = %d, want 1", s.CompletedCount)
	}
	if s.TotalCollectedKg != 4.5 {
		t.Fatalf("collected = %v, want 4.5", s.TotalCollectedKg)
	}
	if s.EarningsBDT != 4.5*RatePerKgBDT {
		t.Fatalf("earnings = %v, want %v", s.EarningsBDT, 4.5*RatePerKgBDT)
	}
}

func TestBuildCollectorSummaryEmpty(t *testing.T) {
	s, err := BuildCollectorSummary(context.Background(), newFakePickupRepo(), "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != (CollectorSummary{}) {
		t.Fatalf("summary = %+v, want zero value", s)
	}
}
