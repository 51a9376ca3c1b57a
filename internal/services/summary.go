package services

import (
	"context"
	"fmt"

	"amor-service/internal/domain"
	"amor-service/internal/ports"
)

// Collectors are paid a flat rate per confirmed kilogram.
const RatePerKgBDT = 50.0

// CollectorSummary feeds the collection dashboard header.
type CollectorSummary struct {
	PendingCount     int
	CompletedCount   int
	TotalCollectedKg float64
	EarningsBDT      float64
}

// BuildCollectorSummary aggregates a collector's workload and earnings.
// Earnings always trust the confirmed actual weight, not the estimate.
func BuildCollectorSummary(ctx context.Context, repo ports.PickupRepository, collectorID string) (CollectorSummary, error) {
	pending, err := repo.ListByStatus(ctx, domain.PickupPending)
	if err != nil {
		return CollectorSummary{}, fmt.Errorf("collector summary: list pending: %w", err)
	}

	completed, err := repo.ListCompletedByCollector(ctx, collectorID)
	if err != nil {
		return CollectorSummary{}, fmt.Errorf("collector summary: list completed: %w", err)
	}

	summary := CollectorSummary{
		PendingCount:   len(pending),
		CompletedCount: len(completed),
	}
	for _, p := range completed {
		if p.ActualKg != nil {
			summary.TotalCollectedKg += *p.ActualKg
		}
	}
	summary.EarningsBDT = summary.TotalCollectedKg * RatePerKgBDT

	return summary, nil
}
