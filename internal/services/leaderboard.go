package services

import (
	"context"
	"fmt"
	"slices"

	"amor-service/internal/ports"
)

type LeaderboardEntry struct {
	SalonID int64
	Name    string
	TotalKg float64
}

// BuildLeaderboard ranks salons by total contributed kilograms: seeded base
// weeks, plus their own weekly waste logs (keyed by profile id), plus every
// confirmed pickup quantity (keyed by salon row id). Ordered by total
// descending; equal totals rank alphabetically for stable output.
func BuildLeaderboard(ctx context.Context, store ports.LeaderboardStore) ([]LeaderboardEntry, error) {
	salons, err := store.SalonBases(ctx)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: list salons: %w", err)
	}

	logTotals, err := store.WeeklyLogTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: weekly log totals: %w", err)
	}

	pickupTotals, err := store.PickupTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: pickup totals: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(salons))
	for _, s := range salons {
		total := s.BaseTotalKg()
		if s.ProfileID != "" {
			total += logTotals[s.ProfileID]
		}
		total += pickupTotals[s.ID]

		entries = append(entries, LeaderboardEntry{
			SalonID: s.ID,
			Name:    s.Name,
			TotalKg: total,
		})
	}

	slices.SortFunc(entries, func(a, b LeaderboardEntry) int {
		if a.TotalKg > b.TotalKg {
			return -1
		}
		if a.TotalKg < b.TotalKg {
			return 1
		}
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})

	return entries, nil
}
