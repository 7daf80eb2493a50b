package db

import (
	"context"
	"fmt"
	"time"

	"anonvote/internal/core/domain"
	"anonvote/internal/core/port"
)

// SeedOwner owns the demo campaigns created by Seed.
const SeedOwner domain.Identity = "seed-owner"

// Seed creates demo campaigns through the factory: one open right away and
// one starting in an hour. It is a no-op when campaigns already exist.
func Seed(ctx context.Context, factory port.CampaignFactory) error {
	n, err := factory.CampaignCount(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	now := time.Now().UTC()
	demos := []domain.CampaignParams{
		{
			CandidateNames:  []string{"Alice", "Bob", "Charlie"},
			DurationMinutes: 24 * 60,
			Name:            "Presidential Election",
			Description:     "Vote for the next president",
			StartTime:       now,
			Date:            now.Format(time.DateOnly),
		},
		{
			CandidateNames:  []string{"Yes", "No"},
			DurationMinutes: 30,
			Name:            "Board Referendum",
			Description:     "Approve the new bylaws",
			StartTime:       now.Add(time.Hour),
			Date:            now.Add(time.Hour).Format(time.DateOnly),
		},
	}
	for _, p := range demos {
		if _, err = factory.CreateCampaign(ctx, SeedOwner, p); err != nil {
			return fmt.Errorf("seed %q: %w", p.Name, err)
		}
	}
	return nil
}
