package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"promo-planner/internal/core/domain"
	"promo-planner/internal/core/port"
)

const (
	FixtureAccount  domain.AccountRef  = "macys-new-york"
	FixtureCampaign domain.CampaignRef = "cash-harvest"
)

// FixtureEvents returns the demo calendar: six single-day events spread over
// 2H2010 to 1H2012, named after the session they start in.
func FixtureEvents() []domain.PromotionalEvent {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	fixtures := []struct {
		n          int
		start, end time.Time
	}{
		{1, day(2010, time.December, 30), day(2010, time.December, 31)},
		{2, day(2011, time.January, 1), day(2011, time.January, 1)},
		{3, day(2011, time.June, 30), day(2011, time.June, 30)},
		{4, day(2011, time.July, 1), day(2011, time.July, 1)},
		{5, day(2011, time.December, 31), day(2011, time.December, 31)},
		{6, day(2012, time.January, 1), day(2012, time.January, 2)},
	}
	events := make([]domain.PromotionalEvent, 0, len(fixtures))
	for _, f := range fixtures {
		events = append(events, domain.PromotionalEvent{
			Name:       fmt.Sprintf("Event #%d %s", f.n, domain.SessionOf(f.start)),
			AccountID:  FixtureAccount,
			CampaignID: FixtureCampaign,
			StartAt:    f.start,
			EndAt:      f.end,
		})
	}
	return events
}

// Seed inserts events in one transaction, assigning UUIDv7 ids in order to
// those without one. The ids are written back into events.
func Seed(ctx context.Context, repo port.EventRepository, events []domain.PromotionalEvent) error {
	return repo.WithinTx(ctx, func(ctx context.Context, store port.EventStore) error {
		for i := range events {
			if events[i].ID == uuid.Nil {
				id, err := uuid.NewV7()
				if err != nil {
					return err
				}
				events[i].ID = id
			}
			if err := store.Insert(ctx, &events[i]); err != nil {
				return fmt.Errorf("seed %q: %w", events[i].Name, err)
			}
		}
		return nil
	})
}
