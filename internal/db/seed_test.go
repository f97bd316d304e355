package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promo-planner/internal/adapter/memory"
)

func TestFixtureEventsAreNamedAfterTheirSession(t *testing.T) {
	want := []string{
		"Event #1 2H2010",
		"Event #2 1H2011",
		"Event #3 1H2011",
		"Event #4 2H2011",
		"Event #5 2H2011",
		"Event #6 1H2012",
	}
	events := FixtureEvents()
	require.Len(t, events, len(want))
	for i, e := range events {
		assert.Equal(t, want[i], e.Name)
		assert.False(t, e.EndAt.Before(e.StartAt), e.Name)
	}
}

func TestSeedAssignsOrderedIDs(t *testing.T) {
	repo := memory.NewEventRepository()
	events := FixtureEvents()

	require.NoError(t, Seed(context.Background(), repo, events))

	stored := repo.All()
	require.Len(t, stored, len(events))
	for i := range events {
		assert.Equal(t, events[i].ID, stored[i].ID)
		assert.False(t, stored[i].CreatedAt.IsZero())
		if i > 0 {
			assert.Less(t, events[i-1].ID.String(), events[i].ID.String())
		}
	}
}
