package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promo-planner/internal/core/domain"
	"promo-planner/internal/core/port"
)

func event(t *testing.T, name string, start time.Time) domain.PromotionalEvent {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return domain.PromotionalEvent{ID: id, Name: name, AccountID: "a", CampaignID: "c", StartAt: start, EndAt: start}
}

func insertAll(t *testing.T, repo *EventRepository, events ...domain.PromotionalEvent) {
	t.Helper()
	err := repo.WithinTx(context.Background(), func(ctx context.Context, store port.EventStore) error {
		for i := range events {
			if err := store.Insert(ctx, &events[i]); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestListByStartWindowBoundariesAndOrder(t *testing.T) {
	repo := NewEventRepository()
	w := domain.Session{Year: 2011, Half: domain.FirstHalf}.Bounds()

	late := event(t, "late", time.Date(2011, 6, 30, 0, 0, 0, 0, time.UTC))
	atStart := event(t, "at-start", w.Start)
	atEnd := event(t, "at-end", w.End)
	before := event(t, "before", w.Start.Add(-time.Second))
	sameStart := event(t, "same-start", w.Start)
	insertAll(t, repo, late, atStart, atEnd, before, sameStart)

	got, err := repo.ListByStartWindow(context.Background(), w)
	require.NoError(t, err)

	var names []string
	for _, e := range got {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"at-start", "same-start", "late"}, names)
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	repo := NewEventRepository()
	insertAll(t, repo, event(t, "existing", time.Now()))

	boom := errors.New("boom")
	err := repo.WithinTx(context.Background(), func(ctx context.Context, store port.EventStore) error {
		e := event(t, "discarded", time.Now())
		require.NoError(t, store.Insert(ctx, &e))
		return boom
	})

	assert.ErrorIs(t, err, boom)
	all := repo.All()
	require.Len(t, all, 1)
	assert.Equal(t, "existing", all[0].Name)
}

func TestWithinTxRollsBackOnPanic(t *testing.T) {
	repo := NewEventRepository()

	assert.Panics(t, func() {
		_ = repo.WithinTx(context.Background(), func(ctx context.Context, store port.EventStore) error {
			e := event(t, "discarded", time.Now())
			_ = store.Insert(ctx, &e)
			panic("bad clone")
		})
	})
	assert.Empty(t, repo.All())
}

func TestWithinTxCancelledContextAbortsCommit(t *testing.T) {
	repo := NewEventRepository()
	ctx, cancel := context.WithCancel(context.Background())

	err := repo.WithinTx(ctx, func(_ context.Context, store port.EventStore) error {
		e := event(t, "discarded", time.Now())
		require.NoError(t, store.Insert(context.Background(), &e))
		cancel()
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, repo.All())
}

func TestInsertRejectsDuplicateID(t *testing.T) {
	repo := NewEventRepository()
	e := event(t, "one", time.Now())
	insertAll(t, repo, e)

	err := repo.WithinTx(context.Background(), func(ctx context.Context, store port.EventStore) error {
		dup := e
		return store.Insert(ctx, &dup)
	})
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Len(t, repo.All(), 1)
}

func TestInsertSetsCreatedAt(t *testing.T) {
	repo := NewEventRepository()
	fixed := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	e := event(t, "one", time.Now())
	insertAll(t, repo, e)

	assert.Equal(t, fixed, repo.All()[0].CreatedAt)
}
