package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"promo-planner/internal/core/domain"
	"promo-planner/internal/core/port"
	"promo-planner/internal/metrics"
)

// RolloverUseCase provides the period rollover and event lookups. It
// orchestrates the domain and the event repository to implement
// port.RolloverUseCase.
type RolloverUseCase struct {
	repo    port.EventRepository
	logger  *slog.Logger
	metrics *metrics.Rollover

	// newID generates identifiers for cloned events. UUIDv7 keeps ids in
	// creation order, which the stores use as the tie-break.
	newID func() (uuid.UUID, error)
}

// NewRolloverUseCase creates a new usecase with the provided repository.
// logger and m may be nil.
func NewRolloverUseCase(repo port.EventRepository, logger *slog.Logger, m *metrics.Rollover) *RolloverUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RolloverUseCase{
		repo:    repo,
		logger:  logger,
		metrics: m,
		newID:   uuid.NewV7,
	}
}

// RolloverSession clones the events of the half-year one year before the
// session following (year, half) and commits them as a single batch.
func (u *RolloverUseCase) RolloverSession(ctx context.Context, year int, half domain.Half) (*port.RolloverResult, error) {
	current := domain.Session{Year: year, Half: half}
	if err := current.Validate(); err != nil {
		u.metrics.Observe(metrics.ResultInvalid, 0, 0)
		return nil, fmt.Errorf("%w: %w", port.ErrInvalidSession, err)
	}

	began := time.Now()
	target := current.Next()
	res := &port.RolloverResult{
		Current: current,
		Target:  target,
		Window:  target.SourceWindow(),
	}
	log := u.logger.With(
		slog.String("current", current.String()),
		slog.String("target", target.String()),
		slog.Time("window_start", res.Window.Start),
		slog.Time("window_end", res.Window.End),
	)

	err := u.repo.WithinTx(ctx, func(ctx context.Context, store port.EventStore) error {
		created, err := u.cloneWindow(ctx, store, res.Window)
		if err != nil {
			return err
		}
		res.Created = created
		return nil
	})
	if err != nil {
		if !errors.Is(err, port.ErrStoreRead) && !errors.Is(err, port.ErrStoreWrite) {
			// begin, commit or id generation failed
			err = fmt.Errorf("%w: %w", port.ErrStoreWrite, err)
		}
		u.metrics.Observe(metrics.ResultFailure, 0, time.Since(began))
		log.Error("rollover rolled back", slog.Any("error", err))
		return nil, err
	}

	u.metrics.Observe(metrics.ResultSuccess, len(res.Created), time.Since(began))
	log.Info("rollover committed", slog.Int("created", len(res.Created)))
	return res, nil
}

// cloneWindow is the read, transform and write pipeline run inside the
// transaction. Inserts stop at the first failure.
func (u *RolloverUseCase) cloneWindow(ctx context.Context, store port.EventStore, w domain.Window) ([]domain.PromotionalEvent, error) {
	sources, err := store.ListByStartWindow(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrStoreRead, err)
	}

	clones, err := domain.PlanClones(sources, u.newID)
	if err != nil {
		return nil, fmt.Errorf("plan clones: %w", err)
	}

	for i := range clones {
		if err = store.Insert(ctx, &clones[i]); err != nil {
			return nil, fmt.Errorf("%w: insert clone of %q: %w", port.ErrStoreWrite, clones[i].Name, err)
		}
	}
	return clones, nil
}

// ListEvents returns stored events whose start instant lies in w.
func (u *RolloverUseCase) ListEvents(ctx context.Context, w domain.Window) ([]domain.PromotionalEvent, error) {
	events, err := u.repo.ListByStartWindow(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrStoreRead, err)
	}
	return events, nil
}
