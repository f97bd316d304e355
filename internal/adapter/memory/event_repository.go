package memory

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"promo-planner/internal/core/domain"
	"promo-planner/internal/core/port"
)

var ErrDuplicateID = errors.New("event id already exists")

// EventRepository implements port.EventRepository in process memory. Events
// are append-only, so rolling back a transaction truncates back to the
// length recorded when it began. Transactions are serialized.
type EventRepository struct {
	mu     sync.RWMutex
	events []domain.PromotionalEvent
	ids    map[uuid.UUID]struct{}
	now    func() time.Time
}

// NewEventRepository returns an empty repository.
func NewEventRepository() *EventRepository {
	return &EventRepository{
		ids: make(map[uuid.UUID]struct{}),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// WithinTx runs fn while holding the write lock. Inserts made by fn are
// discarded when it returns an error or panics.
func (r *EventRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, store port.EventStore) error) (err error) {
	if err = ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	savepoint := len(r.events)
	defer func() {
		if p := recover(); p != nil {
			r.rollback(savepoint)
			panic(p)
		}
		if err != nil {
			r.rollback(savepoint)
		}
	}()

	if err = fn(ctx, &txStore{repo: r}); err != nil {
		return err
	}
	// a cancelled context aborts the commit like it would on a database
	return ctx.Err()
}

func (r *EventRepository) rollback(savepoint int) {
	for _, e := range r.events[savepoint:] {
		delete(r.ids, e.ID)
	}
	r.events = slices.Delete(r.events, savepoint, len(r.events))
}

// ListByStartWindow returns events starting in w ordered by start then id.
func (r *EventRepository) ListByStartWindow(ctx context.Context, w domain.Window) ([]domain.PromotionalEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(w), nil
}

// All returns a copy of every stored event in insertion order.
func (r *EventRepository) All() []domain.PromotionalEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.events)
}

func (r *EventRepository) list(w domain.Window) []domain.PromotionalEvent {
	var out []domain.PromotionalEvent
	for _, e := range r.events {
		if w.Contains(e.StartAt) {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.PromotionalEvent) int {
		if c := a.StartAt.Compare(b.StartAt); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return out
}

func (r *EventRepository) insert(e *domain.PromotionalEvent) error {
	if _, ok := r.ids[e.ID]; ok {
		return ErrDuplicateID
	}
	e.CreatedAt = r.now()
	r.ids[e.ID] = struct{}{}
	r.events = append(r.events, *e)
	return nil
}

// txStore is the port.EventStore handed to WithinTx callbacks. The
// repository lock is already held.
type txStore struct {
	repo *EventRepository
}

func (s *txStore) ListByStartWindow(ctx context.Context, w domain.Window) ([]domain.PromotionalEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.repo.list(w), nil
}

func (s *txStore) Insert(ctx context.Context, e *domain.PromotionalEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.repo.insert(e)
}
