package port

import (
	"context"
	"errors"

	"promo-planner/internal/core/domain"
)

var (
	ErrInvalidSession = errors.New("invalid planning session")
	ErrStoreRead      = errors.New("event store read failed")
	ErrStoreWrite     = errors.New("event store write failed")
)

// EventStore is the set of operations available inside a transaction.
type EventStore interface {
	// ListByStartWindow returns events whose start instant lies in the
	// half-open window, ordered by start instant then id.
	ListByStartWindow(ctx context.Context, w domain.Window) ([]domain.PromotionalEvent, error)
	// Insert persists a new event and sets its CreatedAt.
	Insert(ctx context.Context, e *domain.PromotionalEvent) error
}

// EventRepository defines the persistence layer for promotional events. It is
// an outbound port in hexagonal architecture.
type EventRepository interface {
	// WithinTx runs fn inside a single transaction. The transaction is
	// committed when fn returns nil and rolled back otherwise, including
	// when fn panics. The error returned by fn is returned unchanged.
	WithinTx(ctx context.Context, fn func(ctx context.Context, store EventStore) error) error

	// ListByStartWindow reads outside of any transaction.
	ListByStartWindow(ctx context.Context, w domain.Window) ([]domain.PromotionalEvent, error)
}
