package port

import (
	"context"

	"promo-planner/internal/core/domain"
)

// RolloverUseCase defines the business operations exposed by the planner.
// This interface represents the primary port into the application domain.
type RolloverUseCase interface {
	// RolloverSession clones last year's events for the session following
	// (year, half) and shifts them forward by one year. Either every clone is
	// committed or none is. A nil error means success; the error otherwise
	// describes what failed and wraps ErrInvalidSession, ErrStoreRead or
	// ErrStoreWrite. Calling it twice for the same session creates the clones
	// twice.
	RolloverSession(ctx context.Context, year int, half domain.Half) (*RolloverResult, error)

	// ListEvents returns stored events whose start instant lies in w.
	ListEvents(ctx context.Context, w domain.Window) ([]domain.PromotionalEvent, error)
}

// RolloverResult describes a completed rollover. Current is the session
// supplied by the caller, Target the session being populated and Window the
// source range read from.
type RolloverResult struct {
	Current domain.Session
	Target  domain.Session
	Window  domain.Window
	Created []domain.PromotionalEvent
}
