package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"promo-planner/internal/core/domain"
	"promo-planner/internal/core/port"
)

const (
	listByStartWindowSQL = `
        SELECT id, name, account_id, campaign_id, start_at, end_at, created_at
        FROM promotional_events
        WHERE start_at >= $1 AND start_at < $2
        ORDER BY start_at, id`

	insertEventSQL = `
        INSERT INTO promotional_events (id, name, account_id, campaign_id, start_at, end_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at`
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// EventRepository implements port.EventRepository using pgxpool for PostgreSQL.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository returns a new repository instance.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// WithinTx runs fn in a transaction at the default isolation level. The
// transaction is rolled back when fn fails or panics and committed otherwise.
func (r *EventRepository) WithinTx(ctx context.Context, fn func(ctx context.Context, store port.EventStore) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
		}
	}()

	if err = fn(ctx, &txStore{tx: tx}); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// ListByStartWindow returns events whose start lies in w, outside of any
// transaction.
func (r *EventRepository) ListByStartWindow(ctx context.Context, w domain.Window) ([]domain.PromotionalEvent, error) {
	return listByStartWindow(ctx, r.pool, w)
}

type txStore struct {
	tx pgx.Tx
}

func (s *txStore) ListByStartWindow(ctx context.Context, w domain.Window) ([]domain.PromotionalEvent, error) {
	return listByStartWindow(ctx, s.tx, w)
}

func (s *txStore) Insert(ctx context.Context, e *domain.PromotionalEvent) error {
	err := s.tx.QueryRow(ctx, insertEventSQL,
		e.ID, e.Name, string(e.AccountID), string(e.CampaignID), e.StartAt.UTC(), e.EndAt.UTC(),
	).Scan(&e.CreatedAt)
	if err != nil {
		return describe(err)
	}
	e.CreatedAt = e.CreatedAt.UTC()
	return nil
}

func listByStartWindow(ctx context.Context, q querier, w domain.Window) ([]domain.PromotionalEvent, error) {
	rows, err := q.Query(ctx, listByStartWindowSQL, w.Start.UTC(), w.End.UTC())
	if err != nil {
		return nil, err
	}
	events, err := pgx.CollectRows(rows, scanEvent)
	if err != nil {
		return nil, err
	}
	return events, nil
}

func scanEvent(row pgx.CollectableRow) (domain.PromotionalEvent, error) {
	var (
		e                     domain.PromotionalEvent
		accountID, campaignID string
	)
	err := row.Scan(&e.ID, &e.Name, &accountID, &campaignID, &e.StartAt, &e.EndAt, &e.CreatedAt)
	if err != nil {
		return e, err
	}
	e.AccountID = domain.AccountRef(accountID)
	e.CampaignID = domain.CampaignRef(campaignID)
	e.StartAt = e.StartAt.UTC()
	e.EndAt = e.EndAt.UTC()
	e.CreatedAt = e.CreatedAt.UTC()
	return e, nil
}

// describe adds the violated constraint to database errors so the caller's
// message says which rule rejected the row.
func describe(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName != "" {
		return fmt.Errorf("constraint %s: %w", pgErr.ConstraintName, err)
	}
	return err
}
