package domain

import (
	"time"

	"github.com/google/uuid"
)

// PromotionalEvent is a scheduled promotional activity for an account within
// a campaign. StartAt and EndAt are UTC; StartAt <= EndAt is assumed.
type PromotionalEvent struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	AccountID  AccountRef  `json:"account_id"`
	CampaignID CampaignRef `json:"campaign_id"`
	StartAt    time.Time   `json:"start_at"`
	EndAt      time.Time   `json:"end_at"`
	CreatedAt  time.Time   `json:"created_at"` // set by the store
}

// Session returns the planning session the event belongs to, decided by its
// start instant alone.
func (e PromotionalEvent) Session() Session {
	return SessionOf(e.StartAt)
}

// CloneShifted returns a new event for the following year. Name, AccountID and
// CampaignID are copied; StartAt and EndAt are advanced by one calendar year.
// Every other field is left at its zero value except ID.
func (e PromotionalEvent) CloneShifted(id uuid.UUID) PromotionalEvent {
	return PromotionalEvent{
		ID:         id,
		Name:       e.Name,
		AccountID:  e.AccountID,
		CampaignID: e.CampaignID,
		StartAt:    AddYears(e.StartAt, 1),
		EndAt:      AddYears(e.EndAt, 1),
	}
}

// PlanClones maps every source event to its shifted clone, preserving order.
// newID is called once per clone.
func PlanClones(sources []PromotionalEvent, newID func() (uuid.UUID, error)) ([]PromotionalEvent, error) {
	clones := make([]PromotionalEvent, 0, len(sources))
	for _, src := range sources {
		id, err := newID()
		if err != nil {
			return nil, err
		}
		clones = append(clones, src.CloneShifted(id))
	}
	return clones, nil
}

// AddYears adds n calendar years to t keeping the month fixed. A Feb 29 that
// lands in a non-leap year becomes Feb 28 rather than rolling into March.
func AddYears(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	target := y + n
	if m == time.February && d == 29 && !isLeap(target) {
		d = 28
	}
	return time.Date(target, m, d, hh, mm, ss, t.Nanosecond(), t.Location())
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
