package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"promo-planner/internal/core/domain"
	"promo-planner/internal/core/port"
)

// RolloverResponse is the JSON body returned by the rollover endpoint. On
// failure only Success and Error are set.
type RolloverResponse struct {
	Success bool                      `json:"success"`
	Error   string                    `json:"error,omitempty"`
	Current string                    `json:"current,omitempty"`
	Target  string                    `json:"target,omitempty"`
	Window  *domain.Window            `json:"window,omitempty"`
	Created int                       `json:"created"`
	Events  []domain.PromotionalEvent `json:"events,omitempty"`
}

// handleRollover clones last year's events into the session following
// {year}/{half}. {half} accepts 1, 2, 1H, 2H, first or second. Invalid
// sessions produce HTTP 400 and store failures HTTP 500; in both cases
// nothing was written.
func (h *Handler) handleRollover(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, RolloverResponse{Error: "invalid year"})
		return
	}
	half, err := domain.ParseHalf(chi.URLParam(r, "half"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, RolloverResponse{Error: err.Error()})
		return
	}

	res, err := h.svc.RolloverSession(r.Context(), year, half)
	if errors.Is(err, port.ErrInvalidSession) {
		h.writeJSON(w, http.StatusBadRequest, RolloverResponse{Error: err.Error()})
		return
	}
	if err != nil {
		h.logger.Error("rollover error", slog.Int("year", year), slog.Int("half", int(half)), slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, RolloverResponse{Error: err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, RolloverResponse{
		Success: true,
		Current: res.Current.String(),
		Target:  res.Target.String(),
		Window:  &res.Window,
		Created: len(res.Created),
		Events:  res.Created,
	})
}
