package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"promo-planner/internal/core/domain"
)

// handleListEvents returns events whose start instant lies in a window. The
// window is either `session` (e.g. 1H2012) or the RFC3339 pair `from`/`to`,
// treated as [from, to). Missing or invalid parameters result in HTTP 400.
func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	var (
		q   = r.URL.Query()
		win domain.Window
		err error
	)

	if s := q.Get("session"); s != "" {
		sess, err := domain.ParseSession(s)
		if err != nil {
			http.Error(w, "invalid 'session'", http.StatusBadRequest)
			return
		}
		win = sess.Bounds()
	} else {
		win.Start, err = time.Parse(time.RFC3339, q.Get("from"))
		if err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
		win.End, err = time.Parse(time.RFC3339, q.Get("to"))
		if err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
		if !win.Start.Before(win.End) {
			http.Error(w, "'from' must be before 'to'", http.StatusBadRequest)
			return
		}
	}

	events, err := h.svc.ListEvents(r.Context(), win)
	if err != nil {
		h.logger.Error("list events error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if events == nil {
		events = []domain.PromotionalEvent{}
	}
	h.writeJSON(w, http.StatusOK, events)
}
