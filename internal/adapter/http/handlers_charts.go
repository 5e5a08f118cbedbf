package adapthttp

import (
	"net/http"

	"github.com/jbllb61/GUI-Health-App/internal/app"
	"github.com/jbllb61/GUI-Health-App/internal/domain"
)

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	user := userFromContext(r)
	text, err := s.analytics.TrendSummary(r.Context(), user.Username)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"trend": text})
}

func (s *Server) handleChartsRange(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	windowParam := r.URL.Query().Get("window")
	if windowParam == "" {
		windowParam = "30d"
	}
	window, err := app.ParseRangeWindow(windowParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	endDay := r.URL.Query().Get("end")

	user := userFromContext(r)
	points, ticks, err := s.analytics.Range(r.Context(), user.Username, endDay, window)
	if err != nil {
		// A malformed end day is a caller mistake, not a storage failure.
		if domain.IsStorageError(err) {
			writeError(w, http.StatusInternalServerError, err)
		} else {
			writeError(w, http.StatusBadRequest, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"window": window.String(),
		"ticks":  ticks,
		"items":  points,
	})
}
