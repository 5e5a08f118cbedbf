package adapthttp

import (
	"errors"
	"net/http"
)

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFromContext(r)

	switch r.Method {
	case http.MethodGet:
		h, recovered, err := s.records.History(ctx, user.Username)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"items":     h.Entries(),
			"recovered": recovered,
		})

	case http.MethodPut:
		var body struct {
			Date     string  `json:"date"`
			WeightKg float64 `json:"weightKg"`
			HeightCm float64 `json:"heightCm"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		entry, err := s.records.Upsert(ctx, user.Username, body.Date, body.WeightKg, body.HeightCm)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"entry": entry})

	case http.MethodDelete:
		day := r.URL.Query().Get("date")
		if day == "" {
			writeError(w, http.StatusBadRequest, errors.New("date query parameter is required"))
			return
		}
		deleted, err := s.records.Remove(ctx, user.Username, day)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"deleted": deleted})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleProfileLast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	user := userFromContext(r)
	weightKg, heightCm, err := s.auth.GetLastMeasurement(r.Context(), user.Username)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"weightKg": weightKg,
		"heightCm": heightCm,
	})
}
