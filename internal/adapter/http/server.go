// Package adapthttp implements the HTTP adapter for the application. It is a
// pure consumer of the record store, analyzer and user directory APIs; chart
// drawing itself happens client-side.
package adapthttp

import (
	"net/http"

	"github.com/jbllb61/GUI-Health-App/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	records   *app.RecordService
	analytics *app.AnalyticsService
	auth      *app.AuthService

	// disableAuth bypasses session validation in tests.
	disableAuth bool
	testUser    string
}

// New creates a Server wired to the given application services.
func New(records *app.RecordService, analytics *app.AnalyticsService, auth *app.AuthService) *Server {
	return &Server{records: records, analytics: analytics, auth: auth}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/auth/register", s.handleRegister)
	api.HandleFunc("/auth/login", s.handleLogin)
	api.HandleFunc("/auth/logout", s.handleLogout)

	protected := http.NewServeMux()
	protected.HandleFunc("/entries", s.handleEntries)
	protected.HandleFunc("/trend", s.handleTrend)
	protected.HandleFunc("/charts/range", s.handleChartsRange)
	protected.HandleFunc("/profile/last", s.handleProfileLast)
	api.Handle("/", s.authMiddleware(protected))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	return s.loggingMiddleware(root)
}
