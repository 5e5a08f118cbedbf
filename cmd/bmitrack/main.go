package main

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	adapthttp "github.com/jbllb61/GUI-Health-App/internal/adapter/http"
	"github.com/jbllb61/GUI-Health-App/internal/adapter/jsonfile"
	"github.com/jbllb61/GUI-Health-App/internal/adapter/memory"
	"github.com/jbllb61/GUI-Health-App/internal/adapter/postgres"
	"github.com/jbllb61/GUI-Health-App/internal/app"
	"github.com/jbllb61/GUI-Health-App/internal/config"
	"github.com/jbllb61/GUI-Health-App/internal/domain"
	"github.com/jbllb61/GUI-Health-App/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info")
		log.Fatal().Err(err).Msg("config")
	}
	logger.Init(cfg.LogLevel)

	var (
		histories domain.HistoryRepository
		users     domain.UserRepository
	)
	switch cfg.StorageDriver {
	case config.DriverJSON:
		store, err := jsonfile.Open(cfg.DataDir, cfg.UsersFile)
		if err != nil {
			log.Fatal().Err(err).Msg("open json store")
		}
		histories, users = store, store

	case config.DriverPostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("open postgres")
		}
		defer func() { _ = db.Close() }()
		histories, users = db, db

	case config.DriverMemory:
		db := memory.New()
		histories, users = db, db
	}

	// Sessions are process-private regardless of the durable backend.
	sessions := memory.New().NewSessionRepo()

	authSvc := app.NewAuthService(users, sessions)
	recordSvc := app.NewRecordService(histories, authSvc, cfg.Thresholds)
	analyticsSvc := app.NewAnalyticsService(histories)

	h := adapthttp.New(recordSvc, analyticsSvc, authSvc).Handler()
	log.Info().
		Str("addr", cfg.Addr).
		Str("driver", cfg.StorageDriver).
		Msg("listening")
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server")
	}
}
