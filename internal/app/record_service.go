// Package app holds the application services and business logic.
package app

import (
	"context"

	"github.com/jbllb61/GUI-Health-App/internal/domain"
)

// LastMeasurementCache receives the most recent weight/height entered so the
// user directory can prefill future input.
type LastMeasurementCache interface {
	UpdateLastMeasurement(ctx context.Context, username string, weightKg, heightCm float64) error
}

// RecordService encapsulates the per-user BMI record store use cases. Every
// mutation persists the whole history before returning, so durable state
// always reflects the last completed call.
type RecordService struct {
	repo       domain.HistoryRepository
	cache      LastMeasurementCache
	thresholds domain.Thresholds
}

// NewRecordService creates a RecordService backed by the given repository.
// cache may be nil when no user directory is attached.
func NewRecordService(repo domain.HistoryRepository, cache LastMeasurementCache, thresholds domain.Thresholds) *RecordService {
	return &RecordService{repo: repo, cache: cache, thresholds: thresholds}
}

// History returns the user's full history. recovered reports that the durable
// payload was unreadable and has been reset to an empty, canonical one.
func (s *RecordService) History(ctx context.Context, username string) (domain.History, bool, error) {
	return s.repo.LoadHistory(ctx, username)
}

// Upsert computes BMI and category for the given day and stores the
// measurement, replacing any existing entry on that day. The last entered
// weight/height are cached in the user directory as a side effect.
func (s *RecordService) Upsert(ctx context.Context, username, day string, weightKg, heightCm float64) (domain.Measurement, error) {
	m, err := domain.NewMeasurement(day, weightKg, heightCm, s.thresholds)
	if err != nil {
		return domain.Measurement{}, err
	}

	h, _, err := s.repo.LoadHistory(ctx, username)
	if err != nil {
		return domain.Measurement{}, err
	}
	h[m.Day] = m
	if err := s.repo.SaveHistory(ctx, username, h); err != nil {
		return domain.Measurement{}, err
	}

	if s.cache != nil {
		if err := s.cache.UpdateLastMeasurement(ctx, username, weightKg, heightCm); err != nil {
			return domain.Measurement{}, err
		}
	}
	return m, nil
}

// Remove deletes the entry at day if present and reports whether a deletion
// occurred. Removing a missing day is not an error.
func (s *RecordService) Remove(ctx context.Context, username, day string) (bool, error) {
	h, _, err := s.repo.LoadHistory(ctx, username)
	if err != nil {
		return false, err
	}
	if _, ok := h[day]; !ok {
		return false, nil
	}
	delete(h, day)
	if err := s.repo.SaveHistory(ctx, username, h); err != nil {
		return false, err
	}
	return true, nil
}

// TrendSummary returns the trend text for the user's full history.
func (s *RecordService) TrendSummary(ctx context.Context, username string) (string, error) {
	h, _, err := s.repo.LoadHistory(ctx, username)
	if err != nil {
		return "", err
	}
	return TrendSummary(h), nil
}
