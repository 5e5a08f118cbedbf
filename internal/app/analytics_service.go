package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jbllb61/GUI-Health-App/internal/domain"
)

// RangeWindow is a relative chart window in days, restricted to a fixed set.
type RangeWindow int

// Supported chart windows.
const (
	Window7d   RangeWindow = 7
	Window14d  RangeWindow = 14
	Window21d  RangeWindow = 21
	Window30d  RangeWindow = 30
	Window90d  RangeWindow = 90
	Window180d RangeWindow = 180
	Window365d RangeWindow = 365
	Window730d RangeWindow = 730
)

var validWindows = map[RangeWindow]bool{
	Window7d: true, Window14d: true, Window21d: true, Window30d: true,
	Window90d: true, Window180d: true, Window365d: true, Window730d: true,
}

// ParseRangeWindow parses strings like "30d" into a RangeWindow.
func ParseRangeWindow(s string) (RangeWindow, error) {
	var days int
	if _, err := fmt.Sscanf(s, "%dd", &days); err != nil {
		return 0, fmt.Errorf("unknown window %q", s)
	}
	w := RangeWindow(days)
	if !validWindows[w] || w.String() != s {
		return 0, fmt.Errorf("unknown window %q", s)
	}
	return w, nil
}

func (w RangeWindow) String() string { return fmt.Sprintf("%dd", int(w)) }

// TickDensity is the suggested chart-axis tick spacing for a date range.
type TickDensity string

// Tick densities, coarsening with the span of the plotted range.
const (
	TicksDaily   TickDensity = "daily"
	TicksWeekly  TickDensity = "weekly"
	TicksMonthly TickDensity = "monthly"
	TicksYearly  TickDensity = "yearly"
)

// SuggestTickDensity picks an axis tick spacing for the span between minDay
// and maxDay: daily up to a week, weekly up to a month, monthly up to a
// quarter, yearly beyond.
func SuggestTickDensity(minDay, maxDay string) (TickDensity, error) {
	lo, err := time.Parse(domain.DayFormat, minDay)
	if err != nil {
		return "", err
	}
	hi, err := time.Parse(domain.DayFormat, maxDay)
	if err != nil {
		return "", err
	}
	span := int(hi.Sub(lo).Hours() / 24)
	switch {
	case span <= 7:
		return TicksDaily, nil
	case span <= 30:
		return TicksWeekly, nil
	case span <= 90:
		return TicksMonthly, nil
	default:
		return TicksYearly, nil
	}
}

// TrendSummary compares the earliest and latest measurements by day (not
// insertion order) and describes the direction of change.
func TrendSummary(h domain.History) string {
	entries := h.Entries()
	if len(entries) < 2 {
		return "Not enough data to analyze trend."
	}

	first := entries[0].BMI
	last := entries[len(entries)-1].BMI
	change := domain.Round1(last - first)

	trend := "stable"
	switch {
	case change > 0:
		trend = "increasing"
	case change < 0:
		trend = "decreasing"
	}
	return fmt.Sprintf("Your BMI has been %s. Total change: %+.1f", trend, change)
}

// FilterRange returns the measurements with end-window <= day <= end, ascending
// by day. An empty endDay defaults to the latest day present. An empty result
// is not an error; callers render an empty chart.
func FilterRange(h domain.History, endDay string, w RangeWindow) ([]domain.Measurement, error) {
	if !validWindows[w] {
		return nil, fmt.Errorf("unknown window %q", w)
	}
	if len(h) == 0 {
		return []domain.Measurement{}, nil
	}
	if endDay == "" {
		endDay = h.LatestDay()
	}
	end, err := time.Parse(domain.DayFormat, endDay)
	if err != nil {
		return nil, err
	}
	startDay := end.AddDate(0, 0, -int(w)).Format(domain.DayFormat)

	out := make([]domain.Measurement, 0, len(h))
	for _, m := range h.Entries() {
		if m.Day >= startDay && m.Day <= endDay {
			out = append(out, m)
		}
	}
	return out, nil
}

// AnalyticsService derives trend and chart data from stored histories. It
// only ever reads; mutations go through RecordService.
type AnalyticsService struct {
	repo domain.HistoryRepository
}

// NewAnalyticsService creates an AnalyticsService backed by the given repository.
func NewAnalyticsService(repo domain.HistoryRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// TrendSummary returns the trend text for the user's full history.
func (s *AnalyticsService) TrendSummary(ctx context.Context, username string) (string, error) {
	h, _, err := s.repo.LoadHistory(ctx, username)
	if err != nil {
		return "", err
	}
	return TrendSummary(h), nil
}

// Range returns the measurements inside the window ending at endDay together
// with the suggested tick density for the returned span.
func (s *AnalyticsService) Range(ctx context.Context, username, endDay string, w RangeWindow) ([]domain.Measurement, TickDensity, error) {
	h, _, err := s.repo.LoadHistory(ctx, username)
	if err != nil {
		return nil, "", err
	}
	points, err := FilterRange(h, endDay, w)
	if err != nil {
		return nil, "", err
	}
	if len(points) == 0 {
		return points, TicksDaily, nil
	}
	density, err := SuggestTickDensity(points[0].Day, points[len(points)-1].Day)
	if err != nil {
		return nil, "", err
	}
	return points, density, nil
}
