// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"sort"
	"time"
)

// DayFormat is the calendar-day layout used as the measurement key.
const DayFormat = "2006-01-02"

// Measurement represents a single dated BMI observation. BMI and Category are
// fixed at write time and never recomputed on read, even if classification
// thresholds change later.
type Measurement struct {
	Day      string   `json:"date"`
	WeightKg float64  `json:"weight"`
	HeightCm float64  `json:"height"`
	BMI      float64  `json:"bmi"`
	Category Category `json:"category"`
}

// NewMeasurement validates the inputs, computes the BMI rounded to one decimal
// place and classifies it under the given thresholds.
func NewMeasurement(day string, weightKg, heightCm float64, t Thresholds) (Measurement, error) {
	if _, err := time.Parse(DayFormat, day); err != nil {
		return Measurement{}, err
	}
	bmi, err := ComputeBMI(weightKg, heightCm)
	if err != nil {
		return Measurement{}, err
	}
	bmi = Round1(bmi)
	return Measurement{
		Day:      day,
		WeightKg: weightKg,
		HeightCm: heightCm,
		BMI:      bmi,
		Category: t.Classify(bmi),
	}, nil
}

// History is one user's collection of measurements, keyed by day. At most one
// measurement exists per day; a second write to the same day replaces the first.
type History map[string]Measurement

// Entries returns the measurements sorted ascending by day.
func (h History) Entries() []Measurement {
	out := make([]Measurement, 0, len(h))
	for _, m := range h {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// LatestDay returns the maximum day present, or "" for an empty history.
func (h History) LatestDay() string {
	var latest string
	for day := range h {
		if day > latest {
			latest = day
		}
	}
	return latest
}

// Clone returns a shallow copy so adapters can hand out state without aliasing.
func (h History) Clone() History {
	out := make(History, len(h))
	for day, m := range h {
		out[day] = m
	}
	return out
}

// HistoryRepository is the port for durable per-user measurement storage.
// Implementations must normalize whatever encoding they find on disk into the
// canonical one when loading.
type HistoryRepository interface {
	// LoadHistory returns the user's history, migrating legacy encodings as
	// needed. recovered reports that an unreadable payload was replaced by an
	// empty history; callers should surface that as a warning.
	LoadHistory(ctx context.Context, username string) (h History, recovered bool, err error)
	// SaveHistory persists the entire history in the canonical encoding.
	SaveHistory(ctx context.Context, username string, h History) error
}
