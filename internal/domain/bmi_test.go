package domain

import (
	"errors"
	"testing"
)

func TestComputeBMI(t *testing.T) {
	got, err := ComputeBMI(70, 175)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Round1(got) != 22.9 {
		t.Fatalf("expected 22.9 after rounding, got %v", Round1(got))
	}
}

func TestComputeBMI_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		height float64
	}{
		{"zero weight", 0, 175},
		{"negative weight", -70, 175},
		{"zero height", 70, 0},
		{"negative height", 70, -175},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeBMI(tc.weight, tc.height)
			if !errors.Is(err, ErrInvalidMeasurement) {
				t.Fatalf("expected ErrInvalidMeasurement, got %v", err)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		bmi  float64
		want Category
	}{
		{10.0, CategoryUnderweight},
		{18.4, CategoryUnderweight},
		{18.5, CategoryNormal}, // value at a cut belongs to the category above it
		{22.9, CategoryNormal},
		{24.9, CategoryNormal},
		{25.0, CategoryOverweight},
		{29.9, CategoryOverweight},
		{30.0, CategoryObese},
		{45.0, CategoryObese},
	}
	for _, tc := range tests {
		if got := th.Classify(tc.bmi); got != tc.want {
			t.Errorf("Classify(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}

func TestNewMeasurement(t *testing.T) {
	m, err := NewMeasurement("2024-01-05", 70, 175, DefaultThresholds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.BMI != 22.9 {
		t.Errorf("expected bmi 22.9, got %v", m.BMI)
	}
	if m.Category != CategoryNormal {
		t.Errorf("expected Normal, got %q", m.Category)
	}
}

func TestNewMeasurement_BadDay(t *testing.T) {
	if _, err := NewMeasurement("05/01/2024", 70, 175, DefaultThresholds()); err == nil {
		t.Fatal("expected error for malformed day")
	}
}

func TestHistoryEntries_SortedByDay(t *testing.T) {
	h := History{}
	for _, day := range []string{"2024-03-01", "2024-01-01", "2024-02-01"} {
		m, err := NewMeasurement(day, 70, 175, DefaultThresholds())
		if err != nil {
			t.Fatal(err)
		}
		h[day] = m
	}
	entries := h.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Day >= entries[i].Day {
			t.Fatalf("entries not ascending: %v", entries)
		}
	}
	if h.LatestDay() != "2024-03-01" {
		t.Errorf("expected latest 2024-03-01, got %s", h.LatestDay())
	}
}
