package memory

import (
	"context"
	"testing"

	"github.com/jbllb61/GUI-Health-App/internal/domain"
)

func TestHistoryIsolation(t *testing.T) {
	db := New()
	ctx := context.Background()

	m, err := domain.NewMeasurement("2024-01-05", 70, 175, domain.DefaultThresholds())
	if err != nil {
		t.Fatal(err)
	}
	if err := db.SaveHistory(ctx, "alice", domain.History{m.Day: m}); err != nil {
		t.Fatal(err)
	}

	h, _, err := db.LoadHistory(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	// Mutating the returned copy must not leak into the store.
	delete(h, m.Day)

	h2, _, err := db.LoadHistory(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(h2) != 1 {
		t.Fatalf("expected stored history untouched, got %v", h2)
	}

	// Histories are per-user.
	other, _, err := db.LoadHistory(ctx, "bob")
	if err != nil {
		t.Fatal(err)
	}
	if len(other) != 0 {
		t.Fatalf("expected empty history for bob, got %v", other)
	}
}

func TestUserLifecycle(t *testing.T) {
	db := New()
	ctx := context.Background()

	u, err := db.GetByUsername(ctx, "alice")
	if err != nil || u != nil {
		t.Fatalf("expected (nil, nil) for unknown user, got %v %v", u, err)
	}

	if err := db.Create(ctx, &domain.User{Username: "alice", Password: "x"}); err != nil {
		t.Fatal(err)
	}
	if err := db.Create(ctx, &domain.User{Username: "alice", Password: "y"}); err == nil {
		t.Fatal("expected error for duplicate username")
	}

	w := 70.0
	if err := db.Update(ctx, &domain.User{Username: "alice", Password: "x", LastWeightKg: &w}); err != nil {
		t.Fatal(err)
	}
	u, err = db.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if u.LastWeightKg == nil || *u.LastWeightKg != 70 {
		t.Errorf("expected cached weight 70, got %v", u.LastWeightKg)
	}
}

func TestSessions(t *testing.T) {
	db := New()
	repo := db.NewSessionRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.Session{Token: "tok", Username: "alice"}); err != nil {
		t.Fatal(err)
	}
	s, err := repo.GetByToken(ctx, "tok")
	if err != nil || s == nil || s.Username != "alice" {
		t.Fatalf("expected alice session, got %v %v", s, err)
	}
	if err := repo.Delete(ctx, "tok"); err != nil {
		t.Fatal(err)
	}
	s, err = repo.GetByToken(ctx, "tok")
	if err != nil || s != nil {
		t.Fatalf("expected session gone, got %v %v", s, err)
	}
}
