package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jbllb61/GUI-Health-App/internal/app"
	"github.com/jbllb61/GUI-Health-App/internal/domain"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	if _, ok := r.users[u.Username]; ok {
		return errors.New("user already exists")
	}
	cp := *u
	r.users[u.Username] = &cp
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *domain.User) error {
	cp := *u
	r.users[u.Username] = &cp
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, s *domain.Session) error {
	r.sessions[s.Token] = s
	return nil
}

func (r *fakeSessionRepo) GetByToken(_ context.Context, token string) (*domain.Session, error) {
	return r.sessions[token], nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

func newAuthService() (*app.AuthService, *fakeUserRepo, *fakeSessionRepo) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	return app.NewAuthService(users, sessions), users, sessions
}

func TestRegister(t *testing.T) {
	svc, users, _ := newAuthService()
	ctx := context.Background()

	ok, err := svc.Register(ctx, "alice", "x")
	if err != nil || !ok {
		t.Fatalf("expected registration to succeed, got ok=%v err=%v", ok, err)
	}

	// A taken username fails without mutating the first record.
	ok, err = svc.Register(ctx, "alice", "y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected duplicate registration to return false")
	}
	if users.users["alice"].Password != "x" {
		t.Errorf("expected original password preserved, got %q", users.users["alice"].Password)
	}
}

func TestRegister_EmptyCredentials(t *testing.T) {
	svc, _, _ := newAuthService()
	for _, tc := range [][2]string{{"", "x"}, {"alice", ""}} {
		if _, err := svc.Register(context.Background(), tc[0], tc[1]); !errors.Is(err, app.ErrEmptyCredentials) {
			t.Errorf("expected ErrEmptyCredentials for %v, got %v", tc, err)
		}
	}
}

func TestRegister_CaseSensitiveUsernames(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	if ok, _ := svc.Register(ctx, "alice", "x"); !ok {
		t.Fatal("expected first registration to succeed")
	}
	if ok, _ := svc.Register(ctx, "Alice", "y"); !ok {
		t.Error("expected differently-cased username to be distinct")
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()
	if _, err := svc.Register(ctx, "alice", "secret"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"valid", "alice", "secret", true},
		{"wrong password", "alice", "nope", false},
		{"unknown user", "bob", "secret", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Authenticate(ctx, tc.username, tc.password)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Authenticate = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLoginAndValidateSession(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()
	if _, err := svc.Register(ctx, "alice", "secret"); err != nil {
		t.Fatal(err)
	}

	token, err := svc.Login(ctx, "alice", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected session token")
	}

	user, err := svc.ValidateSession(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("expected alice, got %q", user.Username)
	}

	if err := svc.Logout(ctx, token); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ValidateSession(ctx, token); !errors.Is(err, app.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound after logout, got %v", err)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _, _ := newAuthService()
	if _, err := svc.Login(context.Background(), "alice", "nope"); !errors.Is(err, app.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestValidateSession_Expired(t *testing.T) {
	svc, _, sessions := newAuthService()
	ctx := context.Background()

	sessions.sessions["tok"] = &domain.Session{
		Token:     "tok",
		Username:  "alice",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	if _, err := svc.ValidateSession(ctx, "tok"); !errors.Is(err, app.ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if _, ok := sessions.sessions["tok"]; ok {
		t.Error("expected expired session to be deleted")
	}
}

func TestLastMeasurement(t *testing.T) {
	svc, _, _ := newAuthService()
	ctx := context.Background()

	// Unknown usernames are a no-op, not an error.
	if err := svc.UpdateLastMeasurement(ctx, "ghost", 70, 175); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.Register(ctx, "alice", "x"); err != nil {
		t.Fatal(err)
	}

	w, h, err := svc.GetLastMeasurement(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if w != nil || h != nil {
		t.Errorf("expected no cached measurement yet, got %v %v", w, h)
	}

	if err := svc.UpdateLastMeasurement(ctx, "alice", 70, 175); err != nil {
		t.Fatal(err)
	}
	w, h, err = svc.GetLastMeasurement(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if w == nil || *w != 70 || h == nil || *h != 175 {
		t.Errorf("expected cached 70/175, got %v %v", w, h)
	}
}
