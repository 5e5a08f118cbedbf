package app

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"time"

	"github.com/jbllb61/GUI-Health-App/internal/domain"
)

var (
	// ErrInvalidCredentials indicates that the provided username or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrSessionNotFound indicates that the requested session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the session has expired.
	ErrSessionExpired = errors.New("session expired")
	// ErrEmptyCredentials indicates a blank username or password at registration.
	ErrEmptyCredentials = errors.New("username and password must not be empty")
)

const sessionTTL = 24 * time.Hour

// AuthService handles the user directory and session management. Passwords
// are opaque strings compared for equality; hashing and rate limiting are
// out of scope for this core.
type AuthService struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Register creates a new user and reports whether it succeeded. A taken
// username returns false without mutating the directory.
func (s *AuthService) Register(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, ErrEmptyCredentials
	}
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	if err := s.users.Create(ctx, &domain.User{Username: username, Password: password}); err != nil {
		return false, err
	}
	return true, nil
}

// Authenticate reports whether the username exists and the password matches.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return constantTimeCompare(user.Password, password), nil
}

// Login authenticates a user and creates a session.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	ok, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return "", err
	}
	now := time.Now()
	if err := s.sessions.Create(ctx, &domain.Session{
		Token:     token,
		Username:  username,
		ExpiresAt: now.Add(sessionTTL),
		CreatedAt: now,
	}); err != nil {
		return "", err
	}
	return token, nil
}

// Logout invalidates a session.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ValidateSession checks that a session token is valid and returns its user.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*domain.User, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return nil, ErrSessionExpired
	}

	user, err := s.users.GetByUsername(ctx, session.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrSessionNotFound
	}
	return user, nil
}

// UpdateLastMeasurement caches the most recent weight/height for the user.
// Unknown usernames are a no-op.
func (s *AuthService) UpdateLastMeasurement(ctx context.Context, username string, weightKg, heightCm float64) error {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	user.LastWeightKg = &weightKg
	user.LastHeightCm = &heightCm
	return s.users.Update(ctx, user)
}

// GetLastMeasurement returns the cached weight/height, both nil when the user
// is unknown or has never recorded a measurement.
func (s *AuthService) GetLastMeasurement(ctx context.Context, username string) (weightKg, heightCm *float64, err error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, nil
	}
	return user.LastWeightKg, user.LastHeightCm, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// constantTimeCompare performs a constant-time equality check of two strings.
func constantTimeCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
