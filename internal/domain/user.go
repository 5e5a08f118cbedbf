package domain

import (
	"context"
	"time"
)

// User is an identity record. Username is the case-sensitive primary key.
// Password is an opaque string compared for equality; hashing is out of scope
// for this core. LastWeightKg/LastHeightCm cache the most recent values entered
// so the client can prefill its input form.
type User struct {
	Username     string
	Password     string
	LastWeightKg *float64
	LastHeightCm *float64
}

// Session represents an active user session.
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// UserRepository defines the port for user persistence operations.
// GetByUsername returns (nil, nil) when the username is unknown.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
}

// SessionRepository defines the port for session persistence operations.
// Sessions are process-private and never part of the durable contract.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
