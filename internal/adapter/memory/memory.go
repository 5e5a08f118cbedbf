// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/jbllb61/GUI-Health-App/internal/domain"
)

// DB implements every repository port on mutex-guarded maps.
type DB struct {
	mu        sync.Mutex
	histories map[string]domain.History
	users     map[string]*domain.User
	sessions  map[string]*domain.Session
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		histories: make(map[string]domain.History),
		users:     make(map[string]*domain.User),
		sessions:  make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.HistoryRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- HistoryRepository ---

// LoadHistory returns a copy of the user's history, empty on first access.
func (db *DB) LoadHistory(ctx context.Context, username string) (domain.History, bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	h, ok := db.histories[username]
	if !ok {
		h = domain.History{}
		db.histories[username] = h
	}
	return h.Clone(), false, nil
}

// SaveHistory replaces the user's stored history.
func (db *DB) SaveHistory(ctx context.Context, username string, h domain.History) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.histories[username] = h.Clone()
	return nil
}

// --- UserRepository ---

// GetByUsername retrieves a user, returning (nil, nil) when unknown.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	u, ok := db.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// Create creates a new user.
func (db *DB) Create(ctx context.Context, u *domain.User) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.users[u.Username]; ok {
		return errors.New("user already exists")
	}
	cp := *u
	db.users[u.Username] = &cp
	return nil
}

// Update overwrites the user's record.
func (db *DB) Update(ctx context.Context, u *domain.User) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	cp := *u
	db.users[u.Username] = &cp
	return nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence on the shared maps.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo wraps the DB as a SessionRepository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create stores a session.
func (r *SessionRepo) Create(ctx context.Context, s *domain.Session) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	cp := *s
	r.db.sessions[s.Token] = &cp
	return nil
}

// GetByToken retrieves a session, returning (nil, nil) when unknown.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	s, ok := r.db.sessions[token]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

// Delete removes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.sessions, token)
	return nil
}
