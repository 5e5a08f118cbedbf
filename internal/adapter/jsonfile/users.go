package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jbllb61/GUI-Health-App/internal/domain"
)

// userRecord is the durable shape of a user directory entry. The password is
// stored verbatim; hashing is out of scope for this core.
type userRecord struct {
	Password   string   `json:"password"`
	LastWeight *float64 `json:"last_weight,omitempty"`
	LastHeight *float64 `json:"last_height,omitempty"`
}

func (s *Store) readUsers() (map[string]userRecord, error) {
	data, err := os.ReadFile(s.usersPath)
	if os.IsNotExist(err) {
		return map[string]userRecord{}, nil
	}
	if err != nil {
		return nil, domain.NewStorageError("read users", err)
	}
	users := map[string]userRecord{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &users); err != nil {
			return nil, domain.NewStorageError("decode users", err)
		}
	}
	return users, nil
}

func (s *Store) writeUsers(users map[string]userRecord) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return domain.NewStorageError("encode users", err)
	}
	if err := atomicWrite(s.usersPath, data); err != nil {
		return domain.NewStorageError("write users", err)
	}
	return nil
}

// GetByUsername retrieves a user, returning (nil, nil) when unknown.
func (s *Store) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readUsers()
	if err != nil {
		return nil, err
	}
	rec, ok := users[username]
	if !ok {
		return nil, nil
	}
	return &domain.User{
		Username:     username,
		Password:     rec.Password,
		LastWeightKg: rec.LastWeight,
		LastHeightCm: rec.LastHeight,
	}, nil
}

// Create stores a new user and persists the whole directory.
func (s *Store) Create(ctx context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readUsers()
	if err != nil {
		return err
	}
	if _, ok := users[u.Username]; ok {
		return fmt.Errorf("user %q already exists", u.Username)
	}
	users[u.Username] = userRecord{
		Password:   u.Password,
		LastWeight: u.LastWeightKg,
		LastHeight: u.LastHeightCm,
	}
	return s.writeUsers(users)
}

// Update overwrites the user's record and persists the whole directory.
func (s *Store) Update(ctx context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readUsers()
	if err != nil {
		return err
	}
	users[u.Username] = userRecord{
		Password:   u.Password,
		LastWeight: u.LastWeightKg,
		LastHeight: u.LastHeightCm,
	}
	return s.writeUsers(users)
}
