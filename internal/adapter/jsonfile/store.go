// Package jsonfile implements the domain repositories on per-user JSON files,
// the canonical durable encoding for this application. Legacy encodings are
// accepted on read and rewritten in canonical form.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jbllb61/GUI-Health-App/internal/domain"
)

// Store persists histories as <dataDir>/<username>_bmi_data.json and the user
// directory as a single users file. Every mutation rewrites the whole owning
// collection, so durable state always reflects the last completed call.
type Store struct {
	mu        sync.Mutex
	dataDir   string
	usersPath string
}

// Open prepares the data directory and the users file, creating them if absent.
func Open(dataDir, usersPath string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, domain.NewStorageError("create data dir", err)
	}
	s := &Store{dataDir: dataDir, usersPath: usersPath}
	if _, err := os.Stat(usersPath); os.IsNotExist(err) {
		if err := s.writeUsers(map[string]userRecord{}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, domain.NewStorageError("stat users file", err)
	}
	return s, nil
}

// Ensure interfaces are met.
var _ domain.HistoryRepository = (*Store)(nil)
var _ domain.UserRepository = (*Store)(nil)

func (s *Store) historyPath(username string) (string, error) {
	if username == "" || strings.ContainsAny(username, `/\`) {
		return "", domain.NewStorageError("history path", fmt.Errorf("unusable username %q", username))
	}
	return filepath.Join(s.dataDir, username+"_bmi_data.json"), nil
}

// LoadHistory reads the user's history file, tolerating the legacy flat-list
// encoding and unreadable payloads, and always rewrites the canonical mapping
// form afterwards. recovered reports that a corrupt payload was replaced by an
// empty history.
func (s *Store) LoadHistory(ctx context.Context, username string) (domain.History, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.historyPath(username)
	if err != nil {
		return nil, false, err
	}

	var (
		h         = domain.History{}
		recovered bool
	)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First access: initialize empty and persist below.
	case err != nil:
		return nil, false, domain.NewStorageError("read history", err)
	default:
		h, recovered = decodeHistory(data)
	}

	// Forward migration: every load normalizes the on-disk encoding.
	if err := s.writeHistory(path, h); err != nil {
		return nil, false, err
	}
	return h, recovered, nil
}

// SaveHistory persists the entire history in the canonical mapping encoding.
func (s *Store) SaveHistory(ctx context.Context, username string, h domain.History) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.historyPath(username)
	if err != nil {
		return err
	}
	return s.writeHistory(path, h)
}

// decodeHistory decodes the three tolerated durable shapes: the canonical
// date-keyed mapping, the legacy flat list keyed by each record's embedded
// date, and anything unreadable, which recovers to an empty history.
func decodeHistory(data []byte) (domain.History, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return domain.History{}, false
	}

	switch data[0] {
	case '{':
		var byDay map[string]domain.Measurement
		if err := json.Unmarshal(data, &byDay); err != nil {
			return domain.History{}, true
		}
		h := make(domain.History, len(byDay))
		for day, m := range byDay {
			m.Day = day
			h[day] = m
		}
		return h, false
	case '[':
		var records []domain.Measurement
		if err := json.Unmarshal(data, &records); err != nil {
			return domain.History{}, true
		}
		h := make(domain.History, len(records))
		for _, m := range records {
			h[m.Day] = m
		}
		return h, false
	default:
		return domain.History{}, true
	}
}

func (s *Store) writeHistory(path string, h domain.History) error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return domain.NewStorageError("encode history", err)
	}
	if err := atomicWrite(path, data); err != nil {
		return domain.NewStorageError("write history", err)
	}
	return nil
}

// atomicWrite replaces path via a temp file and rename so a crash mid-write
// never leaves a truncated payload behind.
func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
