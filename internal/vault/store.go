package vault

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/UdayAnalyst/visual-news/internal/cryptox"
	"github.com/UdayAnalyst/visual-news/internal/logging"
)

// writeFile is a test seam for os.WriteFile, so persistence failures can
// be exercised without filesystem tricks.
var writeFile = os.WriteFile

// Store persists the full user mapping as a single encrypted blob. Every
// save replaces the whole file; there is no partial update. A store that
// cannot be read or decrypted loads as empty — callers see "no users"
// whether the file is absent, corrupt, or encrypted under a lost key. That
// fail-open behavior is part of the vault's public contract; the corrupt
// case is still distinguished internally and logged (see load).
type Store struct {
	path string
	key  []byte
	log  logging.Logger
}

func NewStore(path string, key []byte, log logging.Logger) *Store {
	return &Store{path: path, key: key, log: log}
}

// Load returns the current user mapping, or an empty one on any failure.
func (s *Store) Load(ctx context.Context) map[string]*UserRecord {
	users, err := s.load()
	if err != nil {
		// Deliberately collapsed into "empty": the caller-facing contract
		// cannot distinguish a broken store from a fresh one.
		s.log.Warn(ctx, "user store unreadable, treating as empty",
			"path", s.path, "error", err)
		return map[string]*UserRecord{}
	}
	s.log.Debug(ctx, "user store loaded", "path", s.path, "users", len(users))
	return users
}

func (s *Store) load() (map[string]*UserRecord, error) {
	token, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]*UserRecord{}, nil
		}
		return nil, fmt.Errorf("reading store: %w", err)
	}

	plaintext, err := cryptox.DecryptBlob(string(token), s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}

	users := map[string]*UserRecord{}
	if err := json.Unmarshal(plaintext, &users); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}

	return users, nil
}

// Save serializes users and writes the encrypted blob, replacing any
// previous contents.
func (s *Store) Save(users map[string]*UserRecord) error {
	plaintext, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("serializing store: %w", err)
	}

	token, err := cryptox.EncryptBlob(plaintext, s.key)
	if err != nil {
		return fmt.Errorf("encrypting store: %w", err)
	}

	if err := writeFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}

	return nil
}
