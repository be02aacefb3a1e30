package vault

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/UdayAnalyst/visual-news/internal/common"
	"github.com/UdayAnalyst/visual-news/internal/cryptox"
	"github.com/UdayAnalyst/visual-news/internal/logging"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users_secure.json")
	key := common.GenerateRandByteArray(cryptox.KeySize)
	return NewStore(path, key, discardLogger())
}

func sampleUsers(t *testing.T) map[string]*UserRecord {
	t.Helper()
	created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	lastLogin := created.Add(48 * time.Hour)
	return map[string]*UserRecord{
		"u-one": {
			Name:          "Jo",
			Phone:         "(555) 123-4567",
			PasswordHash:  "$2a$12$fakefakefakefakefakefake",
			Preferences:   []string{"technology", "science"},
			CreatedAt:     created,
			LastLogin:     &lastLogin,
			LoginAttempts: 2,
			LikedTopics:   map[string]int{"technology": 3},
			PassedTopics:  map[string]int{"sports": 1},
		},
		"u-two": {
			Name:         "Mary-Jane",
			Phone:        "5559876543",
			PasswordHash: "$2a$12$otherotherotherotherother",
			Preferences:  []string{},
			CreatedAt:    created,
			LikedTopics:  map[string]int{},
			PassedTopics: map[string]int{},
		},
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	users := sampleUsers(t)

	require.NoError(t, s.Save(users))

	got := s.Load(ctx)
	require.Equal(t, users, got)
}

func TestStore_FileIsOpaque(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(sampleUsers(t)))

	raw, err := os.ReadFile(s.path)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "(555) 123-4567")
	require.NotContains(t, string(raw), "password_hash")
}

func TestStore_MissingFileLoadsEmpty(t *testing.T) {
	s := newTestStore(t)

	got := s.Load(context.Background())
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestStore_CorruptBlobLoadsEmpty(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(sampleUsers(t)))
	require.NoError(t, os.WriteFile(s.path, []byte("garbage-not-a-token"), 0o600))

	got := s.Load(context.Background())
	require.Empty(t, got)

	// Internally the corruption is still distinguishable from "no data".
	_, err := s.load()
	if !errors.Is(err, ErrCorruptStore) {
		t.Fatalf("want ErrCorruptStore, got %v", err)
	}
}

func TestStore_WrongKeyLoadsEmpty(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(sampleUsers(t)))

	other := NewStore(s.path, common.GenerateRandByteArray(cryptox.KeySize), discardLogger())
	got := other.Load(context.Background())
	require.Empty(t, got)
}

func TestStore_SaveReplacesPreviousContents(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Save(sampleUsers(t)))
	require.NoError(t, s.Save(map[string]*UserRecord{}))

	require.Empty(t, s.Load(ctx))
}
