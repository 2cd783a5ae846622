// Package recordstore persists typed records as JSON documents over a
// storage.Port.
//
// Read-modify-write operations (AppendFront, RemoveByID, Take) hold a per-key
// lock, so they never interleave inside one process. Processes sharing a
// backend are not coordinated: concurrent writers to the same key lose updates
// and the last write wins.
package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/AnshRaj112/neurosphere-backend/internal/storage"
	"go.uber.org/zap"
)

// Keys of the persisted state, relative to a user namespace.
const (
	KeyJournalEntries = "journal_entries"
	KeyMoodChecks     = "mood_data"
	KeyDraft          = "journal_draft"
	KeySelectedPrompt = "selected_prompt"
	KeySelectedMood   = "selected_mood"
	KeyTheme          = "theme"
	KeyMode           = "mode"
	KeyUser           = "neurosphere_user"
)

// Store addresses one namespace of the backing port.
type Store struct {
	port   storage.Port
	log    *zap.Logger
	locks  *keyLocks
	prefix string
}

func New(port storage.Port, log *zap.Logger) *Store {
	return &Store{
		port:  port,
		log:   log.Named("recordstore"),
		locks: &keyLocks{m: make(map[string]*sync.Mutex)},
	}
}

// ForUser returns a store whose keys live under "user:<id>:". Namespaces share
// the lock table of the root store.
func (s *Store) ForUser(userID string) *Store {
	return &Store{
		port:   s.port,
		log:    s.log.With(zap.String("user_id", userID)),
		locks:  s.locks,
		prefix: "user:" + userID + ":",
	}
}

// Key returns the fully qualified key for name.
func (s *Store) Key(name string) string {
	return s.prefix + name
}

// getJSON decodes the value under key into dest. A missing key reports false.
// A value that fails to parse is logged and also reports false; only transport
// failures are returned as errors.
func (s *Store) getJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, found, err := s.port.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("recordstore: get %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.log.Warn("malformed stored value", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (s *Store) setJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("recordstore: encode %s: %w", key, err)
	}
	if err := s.port.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("recordstore: set %s: %w", key, err)
	}
	return nil
}

func (s *Store) delete(ctx context.Context, key string) error {
	if err := s.port.Delete(ctx, key); err != nil {
		return fmt.Errorf("recordstore: delete %s: %w", key, err)
	}
	return nil
}

// keyLocks hands out one mutex per fully qualified key. Entries are never
// evicted; the key space is bounded by users times persisted keys.
type keyLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func (k *keyLocks) lock(key string) func() {
	k.mu.Lock()
	l, ok := k.m[key]
	if !ok {
		l = &sync.Mutex{}
		k.m[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
