package history

import (
	"context"
	"sync"

	"github.com/marketlens/backend/internal/domain"
)

// MemoryStore is a thread-safe, append-only store of search history, keyed
// by session ID. It lives for the process lifetime only: no size cap, no
// eviction, nothing survives a restart.
type MemoryStore struct {
	entries map[string][]domain.HistoryEntry
	mutex   sync.RWMutex
}

// NewMemoryStore creates a new in-memory history store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string][]domain.HistoryEntry),
	}
}

// Append records one completed search for the session. Entries are never
// removed or mutated afterwards.
func (s *MemoryStore) Append(ctx context.Context, sessionID string, entry domain.HistoryEntry) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.entries[sessionID] = append(s.entries[sessionID], entry)
	return nil
}

// All returns the session's entries in insertion order. The returned slice is
// a copy, so later appends never affect it.
func (s *MemoryStore) All(ctx context.Context, sessionID string) ([]domain.HistoryEntry, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stored := s.entries[sessionID]
	out := make([]domain.HistoryEntry, len(stored))
	copy(out, stored)
	return out, nil
}

// Sessions returns the number of sessions with recorded history (for
// debugging/monitoring)
func (s *MemoryStore) Sessions() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.entries)
}
