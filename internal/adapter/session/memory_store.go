package session

import (
	"context"
	"sync"
	"time"

	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
)

type memoryEntry struct {
	userID    uint64
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Sessions do not survive a
// restart and are not shared between instances.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		now:      time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictExpired(now)
	s.sessions[sessionID] = memoryEntry{userID: userID, expiresAt: now.Add(ttl)}
	return nil
}

func (s *MemoryStore) Find(_ context.Context, sessionID string) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.sessions[sessionID]
	if !exists || !s.now().Before(entry.expiresAt) {
		return 0, domain.ErrSessionNotFound
	}
	return entry.userID, nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Len reports the number of stored sessions, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// evictExpired must be called with the write lock held.
func (s *MemoryStore) evictExpired(now time.Time) {
	for id, entry := range s.sessions {
		if !now.Before(entry.expiresAt) {
			delete(s.sessions, id)
		}
	}
}

var _ ports.SessionStore = (*MemoryStore)(nil)
