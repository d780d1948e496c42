package idempotency

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps records in-process. Good enough for single-instance
// deployments and tests; multi-instance deployments use RedisStore.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	rec       Record
	expiresAt time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return Record{}, false, nil
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, key)
		return Record{}, false, nil
	}
	return e.rec, true, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{rec: rec, expiresAt: s.now().Add(TTL)}
	return nil
}
