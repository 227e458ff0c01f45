package webhook

import (
	"sync"
	"time"
)

// Store is the process-wide in-memory record cache. A single mutex guards the
// whole map: handlers and the background sweep all mutate the same instance,
// and correctness under concurrent mutation matters more than throughput here.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Record
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]Record)}
}

// Put inserts or overwrites the record at key.
func (s *Store) Put(key string, rec Record) {
	s.mu.Lock()
	s.entries[key] = rec
	s.mu.Unlock()
}

// Get returns the current record for key, if any.
func (s *Store) Get(key string) (Record, bool) {
	s.mu.RLock()
	rec, ok := s.entries[key]
	s.mu.RUnlock()
	return rec, ok
}

// Delete removes the entry at key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Clear removes all entries. Observers see either the old map or an empty one,
// never a partial clear.
func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = make(map[string]Record)
	s.mu.Unlock()
}

// Len reports the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	n := len(s.entries)
	s.mu.RUnlock()
	return n
}

// Sweep removes every entry whose age (now minus creation instant) exceeds
// maxAge and returns the number evicted.
func (s *Store) Sweep(now time.Time, maxAge time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, rec := range s.entries {
		if now.Sub(rec.ReceivedAt) > maxAge {
			delete(s.entries, key)
			evicted++
		}
	}
	return evicted
}
