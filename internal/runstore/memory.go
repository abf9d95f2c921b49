package runstore

import (
	"context"
	"sync"
	"time"

	"github.com/specialistvlad/gridquad/internal/quadrature"
)

// MemoryStore is a simple in-memory implementation.
// Useful for tests and single-process runs.
//
// It stores the same serialized form as RedisStore so both backends round
// trip results identically. Entries never expire.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string][]byte
	now     func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string][]byte),
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (quadrature.Result, bool, error) {
	s.mu.Lock()
	data, ok := s.entries[key]
	s.mu.Unlock()
	if !ok {
		return quadrature.Result{}, false, nil
	}
	res, err := decode(data)
	if err != nil {
		return quadrature.Result{}, false, err
	}
	return res, true, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, res quadrature.Result) error {
	data, err := encode(res, s.now())
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = data
	return nil
}

// Len reports the number of cached results.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
