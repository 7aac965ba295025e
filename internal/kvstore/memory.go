package kvstore

import (
	"context"
	"sync"
)

// MemoryStore keeps values in a map; contents vanish with the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string][]byte),
	}
}

// Get returns a copy of the stored value.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// SetMany stores copies of every entry under one lock.
func (s *MemoryStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range entries {
		s.values[k] = append([]byte(nil), v...)
	}
	return nil
}

// DeleteMany removes keys under one lock.
func (s *MemoryStore) DeleteMany(ctx context.Context, keys ...string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, k := range keys {
		delete(s.values, k)
	}
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }
