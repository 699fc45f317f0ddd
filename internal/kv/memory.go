package kv

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store used in tests and throwaway runs. It
// supports failure injection and a read hook so tests can exercise the
// error paths and the read-modify-write race of the library store.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]string

	// GetErr and SetErr, when non-nil, make the corresponding operation
	// fail without touching the stored data.
	GetErr error
	SetErr error

	// OnGet, when set, runs after a value is read but before it is
	// returned. Lets a test interleave a competing write between one
	// operation's read and its write.
	OnGet func(key string)
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get retrieves the value stored under key.
func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	if s.GetErr != nil {
		s.mu.Unlock()
		return "", false, s.GetErr
	}
	value, ok := s.data[key]
	hook := s.OnGet
	s.mu.Unlock()

	if hook != nil {
		hook(key)
	}
	return value, ok, nil
}

// Set replaces the value stored under key.
func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	s.data[key] = value
	return nil
}

// Snapshot returns a copy of the stored data, for assertions.
func (s *MemoryStore) Snapshot() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}
