package store

import (
	"context"
	"sync"

	"cinvoluntario/internal/domain/service"
)

// memoryStore is an ephemeral TokenStore for tests and one-shot runs.
type memoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore builds an in-memory token store.
func NewMemoryStore() service.TokenStore {
	return &memoryStore{}
}

func (s *memoryStore) Load(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token, nil
}

func (s *memoryStore) Save(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token

	return nil
}

func (s *memoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""

	return nil
}
