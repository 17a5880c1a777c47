package repository

import (
	"context"
	"sync"

	"exocatalog-service/internal/domain/repository"
)

// MemoryBlobStore is a map-backed BlobStore for tests and single-process
// development runs
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string]string
}

// NewMemoryBlobStore creates an empty in-memory blob store
func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string]string)}
}

// Get returns the value for key or ErrBlobNotFound
func (s *MemoryBlobStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.blobs[key]
	if !ok {
		return "", repository.ErrBlobNotFound
	}
	return value, nil
}

// Set stores value under key
func (s *MemoryBlobStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = value
	return nil
}

// Delete removes key; deleting a missing key is not an error
func (s *MemoryBlobStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}
