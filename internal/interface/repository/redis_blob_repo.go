package repository

import (
	"context"
	"errors"

	"exocatalog-service/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// RedisBlobStore implements BlobStore over a redis instance. Entries are not
// given a TTL: staleness is the cache store's policy, not the backend's.
type RedisBlobStore struct {
	client *redis.Client
}

// NewRedisBlobStore creates a blob store over an existing redis client
func NewRedisBlobStore(client *redis.Client) *RedisBlobStore {
	return &RedisBlobStore{client: client}
}

// Get returns the value for key or ErrBlobNotFound
func (s *RedisBlobStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", repository.ErrBlobNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores value under key
func (s *RedisBlobStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// Delete removes key; deleting a missing key is not an error
func (s *RedisBlobStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
