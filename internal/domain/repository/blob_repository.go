package repository

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by Get when a key has never been written or
// was deleted
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore is scoped key/value persistence, strings in and out. The cache
// layer only ever needs get/set/delete, so any durable local store (embedded
// KV, sqlite, mongo, redis) can back it without touching pipeline logic.
type BlobStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
