package repository

import (
	"context"
	"testing"

	"exocatalog-service/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runBlobStoreContract exercises the behavior every backend must share
func runBlobStoreContract(t *testing.T, store repository.BlobStore) {
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrBlobNotFound)

	require.NoError(t, store.Set(ctx, "k", "v1"))
	value, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", value)

	// overwrite
	require.NoError(t, store.Set(ctx, "k", "v2"))
	value, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", value)

	require.NoError(t, store.Delete(ctx, "k"))
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, repository.ErrBlobNotFound)

	// delete of a missing key is not an error
	assert.NoError(t, store.Delete(ctx, "k"))
}

func TestMemoryBlobStore(t *testing.T) {
	runBlobStoreContract(t, NewMemoryBlobStore())
}

func TestRedisBlobStore(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	defer client.Close()

	runBlobStoreContract(t, NewRedisBlobStore(client))
}
