package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"exocatalog-service/internal/domain/entity"
	interfaceRepo "exocatalog-service/internal/interface/repository"
	"exocatalog-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(blobs *interfaceRepo.MemoryBlobStore, now time.Time, budget int) *CacheStore {
	return NewCacheStore(
		blobs,
		24*time.Hour,
		7*24*time.Hour,
		budget,
		func() time.Time { return now },
		logger.NopLogger{},
	)
}

func sampleRecords(n int) []*entity.PlanetRecord {
	records := make([]*entity.PlanetRecord, n)
	for i := range records {
		records[i] = &entity.PlanetRecord{
			Name:   fmt.Sprintf("Planet-%d b", i),
			Radius: entity.Float(1.0),
		}
	}
	return records
}

func TestCacheStalenessBoundaries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	blobs := interfaceRepo.NewMemoryBlobStore()
	cache := newTestCache(blobs, now, 1<<20)

	cases := []struct {
		age    time.Duration
		fresh  bool
		usable bool
	}{
		{23*time.Hour + 59*time.Minute, true, true},
		{24*time.Hour + time.Minute, false, true},
		{3 * 24 * time.Hour, false, true},
		{7*24*time.Hour + time.Hour, false, false},
	}
	for _, tc := range cases {
		require.NoError(t, cache.Write(ctx, sampleRecords(3), now.Add(-tc.age), nil))
		assert.Equal(t, tc.fresh, cache.IsFresh(ctx), "age=%v", tc.age)
		assert.Equal(t, tc.usable, cache.IsUsable(ctx), "age=%v", tc.age)
	}
}

func TestCacheReadRoundTrip(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	cache := newTestCache(interfaceRepo.NewMemoryBlobStore(), now, 1<<20)

	report := &entity.ValidationReport{TotalInput: 3, TotalOutput: 3}
	require.NoError(t, cache.Write(ctx, sampleRecords(3), now.Add(-time.Hour), report))

	records, meta := cache.Read(ctx)
	require.Len(t, records, 3)
	require.NotNil(t, meta)
	assert.Equal(t, 3, meta.RecordCount)
	assert.False(t, meta.Truncated)
	assert.Equal(t, 3, meta.Report.TotalInput)
	assert.Equal(t, "Planet-0 b", records[0].Name)
}

func TestCacheMissWhenEmpty(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(interfaceRepo.NewMemoryBlobStore(), time.Now(), 1<<20)

	records, meta := cache.Read(ctx)
	assert.Nil(t, records)
	assert.Nil(t, meta)
	assert.False(t, cache.IsFresh(ctx))
	assert.False(t, cache.IsUsable(ctx))
}

func TestCacheCorruptionIsAMiss(t *testing.T) {
	ctx := context.Background()
	blobs := interfaceRepo.NewMemoryBlobStore()
	cache := newTestCache(blobs, time.Now(), 1<<20)

	require.NoError(t, cache.Write(ctx, sampleRecords(2), time.Now(), nil))
	require.NoError(t, blobs.Set(ctx, "exocatalog:data", "{corrupted"))

	records, meta := cache.Read(ctx)
	assert.Nil(t, records)
	assert.Nil(t, meta)

	require.NoError(t, blobs.Set(ctx, "exocatalog:meta", "not json either"))
	assert.False(t, cache.IsUsable(ctx))
}

func TestCacheVersionMismatchInvalidates(t *testing.T) {
	ctx := context.Background()
	blobs := interfaceRepo.NewMemoryBlobStore()
	cache := newTestCache(blobs, time.Now(), 1<<20)

	require.NoError(t, cache.Write(ctx, sampleRecords(2), time.Now(), nil))
	// rewrite metadata with a stale schema version
	meta := cache.ReadMetadata(ctx)
	require.NotNil(t, meta)
	stale := fmt.Sprintf(`{"version":%d,"fetchedAt":%q,"recordCount":2}`, meta.Version-1, meta.FetchedAt.Format(time.RFC3339))
	require.NoError(t, blobs.Set(ctx, "exocatalog:meta", stale))

	assert.False(t, cache.IsFresh(ctx))
	assert.False(t, cache.IsUsable(ctx))
}

func TestCacheTruncatesOversizedPayload(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	// budget sized to force truncation of a 100-record payload
	cache := newTestCache(interfaceRepo.NewMemoryBlobStore(), now, 6000)

	require.NoError(t, cache.Write(ctx, sampleRecords(100), now, nil))

	records, meta := cache.Read(ctx)
	require.NotNil(t, meta)
	assert.True(t, meta.Truncated)
	assert.Less(t, len(records), 100)
	assert.Equal(t, len(records), meta.RecordCount)
}

func TestCacheClear(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(interfaceRepo.NewMemoryBlobStore(), time.Now(), 1<<20)

	require.NoError(t, cache.Write(ctx, sampleRecords(2), time.Now(), nil))
	cache.Clear(ctx)

	records, meta := cache.Read(ctx)
	assert.Nil(t, records)
	assert.Nil(t, meta)
}
