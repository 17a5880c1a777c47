package usecase

import (
	"context"
	"encoding/json"
	"time"

	"exocatalog-service/internal/domain/entity"
	"exocatalog-service/internal/domain/repository"
	"exocatalog-service/pkg/logger"
)

// cacheSchemaVersion gates cache validity: bumping it invalidates every
// existing cache atomically
const cacheSchemaVersion = 3

// Blob store keys for the two cache entries
const (
	cacheDataKey = "exocatalog:data"
	cacheMetaKey = "exocatalog:meta"
)

// truncateRatio is how much of the dataset survives when the serialized
// form exceeds the size budget: a smaller-but-complete cache beats no cache
const truncateRatio = 0.8

// CacheStore persists the last-known-good cleaned dataset with staleness
// semantics. Every persistence error is contained here and surfaces as a
// cache miss, never as a failure.
type CacheStore struct {
	blobs        repository.BlobStore
	freshWindow  time.Duration
	usableWindow time.Duration
	sizeBudget   int
	now          func() time.Time
	logger       logger.Logger
}

// NewCacheStore creates a cache store over a blob backend. now is injectable
// for staleness-boundary tests; pass nil for the wall clock.
func NewCacheStore(
	blobs repository.BlobStore,
	freshWindow, usableWindow time.Duration,
	sizeBudget int,
	now func() time.Time,
	logger logger.Logger,
) *CacheStore {
	if now == nil {
		now = time.Now
	}
	return &CacheStore{
		blobs:        blobs,
		freshWindow:  freshWindow,
		usableWindow: usableWindow,
		sizeBudget:   sizeBudget,
		now:          now,
		logger:       logger,
	}
}

// ReadMetadata returns the cache metadata, or nil on miss/corruption
func (c *CacheStore) ReadMetadata(ctx context.Context) *entity.CacheMetadata {
	raw, err := c.blobs.Get(ctx, cacheMetaKey)
	if err != nil {
		return nil
	}
	var meta entity.CacheMetadata
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		c.logger.Warn("Corrupted cache metadata, treating as miss", "error", err)
		return nil
	}
	return &meta
}

// age returns the cache age, or false when no valid metadata exists or the
// schema version does not match
func (c *CacheStore) age(ctx context.Context) (time.Duration, bool) {
	meta := c.ReadMetadata(ctx)
	if meta == nil || meta.Version != cacheSchemaVersion {
		return 0, false
	}
	return c.now().Sub(meta.FetchedAt), true
}

// IsFresh reports whether the cache can serve as the fast path
func (c *CacheStore) IsFresh(ctx context.Context) bool {
	age, ok := c.age(ctx)
	return ok && age < c.freshWindow
}

// IsUsable reports whether the cache can serve as a fallback after a
// failed fetch; wider window, never used as a fast path
func (c *CacheStore) IsUsable(ctx context.Context) bool {
	age, ok := c.age(ctx)
	return ok && age < c.usableWindow
}

// Age returns the cache age for observability tags; zero when absent
func (c *CacheStore) Age(ctx context.Context) time.Duration {
	age, ok := c.age(ctx)
	if !ok {
		return 0
	}
	return age
}

// Read returns the cached records and metadata, or nils on any miss,
// corruption or storage error
func (c *CacheStore) Read(ctx context.Context) ([]*entity.PlanetRecord, *entity.CacheMetadata) {
	meta := c.ReadMetadata(ctx)
	if meta == nil {
		return nil, nil
	}
	raw, err := c.blobs.Get(ctx, cacheDataKey)
	if err != nil {
		return nil, nil
	}
	var records []*entity.PlanetRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		c.logger.Warn("Corrupted cache payload, treating as miss", "error", err)
		return nil, nil
	}
	return records, meta
}

// Write persists a cleaned dataset. When the serialized form exceeds the
// size budget the record list is truncated to 80% of its length and the
// metadata marked accordingly.
func (c *CacheStore) Write(ctx context.Context, records []*entity.PlanetRecord, fetchedAt time.Time, report *entity.ValidationReport) error {
	payload, err := json.Marshal(records)
	if err != nil {
		c.logger.Error("Failed to serialize cache payload", "error", err)
		return err
	}

	truncated := false
	for len(payload) > c.sizeBudget && len(records) > 0 {
		keep := int(float64(len(records)) * truncateRatio)
		if keep == len(records) {
			keep--
		}
		records = records[:keep]
		truncated = true
		payload, err = json.Marshal(records)
		if err != nil {
			return err
		}
	}
	if truncated {
		c.logger.Warn("Cache payload exceeded size budget, truncated",
			"kept", len(records), "budget", c.sizeBudget)
	}

	meta := entity.CacheMetadata{
		Version:     cacheSchemaVersion,
		FetchedAt:   fetchedAt,
		RecordCount: len(records),
		Report:      report,
		Truncated:   truncated,
	}
	metaPayload, err := json.Marshal(meta)
	if err != nil {
		return err
	}

	if err := c.blobs.Set(ctx, cacheDataKey, string(payload)); err != nil {
		c.logger.Error("Failed to write cache payload", "error", err)
		return err
	}
	if err := c.blobs.Set(ctx, cacheMetaKey, string(metaPayload)); err != nil {
		c.logger.Error("Failed to write cache metadata", "error", err)
		return err
	}
	return nil
}

// Clear removes both cache entries
func (c *CacheStore) Clear(ctx context.Context) {
	if err := c.blobs.Delete(ctx, cacheDataKey); err != nil {
		c.logger.Warn("Failed to clear cache payload", "error", err)
	}
	if err := c.blobs.Delete(ctx, cacheMetaKey); err != nil {
		c.logger.Warn("Failed to clear cache metadata", "error", err)
	}
}
