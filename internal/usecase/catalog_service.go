package usecase

import (
	"context"
	"sync"
	"time"

	"exocatalog-service/internal/domain/entity"
	"exocatalog-service/pkg/logger"
	"exocatalog-service/pkg/metrics"
	"exocatalog-service/pkg/science"
)

// CatalogService glues the pipeline to the catalog store: whichever dataset
// wins (remote, cache or built-in) is enriched uniformly and swapped in as
// the new snapshot. It is the store's only writer.
type CatalogService struct {
	pipeline       *Pipeline
	catalog        *CatalogStore
	syntheticCount int
	metrics        *metrics.Metrics
	logger         logger.Logger

	// background refreshes write lastResult while the status surface reads it
	mu         sync.RWMutex
	lastResult *entity.LoadResult
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	pipeline *Pipeline,
	catalog *CatalogStore,
	syntheticCount int,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *CatalogService {
	return &CatalogService{
		pipeline:       pipeline,
		catalog:        catalog,
		syntheticCount: syntheticCount,
		metrics:        metrics,
		logger:         logger,
	}
}

// LoadPlanets runs the pipeline, resolves the built-in sentinel, enriches
// the winning dataset and swaps the catalog
func (s *CatalogService) LoadPlanets(ctx context.Context, onProgress entity.ProgressFunc) *entity.LoadResult {
	result := s.pipeline.LoadPlanets(ctx, onProgress)
	s.install(result)
	return result
}

// RefreshInBackground repeats the live path without blocking the catalog's
// readers; on success the snapshot is swapped atomically
func (s *CatalogService) RefreshInBackground(ctx context.Context) {
	s.pipeline.RefreshInBackground(ctx, func(result *entity.LoadResult) {
		s.install(result)
		s.logger.Info("Catalog upgraded by background refresh", "records", len(result.Records))
	})
}

// install enriches the result's dataset (or the bundled fallback) and
// replaces the catalog snapshot
func (s *CatalogService) install(result *entity.LoadResult) {
	records := result.Records
	if records == nil {
		records = BuiltinCatalog(s.syntheticCount)
		s.logger.Warn("Using built-in catalog", "records", len(records))
	}

	started := time.Now()
	science.EnrichAll(records)
	s.metrics.EnrichmentTime.Observe(time.Since(started).Seconds())

	s.catalog.Replace(records, result.Source)

	s.mu.Lock()
	s.lastResult = result
	s.mu.Unlock()
}

// LastResult returns the most recent load outcome for the status surface
func (s *CatalogService) LastResult() *entity.LoadResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastResult
}
