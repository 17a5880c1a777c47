package usecase

import (
	"context"
	"fmt"
	"time"

	"exocatalog-service/internal/domain/entity"
	"exocatalog-service/internal/domain/repository"
	"exocatalog-service/pkg/logger"
	"exocatalog-service/pkg/metrics"

	"github.com/google/uuid"
)

// Pipeline sequences cache-check, remote fetch, validation, cache write and
// the fallback cascade. It always resolves to a tagged result: total
// failure is not a reachable state for its callers.
type Pipeline struct {
	source    repository.SourceClient
	mapper    *FieldMapper
	validator *Validator
	cache     *CacheStore
	metrics   *metrics.Metrics
	logger    logger.Logger
}

// NewPipeline creates a new pipeline
func NewPipeline(
	source repository.SourceClient,
	mapper *FieldMapper,
	validator *Validator,
	cache *CacheStore,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *Pipeline {
	return &Pipeline{
		source:    source,
		mapper:    mapper,
		validator: validator,
		cache:     cache,
		metrics:   metrics,
		logger:    logger,
	}
}

// LoadPlanets runs the four-strategy cascade, first success wins:
// fresh cache, live fetch, stale cache, built-in sentinel (Records == nil).
// onProgress is observational only and may be nil.
func (p *Pipeline) LoadPlanets(ctx context.Context, onProgress entity.ProgressFunc) *entity.LoadResult {
	runID := uuid.NewString()
	log := p.logger.With("runId", runID)
	progress := progressFunc(onProgress)

	// 1. fresh cache
	if p.cache.IsFresh(ctx) {
		if records, meta := p.cache.Read(ctx); len(records) > 0 {
			progress(entity.PhaseCacheHit)
			progress(entity.PhaseComplete)
			log.Info("Serving fresh cache", "records", len(records))
			p.observeLoad("cache-fresh", len(records))
			p.metrics.CacheHits.WithLabelValues("fresh").Inc()
			return &entity.LoadResult{
				RunID:     runID,
				Records:   records,
				Report:    meta.Report,
				Source:    entity.SourceCacheFresh,
				FetchedAt: meta.FetchedAt,
				FromCache: true,
			}
		}
	}

	// 2. live fetch
	result, fetchErr := p.fetchLive(ctx, runID, log, progress)
	if fetchErr == nil {
		return result
	}
	log.Warn("Remote fetch failed, starting fallback cascade", "error", fetchErr)
	p.metrics.ErrorsCount.WithLabelValues("fetch").Inc()

	// 3. stale cache
	if p.cache.IsUsable(ctx) {
		if records, meta := p.cache.Read(ctx); len(records) > 0 {
			progress(entity.PhaseFallbackCache)
			progress(entity.PhaseComplete)
			age := p.cache.Age(ctx)
			log.Info("Serving stale cache", "records", len(records), "age", age.String())
			p.observeLoad("cache-stale", len(records))
			p.metrics.CacheHits.WithLabelValues("stale").Inc()
			return &entity.LoadResult{
				RunID:     runID,
				Records:   records,
				Report:    meta.Report,
				Source:    fmt.Sprintf("cache (stale, %s old)", humanAge(age)),
				FetchedAt: meta.FetchedAt,
				FromCache: true,
				Error:     fetchErr.Error(),
			}
		}
	}

	// 4. built-in sentinel: the caller supplies its bundled dataset
	progress(entity.PhaseFallbackBuiltin)
	progress(entity.PhaseComplete)
	log.Warn("No usable cache, falling back to built-in catalog")
	p.metrics.LoadsTotal.WithLabelValues("builtin").Inc()
	return &entity.LoadResult{
		RunID:  runID,
		Source: entity.SourceBuiltinFallback,
		Error:  fetchErr.Error(),
	}
}

// fetchLive runs fetch -> map -> validate -> cache write
func (p *Pipeline) fetchLive(ctx context.Context, runID string, log logger.Logger, progress entity.ProgressFunc) (*entity.LoadResult, error) {
	progress(entity.PhaseFetching)
	started := time.Now()
	rows, err := p.source.FetchPlanets(ctx)
	if err != nil {
		return nil, err
	}
	p.metrics.FetchDuration.Observe(time.Since(started).Seconds())
	progress(entity.PhaseParsing)

	progress(entity.PhaseMapping)
	mapped := p.mapper.MapRecords(rows)

	progress(entity.PhaseValidating)
	cleaned, report := p.validator.ValidateAndClean(mapped)

	fetchedAt := time.Now()
	if err := p.cache.Write(ctx, cleaned, fetchedAt, report); err != nil {
		// a failed cache write degrades future loads, never this one
		log.Warn("Cache write failed", "error", err)
	}

	progress(entity.PhaseComplete)
	log.Info("Live load complete", "records", len(cleaned))
	p.observeLoad("live", len(cleaned))

	return &entity.LoadResult{
		RunID:     runID,
		Records:   cleaned,
		Report:    report,
		Source:    entity.SourceLive,
		FetchedAt: fetchedAt,
		FromCache: false,
	}, nil
}

// RefreshInBackground repeats the live path and reports success via
// onComplete. Skipped entirely when the cache is already fresh; failures
// are logged and swallowed so they never reach an active session.
func (p *Pipeline) RefreshInBackground(ctx context.Context, onComplete func(*entity.LoadResult)) {
	if p.cache.IsFresh(ctx) {
		p.logger.Debug("Background refresh skipped, cache is fresh")
		return
	}

	runID := uuid.NewString()
	log := p.logger.With("runId", runID, "background", true)
	result, err := p.fetchLive(ctx, runID, log, progressFunc(nil))
	if err != nil {
		log.Warn("Background refresh failed", "error", err)
		p.metrics.ErrorsCount.WithLabelValues("background_refresh").Inc()
		return
	}

	p.metrics.RefreshesTotal.Inc()
	if onComplete != nil {
		onComplete(result)
	}
}

func (p *Pipeline) observeLoad(source string, records int) {
	p.metrics.LoadsTotal.WithLabelValues(source).Inc()
	p.metrics.RecordsLoaded.Set(float64(records))
}

// progressFunc makes a nil callback safe to call
func progressFunc(f entity.ProgressFunc) entity.ProgressFunc {
	if f == nil {
		return func(string) {}
	}
	return f
}

func humanAge(age time.Duration) string {
	if age >= 48*time.Hour {
		return fmt.Sprintf("%d days", int(age.Hours()/24))
	}
	if age >= 2*time.Hour {
		return fmt.Sprintf("%d hours", int(age.Hours()))
	}
	if age >= time.Minute {
		return fmt.Sprintf("%d minutes", int(age.Minutes()))
	}
	return fmt.Sprintf("%d seconds", int(age.Seconds()))
}
