package usecase

import (
	"context"
	"sync"
	"time"

	"exocatalog-service/pkg/logger"

	"github.com/robfig/cron/v3"
)

// RefreshScheduler owns the background refresh timing: a periodic cron
// schedule plus cancellable one-shot delays (used right after a stale-cache
// load so the user gets upgraded silently).
type RefreshScheduler struct {
	service  *CatalogService
	interval time.Duration
	cron     *cron.Cron
	logger   logger.Logger

	mu     sync.Mutex
	timers []*time.Timer
}

// NewRefreshScheduler creates a scheduler for the given refresh interval
func NewRefreshScheduler(service *CatalogService, interval time.Duration, logger logger.Logger) *RefreshScheduler {
	return &RefreshScheduler{
		service:  service,
		interval: interval,
		cron:     cron.New(),
		logger:   logger,
	}
}

// Start begins the periodic refresh schedule
func (r *RefreshScheduler) Start(ctx context.Context) error {
	_, err := r.cron.AddFunc("@every "+r.interval.String(), func() {
		r.logger.Debug("Periodic refresh firing")
		r.service.RefreshInBackground(ctx)
	})
	if err != nil {
		return err
	}
	r.cron.Start()
	r.logger.Info("Refresh scheduler started", "interval", r.interval.String())
	return nil
}

// ScheduleOnce runs a single refresh after the delay. The returned cancel
// func stops the task if it has not fired yet.
func (r *RefreshScheduler) ScheduleOnce(ctx context.Context, delay time.Duration) (cancel func()) {
	timer := time.AfterFunc(delay, func() {
		r.logger.Debug("One-shot refresh firing", "delay", delay.String())
		r.service.RefreshInBackground(ctx)
	})
	r.mu.Lock()
	r.timers = append(r.timers, timer)
	r.mu.Unlock()
	return func() { timer.Stop() }
}

// Stop halts the cron schedule and cancels pending one-shot refreshes
func (r *RefreshScheduler) Stop() {
	stopCtx := r.cron.Stop()
	<-stopCtx.Done()

	r.mu.Lock()
	for _, timer := range r.timers {
		timer.Stop()
	}
	r.timers = nil
	r.mu.Unlock()
}
