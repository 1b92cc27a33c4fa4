package service

import (
	"context"
	"fmt"
	"time"

	"cinepulse/pkg/logger"

	"github.com/robfig/cron/v3"
)

// CacheWarmer periodically refreshes the catalogue cache.
type CacheWarmer interface {
	Start(ctx context.Context) error
	Warm(ctx context.Context)
}

// NewCacheWarmer creates a warmer that runs on the given cron schedule.
func NewCacheWarmer(reviews ReviewService, schedule string, logger *logger.Logger) CacheWarmer {
	return &cacheWarmer{
		reviews:    reviews,
		schedule:   schedule,
		cronParser: cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
		logger:     logger,
	}
}

type cacheWarmer struct {
	reviews    ReviewService
	schedule   string
	cronParser cron.Parser
	logger     *logger.Logger
}

// Start registers the schedule and returns. The cron runner stops when ctx is done.
func (w *cacheWarmer) Start(ctx context.Context) error {
	sched, err := w.cronParser.Parse(w.schedule)
	if err != nil {
		return fmt.Errorf("invalid cache warm schedule %q: %w", w.schedule, err)
	}

	c := cron.New(cron.WithParser(w.cronParser))
	c.Schedule(sched, cron.FuncJob(func() { w.Warm(ctx) }))
	c.Start()
	w.logger.Info("Cache warmer started",
		logger.StringField("schedule", w.schedule),
		logger.Field("next_run", sched.Next(time.Now())))

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
		w.logger.Info("Cache warmer stopped")
	}()
	return nil
}

// Warm refreshes the cache once and logs failures.
func (w *cacheWarmer) Warm(ctx context.Context) {
	if err := w.reviews.WarmCache(ctx); err != nil {
		w.logger.Warn("Failed to warm catalogue cache", logger.ErrorField(err))
	}
}
