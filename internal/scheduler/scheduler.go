// Package scheduler drives the periodic proper search. The cron entry fires
// hourly; the finder's own gate decides which firings actually search, so a
// missed target hour is caught up on the next tick.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Runner is the unit of work the scheduler drives.
type Runner interface {
	Run(ctx context.Context) error
}

// Scheduler runs the proper search on an hourly cron tick.
type Scheduler struct {
	runner Runner
	cron   *cron.Cron
	log    *slog.Logger
}

// New creates a Scheduler for the given runner.
func New(runner Runner, log *slog.Logger) *Scheduler {
	return &Scheduler{
		runner: runner,
		cron:   cron.New(),
		log:    log.With("component", "scheduler"),
	}
}

// Start begins the hourly schedule and blocks until ctx is cancelled. An
// initial run fires immediately so a freshly started process does not wait
// up to an hour for its first search.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc("@hourly", func() { s.runOnce(ctx) }); err != nil {
		return fmt.Errorf("adding cron entry: %w", err)
	}

	s.cron.Start()
	s.log.Info("scheduler started")

	s.runOnce(ctx)

	<-ctx.Done()
	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
	case <-time.After(30 * time.Second):
		s.log.Warn("timed out waiting for running job")
	}
	s.log.Info("scheduler stopped")
	return nil
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := s.runner.Run(ctx); err != nil {
		s.log.Error("proper search failed", "error", err)
	}
}
