// Package scheduler drives the periodic refresh and live-merge cycles
// off wall-clock minutes: one daily refresh, extra refresh slots on
// Saturday afternoons, and a tighter live-score window around kickoff.
package scheduler

import (
	"context"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/zeeneddie/Sports-League-Management-System/internal/config"
	"github.com/zeeneddie/Sports-League-Management-System/internal/platform/logging"
)

const tickInterval = 20 * time.Second

// Config carries the schedule windows, minute precision.
type Config struct {
	DailyRefreshAt          config.ClockTime
	SaturdayRefreshStart    config.ClockTime
	SaturdayRefreshEnd      config.ClockTime
	SaturdayRefreshInterval time.Duration
	LiveWindowStart         config.ClockTime
	LiveWindowEnd           config.ClockTime
	LiveInterval            time.Duration
}

// Scheduler fires the given jobs at their configured times. Jobs run on
// their own goroutines so a slow refresh never delays the clock check.
type Scheduler struct {
	cfg Config

	refresh     func(context.Context) error
	liveUpdate  func(context.Context) error
	hasSnapshot func() bool

	logger *logging.Logger
	now    func() time.Time

	lastMinute time.Time
}

func New(
	cfg Config,
	refresh func(context.Context) error,
	liveUpdate func(context.Context) error,
	hasSnapshot func() bool,
	logger *logging.Logger,
) *Scheduler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Scheduler{
		cfg:         cfg,
		refresh:     refresh,
		liveUpdate:  liveUpdate,
		hasSnapshot: hasSnapshot,
		logger:      logger,
		now:         time.Now,
	}
}

// Run blocks until ctx is cancelled. A missing snapshot triggers an
// immediate refresh before the clock loop starts.
func (s *Scheduler) Run(ctx context.Context) {
	var wg conc.WaitGroup
	defer wg.Wait()

	if s.hasSnapshot != nil && !s.hasSnapshot() {
		s.logger.InfoContext(ctx, "no snapshot found, running initial refresh")
		s.runJob(ctx, &wg, "refresh", s.refresh)
	}

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "scheduler stopping")
			return
		case <-ticker.C:
			s.checkMinute(ctx, &wg, s.now())
		}
	}
}

// checkMinute evaluates the schedule for the minute t falls in. Each
// minute fires at most once even though ticks come more often.
func (s *Scheduler) checkMinute(ctx context.Context, wg *conc.WaitGroup, t time.Time) {
	minute := t.Truncate(time.Minute)
	if minute.Equal(s.lastMinute) {
		return
	}
	s.lastMinute = minute

	if s.shouldRefreshAt(minute) {
		s.runJob(ctx, wg, "refresh", s.refresh)
	}
	if s.shouldLiveUpdateAt(minute) {
		s.runJob(ctx, wg, "live-update", s.liveUpdate)
	}
}

func (s *Scheduler) runJob(ctx context.Context, wg *conc.WaitGroup, name string, job func(context.Context) error) {
	if job == nil {
		return
	}
	wg.Go(func() {
		if err := job(ctx); err != nil {
			s.logger.WarnContext(ctx, "scheduled job failed", "job", name, "error", err)
			return
		}
		s.logger.InfoContext(ctx, "scheduled job completed", "job", name)
	})
}

func (s *Scheduler) shouldRefreshAt(t time.Time) bool {
	minutes := t.Hour()*60 + t.Minute()
	if minutes == s.cfg.DailyRefreshAt.Minutes() {
		return true
	}
	if t.Weekday() != time.Saturday {
		return false
	}
	start := s.cfg.SaturdayRefreshStart.Minutes()
	end := s.cfg.SaturdayRefreshEnd.Minutes()
	if minutes < start || minutes > end {
		return false
	}
	step := int(s.cfg.SaturdayRefreshInterval.Minutes())
	if step <= 0 {
		return false
	}
	return (minutes-start)%step == 0
}

func (s *Scheduler) shouldLiveUpdateAt(t time.Time) bool {
	if t.Weekday() != time.Saturday {
		return false
	}
	minutes := t.Hour()*60 + t.Minute()
	start := s.cfg.LiveWindowStart.Minutes()
	end := s.cfg.LiveWindowEnd.Minutes()
	if minutes < start || minutes > end {
		return false
	}
	step := int(s.cfg.LiveInterval.Minutes())
	if step <= 0 {
		return false
	}
	return (minutes-start)%step == 0
}
