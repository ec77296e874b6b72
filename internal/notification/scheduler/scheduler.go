// Package scheduler fires the end-of-day summary. NextFireDelay holds all of
// the calendar arithmetic; DailyScheduler only sleeps on its result.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"go.uber.org/zap"
)

// NextFireDelay returns how long to wait from now until the next hour:minute
// on now's wall clock. A time already passed today moves to tomorrow.
func NextFireDelay(now time.Time, hour, minute int) time.Duration {
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if target.Before(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target.Sub(now)
}

// Job runs once per firing with the local time it fired at.
type Job func(ctx context.Context, firedAt time.Time)

type Config struct {
	Hour     int
	Minute   int
	Location *time.Location // Defaults to time.Local
}

type DailyScheduler struct {
	config Config
	job    Job
	logger logger.ZapLogger
	now    func() time.Time

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

func NewDailyScheduler(cfg Config, job Job, log logger.ZapLogger) *DailyScheduler {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &DailyScheduler{
		config: cfg,
		job:    job,
		logger: log,
		now:    time.Now,
	}
}

func (s *DailyScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		return nil
	}
	s.isRunning = true

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	now := s.now().In(s.config.Location)
	next := now.Add(NextFireDelay(now, s.config.Hour, s.config.Minute))

	s.wg.Add(1)
	go s.run(ctx, next)

	s.logger.Info("Daily scheduler started",
		zap.Int("hour", s.config.Hour),
		zap.Int("minute", s.config.Minute),
		zap.Time("next_fire", next),
	)
	return nil
}

// Stop releases the pending timer and waits for an in-flight job to finish.
func (s *DailyScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	cancel := s.cancel
	s.mu.Unlock()

	cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Daily scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *DailyScheduler) run(ctx context.Context, next time.Time) {
	defer s.wg.Done()

	for {
		timer := time.NewTimer(next.Sub(s.now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		firedAt := s.now().In(s.config.Location)
		s.logger.Info("Daily scheduler fired", zap.Time("fired_at", firedAt))
		s.job(ctx, firedAt)

		next = next.AddDate(0, 0, 1)
	}
}
