// Package sweeper runs the feedback retention loop: on a fixed interval
// it deletes feedback older than the configured age, backing off after a
// failed sweep.
package sweeper

import (
	"context"
	"time"

	"log/slog"

	coreconfig "restobot/internal/config"
	"restobot/internal/logger"
)

const component = "sweep"

// Purger deletes feedback rows older than the given age.
type Purger interface {
	Purge(ctx context.Context, maxAge time.Duration) (int64, error)
}

// Sweeper is the single long-lived background actor of the bot process.
type Sweeper struct {
	purger   Purger
	interval time.Duration
	maxAge   time.Duration
	backoff  time.Duration
}

// New builds a Sweeper from the retention configuration.
func New(purger Purger, cfg coreconfig.RetentionConfig) *Sweeper {
	return &Sweeper{
		purger:   purger,
		interval: cfg.SweepInterval(),
		maxAge:   cfg.MaxAge(),
		backoff:  cfg.ErrorBackoff(),
	}
}

// Run sweeps immediately, then on every interval tick until the context
// is cancelled. A failed sweep shortens the next wait to the backoff.
func (s *Sweeper) Run(ctx context.Context) {
	logger.Info(ctx, component, "sweeper.start",
		slog.Duration("interval", s.interval),
		slog.Duration("max_age", s.maxAge),
	)

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, component, "sweeper.stop")
			return
		case <-timer.C:
		}

		wait := s.interval
		if _, err := s.SweepOnce(ctx); err != nil {
			wait = s.backoff
		}
		timer.Reset(wait)
	}
}

// SweepOnce performs a single retention pass.
func (s *Sweeper) SweepOnce(ctx context.Context) (int64, error) {
	start := time.Now()
	deleted, err := s.purger.Purge(ctx, s.maxAge)
	if err != nil {
		logger.Error(ctx, component, "sweep.fail",
			slog.Duration("duration", logger.RoundMS(time.Since(start))),
			slog.String("err", err.Error()),
		)
		return 0, err
	}

	logger.Info(ctx, component, "sweep.done",
		slog.String("status", "ok"),
		slog.Int64("deleted", deleted),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return deleted, nil
}
