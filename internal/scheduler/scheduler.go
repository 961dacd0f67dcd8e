package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type healthProber interface {
	Probe(ctx context.Context) (bool, error)
}

// Scheduler periodically probes the club service so a degraded gateway can
// recover without waiting for a request to fail.
type Scheduler struct {
	prober   healthProber
	interval time.Duration
	logger   logger.Logger
	healthy  bool
}

func New(
	prober healthProber,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		prober:   prober,
		interval: interval,
		logger:   logger,
		healthy:  true,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	healthy, err := s.prober.Probe(ctx)
	if healthy == s.healthy {
		return
	}
	s.healthy = healthy

	if !healthy {
		msg := ""
		if err != nil {
			msg = err.Error()
		}
		s.logger.Warn("club service probe failed",
			logger.String("error", msg),
		)
		return
	}

	s.logger.Info("club service probe succeeded")
}
