package scheduler

import (
	"context"
	"time"

	"github.com/Ayushkukreti23/EventEase/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type StatsSource interface {
	PlatformStats(ctx context.Context) (*domain.BookingStats, error)
}

// Scheduler periodically logs platform booking totals so operators can
// watch volume and revenue without querying the admin endpoint.
type Scheduler struct {
	statsService StatsSource
	interval     time.Duration
	logger       logger.Logger
}

func New(
	statsService StatsSource,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		statsService: statsService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("stats reporter started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("stats reporter stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	stats, err := s.statsService.PlatformStats(ctx)
	if err != nil {
		s.logger.Error("failed to collect booking stats",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("booking stats",
		logger.Int("total", stats.Total),
		logger.Int("confirmed", stats.Confirmed),
		logger.Int("cancelled", stats.Cancelled),
		logger.Any("revenue", stats.TotalAmount),
	)
}
