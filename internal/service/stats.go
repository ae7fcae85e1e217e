package service

import (
	"context"

	"github.com/Ayushkukreti23/EventEase/internal/domain"
	"github.com/Ayushkukreti23/EventEase/internal/service/ports"
)

// StatsService derives booking counts and revenue by scanning the live
// booking set. Nothing is cached or persisted.
type StatsService struct {
	bookingRepo ports.BookingRepo
}

func NewStatsService(bookingRepo ports.BookingRepo) *StatsService {
	return &StatsService{bookingRepo: bookingRepo}
}

func (s *StatsService) PlatformStats(ctx context.Context) (*domain.BookingStats, error) {
	return s.bookingRepo.Stats(ctx)
}

func (s *StatsService) UserStats(ctx context.Context, userID string) (*domain.BookingStats, error) {
	return s.bookingRepo.StatsByUser(ctx, userID)
}
