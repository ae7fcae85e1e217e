package ports

import (
	"context"
	"time"

	"github.com/Ayushkukreti23/EventEase/internal/domain"
)

type BookingRepo interface {
	// Create persists a booking only if the event still has enough free
	// seats and the user holds no confirmed booking for it.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.BookingDetails, error)
	// Cancel flips a confirmed booking to cancelled; it is a no-op error
	// when the booking is no longer confirmed.
	Cancel(ctx context.Context, id string, at time.Time) error
	// List is the unscoped admin view, newest first.
	List(ctx context.Context, f domain.BookingFilter) ([]*domain.BookingDetails, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.BookingDetails, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.BookingDetails, error)
	BookedSeats(ctx context.Context, eventID string) (int, error)
	Stats(ctx context.Context) (*domain.BookingStats, error)
	StatsByUser(ctx context.Context, userID string) (*domain.BookingStats, error)
}
