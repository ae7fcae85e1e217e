package ports

import (
	"context"

	"github.com/Ayushkukreti23/EventEase/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking, e *domain.Event)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking, e *domain.Event)
}
