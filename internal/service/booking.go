package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Ayushkukreti23/EventEase/internal/domain"
	"github.com/Ayushkukreti23/EventEase/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
	now         func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// Book validates and creates a booking. Validation order: seat count,
// caller role, event existence, event date, then duplicate/capacity inside
// the repository transaction. First failing rule wins.
func (s *BookingService) Book(ctx context.Context, ident domain.Identity, eventID string, seats int) (*domain.BookingDetails, error) {
	if seats < domain.MinSeats || seats > domain.MaxSeats {
		return nil, fmt.Errorf("%w: seats must be between %d and %d",
			domain.ErrValidation, domain.MinSeats, domain.MaxSeats)
	}

	// Admins publish events, they do not book them.
	if ident.IsAdmin() {
		return nil, fmt.Errorf("%w: admins cannot book events", domain.ErrForbidden)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	now := s.now().UTC()
	if domain.DateOnly(event.Date).Before(domain.DateOnly(now)) {
		return nil, domain.ErrPastEvent
	}

	booking := &domain.Booking{
		ID:          uuid.New().String(),
		EventID:     eventID,
		UserID:      ident.UserID,
		Seats:       seats,
		TotalAmount: float64(seats) * event.Price,
		Status:      domain.BookingStatusConfirmed,
		BookingDate: now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", ident.UserID),
		logger.Int("seats", seats),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking, event)

	return &domain.BookingDetails{Booking: *booking, Event: *event}, nil
}

// Cancel transitions a confirmed booking to cancelled. Only the owner may
// cancel, and only while the event has not started.
func (s *BookingService) Cancel(ctx context.Context, ident domain.Identity, bookingID string) (*domain.BookingDetails, error) {
	d, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if d.Booking.UserID != ident.UserID {
		return nil, fmt.Errorf("%w: not authorized to cancel this booking", domain.ErrForbidden)
	}

	now := s.now().UTC()
	if !domain.DateOnly(d.Event.Date).After(domain.DateOnly(now)) {
		return nil, domain.ErrEventStarted
	}

	if d.Booking.Status == domain.BookingStatusCancelled {
		return nil, domain.ErrAlreadyCancelled
	}

	if err = s.bookingRepo.Cancel(ctx, bookingID, now); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	d.Booking.Status = domain.BookingStatusCancelled
	d.Booking.CancelledAt = &now

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("event_id", d.Booking.EventID),
		logger.String("user_id", ident.UserID),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), &d.Booking, &d.Event)

	return d, nil
}

// ListAll is the admin view across all users, optionally narrowed by
// event or status.
func (s *BookingService) ListAll(ctx context.Context, f domain.BookingFilter) ([]*domain.BookingDetails, error) {
	return s.bookingRepo.List(ctx, f)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.BookingDetails, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *BookingService) Attendees(ctx context.Context, eventID string) ([]*domain.BookingDetails, error) {
	return s.bookingRepo.ListByEvent(ctx, eventID)
}

// BookedSeats reports the seats currently committed for an event. It reads
// the live booking set on every call; caching here would let the capacity
// invariant drift.
func (s *BookingService) BookedSeats(ctx context.Context, eventID string) (int, error) {
	return s.bookingRepo.BookedSeats(ctx, eventID)
}
