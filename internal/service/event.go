package service

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ayushkukreti23/EventEase/internal/domain"
	"github.com/Ayushkukreti23/EventEase/internal/service/ports"
)

type EventService struct {
	repo        ports.EventRepo
	bookingRepo ports.BookingRepo
}

func NewEventService(repo ports.EventRepo, bookingRepo ports.BookingRepo) *EventService {
	return &EventService{
		repo:        repo,
		bookingRepo: bookingRepo,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if len(strings.TrimSpace(input.Title)) < 3 {
		return nil, fmt.Errorf("%w: title must be at least 3 characters", domain.ErrValidation)
	}
	if len(strings.TrimSpace(input.Description)) < 10 {
		return nil, fmt.Errorf("%w: description must be at least 10 characters", domain.ErrValidation)
	}
	if !slices.Contains(domain.Categories, input.Category) {
		return nil, fmt.Errorf("%w: invalid category", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Location) == "" {
		return nil, fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if !slices.Contains(domain.LocationTypes, input.LocationType) {
		return nil, fmt.Errorf("%w: invalid location type", domain.ErrValidation)
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Time) == "" {
		return nil, fmt.Errorf("%w: time is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be at least 1", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:           uuid.New().String(),
		Code:         generateEventCode(input.Date),
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Category:     input.Category,
		Location:     strings.TrimSpace(input.Location),
		LocationType: input.LocationType,
		Date:         domain.DateOnly(input.Date),
		Time:         strings.TrimSpace(input.Time),
		Capacity:     input.Capacity,
		Price:        input.Price,
		Image:        input.Image,
		CreatedBy:    input.CreatedBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if len(strings.TrimSpace(*input.Title)) < 3 {
			return nil, fmt.Errorf("%w: title must be at least 3 characters", domain.ErrValidation)
		}
		event.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		if len(strings.TrimSpace(*input.Description)) < 10 {
			return nil, fmt.Errorf("%w: description must be at least 10 characters", domain.ErrValidation)
		}
		event.Description = strings.TrimSpace(*input.Description)
	}
	if input.Category != nil {
		if !slices.Contains(domain.Categories, *input.Category) {
			return nil, fmt.Errorf("%w: invalid category", domain.ErrValidation)
		}
		event.Category = *input.Category
	}
	if input.Location != nil {
		if strings.TrimSpace(*input.Location) == "" {
			return nil, fmt.Errorf("%w: location is required", domain.ErrValidation)
		}
		event.Location = strings.TrimSpace(*input.Location)
	}
	if input.LocationType != nil {
		if !slices.Contains(domain.LocationTypes, *input.LocationType) {
			return nil, fmt.Errorf("%w: invalid location type", domain.ErrValidation)
		}
		event.LocationType = *input.LocationType
	}
	if input.Date != nil {
		event.Date = domain.DateOnly(*input.Date)
	}
	if input.Time != nil {
		if strings.TrimSpace(*input.Time) == "" {
			return nil, fmt.Errorf("%w: time is required", domain.ErrValidation)
		}
		event.Time = strings.TrimSpace(*input.Time)
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, fmt.Errorf("%w: price must be non-negative", domain.ErrValidation)
		}
		event.Price = *input.Price
	}
	if input.Image != nil {
		event.Image = *input.Image
	}
	event.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	booked, err := s.bookingRepo.BookedSeats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("booked seats: %w", err)
	}

	return &domain.EventDetails{
		Event:          *event,
		BookedSeats:    booked,
		AvailableSeats: event.Capacity - booked,
	}, nil
}

func (s *EventService) List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	return s.repo.List(ctx, f)
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateEventCode builds codes like EVT-SEP2026-K4X from the event date.
func generateEventCode(date time.Time) string {
	suffix := make([]byte, 3)
	for i := range suffix {
		suffix[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}

	return fmt.Sprintf("EVT-%s%d-%s",
		strings.ToUpper(date.Format("Jan")), date.Year(), suffix)
}
