package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrPastEvent        = errors.New("cannot book past events")
	ErrEventStarted     = errors.New("cannot cancel booking for events that have started")
	ErrAlreadyBooked    = errors.New("user already has a booking for this event")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrNotEnoughSeats   = errors.New("not enough seats available")
	ErrEventHasBookings = errors.New("event has bookings and cannot be deleted")
)

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("forbidden")
)

// NotEnoughSeatsError carries the exact number of seats still available so
// the caller can offer a corrected quantity. Matches ErrNotEnoughSeats
// under errors.Is.
type NotEnoughSeatsError struct {
	Available int
}

func (e *NotEnoughSeatsError) Error() string {
	return fmt.Sprintf("only %d seats available for this event", e.Available)
}

func (e *NotEnoughSeatsError) Is(target error) bool {
	return target == ErrNotEnoughSeats
}
