package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Seats per booking are capped so a single user cannot drain an event.
const (
	MinSeats = 1
	MaxSeats = 2
)

type Booking struct {
	ID          string        `json:"id"`
	EventID     string        `json:"event_id"`
	UserID      string        `json:"user_id"`
	Seats       int           `json:"seats"`
	TotalAmount float64       `json:"total_amount"`
	Status      BookingStatus `json:"status"`
	BookingDate time.Time     `json:"booking_date"`
	CancelledAt *time.Time    `json:"cancelled_at,omitempty"`
}

type BookingDetails struct {
	Booking Booking `json:"booking"`
	Event   Event   `json:"event"`
}

// BookingFilter narrows the admin listing. Zero values mean "any".
type BookingFilter struct {
	EventID string
	Status  BookingStatus
}

type BookingStats struct {
	Total       int     `json:"total"`
	Confirmed   int     `json:"confirmed"`
	Cancelled   int     `json:"cancelled"`
	TotalAmount float64 `json:"total_amount"`
}
