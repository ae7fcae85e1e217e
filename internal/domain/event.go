package domain

import "time"

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "Upcoming"
	EventStatusOngoing   EventStatus = "Ongoing"
	EventStatusCompleted EventStatus = "Completed"
)

var Categories = []string{"Music", "Tech", "Business", "Education", "Sports", "Arts", "Other"}

var LocationTypes = []string{"Online", "In-Person"}

type Event struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Location     string    `json:"location"`
	LocationType string    `json:"location_type"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"`
	Capacity     int       `json:"capacity"`
	Price        float64   `json:"price"`
	Image        string    `json:"image"`
	CreatedBy    string    `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Status is derived from the event date at read time, never stored.
func (e *Event) Status(now time.Time) EventStatus {
	eventDay := DateOnly(e.Date)
	today := DateOnly(now)

	switch {
	case eventDay.Before(today):
		return EventStatusCompleted
	case eventDay.Equal(today):
		return EventStatusOngoing
	default:
		return EventStatusUpcoming
	}
}

// DateOnly truncates t to its calendar date in UTC. Booking eligibility
// compares dates, not instants.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type EventDetails struct {
	Event          Event `json:"event"`
	BookedSeats    int   `json:"booked_seats"`
	AvailableSeats int   `json:"available_seats"`
}

type CreateEventInput struct {
	Title        string
	Description  string
	Category     string
	Location     string
	LocationType string
	Date         time.Time
	Time         string
	Capacity     int
	Price        float64
	Image        string
	CreatedBy    string
}

// UpdateEventInput carries optional fields; nil means "leave as is".
// Capacity and code are fixed at creation and cannot be changed.
type UpdateEventInput struct {
	Title        *string
	Description  *string
	Category     *string
	Location     *string
	LocationType *string
	Date         *time.Time
	Time         *string
	Price        *float64
	Image        *string
}

type EventFilter struct {
	Search       string
	Category     string
	LocationType string
	Status       EventStatus
	DateFrom     *time.Time
	DateTo       *time.Time
}
