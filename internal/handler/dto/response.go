package dto

import (
	"time"

	"github.com/Ayushkukreti23/EventEase/internal/domain"
)

const dateLayout = "2006-01-02"

type EventResponse struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Location     string  `json:"location"`
	LocationType string  `json:"location_type"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Capacity     int     `json:"capacity"`
	Price        float64 `json:"price"`
	Image        string  `json:"image,omitempty"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

type EventDetailsResponse struct {
	Event          EventResponse `json:"event"`
	BookedSeats    int           `json:"booked_seats"`
	AvailableSeats int           `json:"available_seats"`
}

type BookingResponse struct {
	ID          string  `json:"id"`
	EventID     string  `json:"event_id"`
	UserID      string  `json:"user_id"`
	Seats       int     `json:"seats"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
	BookingDate string  `json:"booking_date"`
	CancelledAt *string `json:"cancelled_at,omitempty"`
}

type BookingDetailsResponse struct {
	Booking BookingResponse `json:"booking"`
	Event   EventResponse   `json:"event"`
}

type AttendeeResponse struct {
	UserID      string `json:"user_id"`
	Seats       int    `json:"seats"`
	BookingDate string `json:"booking_date"`
}

type AvailabilityResponse struct {
	BookedSeats int `json:"booked_seats"`
}

type PlatformStatsResponse struct {
	TotalBookings     int     `json:"total_bookings"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	CancelledBookings int     `json:"cancelled_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
}

type UserStatsResponse struct {
	TotalBookings     int     `json:"total_bookings"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	CancelledBookings int     `json:"cancelled_bookings"`
	TotalSpent        float64 `json:"total_spent"`
}

type ErrorResponse struct {
	Error          string `json:"error"`
	AvailableSeats *int   `json:"available_seats,omitempty"`
}

func ToEventResponse(e *domain.Event, now time.Time) EventResponse {
	return EventResponse{
		ID:           e.ID,
		Code:         e.Code,
		Title:        e.Title,
		Description:  e.Description,
		Category:     e.Category,
		Location:     e.Location,
		LocationType: e.LocationType,
		Date:         e.Date.Format(dateLayout),
		Time:         e.Time,
		Capacity:     e.Capacity,
		Price:        e.Price,
		Image:        e.Image,
		Status:       string(e.Status(now)),
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails, now time.Time) EventDetailsResponse {
	return EventDetailsResponse{
		Event:          ToEventResponse(&d.Event, now),
		BookedSeats:    d.BookedSeats,
		AvailableSeats: d.AvailableSeats,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:          b.ID,
		EventID:     b.EventID,
		UserID:      b.UserID,
		Seats:       b.Seats,
		TotalAmount: b.TotalAmount,
		Status:      string(b.Status),
		BookingDate: b.BookingDate.Format(time.RFC3339),
	}
	if b.CancelledAt != nil {
		s := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &s
	}

	return resp
}

func ToBookingDetailsResponse(d *domain.BookingDetails, now time.Time) BookingDetailsResponse {
	return BookingDetailsResponse{
		Booking: ToBookingResponse(&d.Booking),
		Event:   ToEventResponse(&d.Event, now),
	}
}

func ToPlatformStatsResponse(s *domain.BookingStats) PlatformStatsResponse {
	return PlatformStatsResponse{
		TotalBookings:     s.Total,
		ConfirmedBookings: s.Confirmed,
		CancelledBookings: s.Cancelled,
		TotalRevenue:      s.TotalAmount,
	}
}

func ToUserStatsResponse(s *domain.BookingStats) UserStatsResponse {
	return UserStatsResponse{
		TotalBookings:     s.Total,
		ConfirmedBookings: s.Confirmed,
		CancelledBookings: s.Cancelled,
		TotalSpent:        s.TotalAmount,
	}
}
