package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Ayushkukreti23/EventEase/internal/domain"
	"github.com/Ayushkukreti23/EventEase/internal/handler/dto"
	"github.com/Ayushkukreti23/EventEase/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error)
}

type BookingSvc interface {
	Book(ctx context.Context, ident domain.Identity, eventID string, seats int) (*domain.BookingDetails, error)
	Cancel(ctx context.Context, ident domain.Identity, bookingID string) (*domain.BookingDetails, error)
	ListAll(ctx context.Context, f domain.BookingFilter) ([]*domain.BookingDetails, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.BookingDetails, error)
	Attendees(ctx context.Context, eventID string) ([]*domain.BookingDetails, error)
	BookedSeats(ctx context.Context, eventID string) (int, error)
}

type StatsSvc interface {
	PlatformStats(ctx context.Context) (*domain.BookingStats, error)
	UserStats(ctx context.Context, userID string) (*domain.BookingStats, error)
}

type Handler struct {
	eventService   EventSvc
	bookingService BookingSvc
	statsService   StatsSvc
}

func NewHandler(eventService EventSvc, bookingService BookingSvc, statsService StatsSvc) *Handler {
	return &Handler{
		eventService:   eventService,
		bookingService: bookingService,
		statsService:   statsService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Location:     req.Location,
		LocationType: req.LocationType,
		Date:         date,
		Time:         req.Time,
		Capacity:     req.Capacity,
		Price:        *req.Price,
		Image:        req.Image,
		CreatedBy:    ident.UserID,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event, time.Now()))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateEventInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Location:     req.Location,
		LocationType: req.LocationType,
		Time:         req.Time,
		Price:        req.Price,
		Image:        req.Image,
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event, time.Now()))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details, time.Now()))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	filter := domain.EventFilter{
		Search:       c.Query("search"),
		Category:     c.Query("category"),
		LocationType: c.Query("location_type"),
		Status:       domain.EventStatus(c.Query("status")),
	}
	if from := c.Query("start_date"); from != "" {
		d, err := time.Parse(dateLayout, from)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_date"})
			return
		}
		filter.DateFrom = &d
	}
	if to := c.Query("end_date"); to != "" {
		d, err := time.Parse(dateLayout, to)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_date"})
			return
		}
		filter.DateTo = &d
	}

	events, err := h.eventService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	now := time.Now()
	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e, now))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListCategories(c *ginext.Context) {
	c.JSON(http.StatusOK, domain.Categories)
}

func (h *Handler) GetAvailability(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	booked, err := h.bookingService.BookedSeats(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{BookedSeats: booked})
}

func (h *Handler) GetAttendees(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	bookings, err := h.bookingService.Attendees(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AttendeeResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.AttendeeResponse{
			UserID:      b.Booking.UserID,
			Seats:       b.Booking.Seats,
			BookingDate: b.Booking.BookingDate.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), ident, req.EventID, req.Seats)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingDetailsResponse(booking, time.Now()))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), ident, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingDetailsResponse(booking, time.Now()))
}

func (h *Handler) GetAllBookings(c *ginext.Context) {
	f := domain.BookingFilter{
		Status: domain.BookingStatus(c.Query("status")),
	}
	if eventID := c.Query("event_id"); eventID != "" {
		if _, err := uuid.Parse(eventID); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
			return
		}
		f.EventID = eventID
	}

	bookings, err := h.bookingService.ListAll(c.Request.Context(), f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	now := time.Now()
	resp := make([]dto.BookingDetailsResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingDetailsResponse(b, now))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetMyBookings(c *ginext.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), ident.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	now := time.Now()
	resp := make([]dto.BookingDetailsResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingDetailsResponse(b, now))
	}

	c.JSON(http.StatusOK, resp)
}

// Stats

func (h *Handler) GetMyStats(c *ginext.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unauthorized"})
		return
	}

	stats, err := h.statsService.UserStats(c.Request.Context(), ident.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserStatsResponse(stats))
}

func (h *Handler) GetPlatformStats(c *ginext.Context) {
	stats, err := h.statsService.PlatformStats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPlatformStatsResponse(stats))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var seatsErr *domain.NotEnoughSeatsError
	if errors.As(err, &seatsErr) {
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:          seatsErr.Error(),
			AvailableSeats: &seatsErr.Available,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPastEvent),
		errors.Is(err, domain.ErrEventStarted),
		errors.Is(err, domain.ErrAlreadyBooked),
		errors.Is(err, domain.ErrAlreadyCancelled),
		errors.Is(err, domain.ErrNotEnoughSeats),
		errors.Is(err, domain.ErrEventHasBookings):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
