package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Ayushkukreti23/EventEase/internal/domain"
	"github.com/Ayushkukreti23/EventEase/internal/handler/dto"
	hmocks "github.com/Ayushkukreti23/EventEase/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

// asIdentity stands in for the auth middleware in tests.
func asIdentity(ident domain.Identity) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set("identity", ident)
		c.Next()
	}
}

func setupRouter(t *testing.T, ident domain.Identity) (*hmocks.MockEventSvc, *hmocks.MockBookingSvc, *hmocks.MockStatsSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	statsSvc := hmocks.NewMockStatsSvc(t)

	h := NewHandler(eventSvc, bookingSvc, statsSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	api.Use(asIdentity(ident))
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/categories/list", h.ListCategories)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.GET("/events/:id/availability", h.GetAvailability)
		api.GET("/events/:id/attendees", h.GetAttendees)
		api.GET("/bookings", h.GetAllBookings)
		api.POST("/bookings", h.CreateBooking)
		api.PUT("/bookings/:id/cancel", h.CancelBooking)
		api.GET("/bookings/my", h.GetMyBookings)
		api.GET("/bookings/my/stats", h.GetMyStats)
		api.GET("/bookings/stats", h.GetPlatformStats)
	}

	return eventSvc, bookingSvc, statsSvc, r
}

func userIdentity() domain.Identity {
	return domain.Identity{UserID: uuid.New().String(), Name: "alice", Role: domain.RoleUser}
}

func adminIdentity() domain.Identity {
	return domain.Identity{UserID: uuid.New().String(), Name: "root", Role: domain.RoleAdmin}
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	admin := adminIdentity()
	eventSvc, _, _, r := setupRouter(t, admin)

	event := &domain.Event{
		ID:        uuid.New().String(),
		Code:      "EVT-SEP2026-A1B",
		Title:     "Go Conference",
		Category:  "Tech",
		Date:      time.Now().AddDate(0, 0, 14),
		Capacity:  100,
		Price:     50,
		CreatedAt: time.Now(),
	}

	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(event, nil)

	price := 50.0
	body, _ := json.Marshal(dto.CreateEventRequest{
		Title:        "Go Conference",
		Description:  "A full day of talks about Go.",
		Category:     "Tech",
		Location:     "Berlin",
		LocationType: "In-Person",
		Date:         "2026-09-15",
		Time:         "10:00",
		Capacity:     100,
		Price:        &price,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Go Conference", resp.Title)
	assert.Equal(t, "EVT-SEP2026-A1B", resp.Code)
	assert.Equal(t, "Upcoming", resp.Status)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t, adminIdentity())

	body := []byte(`{"title":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t, adminIdentity())

	body := []byte(`{"title":"X","description":"Y","category":"Tech","location":"Berlin","location_type":"Online","date":"not-a-date","time":"10:00","capacity":10,"price":5}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateEvent_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t, adminIdentity())

	eventID := uuid.New().String()
	event := &domain.Event{ID: eventID, Title: "New Title", Date: time.Now().AddDate(0, 0, 7), CreatedAt: time.Now()}

	eventSvc.EXPECT().UpdateEvent(mock.Anything, eventID, mock.Anything).Return(event, nil)

	body := []byte(`{"title":"New Title"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/events/"+eventID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "New Title", resp.Title)
}

func TestHandler_UpdateEvent_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t, adminIdentity())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/events/not-a-uuid", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteEvent_HasBookings(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t, adminIdentity())

	eventID := uuid.New().String()
	eventSvc.EXPECT().DeleteEvent(mock.Anything, eventID).Return(domain.ErrEventHasBookings)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t, userIdentity())

	eventID := uuid.New().String()
	details := &domain.EventDetails{
		Event:          domain.Event{ID: eventID, Title: "Go Conference", Capacity: 100, Date: time.Now().AddDate(0, 0, 7), CreatedAt: time.Now()},
		BookedSeats:    5,
		AvailableSeats: 95,
	}

	eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 95, resp.AvailableSeats)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t, userIdentity())

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_Filters(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t, userIdentity())

	events := []*domain.Event{
		{ID: "e1", Title: "Event 1", Date: time.Now(), CreatedAt: time.Now()},
	}

	eventSvc.EXPECT().List(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, f domain.EventFilter) {
			assert.Equal(t, "conference", f.Search)
			assert.Equal(t, "Tech", f.Category)
			require.NotNil(t, f.DateFrom)
			assert.Equal(t, 2026, f.DateFrom.Year())
		}).
		Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?search=conference&category=Tech&start_date=2026-09-01", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListEvents_InvalidDateRange(t *testing.T) {
	_, _, _, r := setupRouter(t, userIdentity())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?start_date=soon", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListCategories(t *testing.T) {
	_, _, _, r := setupRouter(t, userIdentity())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/categories/list", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.Categories, resp)
}

func TestHandler_GetAvailability_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t, userIdentity())

	eventID := uuid.New().String()
	bookingSvc.EXPECT().BookedSeats(mock.Anything, eventID).Return(42, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID+"/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 42, resp.BookedSeats)
}

func TestHandler_GetAttendees_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t, adminIdentity())

	eventID := uuid.New().String()
	attendees := []*domain.BookingDetails{
		{Booking: domain.Booking{ID: "b1", UserID: "u1", Seats: 2, BookingDate: time.Now()}},
	}

	bookingSvc.EXPECT().Attendees(mock.Anything, eventID).Return(attendees, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID+"/attendees", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AttendeeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 2, resp[0].Seats)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	ident := userIdentity()
	_, bookingSvc, _, r := setupRouter(t, ident)

	eventID := uuid.New().String()
	details := &domain.BookingDetails{
		Booking: domain.Booking{
			ID:          uuid.New().String(),
			EventID:     eventID,
			UserID:      ident.UserID,
			Seats:       2,
			TotalAmount: 100,
			Status:      domain.BookingStatusConfirmed,
			BookingDate: time.Now(),
		},
		Event: domain.Event{ID: eventID, Title: "Go Conference", Date: time.Now().AddDate(0, 0, 7), CreatedAt: time.Now()},
	}

	bookingSvc.EXPECT().Book(mock.Anything, ident, eventID, 2).Return(details, nil)

	body, _ := json.Marshal(dto.BookRequest{EventID: eventID, Seats: 2})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Booking.Status)
	assert.Equal(t, float64(100), resp.Booking.TotalAmount)
}

func TestHandler_CreateBooking_SeatsOutOfRange(t *testing.T) {
	_, _, _, r := setupRouter(t, userIdentity())

	body := []byte(`{"event_id":"` + uuid.New().String() + `","seats":3}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_NotEnoughSeats(t *testing.T) {
	ident := userIdentity()
	_, bookingSvc, _, r := setupRouter(t, ident)

	eventID := uuid.New().String()
	bookingSvc.EXPECT().Book(mock.Anything, ident, eventID, 2).
		Return(nil, &domain.NotEnoughSeatsError{Available: 1})

	body, _ := json.Marshal(dto.BookRequest{EventID: eventID, Seats: 2})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.AvailableSeats)
	assert.Equal(t, 1, *resp.AvailableSeats)
}

func TestHandler_CreateBooking_AlreadyBooked(t *testing.T) {
	ident := userIdentity()
	_, bookingSvc, _, r := setupRouter(t, ident)

	eventID := uuid.New().String()
	bookingSvc.EXPECT().Book(mock.Anything, ident, eventID, 1).Return(nil, domain.ErrAlreadyBooked)

	body, _ := json.Marshal(dto.BookRequest{EventID: eventID, Seats: 1})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_AdminForbidden(t *testing.T) {
	ident := adminIdentity()
	_, bookingSvc, _, r := setupRouter(t, ident)

	eventID := uuid.New().String()
	bookingSvc.EXPECT().Book(mock.Anything, ident, eventID, 1).Return(nil, domain.ErrForbidden)

	body, _ := json.Marshal(dto.BookRequest{EventID: eventID, Seats: 1})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	ident := userIdentity()
	_, bookingSvc, _, r := setupRouter(t, ident)

	bookingID := uuid.New().String()
	cancelledAt := time.Now()
	details := &domain.BookingDetails{
		Booking: domain.Booking{
			ID:          bookingID,
			UserID:      ident.UserID,
			Status:      domain.BookingStatusCancelled,
			BookingDate: time.Now().Add(-time.Hour),
			CancelledAt: &cancelledAt,
		},
		Event: domain.Event{ID: "e1", Date: time.Now().AddDate(0, 0, 3), CreatedAt: time.Now()},
	}

	bookingSvc.EXPECT().Cancel(mock.Anything, ident, bookingID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/"+bookingID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Booking.Status)
	assert.NotNil(t, resp.Booking.CancelledAt)
}

func TestHandler_CancelBooking_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t, userIdentity())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/bad-id/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_EventStarted(t *testing.T) {
	ident := userIdentity()
	_, bookingSvc, _, r := setupRouter(t, ident)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, ident, bookingID).Return(nil, domain.ErrEventStarted)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/"+bookingID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetAllBookings_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t, adminIdentity())

	eventID := uuid.New().String()
	bookings := []*domain.BookingDetails{
		{
			Booking: domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusConfirmed, BookingDate: time.Now()},
			Event:   domain.Event{ID: eventID, Date: time.Now(), CreatedAt: time.Now()},
		},
	}

	bookingSvc.EXPECT().ListAll(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, f domain.BookingFilter) {
			assert.Equal(t, eventID, f.EventID)
			assert.Equal(t, domain.BookingStatusConfirmed, f.Status)
		}).
		Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?event_id="+eventID+"&status=confirmed", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetAllBookings_InvalidEventID(t *testing.T) {
	_, _, _, r := setupRouter(t, adminIdentity())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?event_id=not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetMyBookings_Success(t *testing.T) {
	ident := userIdentity()
	_, bookingSvc, _, r := setupRouter(t, ident)

	bookings := []*domain.BookingDetails{
		{
			Booking: domain.Booking{ID: "b1", UserID: ident.UserID, Status: domain.BookingStatusConfirmed, BookingDate: time.Now()},
			Event:   domain.Event{ID: "e1", Date: time.Now(), CreatedAt: time.Now()},
		},
	}

	bookingSvc.EXPECT().ListByUser(mock.Anything, ident.UserID).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/my", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Stats ---

func TestHandler_GetMyStats_Success(t *testing.T) {
	ident := userIdentity()
	_, _, statsSvc, r := setupRouter(t, ident)

	stats := &domain.BookingStats{Total: 3, Confirmed: 2, Cancelled: 1, TotalAmount: 150}
	statsSvc.EXPECT().UserStats(mock.Anything, ident.UserID).Return(stats, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/my/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalBookings)
	assert.Equal(t, float64(150), resp.TotalSpent)
}

func TestHandler_GetPlatformStats_Success(t *testing.T) {
	_, _, statsSvc, r := setupRouter(t, adminIdentity())

	stats := &domain.BookingStats{Total: 10, Confirmed: 8, Cancelled: 2, TotalAmount: 900}
	statsSvc.EXPECT().PlatformStats(mock.Anything).Return(stats, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PlatformStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 10, resp.TotalBookings)
	assert.Equal(t, float64(900), resp.TotalRevenue)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t, userIdentity())

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}
