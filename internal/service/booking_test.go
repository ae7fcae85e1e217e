package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Ayushkukreti23/EventEase/internal/domain"
	"github.com/Ayushkukreti23/EventEase/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

var testNow = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

func newBookingService(t *testing.T) (*BookingService, *mocks.MockBookingRepo, *mocks.MockEventRepo, *mocks.MockBookingNotifier) {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)

	svc := NewBookingService(bookingRepo, eventRepo, notifier, newTestLogger(t))
	svc.now = func() time.Time { return testNow }

	return svc, bookingRepo, eventRepo, notifier
}

func TestBookingService_Book_Success(t *testing.T) {
	svc, bookingRepo, eventRepo, notifier := newBookingService(t)

	event := &domain.Event{
		ID:       "e1",
		Title:    "Go Conference",
		Date:     testNow.AddDate(0, 0, 7),
		Price:    50,
		Capacity: 100,
	}
	ident := domain.Identity{UserID: "u1", Role: domain.RoleUser}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, event).Return()

	d, err := svc.Book(context.Background(), ident, "e1", 2)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, d.Booking.Status)
	assert.Equal(t, "e1", d.Booking.EventID)
	assert.Equal(t, "u1", d.Booking.UserID)
	assert.Equal(t, 2, d.Booking.Seats)
	assert.Equal(t, float64(100), d.Booking.TotalAmount)
	assert.NotEmpty(t, d.Booking.ID)
	assert.Equal(t, "Go Conference", d.Event.Title)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_SeatsOutOfRange(t *testing.T) {
	svc, _, _, _ := newBookingService(t)

	ident := domain.Identity{UserID: "u1", Role: domain.RoleUser}

	for _, seats := range []int{0, -1, 3} {
		_, err := svc.Book(context.Background(), ident, "e1", seats)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestBookingService_Book_AdminForbidden(t *testing.T) {
	svc, _, _, _ := newBookingService(t)

	ident := domain.Identity{UserID: "a1", Role: domain.RoleAdmin}

	_, err := svc.Book(context.Background(), ident, "e1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Book_EventNotFound(t *testing.T) {
	svc, _, eventRepo, _ := newBookingService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Book(context.Background(), domain.Identity{UserID: "u1"}, "missing", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestBookingService_Book_PastEvent(t *testing.T) {
	svc, _, eventRepo, _ := newBookingService(t)

	event := &domain.Event{ID: "e1", Date: testNow.AddDate(0, 0, -1)}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Book(context.Background(), domain.Identity{UserID: "u1"}, "e1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPastEvent)
}

func TestBookingService_Book_TodayAllowed(t *testing.T) {
	svc, bookingRepo, eventRepo, notifier := newBookingService(t)

	// Same calendar day, earlier clock time: still bookable.
	event := &domain.Event{ID: "e1", Date: testNow.Add(-6 * time.Hour), Price: 10}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, event).Return()

	d, err := svc.Book(context.Background(), domain.Identity{UserID: "u1"}, "e1", 1)

	require.NoError(t, err)
	assert.Equal(t, float64(10), d.Booking.TotalAmount)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Book_AlreadyBooked(t *testing.T) {
	svc, bookingRepo, eventRepo, _ := newBookingService(t)

	event := &domain.Event{ID: "e1", Date: testNow.AddDate(0, 0, 1)}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyBooked)

	_, err := svc.Book(context.Background(), domain.Identity{UserID: "u1"}, "e1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
}

func TestBookingService_Book_NotEnoughSeats(t *testing.T) {
	svc, bookingRepo, eventRepo, _ := newBookingService(t)

	event := &domain.Event{ID: "e1", Date: testNow.AddDate(0, 0, 1), Capacity: 10}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Return(&domain.NotEnoughSeatsError{Available: 1})

	_, err := svc.Book(context.Background(), domain.Identity{UserID: "u1"}, "e1", 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotEnoughSeats)

	var seatsErr *domain.NotEnoughSeatsError
	require.ErrorAs(t, err, &seatsErr)
	assert.Equal(t, 1, seatsErr.Available)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	svc, bookingRepo, _, notifier := newBookingService(t)

	details := &domain.BookingDetails{
		Booking: domain.Booking{
			ID:      "b1",
			EventID: "e1",
			UserID:  "u1",
			Status:  domain.BookingStatusConfirmed,
		},
		Event: domain.Event{ID: "e1", Date: testNow.AddDate(0, 0, 3)},
	}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(details, nil)
	bookingRepo.EXPECT().Cancel(mock.Anything, "b1", mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, mock.Anything, mock.Anything).Return()

	d, err := svc.Cancel(context.Background(), domain.Identity{UserID: "u1"}, "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, d.Booking.Status)
	require.NotNil(t, d.Booking.CancelledAt)
	assert.Equal(t, testNow, *d.Booking.CancelledAt)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_NotOwner(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t)

	details := &domain.BookingDetails{
		Booking: domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusConfirmed},
		Event:   domain.Event{ID: "e1", Date: testNow.AddDate(0, 0, 3)},
	}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(details, nil)

	_, err := svc.Cancel(context.Background(), domain.Identity{UserID: "u2"}, "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Cancel_EventStarted(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t)

	// Event day has arrived: cancellation window is closed.
	details := &domain.BookingDetails{
		Booking: domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusConfirmed},
		Event:   domain.Event{ID: "e1", Date: testNow},
	}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(details, nil)

	_, err := svc.Cancel(context.Background(), domain.Identity{UserID: "u1"}, "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventStarted)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t)

	cancelledAt := testNow.Add(-time.Hour)
	details := &domain.BookingDetails{
		Booking: domain.Booking{
			ID:          "b1",
			UserID:      "u1",
			Status:      domain.BookingStatusCancelled,
			CancelledAt: &cancelledAt,
		},
		Event: domain.Event{ID: "e1", Date: testNow.AddDate(0, 0, 3)},
	}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(details, nil)

	_, err := svc.Cancel(context.Background(), domain.Identity{UserID: "u1"}, "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	_, err := svc.Cancel(context.Background(), domain.Identity{UserID: "u1"}, "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_ListByUser_Success(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t)

	bookings := []*domain.BookingDetails{
		{Booking: domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusConfirmed}},
	}
	bookingRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(bookings, nil)

	result, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestBookingService_ListAll_PassesFilter(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t)

	filter := domain.BookingFilter{EventID: "e1", Status: domain.BookingStatusCancelled}
	bookings := []*domain.BookingDetails{
		{Booking: domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusCancelled}},
	}
	bookingRepo.EXPECT().List(mock.Anything, filter).Return(bookings, nil)

	result, err := svc.ListAll(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestBookingService_Attendees_Success(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t)

	attendees := []*domain.BookingDetails{
		{Booking: domain.Booking{ID: "b1", UserID: "u1", Seats: 2}},
		{Booking: domain.Booking{ID: "b2", UserID: "u2", Seats: 1}},
	}
	bookingRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(attendees, nil)

	result, err := svc.Attendees(context.Background(), "e1")

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestBookingService_BookedSeats_RepoError(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t)

	bookingRepo.EXPECT().BookedSeats(mock.Anything, "e1").Return(0, errors.New("db error"))

	_, err := svc.BookedSeats(context.Background(), "e1")

	require.Error(t, err)
}
