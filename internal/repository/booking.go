package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/Ayushkukreti23/EventEase/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `b.id, b.event_id, b.user_id, b.seats, b.total_amount, b.status, b.booking_date, b.cancelled_at`

const eventJoinColumns = `e.id, e.code, e.title, e.description, e.category, e.location, e.location_type,
		e.date, e.start_time, e.capacity, e.price, e.image, e.created_by, e.created_at, e.updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create runs the capacity check and the insert in one transaction holding
// a row lock on the event, so concurrent bookings for the same event
// serialize and the capacity invariant holds.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var capacity int
	capQuery := `SELECT capacity FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, capQuery, b.EventID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("get capacity: %w", err)
	}

	var exists bool
	dupQuery := `SELECT EXISTS (
				 	SELECT 1 FROM bookings
				 	WHERE event_id = $1 AND user_id = $2 AND status = $3)`
	if err = tx.QueryRowContext(
		ctx, dupQuery, b.EventID, b.UserID, domain.BookingStatusConfirmed,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check duplicate: %w", err)
	}
	if exists {
		return domain.ErrAlreadyBooked
	}

	var booked int
	seatsQuery := `SELECT COALESCE(SUM(seats), 0) FROM bookings
				   WHERE event_id = $1 AND status = $2`
	if err = tx.QueryRowContext(
		ctx, seatsQuery, b.EventID, domain.BookingStatusConfirmed,
	).Scan(&booked); err != nil {
		return fmt.Errorf("sum booked seats: %w", err)
	}

	if b.Seats > capacity-booked {
		return &domain.NotEnoughSeatsError{Available: capacity - booked}
	}

	query := `INSERT INTO bookings (id, event_id, user_id, seats, total_amount, status, booking_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.EventID, b.UserID,
		b.Seats, b.TotalAmount, b.Status, b.BookingDate,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.BookingDetails, error) {
	query := `SELECT ` + bookingColumns + `, ` + eventJoinColumns + `
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id
			  WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	d, err := scanBookingDetails(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return d, nil
}

func (r *BookingRepository) Cancel(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE bookings
			  SET status = $2, cancelled_at = $3
			  WHERE id = $1 AND status = $4`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query, id,
		domain.BookingStatusCancelled, at, domain.BookingStatusConfirmed,
	)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel rows affected: %w", err)
	}
	if rows == 0 {
		// Either the booking vanished or a concurrent cancel won.
		var status string
		checkQuery := `SELECT status FROM bookings WHERE id = $1`
		row, qerr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if qerr != nil {
			return fmt.Errorf("check booking: %w", qerr)
		}
		if scanErr := row.Scan(&status); scanErr != nil {
			return domain.ErrBookingNotFound
		}
		return domain.ErrAlreadyCancelled
	}

	return nil
}

func (r *BookingRepository) List(ctx context.Context, f domain.BookingFilter) ([]*domain.BookingDetails, error) {
	query := `SELECT ` + bookingColumns + `, ` + eventJoinColumns + `
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id`

	var conds []string
	var args []any
	if f.EventID != "" {
		args = append(args, f.EventID)
		conds = append(conds, fmt.Sprintf("b.event_id = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("b.status = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY b.booking_date DESC"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookingDetails(rows)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.BookingDetails, error) {
	query := `SELECT ` + bookingColumns + `, ` + eventJoinColumns + `
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id
			  WHERE b.user_id = $1
			  ORDER BY b.booking_date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	return collectBookingDetails(rows)
}

func (r *BookingRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.BookingDetails, error) {
	query := `SELECT ` + bookingColumns + `, ` + eventJoinColumns + `
			  FROM bookings b
			  JOIN events e ON e.id = b.event_id
			  WHERE b.event_id = $1 AND b.status = $2
			  ORDER BY b.booking_date ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("list bookings by event: %w", err)
	}
	defer rows.Close()

	return collectBookingDetails(rows)
}

func (r *BookingRepository) BookedSeats(ctx context.Context, eventID string) (int, error) {
	query := `SELECT COALESCE(SUM(seats), 0) FROM bookings
			  WHERE event_id = $1 AND status = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, domain.BookingStatusConfirmed)
	if err != nil {
		return 0, fmt.Errorf("booked seats: %w", err)
	}

	var booked int
	if err = row.Scan(&booked); err != nil {
		return 0, fmt.Errorf("scan booked seats: %w", err)
	}

	return booked, nil
}

func (r *BookingRepository) Stats(ctx context.Context) (*domain.BookingStats, error) {
	query := `SELECT COUNT(*),
				     COUNT(*) FILTER (WHERE status = $1),
				     COUNT(*) FILTER (WHERE status = $2),
				     COALESCE(SUM(total_amount) FILTER (WHERE status = $1), 0)
			  FROM bookings`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusConfirmed, domain.BookingStatusCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("booking stats: %w", err)
	}

	var s domain.BookingStats
	if err = row.Scan(&s.Total, &s.Confirmed, &s.Cancelled, &s.TotalAmount); err != nil {
		return nil, fmt.Errorf("scan booking stats: %w", err)
	}

	return &s, nil
}

func (r *BookingRepository) StatsByUser(ctx context.Context, userID string) (*domain.BookingStats, error) {
	query := `SELECT COUNT(*),
				     COUNT(*) FILTER (WHERE status = $2),
				     COUNT(*) FILTER (WHERE status = $3),
				     COALESCE(SUM(total_amount) FILTER (WHERE status = $2), 0)
			  FROM bookings
			  WHERE user_id = $1`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, userID,
		domain.BookingStatusConfirmed, domain.BookingStatusCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("user booking stats: %w", err)
	}

	var s domain.BookingStats
	if err = row.Scan(&s.Total, &s.Confirmed, &s.Cancelled, &s.TotalAmount); err != nil {
		return nil, fmt.Errorf("scan user booking stats: %w", err)
	}

	return &s, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingDetails(row rowScanner) (*domain.BookingDetails, error) {
	var d domain.BookingDetails
	var cancelledAt sql.NullTime

	err := row.Scan(
		&d.Booking.ID, &d.Booking.EventID, &d.Booking.UserID,
		&d.Booking.Seats, &d.Booking.TotalAmount, &d.Booking.Status,
		&d.Booking.BookingDate, &cancelledAt,
		&d.Event.ID, &d.Event.Code, &d.Event.Title, &d.Event.Description,
		&d.Event.Category, &d.Event.Location, &d.Event.LocationType,
		&d.Event.Date, &d.Event.Time, &d.Event.Capacity, &d.Event.Price,
		&d.Event.Image, &d.Event.CreatedBy, &d.Event.CreatedAt, &d.Event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		t := cancelledAt.Time
		d.Booking.CancelledAt = &t
	}

	return &d, nil
}

func collectBookingDetails(rows *sql.Rows) ([]*domain.BookingDetails, error) {
	var res []*domain.BookingDetails
	for rows.Next() {
		d, err := scanBookingDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking details: %w", err)
		}
		res = append(res, d)
	}

	return res, rows.Err()
}
