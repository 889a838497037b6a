package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Praful-John2409/BookTable/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

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

// Reserve atomically assigns tables to b and persists it as active. The
// whole check-and-commit runs in one transaction holding a row lock on the
// restaurant, so concurrent reservations for the same restaurant serialize
// and each one observes the assignments committed before it. On success
// b.TableIDs holds the assigned tables.
func (r *BookingRepository) Reserve(ctx context.Context, b *domain.Booking, preferred []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Serialization point: one reserve per restaurant at a time.
	var rid string
	lockQuery := `SELECT id FROM restaurants WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.RestaurantID).Scan(&rid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRestaurantNotFound
		}
		return fmt.Errorf("lock restaurant: %w", err)
	}

	start, end := domain.ConflictWindow(b.BookingTime)

	occupiedQuery := `SELECT DISTINCT bt.table_id
					  FROM booking_tables bt
					  JOIN bookings bk ON bk.id = bt.booking_id
					  WHERE bk.restaurant_id = $1
					    AND bk.status = $2
					    AND bk.booking_time BETWEEN $3 AND $4`
	rows, err := tx.QueryContext(ctx, occupiedQuery, b.RestaurantID, domain.BookingStatusActive, start, end)
	if err != nil {
		return fmt.Errorf("occupied tables: %w", err)
	}
	occupied := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scan occupied table: %w", err)
		}
		occupied[id] = struct{}{}
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return fmt.Errorf("occupied tables: %w", err)
	}

	tablesQuery := `SELECT id, restaurant_id, seats, created_at
					FROM tables
					WHERE restaurant_id = $1
					ORDER BY seats, id`
	rows, err = tx.QueryContext(ctx, tablesQuery, b.RestaurantID)
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}
	var tables []domain.Table
	for rows.Next() {
		var t domain.Table
		if err = rows.Scan(&t.ID, &t.RestaurantID, &t.Seats, &t.CreatedAt); err != nil {
			rows.Close()
			return fmt.Errorf("scan table: %w", err)
		}
		tables = append(tables, t)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return fmt.Errorf("list tables: %w", err)
	}

	free := domain.FreeTables(tables, occupied)

	var chosen []domain.Table
	if len(preferred) > 0 {
		chosen, err = domain.SelectPreferred(free, preferred, b.PartySize)
		if err != nil {
			return err
		}
	} else {
		fit := domain.FitTables(free, b.PartySize)
		if len(fit) == 0 {
			return domain.ErrNoAvailableTables
		}
		chosen = fit[:1]
	}

	insertBooking := `INSERT INTO bookings
			(id, restaurant_id, party_size, booking_time, booker_email, booker_name,
			 booker_phone, special_requests, status, reminder_sent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, FALSE, $10, $11)`
	_, err = tx.ExecContext(
		ctx, insertBooking, b.ID, b.RestaurantID, b.PartySize, b.BookingTime,
		b.BookerEmail, b.BookerName, b.BookerPhone, b.SpecialRequests,
		b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	insertAssignment := `INSERT INTO booking_tables (booking_id, table_id, created_at)
						 VALUES ($1, $2, $3)`
	tableIDs := make([]string, 0, len(chosen))
	for _, t := range chosen {
		if _, err = tx.ExecContext(ctx, insertAssignment, b.ID, t.ID, b.CreatedAt); err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return fmt.Errorf("%w: table %s", domain.ErrTableUnavailable, t.ID)
			}
			return fmt.Errorf("insert assignment: %w", err)
		}
		tableIDs = append(tableIDs, t.ID)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit reserve: %w", err)
	}
	b.TableIDs = tableIDs
	return nil
}

// Release cancels the booking and deletes its table assignments. Releasing
// an already-cancelled booking is a no-op success so callers can retry.
func (r *BookingRepository) Release(ctx context.Context, bookingID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3`
	res, err := tx.ExecContext(ctx, query, bookingID, domain.BookingStatusCancelled, domain.BookingStatusActive)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if affected == 0 {
		var status string
		if err = tx.QueryRowContext(ctx, `SELECT status FROM bookings WHERE id = $1`, bookingID).Scan(&status); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrBookingNotFound
			}
			return fmt.Errorf("check booking: %w", err)
		}
		// Already cancelled; assignments are gone.
		return nil
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM booking_tables WHERE booking_id = $1`, bookingID); err != nil {
		return fmt.Errorf("delete assignments: %w", err)
	}

	return tx.Commit()
}

const bookingColumns = `b.id, b.restaurant_id, b.party_size, b.booking_time,
		b.booker_email, b.booker_name, b.booker_phone, b.special_requests,
		b.status, b.reminder_sent, b.created_at, b.updated_at,
		COALESCE(array_agg(bt.table_id ORDER BY bt.table_id)
			FILTER (WHERE bt.table_id IS NOT NULL), '{}')`

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.RestaurantID, &b.PartySize, &b.BookingTime,
		&b.BookerEmail, &b.BookerName, &b.BookerPhone, &b.SpecialRequests,
		&b.Status, &b.ReminderSent, &b.CreatedAt, &b.UpdatedAt,
		pq.Array(&b.TableIDs),
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  LEFT JOIN booking_tables bt ON bt.booking_id = b.id
			  WHERE b.id = $1
			  GROUP BY b.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}
	return b, nil
}

func (r *BookingRepository) ListByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  LEFT JOIN booking_tables bt ON bt.booking_id = b.id
			  WHERE b.booker_email = $1
			  GROUP BY b.id
			  ORDER BY b.booking_time DESC`

	return r.listBookings(ctx, query, email)
}

func (r *BookingRepository) ListActiveByRestaurant(ctx context.Context, restaurantID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  LEFT JOIN booking_tables bt ON bt.booking_id = b.id
			  WHERE b.restaurant_id = $1 AND b.status = $2
			  GROUP BY b.id
			  ORDER BY b.booking_time`

	return r.listBookings(ctx, query, restaurantID, domain.BookingStatusActive)
}

func (r *BookingRepository) listBookings(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// OccupiedTables is the advisory read used by the availability resolver:
// tables held by an active booking whose time falls inside [from, to].
func (r *BookingRepository) OccupiedTables(ctx context.Context, restaurantID string, from, to time.Time) ([]string, error) {
	query := `SELECT DISTINCT bt.table_id
			  FROM booking_tables bt
			  JOIN bookings bk ON bk.id = bt.booking_id
			  WHERE bk.restaurant_id = $1
			    AND bk.status = $2
			    AND bk.booking_time BETWEEN $3 AND $4`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, restaurantID, domain.BookingStatusActive, from, to)
	if err != nil {
		return nil, fmt.Errorf("occupied tables: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan occupied table: %w", err)
		}
		res = append(res, id)
	}

	return res, rows.Err()
}

// ClaimDueReminders atomically flags and returns active bookings starting
// within the lead window that have not been reminded yet.
func (r *BookingRepository) ClaimDueReminders(ctx context.Context, lead time.Duration) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET reminder_sent = TRUE, updated_at = now()
			  WHERE status = $1
			    AND reminder_sent = FALSE
			    AND booking_time BETWEEN now() AND now() + make_interval(secs => $2)
			  RETURNING id, restaurant_id, party_size, booking_time,
			            booker_email, booker_name, booker_phone, special_requests,
			            status, reminder_sent, created_at, updated_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.BookingStatusActive, lead.Seconds())
	if err != nil {
		return nil, fmt.Errorf("claim reminders: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.RestaurantID, &b.PartySize, &b.BookingTime,
			&b.BookerEmail, &b.BookerName, &b.BookerPhone, &b.SpecialRequests,
			&b.Status, &b.ReminderSent, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
