package repository

import (
	"context"
	"errors"

	"github.com/cinetix/movie-booking-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// seatOrder sorts labels by row letter then numeric seat, so "A2" comes
// before "A10".
const seatOrder = `left(seat_label, 1), (substring(seat_label from 2))::int`

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// CreateWithSeats inserts the booking, claims its seats and records the
// payment in a single transaction. The claim is one conditional UPDATE
// guarded by is_booked = FALSE: if it touches fewer rows than requested,
// another booking holds part of the set and the whole transaction rolls back
// without any observable effect.
func (p *PostgresBookingRepository) CreateWithSeats(
	ctx context.Context,
	booking *domain.Booking,
	payment *domain.Payment) error {

	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO bookings (reference, show_id, user_id, seat_labels, seat_count, total_amount, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at
		`

		err := tx.QueryRow(
			ctx,
			query,
			booking.Reference,
			booking.ShowID,
			booking.UserID,
			booking.SeatLabels,
			booking.SeatCount,
			booking.TotalAmount,
			booking.Status).Scan(&booking.ID, &booking.CreatedAt)

		if err != nil {
			return err
		}

		claim := `
			UPDATE seats
			SET is_booked = TRUE, booking_id = $1
			WHERE show_id = $2 AND seat_label = ANY($3) AND is_booked = FALSE
		`

		tag, err := tx.Exec(ctx, claim, booking.ID, booking.ShowID, booking.SeatLabels)
		if err != nil {
			return err
		}

		if int(tag.RowsAffected()) != len(booking.SeatLabels) {
			contested, err := contestedSeats(ctx, tx, booking)
			if err != nil {
				return err
			}

			return &domain.SeatsUnavailableError{Labels: contested}
		}

		payment.BookingID = booking.ID

		query = `
			INSERT INTO payments (booking_id, amount, method, status)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`

		return tx.QueryRow(
			ctx,
			query,
			payment.BookingID,
			payment.Amount,
			payment.Method,
			payment.Status).Scan(&payment.ID, &payment.CreatedAt)
	})
}

// contestedSeats names the requested seats held by some other booking. Seats
// the failed claim touched carry this booking's id until the rollback, so
// they are filtered out with IS DISTINCT FROM.
func contestedSeats(ctx context.Context, tx pgx.Tx, booking *domain.Booking) ([]string, error) {
	query := `
		SELECT seat_label
		FROM seats
		WHERE show_id = $1 AND seat_label = ANY($2)
			AND is_booked AND booking_id IS DISTINCT FROM $3
		ORDER BY ` + seatOrder

	rows, err := tx.Query(ctx, query, booking.ShowID, booking.SeatLabels, booking.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	labels := make([]string, 0, len(booking.SeatLabels))

	for rows.Next() {
		var label string

		if err := rows.Scan(&label); err != nil {
			return nil, err
		}

		labels = append(labels, label)
	}

	return labels, rows.Err()
}

func (p *PostgresBookingRepository) Cancel(ctx context.Context, bookingID int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var showID int
		var status domain.BookingStatus

		query := `SELECT show_id, status FROM bookings WHERE id = $1 FOR UPDATE`

		err := tx.QueryRow(ctx, query, bookingID).Scan(&showID, &status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrBookingNotFound
			}

			return err
		}

		if status == domain.BookingStatusCancelled {
			return nil
		}

		// Release only seats whose claim points at this booking: a stale or
		// repeated cancel must never free another booking's seats.
		query = `
			UPDATE seats
			SET is_booked = FALSE, booking_id = NULL
			WHERE show_id = $1 AND booking_id = $2
		`

		_, err = tx.Exec(ctx, query, showID, bookingID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`, domain.BookingStatusCancelled, bookingID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `UPDATE payments SET status = $1 WHERE booking_id = $2`, domain.PaymentStatusCancelled, bookingID)

		return err
	})
}

func (p *PostgresBookingRepository) ConfirmPayment(ctx context.Context, bookingID int) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var status domain.BookingStatus

		query := `SELECT status FROM bookings WHERE id = $1 FOR UPDATE`

		err := tx.QueryRow(ctx, query, bookingID).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrBookingNotFound
			}

			return err
		}

		switch status {
		case domain.BookingStatusConfirmed:
			return nil
		case domain.BookingStatusCancelled:
			return domain.ErrEditConflict
		}

		query = `
			UPDATE payments
			SET status = $1, payment_date = NOW()
			WHERE booking_id = $2
		`

		_, err = tx.Exec(ctx, query, domain.PaymentStatusCompleted, bookingID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`, domain.BookingStatusConfirmed, bookingID)

		return err
	})
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	query := `
		SELECT id, reference, show_id, user_id, seat_labels, seat_count, total_amount, status, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking domain.Booking

	err := p.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.Reference,
		&booking.ShowID,
		&booking.UserID,
		&booking.SeatLabels,
		&booking.SeatCount,
		&booking.TotalAmount,
		&booking.Status,
		&booking.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}

		return nil, err
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) GetSummariesByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			b.id,
			b.reference,
			m.title,
			t.name,
			sc.screen_number,
			s.start_time,
			b.seat_labels,
			b.total_amount,
			b.status,
			b.created_at
		FROM bookings b
		JOIN shows s ON b.show_id = s.id
		JOIN movies m ON s.movie_id = m.id
		JOIN screens sc ON s.screen_id = sc.id
		JOIN theaters t ON sc.theater_id = t.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	bookings := make([]domain.BookingSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var booking domain.BookingSummary

		err := rows.Scan(
			&totalRecords,
			&booking.BookingID,
			&booking.Reference,
			&booking.MovieTitle,
			&booking.TheaterName,
			&booking.ScreenNumber,
			&booking.StartTime,
			&booking.SeatLabels,
			&booking.TotalAmount,
			&booking.Status,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return bookings, metadata, nil
}
