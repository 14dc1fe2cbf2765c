package repository

import (
	"context"

	"github.com/cinetix/movie-booking-system/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSeatRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatRepository(db *pgxpool.Pool) *PostgresSeatRepository {
	return &PostgresSeatRepository{
		db: db,
	}
}

func (p *PostgresSeatRepository) GetByShow(ctx context.Context, showID int) ([]domain.SeatStatus, error) {
	query := `
		SELECT seat_label, is_booked
		FROM seats
		WHERE show_id = $1
		ORDER BY ` + seatOrder

	rows, err := p.db.Query(ctx, query, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.SeatStatus, 0)

	for rows.Next() {
		var seat domain.SeatStatus

		err = rows.Scan(&seat.Label, &seat.Booked)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

// CreateForShow provisions one unbooked seat per label. The conflict target
// (show_id, seat_label) makes repeated initialization a no-op.
func (p *PostgresSeatRepository) CreateForShow(ctx context.Context, showID int, labels []string) error {
	query := `
		INSERT INTO seats (show_id, seat_label)
		SELECT $1, unnest($2::text[])
		ON CONFLICT (show_id, seat_label) DO NOTHING
	`

	_, err := p.db.Exec(ctx, query, showID, labels)

	return err
}
