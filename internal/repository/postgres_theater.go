package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cinetix/movie-booking-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresTheaterRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheaterRepository(db *pgxpool.Pool) *PostgresTheaterRepository {
	return &PostgresTheaterRepository{
		db: db,
	}
}

func (p *PostgresTheaterRepository) GetAll(ctx context.Context) ([]domain.Theater, error) {
	query := `
		SELECT
			t.id,
			t.name,
			t.city,
			t.address,
			COALESCE(jsonb_agg(
				jsonb_build_object(
					'id', sc.id,
					'theaterId', sc.theater_id,
					'number', sc.screen_number,
					'totalSeats', sc.total_seats
				) ORDER BY sc.screen_number
			) FILTER (WHERE sc.id IS NOT NULL), '[]') AS screens
		FROM theaters t
		LEFT JOIN screens sc ON sc.theater_id = t.id
		GROUP BY t.id, t.name, t.city, t.address
		ORDER BY t.name
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	theaters := make([]domain.Theater, 0)

	for rows.Next() {
		var theater domain.Theater
		var screensJson json.RawMessage

		err := rows.Scan(
			&theater.ID,
			&theater.Name,
			&theater.City,
			&theater.Address,
			&screensJson,
		)
		if err != nil {
			return nil, err
		}

		if len(screensJson) > 0 {
			if err := json.Unmarshal(screensJson, &theater.Screens); err != nil {
				return nil, err
			}
		}

		theaters = append(theaters, theater)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return theaters, nil
}

func (p *PostgresTheaterRepository) GetScreenById(ctx context.Context, id int) (*domain.Screen, error) {
	query := `
		SELECT id, theater_id, screen_number, total_seats
		FROM screens
		WHERE id = $1
	`

	var screen domain.Screen

	err := p.db.QueryRow(ctx, query, id).Scan(
		&screen.ID,
		&screen.TheaterID,
		&screen.Number,
		&screen.TotalSeats,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &screen, nil
}
