package repository

import (
	"context"
	"errors"

	"github.com/cinetix/movie-booking-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

func (p *PostgresShowRepository) GetById(ctx context.Context, id int) (*domain.Show, error) {
	query := `
		SELECT id, movie_id, screen_id, start_time, price, created_at
		FROM shows
		WHERE id = $1
	`

	var show domain.Show

	err := p.db.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&show.MovieID,
		&show.ScreenID,
		&show.StartTime,
		&show.Price,
		&show.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &show, nil
}

func (p *PostgresShowRepository) GetUpcomingByMovie(ctx context.Context, movieID int) ([]domain.ShowSummary, error) {
	query := `
		SELECT
			s.id,
			m.title,
			t.name,
			sc.screen_number,
			s.start_time,
			s.price,
			COUNT(se.*) FILTER (WHERE NOT se.is_booked) AS available_seats
		FROM shows s
		JOIN movies m ON s.movie_id = m.id
		JOIN screens sc ON s.screen_id = sc.id
		JOIN theaters t ON sc.theater_id = t.id
		LEFT JOIN seats se ON se.show_id = s.id
		WHERE s.movie_id = $1 AND s.start_time >= NOW()
		GROUP BY s.id, m.title, t.name, sc.screen_number, s.start_time, s.price
		ORDER BY s.start_time
	`

	rows, err := p.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := make([]domain.ShowSummary, 0)

	for rows.Next() {
		var show domain.ShowSummary

		err := rows.Scan(
			&show.ShowID,
			&show.MovieTitle,
			&show.TheaterName,
			&show.ScreenNumber,
			&show.StartTime,
			&show.Price,
			&show.AvailableSeats,
		)
		if err != nil {
			return nil, err
		}

		shows = append(shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shows, nil
}

func (p *PostgresShowRepository) Create(ctx context.Context, show *domain.Show) error {
	query := `
		INSERT INTO shows (movie_id, screen_id, start_time, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return p.db.QueryRow(
		ctx,
		query,
		show.MovieID,
		show.ScreenID,
		show.StartTime,
		show.Price).Scan(&show.ID, &show.CreatedAt)
}
