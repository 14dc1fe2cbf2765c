package repository

import (
	"context"

	"github.com/cinetix/movie-booking-system/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresReportRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReportRepository(db *pgxpool.Pool) *PostgresReportRepository {
	return &PostgresReportRepository{
		db: db,
	}
}

func (p *PostgresReportRepository) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM movies),
			(SELECT COUNT(*) FROM shows),
			(SELECT COUNT(*) FROM bookings),
			(SELECT COALESCE(SUM(total_amount), 0) FROM bookings WHERE status = 'confirmed')
	`

	var stats domain.DashboardStats

	err := p.db.QueryRow(ctx, query).Scan(
		&stats.TotalMovies,
		&stats.TotalShows,
		&stats.TotalBookings,
		&stats.TotalRevenue,
	)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func (p *PostgresReportRepository) MovieRevenue(ctx context.Context, movieID int) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(b.total_amount), 0)
		FROM bookings b
		JOIN shows s ON b.show_id = s.id
		WHERE s.movie_id = $1 AND b.status = 'confirmed'
	`

	var revenue decimal.Decimal

	err := p.db.QueryRow(ctx, query, movieID).Scan(&revenue)
	if err != nil {
		return decimal.Zero, err
	}

	return revenue, nil
}
