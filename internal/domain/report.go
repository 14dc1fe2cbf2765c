package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardStats are the admin dashboard counters. TotalRevenue sums the
// amounts of confirmed bookings only.
type DashboardStats struct {
	TotalMovies   int
	TotalShows    int
	TotalBookings int
	TotalRevenue  decimal.Decimal
}

type ReportRepository interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	MovieRevenue(ctx context.Context, movieID int) (decimal.Decimal, error)
}
