package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Show is a scheduled screening. It is immutable after creation except by
// administrative update; its price and screen capacity fix the per-seat price
// and the seat universe for every booking against it.
type Show struct {
	ID        int
	MovieID   int
	ScreenID  int
	StartTime time.Time
	Price     decimal.Decimal
	CreatedAt time.Time
}

type ShowSummary struct {
	ShowID         int
	MovieTitle     string
	TheaterName    string
	ScreenNumber   int
	StartTime      time.Time
	Price          decimal.Decimal
	AvailableSeats int
}

type ShowRepository interface {
	GetById(ctx context.Context, id int) (*Show, error)
	GetUpcomingByMovie(ctx context.Context, movieID int) ([]ShowSummary, error)
	Create(ctx context.Context, show *Show) error
}
