package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID        int
	Title     string
	Language  string
	Genre     string
	Duration  int
	Rating    float64
	PosterUrl string
	CreatedAt time.Time
}

type MovieRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]*Movie, *Metadata, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
}
