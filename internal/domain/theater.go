package domain

import "context"

type Theater struct {
	ID      int
	Name    string
	City    string
	Address string
	Screens []Screen
}

// Screen is a hall inside a theater. TotalSeats fixes the seat universe of
// every show scheduled on it.
type Screen struct {
	ID         int
	TheaterID  int
	Number     int
	TotalSeats int
}

type TheaterRepository interface {
	GetAll(ctx context.Context) ([]Theater, error)
	GetScreenById(ctx context.Context, id int) (*Screen, error)
}
