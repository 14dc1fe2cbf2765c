package domain

import "context"

// SeatStatus is one entry of a show's seat map, ordered by row letter then
// seat number.
type SeatStatus struct {
	Label  string
	Booked bool
}

type SeatRepository interface {
	// GetByShow returns the full seat universe of a show in display order.
	GetByShow(ctx context.Context, showID int) ([]SeatStatus, error)

	// CreateForShow inserts one unbooked seat row per label. Labels that
	// already exist for the show are skipped, so repeated calls converge to
	// the same seat universe.
	CreateForShow(ctx context.Context, showID int, labels []string) error
}
