package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrShowNotFound       = errors.New("show not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrEmptySeatSelection = errors.New("at least one seat must be selected")
	ErrInvalidSeatLabel   = errors.New("seat label does not exist for this show")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrEditConflict       = errors.New("edit conflict")
)

// SeatsUnavailableError reports the exact seats that were already claimed by
// another non-cancelled booking. It is an expected outcome of a reserve
// attempt, not a store fault, so callers can distinguish it with errors.As
// and re-present seat selection instead of retrying.
type SeatsUnavailableError struct {
	Labels []string
}

func (e *SeatsUnavailableError) Error() string {
	return fmt.Sprintf("seat(s) already booked: %s", strings.Join(e.Labels, ", "))
}
