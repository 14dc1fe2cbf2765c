package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID          int
	Reference   string
	ShowID      int
	UserID      int
	SeatLabels  []string
	SeatCount   int
	TotalAmount decimal.Decimal
	Status      BookingStatus
	CreatedAt   time.Time
}

type BookingSummary struct {
	BookingID    int
	Reference    string
	MovieTitle   string
	TheaterName  string
	ScreenNumber int
	StartTime    time.Time
	SeatLabels   []string
	TotalAmount  decimal.Decimal
	Status       BookingStatus
	CreatedAt    time.Time
}

type BookingRepository interface {
	// CreateWithSeats claims every seat in booking.SeatLabels, inserts the
	// booking and its payment, all inside one transaction. If any seat is
	// already booked the whole transaction rolls back and the error is a
	// *SeatsUnavailableError listing the contested labels.
	CreateWithSeats(ctx context.Context, booking *Booking, payment *Payment) error

	// Cancel releases the booking's seats and marks booking and payment
	// cancelled, atomically. Cancelling an already cancelled booking is a
	// no-op; an unknown id yields ErrBookingNotFound.
	Cancel(ctx context.Context, bookingID int) error

	// ConfirmPayment moves payment to completed and booking to confirmed.
	// Confirming an already confirmed booking is a no-op; confirming a
	// cancelled booking yields ErrEditConflict.
	ConfirmPayment(ctx context.Context, bookingID int) error

	GetById(ctx context.Context, id int) (*Booking, error)
	GetSummariesByUserId(ctx context.Context, userID int, pagination Pagination) ([]BookingSummary, *Metadata, error)
}
