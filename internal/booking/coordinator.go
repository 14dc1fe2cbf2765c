// Package booking implements the booking coordinator: turning a
// (show, seat set, user, payment method) request into a durable, consistent
// reservation or a rejection. It is transport-free; the HTTP layer in
// internal/app is just one caller.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/cinetix/movie-booking-system/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Coordinator struct {
	shows    domain.ShowRepository
	seats    domain.SeatRepository
	bookings domain.BookingRepository
	logger   *slog.Logger
}

func NewCoordinator(
	shows domain.ShowRepository,
	seats domain.SeatRepository,
	bookings domain.BookingRepository,
	logger *slog.Logger) *Coordinator {

	return &Coordinator{
		shows:    shows,
		seats:    seats,
		bookings: bookings,
		logger:   logger,
	}
}

type ReserveRequest struct {
	ShowID        int
	SeatLabels    []string
	UserID        int
	PaymentMethod domain.PaymentMethod
}

// Reserve claims the requested seats under one new pending booking, or rejects
// without any partial effect. Validation (empty set, unknown labels) happens
// before any mutation; the claim itself is delegated to the store's
// conditional-update transaction, which is what serializes concurrent calls
// contending for the same seats. A *domain.SeatsUnavailableError result lists
// exactly the contested labels.
func (c *Coordinator) Reserve(ctx context.Context, req ReserveRequest) (*domain.Booking, error) {
	labels := normalizeLabels(req.SeatLabels)
	if len(labels) == 0 {
		return nil, domain.ErrEmptySeatSelection
	}

	show, err := c.shows.GetById(ctx, req.ShowID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrShowNotFound
		}

		return nil, err
	}

	universe, err := c.seats.GetByShow(ctx, req.ShowID)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(universe))
	for _, seat := range universe {
		known[seat.Label] = true
	}

	for _, label := range labels {
		if !known[label] {
			return nil, fmt.Errorf("seat %q: %w", label, domain.ErrInvalidSeatLabel)
		}
	}

	totalAmount := show.Price.Mul(decimal.NewFromInt(int64(len(labels))))

	bkg := &domain.Booking{
		Reference:   uuid.NewString(),
		ShowID:      req.ShowID,
		UserID:      req.UserID,
		SeatLabels:  labels,
		SeatCount:   len(labels),
		TotalAmount: totalAmount,
		Status:      domain.BookingStatusPending,
	}

	payment := &domain.Payment{
		Amount: totalAmount,
		Method: req.PaymentMethod,
		Status: domain.PaymentStatusPending,
	}

	err = c.bookings.CreateWithSeats(ctx, bkg, payment)
	if err != nil {
		var unavailable *domain.SeatsUnavailableError
		if errors.As(err, &unavailable) {
			c.logger.Info(
				"reserve rejected, seats contested",
				"show_id", req.ShowID,
				"seats", unavailable.Labels,
			)
		}

		return nil, err
	}

	c.logger.Info(
		"booking created",
		"booking_id", bkg.ID,
		"show_id", bkg.ShowID,
		"seats", bkg.SeatLabels,
		"total_amount", bkg.TotalAmount,
	)

	return bkg, nil
}

// Cancel releases the booking's seats and marks it cancelled. It is
// idempotent: repeating the call succeeds without further effect.
func (c *Coordinator) Cancel(ctx context.Context, bookingID int) error {
	return c.bookings.Cancel(ctx, bookingID)
}

// ConfirmPayment settles the pending payment of a booking, moving the booking
// to confirmed. It is idempotent for already confirmed bookings.
func (c *Coordinator) ConfirmPayment(ctx context.Context, bookingID int) error {
	return c.bookings.ConfirmPayment(ctx, bookingID)
}

// AvailableSeats returns the show's full seat map in display order.
func (c *Coordinator) AvailableSeats(ctx context.Context, showID int) ([]domain.SeatStatus, error) {
	_, err := c.shows.GetById(ctx, showID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrShowNotFound
		}

		return nil, err
	}

	return c.seats.GetByShow(ctx, showID)
}

// InitializeSeats provisions the deterministic seat universe for a show.
// Repeated calls are no-ops for labels that already exist.
func (c *Coordinator) InitializeSeats(ctx context.Context, showID, capacity int) error {
	labels, err := SeatLabels(capacity)
	if err != nil {
		return err
	}

	return c.seats.CreateForShow(ctx, showID, labels)
}

func normalizeLabels(labels []string) []string {
	set := make(map[string]bool, len(labels))

	for _, label := range labels {
		label = strings.ToUpper(strings.TrimSpace(label))
		if label != "" {
			set[label] = true
		}
	}

	normalized := make([]string, 0, len(set))
	for label := range set {
		normalized = append(normalized, label)
	}

	slices.Sort(normalized)

	return normalized
}
