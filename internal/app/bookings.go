package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/cinetix/movie-booking-system/api"
	"github.com/cinetix/movie-booking-system/internal/booking"
	"github.com/cinetix/movie-booking-system/internal/domain"
	"github.com/go-playground/validator/v10"
)

func (app *application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	showId, err := app.readIDParam(r, "showId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var req api.CreateBookingRequest

	err = app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			app.failedValidationResponse(w, r, validationErrors)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	userId := app.sessionUserId(r)

	reserved, err := app.coordinator.Reserve(r.Context(), booking.ReserveRequest{
		ShowID:        showId,
		SeatLabels:    req.Seats,
		UserID:        userId,
		PaymentMethod: domain.PaymentMethod(strings.ToLower(req.PaymentMethod)),
	})
	if err != nil {
		var seatsUnavailable *domain.SeatsUnavailableError

		switch {
		case errors.Is(err, domain.ErrShowNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrEmptySeatSelection),
			errors.Is(err, domain.ErrInvalidSeatLabel):
			app.badRequestResponse(w, r, err)
		case errors.As(err, &seatsUnavailable):
			app.seatsUnavailableResponse(w, r, seatsUnavailable.Labels)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.bookingsReserved.Add(r.Context(), 1)

	app.sendBookingConfirmation(context.WithoutCancel(r.Context()), userId, reserved)

	resp := toBookingResponse(reserved)

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingId, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	reserved, err := app.bookingRepo.GetById(r.Context(), bookingId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookingNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	// A booking is invisible to anyone but its owner, so a foreign id gets
	// the same 404 as a nonexistent one.
	if reserved.UserID != app.sessionUserId(r) {
		app.notFoundResponse(w, r)
		return
	}

	err = app.coordinator.Cancel(r.Context(), bookingId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookingNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) ConfirmBookingPayment(w http.ResponseWriter, r *http.Request) {
	bookingId, err := app.readIDParam(r, "bookingId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	reserved, err := app.bookingRepo.GetById(r.Context(), bookingId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookingNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if reserved.UserID != app.sessionUserId(r) {
		app.notFoundResponse(w, r)
		return
	}

	err = app.coordinator.ConfirmPayment(r.Context(), bookingId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	page, err := app.readInt(qs, "page", 1)
	if err != nil || page < 1 {
		app.badRequestResponse(w, r, errors.New("query parameter page must be a positive integer"))
		return
	}

	pageSize, err := app.readInt(qs, "pageSize", 20)
	if err != nil || pageSize < 1 || pageSize > 100 {
		app.badRequestResponse(w, r, errors.New("query parameter pageSize must be between 1 and 100"))
		return
	}

	pagination := domain.Pagination{Page: page, PageSize: pageSize}

	summaries, metadata, err := app.bookingRepo.GetSummariesByUserId(r.Context(), app.sessionUserId(r), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserBookingsResponse{
		Bookings: make([]api.BookingSummary, 0, len(summaries)),
		Metadata: toMetadataResponse(metadata),
	}

	for _, summary := range summaries {
		resp.Bookings = append(resp.Bookings, api.BookingSummary{
			Id:          summary.BookingID,
			Reference:   summary.Reference,
			MovieTitle:  summary.MovieTitle,
			TheaterName: summary.TheaterName,
			StartTime:   summary.StartTime,
			Seats:       summary.SeatLabels,
			TotalAmount: summary.TotalAmount,
			Status:      string(summary.Status),
			CreatedAt:   summary.CreatedAt,
		})
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// sendBookingConfirmation emails the booking receipt off the request path. A
// delivery failure is logged and swallowed; the reservation already happened
// and must not be unwound by a mail problem.
func (app *application) sendBookingConfirmation(ctx context.Context, userId int, reserved *domain.Booking) {
	app.background(func() {
		ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		user, err := app.userRepo.GetById(ctx, userId)
		if err != nil {
			app.logger.Error("failed to load user for booking confirmation", "error", err, "booking_id", reserved.ID)
			return
		}

		show, err := app.showRepo.GetById(ctx, reserved.ShowID)
		if err != nil {
			app.logger.Error("failed to load show for booking confirmation", "error", err, "booking_id", reserved.ID)
			return
		}

		movie, err := app.movieRepo.GetById(ctx, show.MovieID)
		if err != nil {
			app.logger.Error("failed to load movie for booking confirmation", "error", err, "booking_id", reserved.ID)
			return
		}

		data := map[string]any{
			"name":        user.Name,
			"reference":   reserved.Reference,
			"movieTitle":  movie.Title,
			"startTime":   show.StartTime.Format(time.RFC1123),
			"seats":       strings.Join(reserved.SeatLabels, ", "),
			"totalAmount": reserved.TotalAmount.StringFixed(2),
		}

		err = app.mailer.Send(user.Email, "booking_confirmation.tmpl", data)
		if err != nil {
			app.logger.Error("failed to send booking confirmation", "error", err, "booking_id", reserved.ID)
		}
	})
}

func toBookingResponse(reserved *domain.Booking) api.BookingResponse {
	return api.BookingResponse{
		Id:          reserved.ID,
		Reference:   reserved.Reference,
		ShowId:      reserved.ShowID,
		Seats:       reserved.SeatLabels,
		SeatCount:   reserved.SeatCount,
		TotalAmount: reserved.TotalAmount,
		Status:      string(reserved.Status),
		CreatedAt:   reserved.CreatedAt,
	}
}
