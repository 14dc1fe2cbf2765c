package app

import (
	"errors"
	"net/http"

	"github.com/cinetix/movie-booking-system/api"
	"github.com/cinetix/movie-booking-system/internal/domain"
)

func (app *application) GetSeatMapByShow(w http.ResponseWriter, r *http.Request) {
	showId, err := app.readIDParam(r, "showId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	seats, err := app.coordinator.AvailableSeats(r.Context(), showId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrShowNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	resp := api.SeatMapResponse{
		ShowId: showId,
		Seats:  make([]api.SeatStatus, 0, len(seats)),
	}

	for _, seat := range seats {
		resp.Seats = append(resp.Seats, api.SeatStatus{
			Label:  seat.Label,
			Booked: seat.Booked,
		})
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
