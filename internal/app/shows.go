package app

import (
	"errors"
	"net/http"

	"github.com/cinetix/movie-booking-system/api"
	"github.com/cinetix/movie-booking-system/internal/domain"
)

func (app *application) GetShowsByMovie(w http.ResponseWriter, r *http.Request) {
	movieId, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	_, err = app.movieRepo.GetById(r.Context(), movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	shows, err := app.showRepo.GetUpcomingByMovie(r.Context(), movieId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowListResponse{
		MovieId: movieId,
		Shows:   make([]api.ShowSummary, 0, len(shows)),
	}

	for _, show := range shows {
		resp.Shows = append(resp.Shows, api.ShowSummary{
			Id:             show.ShowID,
			MovieTitle:     show.MovieTitle,
			TheaterName:    show.TheaterName,
			ScreenNumber:   show.ScreenNumber,
			StartTime:      show.StartTime,
			Price:          show.Price,
			AvailableSeats: show.AvailableSeats,
		})
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
