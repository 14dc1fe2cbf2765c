package app

import (
	"errors"
	"net/http"

	"github.com/cinetix/movie-booking-system/api"
	"github.com/cinetix/movie-booking-system/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func (app *application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req api.CreateMovieRequest

	err := app.readJSON(w, r, &req)
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

	movie := &domain.Movie{
		Title:     req.Title,
		Language:  req.Language,
		Genre:     req.Genre,
		Duration:  req.Duration,
		Rating:    req.Rating,
		PosterUrl: req.PosterUrl,
	}

	err = app.movieRepo.Create(r.Context(), movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieResponse{
		MovieSummary: toMovieSummaryResponse(movie),
		CreatedAt:    movie.CreatedAt,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CreateShow(w http.ResponseWriter, r *http.Request) {
	var req api.CreateShowRequest

	err := app.readJSON(w, r, &req)
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

	_, err = app.movieRepo.GetById(r.Context(), req.MovieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, errors.New("unknown movie id"))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	screen, err := app.theaterRepo.GetScreenById(r.Context(), req.ScreenId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, errors.New("unknown screen id"))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("price must be a positive decimal number"))
		return
	}

	show := &domain.Show{
		MovieID:   req.MovieId,
		ScreenID:  req.ScreenId,
		StartTime: req.StartTime,
		Price:     price,
	}

	err = app.showRepo.Create(r.Context(), show)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// Seeding the seat universe is idempotent, so a failure here can be
	// retried by re-posting the show's screen capacity without duplicating
	// rows.
	err = app.coordinator.InitializeSeats(r.Context(), show.ID, screen.TotalSeats)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowResponse{
		Id:        show.ID,
		MovieId:   show.MovieID,
		ScreenId:  show.ScreenID,
		StartTime: show.StartTime,
		Price:     show.Price,
		SeatCount: screen.TotalSeats,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := app.reportRepo.DashboardStats(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.DashboardResponse{
		TotalMovies:   stats.TotalMovies,
		TotalShows:    stats.TotalShows,
		TotalBookings: stats.TotalBookings,
		TotalRevenue:  stats.TotalRevenue,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetMovieRevenue(w http.ResponseWriter, r *http.Request) {
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

	revenue, err := app.reportRepo.MovieRevenue(r.Context(), movieId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.RevenueResponse{
		MovieId: movieId,
		Revenue: revenue,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
