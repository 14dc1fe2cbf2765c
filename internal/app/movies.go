package app

import (
	"errors"
	"net/http"

	"github.com/cinetix/movie-booking-system/api"
	"github.com/cinetix/movie-booking-system/internal/domain"
	"github.com/go-playground/validator/v10"
)

type listMoviesParams struct {
	Page     int    `validate:"gte=1"`
	PageSize int    `validate:"gte=1,lte=100"`
	Sort     string `validate:"oneof=id title rating -id -title -rating"`
}

func (app *application) GetMovies(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	params := listMoviesParams{Sort: app.readString(qs, "sort", "id")}
	term := app.readString(qs, "term", "")

	var err error

	params.Page, err = app.readInt(qs, "page", 1)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params.PageSize, err = app.readInt(qs, "pageSize", 20)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			app.failedValidationResponse(w, r, validationErrors)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	pagination := domain.Pagination{
		Page:     params.Page,
		PageSize: params.PageSize,
		Term:     term,
		Sort:     params.Sort,
	}

	movies, metadata, err := app.movieRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{
		Movies:   make([]api.MovieSummary, 0, len(movies)),
		Metadata: toMetadataResponse(metadata),
	}

	for _, movie := range movies {
		resp.Movies = append(resp.Movies, toMovieSummaryResponse(movie))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieId, err := app.readIDParam(r, "movieId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), movieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	resp := api.MovieResponse{
		MovieSummary: toMovieSummaryResponse(movie),
		CreatedAt:    movie.CreatedAt,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieSummaryResponse(movie *domain.Movie) api.MovieSummary {
	return api.MovieSummary{
		Id:        movie.ID,
		Title:     movie.Title,
		Language:  movie.Language,
		Genre:     movie.Genre,
		Duration:  movie.Duration,
		Rating:    movie.Rating,
		PosterUrl: movie.PosterUrl,
	}
}

func toMetadataResponse(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
