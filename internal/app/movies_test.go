package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/cinetix/movie-booking-system/api"
	"github.com/cinetix/movie-booking-system/internal/domain"
	"github.com/cinetix/movie-booking-system/internal/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MoviesTestSuite struct {
	suite.Suite
	app       *application
	movieRepo *mocks.MockMovieRepo
	showRepo  *mocks.MockShowRepo
}

func (s *MoviesTestSuite) SetupTest() {
	s.movieRepo = new(mocks.MockMovieRepo)
	s.showRepo = new(mocks.MockShowRepo)

	s.app = newTestApplication(func(a *application) {
		a.movieRepo = s.movieRepo
		a.showRepo = s.showRepo
	})
}

func TestMoviesSuite(t *testing.T) {
	suite.Run(t, new(MoviesTestSuite))
}

func (s *MoviesTestSuite) TestGetMovies() {
	movies := []*domain.Movie{
		{ID: 1, Title: "Heat", Language: "English", Genre: "Crime", Duration: 170, Rating: 8.3},
		{ID: 2, Title: "Ran", Language: "Japanese", Genre: "Drama", Duration: 162, Rating: 8.2},
	}

	tests := []struct {
		name           string
		query          string
		setupMocks     func()
		wantStatus     int
		wantResponse   *api.MovieListResponse
		wantErrMessage string
	}{
		{
			name:           "should fail on a non-numeric page",
			query:          "?page=abc",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "query parameter page must be an integer",
		},
		{
			name:           "should fail validation on an unknown sort column",
			query:          "?sort=price",
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is invalid",
		},
		{
			name:  "should fail when listing errors out",
			query: "",
			setupMocks: func() {
				s.movieRepo.On("GetAll", mock.Anything, mock.Anything).
					Return(nil, nil, fmt.Errorf("database error"))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name:  "should list movies with pagination metadata",
			query: "?page=1&pageSize=20&sort=-rating",
			setupMocks: func() {
				s.movieRepo.On("GetAll", mock.Anything, domain.Pagination{
					Page: 1, PageSize: 20, Sort: "-rating",
				}).Return(movies, domain.NewMetadata(2, 1, 20), nil)
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.MovieListResponse{
				Movies: []api.MovieSummary{
					{Id: 1, Title: "Heat", Language: "English", Genre: "Crime", Duration: 170, Rating: 8.3},
					{Id: 2, Title: "Ran", Language: "Japanese", Genre: "Drama", Duration: 162, Rating: 8.2},
				},
				Metadata: &api.Metadata{CurrentPage: 1, FirstPage: 1, LastPage: 1, PageSize: 20, TotalRecords: 2},
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.movieRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodGet, "/movies"+tt.query, nil)

			s.app.GetMovies(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.MovieListResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
			}

			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func (s *MoviesTestSuite) TestGetMovie() {
	tests := []struct {
		name       string
		movieId    string
		setupMocks func()
		wantStatus int
	}{
		{
			name:       "should fail when movie ID is not a positive integer",
			movieId:    "0",
			wantStatus: http.StatusNotFound,
		},
		{
			name:    "should fail when movie does not exist",
			movieId: "999",
			setupMocks: func() {
				s.movieRepo.On("GetById", mock.Anything, 999).Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:    "should return the movie",
			movieId: "1",
			setupMocks: func() {
				s.movieRepo.On("GetById", mock.Anything, 1).
					Return(&domain.Movie{ID: 1, Title: "Heat"}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.movieRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodGet, "/movies/"+tt.movieId, nil)
			r = withURLParams(r, map[string]string{"movieId": tt.movieId})

			s.app.GetMovie(w, r)

			s.Equal(tt.wantStatus, w.Code)
		})
	}
}

func (s *MoviesTestSuite) TestGetShowsByMovie() {
	s.SetupTest()

	s.movieRepo.On("GetById", mock.Anything, 1).Return(&domain.Movie{ID: 1, Title: "Heat"}, nil)
	s.showRepo.On("GetUpcomingByMovie", mock.Anything, 1).Return([]domain.ShowSummary{
		{ShowID: 3, MovieTitle: "Heat", TheaterName: "Downtown", ScreenNumber: 2, AvailableSeats: 41},
	}, nil)

	w, r := executeRequest(s.T(), http.MethodGet, "/movies/1/shows", nil)
	r = withURLParams(r, map[string]string{"movieId": "1"})

	s.app.GetShowsByMovie(w, r)

	s.Equal(http.StatusOK, w.Code)

	var response api.ShowListResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	s.Require().NoError(err, "Failed to decode response")

	s.Equal(1, response.MovieId)
	s.Len(response.Shows, 1)
	s.Equal(41, response.Shows[0].AvailableSeats)

	s.movieRepo.AssertExpectations(s.T())
	s.showRepo.AssertExpectations(s.T())
}
