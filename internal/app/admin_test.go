package app

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/cinetix/movie-booking-system/api"
	"github.com/cinetix/movie-booking-system/internal/booking"
	"github.com/cinetix/movie-booking-system/internal/domain"
	"github.com/cinetix/movie-booking-system/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AdminTestSuite struct {
	suite.Suite
	app         *application
	movieRepo   *mocks.MockMovieRepo
	theaterRepo *mocks.MockTheaterRepo
	showRepo    *mocks.MockShowRepo
	seatRepo    *mocks.MockSeatRepo
	reportRepo  *mocks.MockReportRepo
}

func (s *AdminTestSuite) SetupTest() {
	s.movieRepo = new(mocks.MockMovieRepo)
	s.theaterRepo = new(mocks.MockTheaterRepo)
	s.showRepo = new(mocks.MockShowRepo)
	s.seatRepo = new(mocks.MockSeatRepo)
	s.reportRepo = new(mocks.MockReportRepo)

	s.app = newTestApplication(func(a *application) {
		a.movieRepo = s.movieRepo
		a.theaterRepo = s.theaterRepo
		a.showRepo = s.showRepo
		a.seatRepo = s.seatRepo
		a.reportRepo = s.reportRepo
		a.coordinator = booking.NewCoordinator(s.showRepo, s.seatRepo, new(mocks.MockBookingRepo), a.logger)
	})
}

func TestAdminSuite(t *testing.T) {
	suite.Run(t, new(AdminTestSuite))
}

func (s *AdminTestSuite) TestCreateMovie() {
	tests := []struct {
		name           string
		body           api.CreateMovieRequest
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "should fail validation on a missing title",
			body:           api.CreateMovieRequest{Language: "English", Genre: "Crime", Duration: 170},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name: "should create a movie",
			body: api.CreateMovieRequest{Title: "Heat", Language: "English", Genre: "Crime", Duration: 170, Rating: 8.3},
			setupMocks: func() {
				s.movieRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.Movie) bool {
					return m.Title == "Heat" && m.Duration == 170
				})).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.movieRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/admin/movies", tt.body)

			s.app.CreateMovie(w, r)

			s.Equal(tt.wantStatus, w.Code)

			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func (s *AdminTestSuite) TestCreateShow() {
	startTime := time.Now().Add(48 * time.Hour).Truncate(time.Second)

	validBody := api.CreateShowRequest{
		MovieId:   1,
		ScreenId:  2,
		StartTime: startTime,
		Price:     "250.00",
	}

	tests := []struct {
		name           string
		body           api.CreateShowRequest
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "should fail validation on a non-positive price",
			body: api.CreateShowRequest{MovieId: 1, ScreenId: 2, StartTime: startTime, Price: "-5"},

			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be a positive decimal amount",
		},
		{
			name: "should fail on an unknown movie",
			body: validBody,
			setupMocks: func() {
				s.movieRepo.On("GetById", mock.Anything, 1).Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "unknown movie id",
		},
		{
			name: "should fail on an unknown screen",
			body: validBody,
			setupMocks: func() {
				s.movieRepo.On("GetById", mock.Anything, 1).Return(&domain.Movie{ID: 1}, nil)
				s.theaterRepo.On("GetScreenById", mock.Anything, 2).Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "unknown screen id",
		},
		{
			name: "should create the show and seed its seats",
			body: validBody,
			setupMocks: func() {
				s.movieRepo.On("GetById", mock.Anything, 1).Return(&domain.Movie{ID: 1}, nil)
				s.theaterRepo.On("GetScreenById", mock.Anything, 2).
					Return(&domain.Screen{ID: 2, TotalSeats: 25}, nil)
				s.showRepo.On("Create", mock.Anything, mock.MatchedBy(func(show *domain.Show) bool {
					return show.Price.Equal(decimal.RequireFromString("250.00"))
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.Show).ID = 9
				}).Return(nil)
				s.seatRepo.On("CreateForShow", mock.Anything, 9, mock.MatchedBy(func(labels []string) bool {
					return len(labels) == 25 && labels[0] == "A1" && labels[24] == "C5"
				})).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.movieRepo.AssertExpectations(s.T())
			defer s.theaterRepo.AssertExpectations(s.T())
			defer s.showRepo.AssertExpectations(s.T())
			defer s.seatRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/admin/shows", tt.body)

			s.app.CreateShow(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				var response api.ShowResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				s.Equal(9, response.Id)
				s.Equal(25, response.SeatCount)
			}

			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func (s *AdminTestSuite) TestGetDashboard() {
	s.SetupTest()

	s.reportRepo.On("DashboardStats", mock.Anything).Return(&domain.DashboardStats{
		TotalMovies:   3,
		TotalShows:    12,
		TotalBookings: 87,
		TotalRevenue:  decimal.RequireFromString("21750.00"),
	}, nil)

	w, r := executeRequest(s.T(), http.MethodGet, "/admin/dashboard", nil)

	s.app.GetDashboard(w, r)

	s.Equal(http.StatusOK, w.Code)

	var response api.DashboardResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	s.Require().NoError(err, "Failed to decode response")

	s.Equal(87, response.TotalBookings)
	s.Equal("21750", response.TotalRevenue.String())

	s.reportRepo.AssertExpectations(s.T())
}

func (s *AdminTestSuite) TestGetMovieRevenue() {
	s.SetupTest()

	s.movieRepo.On("GetById", mock.Anything, 1).Return(&domain.Movie{ID: 1}, nil)
	s.reportRepo.On("MovieRevenue", mock.Anything, 1).
		Return(decimal.RequireFromString("1250.00"), nil)

	w, r := executeRequest(s.T(), http.MethodGet, "/admin/movies/1/revenue", nil)
	r = withURLParams(r, map[string]string{"movieId": "1"})

	s.app.GetMovieRevenue(w, r)

	s.Equal(http.StatusOK, w.Code)

	var response api.RevenueResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	s.Require().NoError(err, "Failed to decode response")

	s.Equal(1, response.MovieId)
	s.Equal("1250", response.Revenue.String())

	s.movieRepo.AssertExpectations(s.T())
	s.reportRepo.AssertExpectations(s.T())
}
