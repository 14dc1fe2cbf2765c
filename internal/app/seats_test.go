package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/cinetix/movie-booking-system/api"
	"github.com/cinetix/movie-booking-system/internal/booking"
	"github.com/cinetix/movie-booking-system/internal/domain"
	"github.com/cinetix/movie-booking-system/internal/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SeatsTestSuite struct {
	suite.Suite
	app      *application
	showRepo *mocks.MockShowRepo
	seatRepo *mocks.MockSeatRepo
}

func (s *SeatsTestSuite) SetupTest() {
	s.showRepo = new(mocks.MockShowRepo)
	s.seatRepo = new(mocks.MockSeatRepo)

	s.app = newTestApplication(func(a *application) {
		a.showRepo = s.showRepo
		a.seatRepo = s.seatRepo
		a.coordinator = booking.NewCoordinator(s.showRepo, s.seatRepo, new(mocks.MockBookingRepo), a.logger)
	})
}

func TestSeatsSuite(t *testing.T) {
	suite.Run(t, new(SeatsTestSuite))
}

func (s *SeatsTestSuite) TestGetSeatMapByShow() {
	tests := []struct {
		name           string
		showId         string
		setupMocks     func()
		wantStatus     int
		wantResponse   *api.SeatMapResponse
		wantErrMessage string
	}{
		{
			name:       "should fail when show ID is not a positive integer",
			showId:     "abc",
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "should fail when show does not exist",
			showId: "999",
			setupMocks: func() {
				s.showRepo.On("GetById", mock.Anything, 999).Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "should fail when database error occurs while fetching seats",
			showId: "1",
			setupMocks: func() {
				s.showRepo.On("GetById", mock.Anything, 1).Return(&domain.Show{ID: 1}, nil)
				s.seatRepo.On("GetByShow", mock.Anything, 1).Return(nil, fmt.Errorf("database error"))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name:   "should return seat map with valid input",
			showId: "1",
			setupMocks: func() {
				s.showRepo.On("GetById", mock.Anything, 1).Return(&domain.Show{ID: 1}, nil)
				s.seatRepo.On("GetByShow", mock.Anything, 1).Return([]domain.SeatStatus{
					{Label: "A1", Booked: true},
					{Label: "A2", Booked: false},
					{Label: "A3", Booked: false},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.SeatMapResponse{
				ShowId: 1,
				Seats: []api.SeatStatus{
					{Label: "A1", Booked: true},
					{Label: "A2", Booked: false},
					{Label: "A3", Booked: false},
				},
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.showRepo.AssertExpectations(s.T())
			defer s.seatRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodGet, fmt.Sprintf("/shows/%s/seats", tt.showId), nil)
			r = withURLParams(r, map[string]string{"showId": tt.showId})

			s.app.GetSeatMapByShow(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.SeatMapResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
			}

			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}
