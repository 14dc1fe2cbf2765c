package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/cinetix/movie-booking-system/api"
	"github.com/cinetix/movie-booking-system/internal/domain"
	"github.com/cinetix/movie-booking-system/internal/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UsersTestSuite struct {
	suite.Suite
	app      *application
	userRepo *mocks.MockUserRepo
}

func (s *UsersTestSuite) SetupTest() {
	s.userRepo = new(mocks.MockUserRepo)

	s.app = newTestApplication(func(a *application) {
		a.userRepo = s.userRepo
	})
}

func TestUsersSuite(t *testing.T) {
	suite.Run(t, new(UsersTestSuite))
}

func (s *UsersTestSuite) TestRegisterUser() {
	tests := []struct {
		name           string
		body           api.RegisterRequest
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name:           "should fail validation on a weak password",
			body:           api.RegisterRequest{Name: "Jo", Email: "jo@example.com", Password: "password"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be 8-25 characters long and include at least one uppercase letter, one lowercase letter, one number, and one special character (!@#$%^&*).",
		},
		{
			name:           "should fail validation on a malformed email",
			body:           api.RegisterRequest{Name: "Jo", Email: "not-an-email", Password: "Sup3r$ecret"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be a valid email address",
		},
		{
			name: "should conflict on a duplicate email",
			body: api.RegisterRequest{Name: "Jo", Email: "jo@example.com", Password: "Sup3r$ecret"},
			setupMocks: func() {
				s.userRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrUserAlreadyExists)
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: "a user with this email address already exists",
		},
		{
			name: "should register a user with the user role",
			body: api.RegisterRequest{Name: "Jo", Email: "jo@example.com", Password: "Sup3r$ecret"},
			setupMocks: func() {
				s.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
					return u.Role == domain.RoleUser && len(u.Password.Hash) > 0
				})).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.userRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/users", tt.body)

			s.app.RegisterUser(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				var response api.UserResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				s.Equal("jo@example.com", response.Email)
				s.Equal(string(domain.RoleUser), response.Role)
			}

			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func (s *UsersTestSuite) TestLogin() {
	registered := func() *domain.User {
		user := &domain.User{ID: 42, Name: "Jo", Email: "jo@example.com", Role: domain.RoleUser}
		if err := user.Password.Set("Sup3r$ecret"); err != nil {
			s.T().Fatal(err)
		}
		return user
	}

	tests := []struct {
		name           string
		body           api.LoginRequest
		setupMocks     func()
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "should reject an unknown email",
			body: api.LoginRequest{Email: "ghost@example.com", Password: "Sup3r$ecret"},
			setupMocks: func() {
				s.userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").
					Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: "invalid email or password",
		},
		{
			name: "should reject a wrong password",
			body: api.LoginRequest{Email: "jo@example.com", Password: "Wr0ng$ecret"},
			setupMocks: func() {
				s.userRepo.On("GetByEmail", mock.Anything, "jo@example.com").Return(registered(), nil)
			},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: "invalid email or password",
		},
		{
			name: "should fail when the lookup errors out",
			body: api.LoginRequest{Email: "jo@example.com", Password: "Sup3r$ecret"},
			setupMocks: func() {
				s.userRepo.On("GetByEmail", mock.Anything, "jo@example.com").
					Return(nil, fmt.Errorf("database error"))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name: "should log in with valid credentials",
			body: api.LoginRequest{Email: "jo@example.com", Password: "Sup3r$ecret"},
			setupMocks: func() {
				s.userRepo.On("GetByEmail", mock.Anything, "jo@example.com").Return(registered(), nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.userRepo.AssertExpectations(s.T())

			if tt.setupMocks != nil {
				tt.setupMocks()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/sessions", tt.body)
			r = setupTestSession(s.T(), s.app, r, 0)

			s.app.Login(w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var response api.UserResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				s.Equal(42, response.Id)
				s.Equal(42, s.app.sessionManager.GetInt(r.Context(), SessionKeyUserId))
			}

			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func (s *UsersTestSuite) TestGetCurrentUser() {
	s.SetupTest()

	s.userRepo.On("GetById", mock.Anything, 42).
		Return(&domain.User{ID: 42, Name: "Jo", Email: "jo@example.com", Role: domain.RoleAdmin}, nil)

	w, r := executeRequest(s.T(), http.MethodGet, "/users/me", nil)
	r = setupTestSession(s.T(), s.app, r, 42)

	s.app.GetCurrentUser(w, r)

	s.Equal(http.StatusOK, w.Code)

	var response api.UserResponse
	err := json.NewDecoder(w.Body).Decode(&response)
	s.Require().NoError(err, "Failed to decode response")

	s.Equal(42, response.Id)
	s.Equal(string(domain.RoleAdmin), response.Role)

	s.userRepo.AssertExpectations(s.T())
}
