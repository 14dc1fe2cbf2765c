// Package api defines the JSON request and response shapes of the HTTP
// surface. Validation rules live on the request types as struct tags and are
// enforced with go-playground/validator.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message          string    `json:"message"`
	RequestId        string    `json:"requestId"`
	Timestamp        time.Time `json:"timestamp"`
	ConflictingSeats []string  `json:"conflictingSeats,omitempty"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type MovieSummary struct {
	Id        int     `json:"id"`
	Title     string  `json:"title"`
	Language  string  `json:"language"`
	Genre     string  `json:"genre"`
	Duration  int     `json:"duration"`
	Rating    float64 `json:"rating"`
	PosterUrl string  `json:"posterUrl,omitempty"`
}

type MovieListResponse struct {
	Movies   []MovieSummary `json:"movies"`
	Metadata *Metadata      `json:"metadata,omitempty"`
}

type MovieResponse struct {
	MovieSummary
	CreatedAt time.Time `json:"createdAt"`
}

type ShowSummary struct {
	Id             int             `json:"id"`
	MovieTitle     string          `json:"movieTitle"`
	TheaterName    string          `json:"theaterName"`
	ScreenNumber   int             `json:"screenNumber"`
	StartTime      time.Time       `json:"startTime"`
	Price          decimal.Decimal `json:"price"`
	AvailableSeats int             `json:"availableSeats"`
}

type ShowListResponse struct {
	MovieId int           `json:"movieId"`
	Shows   []ShowSummary `json:"shows"`
}

type SeatStatus struct {
	Label  string `json:"label"`
	Booked bool   `json:"booked"`
}

type SeatMapResponse struct {
	ShowId int          `json:"showId"`
	Seats  []SeatStatus `json:"seats"`
}

type Screen struct {
	Id         int `json:"id"`
	Number     int `json:"number"`
	TotalSeats int `json:"totalSeats"`
}

type Theater struct {
	Id      int      `json:"id"`
	Name    string   `json:"name"`
	City    string   `json:"city"`
	Address string   `json:"address"`
	Screens []Screen `json:"screens"`
}

type TheaterListResponse struct {
	Theaters []Theater `json:"theaters"`
}

type CreateBookingRequest struct {
	Seats         []string `json:"seats" validate:"required,min=1,max=10,dive,seat_label"`
	PaymentMethod string   `json:"paymentMethod" validate:"required,payment_method"`
}

type BookingResponse struct {
	Id          int             `json:"id"`
	Reference   string          `json:"reference"`
	ShowId      int             `json:"showId"`
	Seats       []string        `json:"seats"`
	SeatCount   int             `json:"seatCount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type BookingSummary struct {
	Id          int             `json:"id"`
	Reference   string          `json:"reference"`
	MovieTitle  string          `json:"movieTitle"`
	TheaterName string          `json:"theaterName"`
	StartTime   time.Time       `json:"startTime"`
	Seats       []string        `json:"seats"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type UserBookingsResponse struct {
	Bookings []BookingSummary `json:"bookings"`
	Metadata *Metadata        `json:"metadata,omitempty"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Password string `json:"password" validate:"required,password"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateMovieRequest struct {
	Title     string  `json:"title" validate:"required,max=200"`
	Language  string  `json:"language" validate:"required,max=50"`
	Genre     string  `json:"genre" validate:"required,max=50"`
	Duration  int     `json:"duration" validate:"required,gt=0"`
	Rating    float64 `json:"rating" validate:"gte=0,lte=10"`
	PosterUrl string  `json:"posterUrl" validate:"omitempty,url"`
}

type CreateShowRequest struct {
	MovieId   int       `json:"movieId" validate:"required,gt=0"`
	ScreenId  int       `json:"screenId" validate:"required,gt=0"`
	StartTime time.Time `json:"startTime" validate:"required"`
	Price     string    `json:"price" validate:"required,price"`
}

type ShowResponse struct {
	Id        int             `json:"id"`
	MovieId   int             `json:"movieId"`
	ScreenId  int             `json:"screenId"`
	StartTime time.Time       `json:"startTime"`
	Price     decimal.Decimal `json:"price"`
	SeatCount int             `json:"seatCount"`
}

type DashboardResponse struct {
	TotalMovies   int             `json:"totalMovies"`
	TotalShows    int             `json:"totalShows"`
	TotalBookings int             `json:"totalBookings"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}

type RevenueResponse struct {
	MovieId int             `json:"movieId"`
	Revenue decimal.Decimal `json:"revenue"`
}
