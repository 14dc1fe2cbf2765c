package mocks

import (
	"context"

	"github.com/cinetix/movie-booking-system/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockSeatRepo struct {
	mock.Mock
}

func (m *MockSeatRepo) GetByShow(ctx context.Context, showID int) ([]domain.SeatStatus, error) {
	args := m.Called(ctx, showID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeatStatus), args.Error(1)
}

func (m *MockSeatRepo) CreateForShow(ctx context.Context, showID int, labels []string) error {
	args := m.Called(ctx, showID, labels)
	return args.Error(0)
}
