package mocks

import (
	"context"

	"github.com/cinetix/movie-booking-system/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockReportRepo) MovieRevenue(ctx context.Context, movieID int) (decimal.Decimal, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
