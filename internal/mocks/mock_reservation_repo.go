package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/metinatakli/movie-ticket-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockReservationRepo struct {
	mock.Mock
	domain.ReservationRepository
}

func (m *MockReservationRepo) Create(ctx context.Context, reservation *domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepo) DeleteByConfirmationID(ctx context.Context, confirmationID uuid.UUID) error {
	args := m.Called(ctx, confirmationID)
	return args.Error(0)
}

func (m *MockReservationRepo) GetSeatIDsByShowtime(ctx context.Context, showtimeID int) ([]string, error) {
	args := m.Called(ctx, showtimeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
