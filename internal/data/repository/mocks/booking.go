package mocks

import (
	"context"

	"hotel-booking/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type BookingRepository struct {
	mock.Mock
}

func NewBookingRepository(t testingT) *BookingRepository {
	m := &BookingRepository{}
	register(&m.Mock, t)
	return m
}

func (m *BookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *BookingRepository) FindAll(ctx context.Context, filter entity.BookingFilter) ([]*entity.BookingDetail, error) {
	args := m.Called(ctx, filter)
	return get[[]*entity.BookingDetail](args, 0), args.Error(1)
}

func (m *BookingRepository) Count(ctx context.Context, filter entity.BookingFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return get[int64](args, 0), args.Error(1)
}
