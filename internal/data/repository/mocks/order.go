package mocks

import (
	"context"

	"hotel-booking/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	register(&m.Mock, t)
	return m
}

func (m *OrderRepository) CreateBatch(ctx context.Context, orders []*entity.RoomServiceOrder) error {
	return m.Called(ctx, orders).Error(0)
}

func (m *OrderRepository) FindByID(ctx context.Context, id int64) (*entity.RoomServiceOrder, error) {
	args := m.Called(ctx, id)
	return get[*entity.RoomServiceOrder](args, 0), args.Error(1)
}

func (m *OrderRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.RoomServiceOrder, error) {
	args := m.Called(ctx, userID)
	return get[[]*entity.RoomServiceOrder](args, 0), args.Error(1)
}

func (m *OrderRepository) Delete(ctx context.Context, id, userID int64) (int64, error) {
	args := m.Called(ctx, id, userID)
	return get[int64](args, 0), args.Error(1)
}
