package mocks

import (
	"context"

	"hotel-booking/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type RoomRepository struct {
	mock.Mock
}

func NewRoomRepository(t testingT) *RoomRepository {
	m := &RoomRepository{}
	register(&m.Mock, t)
	return m
}

func (m *RoomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	args := m.Called(ctx)
	return get[[]*entity.Room](args, 0), args.Error(1)
}

func (m *RoomRepository) FindByID(ctx context.Context, id int64) (*entity.Room, error) {
	args := m.Called(ctx, id)
	return get[*entity.Room](args, 0), args.Error(1)
}

func (m *RoomRepository) FindFirstByType(ctx context.Context, roomType entity.RoomType) (*entity.Room, error) {
	args := m.Called(ctx, roomType)
	return get[*entity.Room](args, 0), args.Error(1)
}
