package mocks

import (
	"context"

	"hotel-booking/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type PaymentRepository struct {
	mock.Mock
}

func NewPaymentRepository(t testingT) *PaymentRepository {
	m := &PaymentRepository{}
	register(&m.Mock, t)
	return m
}

func (m *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *PaymentRepository) FindRecent(ctx context.Context, filter entity.PaymentFilter) ([]*entity.Payment, error) {
	args := m.Called(ctx, filter)
	return get[[]*entity.Payment](args, 0), args.Error(1)
}
