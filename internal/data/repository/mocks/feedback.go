package mocks

import (
	"context"

	"hotel-booking/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type FeedbackRepository struct {
	mock.Mock
}

func NewFeedbackRepository(t testingT) *FeedbackRepository {
	m := &FeedbackRepository{}
	register(&m.Mock, t)
	return m
}

func (m *FeedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	return m.Called(ctx, feedback).Error(0)
}

func (m *FeedbackRepository) FindAll(ctx context.Context) ([]*entity.Feedback, error) {
	args := m.Called(ctx)
	return get[[]*entity.Feedback](args, 0), args.Error(1)
}

type SupportRepository struct {
	mock.Mock
}

func NewSupportRepository(t testingT) *SupportRepository {
	m := &SupportRepository{}
	register(&m.Mock, t)
	return m
}

func (m *SupportRepository) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	return m.Called(ctx, ticket).Error(0)
}
