package mocks

import (
	"context"

	"hotel-booking/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type CatalogRepository struct {
	mock.Mock
}

func NewCatalogRepository(t testingT) *CatalogRepository {
	m := &CatalogRepository{}
	register(&m.Mock, t)
	return m
}

func (m *CatalogRepository) FindAvailableServices(ctx context.Context) ([]*entity.Service, error) {
	args := m.Called(ctx)
	return get[[]*entity.Service](args, 0), args.Error(1)
}

func (m *CatalogRepository) FindActiveOffers(ctx context.Context) ([]*entity.Offer, error) {
	args := m.Called(ctx)
	return get[[]*entity.Offer](args, 0), args.Error(1)
}
