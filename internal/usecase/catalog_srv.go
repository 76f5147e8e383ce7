package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/cache"

	"go.uber.org/zap"
)

const (
	CacheKeyRooms    = "catalog:rooms"
	CacheKeyServices = "catalog:services"
	CacheKeyOffers   = "catalog:offers"
)

type CatalogService interface {
	ListRooms(ctx context.Context) ([]response.RoomResponse, error)
	GetRoom(ctx context.Context, id int64) (*response.RoomResponse, error)
	ListServices(ctx context.Context) ([]response.ServiceResponse, error)
	ListOffers(ctx context.Context) ([]response.OfferResponse, error)
}

type catalogService struct {
	repo  *repository.Repository
	cache *cache.JSONCache
	log   *zap.Logger
}

func NewCatalogService(repo *repository.Repository, cache *cache.JSONCache, log *zap.Logger) CatalogService {
	return &catalogService{
		repo:  repo,
		cache: cache,
		log:   log.With(zap.String("service", "catalog")),
	}
}

// readThrough serves key from the cache or loads and stores it. Cache
// failures are logged and never fail the read.
func readThrough[T any](ctx context.Context, s *catalogService, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	var cached []T
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.Warn("Catalog cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return cached, nil
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, items); err != nil {
		s.log.Warn("Catalog cache write failed", zap.String("key", key), zap.Error(err))
	}

	return items, nil
}

func (s *catalogService) ListRooms(ctx context.Context) ([]response.RoomResponse, error) {
	return readThrough(ctx, s, CacheKeyRooms, func(ctx context.Context) ([]response.RoomResponse, error) {
		rooms, err := s.repo.Room.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list rooms: %w", err)
		}

		out := make([]response.RoomResponse, len(rooms))
		for i, room := range rooms {
			out[i] = response.RoomToResponse(room)
		}
		return out, nil
	})
}

func (s *catalogService) GetRoom(ctx context.Context, id int64) (*response.RoomResponse, error) {
	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room %d", ErrNotFound, id)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *catalogService) ListServices(ctx context.Context) ([]response.ServiceResponse, error) {
	return readThrough(ctx, s, CacheKeyServices, func(ctx context.Context) ([]response.ServiceResponse, error) {
		services, err := s.repo.Catalog.FindAvailableServices(ctx)
		if err != nil {
			return nil, fmt.Errorf("list services: %w", err)
		}

		out := make([]response.ServiceResponse, len(services))
		for i, svc := range services {
			out[i] = response.ServiceToResponse(svc)
		}
		return out, nil
	})
}

func (s *catalogService) ListOffers(ctx context.Context) ([]response.OfferResponse, error) {
	return readThrough(ctx, s, CacheKeyOffers, func(ctx context.Context) ([]response.OfferResponse, error) {
		offers, err := s.repo.Catalog.FindActiveOffers(ctx)
		if err != nil {
			return nil, fmt.Errorf("list offers: %w", err)
		}

		out := make([]response.OfferResponse, len(offers))
		for i, offer := range offers {
			out[i] = response.OfferToResponse(offer)
		}
		return out, nil
	})
}
