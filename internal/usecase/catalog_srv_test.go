package usecase

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const catalogTTL = time.Minute

func seededRooms() []*entity.Room {
	return []*entity.Room{
		{Base: entity.Base{ID: 1}, RoomNumber: "101", RoomType: entity.RoomTypeStandard, PricePerNight: decimal.NewFromInt(149), Capacity: 2},
		{Base: entity.Base{ID: 3}, RoomNumber: "201", RoomType: entity.RoomTypeDeluxe, PricePerNight: decimal.NewFromInt(249), Capacity: 3},
	}
}

func roomsJSON(t *testing.T) string {
	t.Helper()
	out := make([]response.RoomResponse, 0)
	for _, r := range seededRooms() {
		out = append(out, response.RoomToResponse(r))
	}
	b, err := json.Marshal(out)
	require.NoError(t, err)
	return string(b)
}

func TestListRooms_CacheMiss(t *testing.T) {
	repo, m := newRepo(t)
	rdb, rmock := redismock.NewClientMock()
	svc := NewCatalogService(repo, cache.NewJSONCache(rdb, catalogTTL, zap.NewNop()), zap.NewNop())

	rmock.ExpectGet(CacheKeyRooms).RedisNil()
	rmock.ExpectSet(CacheKeyRooms, roomsJSON(t), catalogTTL).SetVal("OK")
	m.room.On("FindAll", ctx).Return(seededRooms(), nil)

	rooms, err := svc.ListRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "Deluxe Room", rooms[1].Label)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestListRooms_CacheHit(t *testing.T) {
	repo, _ := newRepo(t)
	rdb, rmock := redismock.NewClientMock()
	svc := NewCatalogService(repo, cache.NewJSONCache(rdb, catalogTTL, zap.NewNop()), zap.NewNop())

	rmock.ExpectGet(CacheKeyRooms).SetVal(roomsJSON(t))

	rooms, err := svc.ListRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "101", rooms[0].RoomNumber)
	assert.True(t, rooms[1].PricePerNight.Equal(decimal.NewFromInt(249)))
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestListRooms_CacheDown(t *testing.T) {
	repo, m := newRepo(t)
	rdb, rmock := redismock.NewClientMock()
	svc := NewCatalogService(repo, cache.NewJSONCache(rdb, catalogTTL, zap.NewNop()), zap.NewNop())

	rmock.ExpectGet(CacheKeyRooms).SetErr(errors.New("connection refused"))
	rmock.ExpectSet(CacheKeyRooms, roomsJSON(t), catalogTTL).SetErr(errors.New("connection refused"))
	m.room.On("FindAll", ctx).Return(seededRooms(), nil)

	rooms, err := svc.ListRooms(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestListRooms_NoCache(t *testing.T) {
	repo, m := newRepo(t)
	svc := NewCatalogService(repo, cache.NewJSONCache(nil, catalogTTL, zap.NewNop()), zap.NewNop())

	m.room.On("FindAll", ctx).Return(seededRooms(), nil).Twice()

	for i := 0; i < 2; i++ {
		rooms, err := svc.ListRooms(ctx)
		require.NoError(t, err)
		assert.Len(t, rooms, 2)
	}
}

func TestGetRoom(t *testing.T) {
	repo, m := newRepo(t)
	svc := NewCatalogService(repo, nil, zap.NewNop())

	m.room.On("FindByID", ctx, int64(3)).Return(seededRooms()[1], nil)
	m.room.On("FindByID", ctx, int64(404)).Return(nil, nil)

	room, err := svc.GetRoom(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "201", room.RoomNumber)

	_, err = svc.GetRoom(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListServicesAndOffers(t *testing.T) {
	repo, m := newRepo(t)
	svc := NewCatalogService(repo, nil, zap.NewNop())

	m.catalog.On("FindAvailableServices", ctx).Return([]*entity.Service{
		{ID: 1, Name: "Spa", Category: "wellness", Price: decimal.NewFromInt(80), Available: true},
	}, nil)
	m.catalog.On("FindActiveOffers", ctx).Return([]*entity.Offer{
		{ID: 1, Title: "Winter Escape", DiscountPercent: 20, ValidUntil: time.Date(2030, 1, 31, 0, 0, 0, 0, time.UTC), Active: true},
	}, nil)

	services, err := svc.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Spa", services[0].Name)

	offers, err := svc.ListOffers(ctx)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "2030-01-31", offers[0].ValidUntil)
}
