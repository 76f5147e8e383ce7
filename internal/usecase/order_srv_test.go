package usecase

import (
	"errors"
	"testing"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/broker"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestPlaceOrder_PartialAcceptance(t *testing.T) {
	repo, m := newRepo(t)
	events := &recordingPublisher{}
	svc := NewOrderService(repo, events, zap.NewNop())

	m.order.On("CreateBatch", ctx, mock.MatchedBy(func(orders []*entity.RoomServiceOrder) bool {
		return len(orders) == 2 &&
			orders[0].ItemName == "Club Sandwich" &&
			orders[0].TotalPrice.Equal(decimal.RequireFromString("25.00")) &&
			orders[1].ItemName == "Espresso" &&
			orders[1].UserID == 42
	})).Run(func(args mock.Arguments) {
		for i, o := range args.Get(1).([]*entity.RoomServiceOrder) {
			o.ID = int64(100 + i)
		}
	}).Return(nil)

	resp, err := svc.PlaceOrder(ctx, alice, &request.PlaceOrderRequest{Items: []request.OrderItemRequest{
		{ItemName: "Club Sandwich", Price: price("12.50"), Quantity: 2},
		{ItemName: "Espresso", Price: price("3.20"), Quantity: 1},
		{ItemName: "Ghost item", Price: price("5.00"), Quantity: 0},
		{ItemName: "Free water", Price: price("0"), Quantity: 1},
		{ItemName: "  ", Price: price("4.00"), Quantity: 1},
		{ItemName: "No price", Quantity: 1},
	}})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Accepted)
	assert.Equal(t, 4, resp.Skipped)
	require.Len(t, resp.Orders, 2)
	assert.Equal(t, int64(100), resp.Orders[0].ID)

	require.Len(t, events.sent, 1)
	assert.Equal(t, broker.RoutingOrderPlaced, events.sent[0].key)
	assert.Equal(t, []int64{100, 101}, events.sent[0].event.(broker.OrderPlacedEvent).OrderIDs)
}

func TestPlaceOrder_AllSkipped(t *testing.T) {
	repo, _ := newRepo(t)
	events := &recordingPublisher{}
	svc := NewOrderService(repo, events, zap.NewNop())

	resp, err := svc.PlaceOrder(ctx, alice, &request.PlaceOrderRequest{Items: []request.OrderItemRequest{
		{ItemName: "Ghost item", Price: price("5.00"), Quantity: 0},
	}})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Accepted)
	assert.Equal(t, 1, resp.Skipped)
	assert.Empty(t, resp.Orders)
	assert.Empty(t, events.sent)
}

func TestPlaceOrder_NoItems(t *testing.T) {
	repo, _ := newRepo(t)
	svc := NewOrderService(repo, nil, zap.NewNop())

	_, err := svc.PlaceOrder(ctx, alice, &request.PlaceOrderRequest{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPlaceOrder_StorageFailure(t *testing.T) {
	repo, m := newRepo(t)
	svc := NewOrderService(repo, nil, zap.NewNop())

	m.order.On("CreateBatch", ctx, mock.Anything).Return(errors.New("tx aborted"))

	_, err := svc.PlaceOrder(ctx, alice, &request.PlaceOrderRequest{Items: []request.OrderItemRequest{
		{ItemName: "Espresso", Price: price("3.20"), Quantity: 1},
	}})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)
}

func TestListOrders(t *testing.T) {
	t.Run("own orders", func(t *testing.T) {
		repo, m := newRepo(t)
		svc := NewOrderService(repo, nil, zap.NewNop())
		m.order.On("FindByUserID", ctx, int64(42)).Return([]*entity.RoomServiceOrder{
			{Base: entity.Base{ID: 7}, UserID: 42, ItemName: "Espresso", Quantity: 1},
		}, nil)

		orders, err := svc.ListOrders(ctx, alice, ptr(int64(42)))
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, int64(7), orders[0].ID)
	})

	t.Run("missing user id", func(t *testing.T) {
		repo, _ := newRepo(t)
		svc := NewOrderService(repo, nil, zap.NewNop())

		_, err := svc.ListOrders(ctx, alice, nil)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("another user", func(t *testing.T) {
		repo, _ := newRepo(t)
		svc := NewOrderService(repo, nil, zap.NewNop())

		_, err := svc.ListOrders(ctx, alice, ptr(int64(7)))
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestDeleteOrder_Idempotent(t *testing.T) {
	repo, m := newRepo(t)
	svc := NewOrderService(repo, nil, zap.NewNop())

	m.order.On("Delete", ctx, int64(7), int64(42)).Return(int64(1), nil).Once()
	m.order.On("Delete", ctx, int64(7), int64(42)).Return(int64(0), nil).Once()

	assert.NoError(t, svc.DeleteOrder(ctx, alice, 7))
	assert.NoError(t, svc.DeleteOrder(ctx, alice, 7))
}

func TestDeleteOrder_MissingID(t *testing.T) {
	repo, _ := newRepo(t)
	svc := NewOrderService(repo, nil, zap.NewNop())

	assert.ErrorIs(t, svc.DeleteOrder(ctx, alice, 0), ErrValidation)
}
