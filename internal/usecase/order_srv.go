package usecase

import (
	"context"
	"fmt"
	"strings"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/broker"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, identity utils.Identity, req *request.PlaceOrderRequest) (*response.PlaceOrderResponse, error)
	ListOrders(ctx context.Context, identity utils.Identity, userID *int64) ([]response.OrderResponse, error)
	DeleteOrder(ctx context.Context, identity utils.Identity, orderID int64) error
}

type orderService struct {
	repo   *repository.Repository
	events broker.Publisher
	log    *zap.Logger
}

func NewOrderService(repo *repository.Repository, events broker.Publisher, log *zap.Logger) OrderService {
	return &orderService{
		repo:   repo,
		events: events,
		log:    log.With(zap.String("service", "room_service")),
	}
}

// PlaceOrder stores every acceptable item as its own row. Items without a
// name, without a positive price, or with quantity < 1 are skipped and the
// call still succeeds.
func (s *orderService) PlaceOrder(ctx context.Context, identity utils.Identity, req *request.PlaceOrderRequest) (*response.PlaceOrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Place order validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	username := displayName(identity.Name, identity.Email)
	orders := make([]*entity.RoomServiceOrder, 0, len(req.Items))

	for _, item := range req.Items {
		name := strings.TrimSpace(item.ItemName)
		if name == "" || item.Price == nil || !item.Price.IsPositive() || item.Quantity < 1 {
			continue
		}

		orders = append(orders, &entity.RoomServiceOrder{
			UserID:     identity.UserID,
			Username:   username,
			ItemName:   name,
			UnitPrice:  *item.Price,
			Quantity:   item.Quantity,
			TotalPrice: utils.LineTotal(*item.Price, item.Quantity),
		})
	}

	skipped := len(req.Items) - len(orders)

	if len(orders) > 0 {
		if err := s.repo.Order.CreateBatch(ctx, orders); err != nil {
			return nil, fmt.Errorf("place order: %w", err)
		}
	}

	s.log.Info("Room service order placed",
		zap.Int64("user_id", identity.UserID),
		zap.Int("accepted", len(orders)),
		zap.Int("skipped", skipped),
	)

	resp := &response.PlaceOrderResponse{
		Accepted: len(orders),
		Skipped:  skipped,
		Orders:   make([]response.OrderResponse, len(orders)),
	}
	ids := make([]int64, len(orders))
	for i, o := range orders {
		resp.Orders[i] = response.OrderToResponse(o)
		ids[i] = o.ID
	}

	if len(orders) > 0 {
		publishEvent(ctx, s.events, s.log, broker.RoutingOrderPlaced, broker.OrderPlacedEvent{
			UserID:   identity.UserID,
			OrderIDs: ids,
			Accepted: len(orders),
			Skipped:  skipped,
		})
	}

	return resp, nil
}

func (s *orderService) ListOrders(ctx context.Context, identity utils.Identity, userID *int64) ([]response.OrderResponse, error) {
	if userID == nil {
		return nil, fmt.Errorf("%w: user_id is required", ErrValidation)
	}
	if *userID != identity.UserID {
		s.log.Warn("Order listing for another user rejected",
			zap.Int64("caller_id", identity.UserID),
			zap.Int64("user_id", *userID))
		return nil, fmt.Errorf("%w: cannot list orders of another user", ErrForbidden)
	}

	orders, err := s.repo.Order.FindByUserID(ctx, *userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	out := make([]response.OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = response.OrderToResponse(o)
	}
	return out, nil
}

// DeleteOrder is idempotent. Deleting a missing order, or one that belongs
// to someone else, affects no rows and is not an error.
func (s *orderService) DeleteOrder(ctx context.Context, identity utils.Identity, orderID int64) error {
	if orderID < 1 {
		return fmt.Errorf("%w: order_id is required", ErrValidation)
	}

	removed, err := s.repo.Order.Delete(ctx, orderID, identity.UserID)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	s.log.Info("Room service order deleted",
		zap.Int64("order_id", orderID),
		zap.Int64("user_id", identity.UserID),
		zap.Int64("removed", removed),
	)
	return nil
}
