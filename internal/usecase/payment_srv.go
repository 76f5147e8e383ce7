package usecase

import (
	"context"
	"errors"
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

const (
	paymentHistoryLimit = 50
	txnIDAttempts       = 3
)

type PaymentService interface {
	RecordPayment(ctx context.Context, identity utils.Identity, req *request.RecordPaymentRequest) (*response.PaymentRecordedResponse, error)
	ListPayments(ctx context.Context, identity utils.Identity, req *request.ListPaymentsRequest) ([]response.PaymentResponse, error)
}

type paymentService struct {
	repo   *repository.Repository
	events broker.Publisher
	newTxn func() string
	log    *zap.Logger
}

func NewPaymentService(repo *repository.Repository, events broker.Publisher, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:   repo,
		events: events,
		newTxn: utils.GenerateTransactionID,
		log:    log.With(zap.String("service", "payment")),
	}
}

// RecordPayment runs a two-step saga. The payment insert is the primary
// effect and must succeed. Settling the referenced room-service order is
// secondary: an order that is missing, belongs to someone else, or fails to
// delete leaves order_settled false and never fails the payment.
func (s *paymentService) RecordPayment(ctx context.Context, identity utils.Identity, req *request.RecordPaymentRequest) (*response.PaymentRecordedResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Method = strings.ToLower(strings.TrimSpace(req.Method))

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Record payment validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	amount := req.Amount.Round(2)
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than 0", ErrValidation)
	}

	username := displayName(identity.Name, identity.Email)
	if username == "" {
		username = req.Username
	}
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}

	owned := s.ownsOrder(ctx, identity, req.OrderID)

	payment := &entity.Payment{
		UserID:   &identity.UserID,
		Username: username,
		Amount:   amount,
		Method:   entity.PaymentMethod(req.Method),
		Status:   entity.PaymentStatusCompleted,
	}
	if owned {
		payment.OrderID = req.OrderID
	}

	if err := s.insertPayment(ctx, payment); err != nil {
		return nil, err
	}

	settled := false
	if owned {
		settled = s.settleOrder(ctx, identity, *req.OrderID, payment.ID)
	}

	s.log.Info("Payment recorded",
		zap.Int64("payment_id", payment.ID),
		zap.String("transaction_id", payment.TransactionID),
		zap.Int64("user_id", identity.UserID),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("method", req.Method),
		zap.Bool("order_settled", settled),
	)

	publishEvent(ctx, s.events, s.log, broker.RoutingPaymentRecorded, broker.PaymentRecordedEvent{
		PaymentID:     payment.ID,
		TransactionID: payment.TransactionID,
		UserID:        identity.UserID,
		Amount:        amount,
		Method:        req.Method,
		OrderID:       req.OrderID,
		OrderSettled:  settled,
	})

	return &response.PaymentRecordedResponse{
		PaymentID:     payment.ID,
		TransactionID: payment.TransactionID,
		Status:        payment.Status,
		OrderSettled:  settled,
	}, nil
}

// insertPayment retries with a fresh transaction id if one ever collides.
func (s *paymentService) insertPayment(ctx context.Context, payment *entity.Payment) error {
	var err error
	for attempt := 1; attempt <= txnIDAttempts; attempt++ {
		payment.TransactionID = s.newTxn()

		err = s.repo.Payment.Create(ctx, payment)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicate) {
			return fmt.Errorf("record payment: %w", err)
		}

		s.log.Warn("Transaction id collision, regenerating",
			zap.String("transaction_id", payment.TransactionID),
			zap.Int("attempt", attempt))
	}
	return fmt.Errorf("record payment: %w", err)
}

func (s *paymentService) ownsOrder(ctx context.Context, identity utils.Identity, orderID *int64) bool {
	if orderID == nil {
		return false
	}

	order, err := s.repo.Order.FindByID(ctx, *orderID)
	if err != nil {
		s.log.Warn("Order lookup failed, payment will not settle it",
			zap.Int64("order_id", *orderID),
			zap.Error(err))
		return false
	}
	if order == nil || order.UserID != identity.UserID {
		s.log.Warn("Order not owned by payer, skipping settlement",
			zap.Int64("order_id", *orderID),
			zap.Int64("user_id", identity.UserID))
		return false
	}

	return true
}

func (s *paymentService) settleOrder(ctx context.Context, identity utils.Identity, orderID, paymentID int64) bool {
	removed, err := s.repo.Order.Delete(ctx, orderID, identity.UserID)
	if err != nil {
		s.log.Warn("Failed to retire paid order",
			zap.Int64("order_id", orderID),
			zap.Int64("payment_id", paymentID),
			zap.Error(err))
		return false
	}
	return removed > 0
}

func (s *paymentService) ListPayments(ctx context.Context, identity utils.Identity, req *request.ListPaymentsRequest) ([]response.PaymentResponse, error) {
	req.Username = strings.TrimSpace(req.Username)

	switch {
	case req.UserID == nil && req.Username == "":
		return nil, fmt.Errorf("%w: user_id or username is required", ErrValidation)
	case req.UserID != nil && *req.UserID != identity.UserID:
		return nil, fmt.Errorf("%w: cannot list payments of another user", ErrForbidden)
	case req.UserID == nil && !strings.EqualFold(req.Username, displayName(identity.Name, identity.Email)):
		return nil, fmt.Errorf("%w: cannot list payments of another user", ErrForbidden)
	}

	payments, err := s.repo.Payment.FindRecent(ctx, entity.PaymentFilter{
		UserID: identity.UserID,
		Limit:  paymentHistoryLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	out := make([]response.PaymentResponse, len(payments))
	for i, p := range payments {
		out[i] = response.PaymentToResponse(p)
	}
	return out, nil
}
