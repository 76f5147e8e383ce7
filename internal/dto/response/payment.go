package response

import (
	"time"

	"hotel-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type PaymentRecordedResponse struct {
	PaymentID     int64                `json:"payment_id"`
	TransactionID string               `json:"transaction_id"`
	Status        entity.PaymentStatus `json:"status"`
	OrderSettled  bool                 `json:"order_settled"`
}

type PaymentResponse struct {
	ID            int64                `json:"id"`
	UserID        *int64               `json:"user_id,omitempty"`
	Username      string               `json:"username"`
	Amount        decimal.Decimal      `json:"amount"`
	Method        entity.PaymentMethod `json:"method"`
	TransactionID string               `json:"transaction_id"`
	Status        entity.PaymentStatus `json:"status"`
	OrderID       *int64               `json:"order_id,omitempty"`
	CreatedAt     string               `json:"created_at"`
}

func PaymentToResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		Username:      p.Username,
		Amount:        p.Amount,
		Method:        p.Method,
		TransactionID: p.TransactionID,
		Status:        p.Status,
		OrderID:       p.OrderID,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
