package request

import "github.com/shopspring/decimal"

type RecordPaymentRequest struct {
	// Username is a display fallback when the token carries no name.
	Username string           `json:"username,omitempty" validate:"omitempty,max=100"`
	Amount   *decimal.Decimal `json:"amount" validate:"required"`
	Method   string           `json:"method" validate:"required,oneof=card paypal bank cash"`
	OrderID  *int64           `json:"order_id,omitempty" validate:"omitempty,gt=0"`
}

type ListPaymentsRequest struct {
	UserID   *int64
	Username string
}
