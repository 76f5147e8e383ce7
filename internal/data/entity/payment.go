package entity

import (
	"github.com/shopspring/decimal"
)

type PaymentStatus string

// Payments are recorded, never updated, so completed is the only status written.
const PaymentStatusCompleted PaymentStatus = "completed"

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodPaypal PaymentMethod = "paypal"
	PaymentMethodBank   PaymentMethod = "bank"
	PaymentMethodCash   PaymentMethod = "cash"
)

type Payment struct {
	Base
	UserID        *int64          `db:"user_id"`
	Username      string          `db:"username"`
	Amount        decimal.Decimal `db:"amount"`
	Method        PaymentMethod   `db:"method"`
	TransactionID string          `db:"transaction_id"`
	Status        PaymentStatus   `db:"status"`
	OrderID       *int64          `db:"order_id"`
}

type PaymentFilter struct {
	UserID int64
	Limit  int
}
