package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindRecent(ctx context.Context, filter entity.PaymentFilter) ([]*entity.Payment, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (user_id, username, amount, method, transaction_id, status, order_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		payment.UserID,
		payment.Username,
		payment.Amount,
		payment.Method,
		payment.TransactionID,
		payment.Status,
		payment.OrderID,
	).Scan(&payment.ID, &payment.CreatedAt)

	if isUniqueViolation(err) {
		return fmt.Errorf("create payment %s: %w", payment.TransactionID, ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("username", payment.Username),
			zap.String("transaction_id", payment.TransactionID),
		)
		return fmt.Errorf("create payment %s: %w", payment.TransactionID, err)
	}

	return nil
}

// FindRecent returns a payer's latest payments, newest first.
func (r *paymentRepository) FindRecent(ctx context.Context, filter entity.PaymentFilter) ([]*entity.Payment, error) {
	query := `
		SELECT id, user_id, username, amount, method, transaction_id, status, order_id, created_at
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, filter.UserID, filter.Limit)
	if err != nil {
		r.log.Error("Failed to list payments", zap.Error(err), zap.Int64("user_id", filter.UserID))
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	payments := make([]*entity.Payment, 0)
	for rows.Next() {
		var p entity.Payment
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Username,
			&p.Amount,
			&p.Method,
			&p.TransactionID,
			&p.Status,
			&p.OrderID,
			&p.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment rows: %w", err)
	}

	return payments, nil
}
