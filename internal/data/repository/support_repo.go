package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type SupportRepository interface {
	Create(ctx context.Context, ticket *entity.SupportTicket) error
}

type supportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSupportRepository(db database.PgxIface, log *zap.Logger) SupportRepository {
	return &supportRepository{
		db:  db,
		log: log.With(zap.String("repository", "support")),
	}
}

func (r *supportRepository) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	query := `
		INSERT INTO support_tickets (username, message)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, ticket.Username, ticket.Message).Scan(&ticket.ID, &ticket.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create support ticket",
			zap.Error(err),
			zap.String("username", ticket.Username),
		)
		return fmt.Errorf("create support ticket for %s: %w", ticket.Username, err)
	}

	return nil
}
