package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type CatalogRepository interface {
	FindAvailableServices(ctx context.Context) ([]*entity.Service, error)
	FindActiveOffers(ctx context.Context) ([]*entity.Offer, error)
}

type catalogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCatalogRepository(db database.PgxIface, log *zap.Logger) CatalogRepository {
	return &catalogRepository{
		db:  db,
		log: log.With(zap.String("repository", "catalog")),
	}
}

func (r *catalogRepository) FindAvailableServices(ctx context.Context) ([]*entity.Service, error) {
	query := `
		SELECT id, name, category, description, price, available
		FROM services
		WHERE available = TRUE
		ORDER BY category, name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list services", zap.Error(err))
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	services := make([]*entity.Service, 0)
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Description, &s.Price, &s.Available); err != nil {
			r.log.Error("Failed to scan service row", zap.Error(err))
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate service rows: %w", err)
	}

	return services, nil
}

func (r *catalogRepository) FindActiveOffers(ctx context.Context) ([]*entity.Offer, error) {
	query := `
		SELECT id, title, description, discount_percent, valid_until, active
		FROM offers
		WHERE active = TRUE AND valid_until >= CURRENT_DATE
		ORDER BY valid_until
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list offers", zap.Error(err))
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	offers := make([]*entity.Offer, 0)
	for rows.Next() {
		var o entity.Offer
		if err := rows.Scan(&o.ID, &o.Title, &o.Description, &o.DiscountPercent, &o.ValidUntil, &o.Active); err != nil {
			r.log.Error("Failed to scan offer row", zap.Error(err))
			return nil, fmt.Errorf("scan offer row: %w", err)
		}
		offers = append(offers, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate offer rows: %w", err)
	}

	return offers, nil
}
