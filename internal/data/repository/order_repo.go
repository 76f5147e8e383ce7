package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	// CreateBatch inserts every order in one transaction and fills in ids.
	CreateBatch(ctx context.Context, orders []*entity.RoomServiceOrder) error
	FindByID(ctx context.Context, id int64) (*entity.RoomServiceOrder, error)
	FindByUserID(ctx context.Context, userID int64) ([]*entity.RoomServiceOrder, error)
	// Delete removes the order only when it belongs to userID. Returns the
	// number of rows removed; zero is not an error.
	Delete(ctx context.Context, id, userID int64) (int64, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "room_service_order")),
	}
}

func (r *orderRepository) CreateBatch(ctx context.Context, orders []*entity.RoomServiceOrder) (err error) {
	if len(orders) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin order transaction", zap.Error(err))
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	query := `
		INSERT INTO room_service_orders (user_id, username, item_name, unit_price, quantity, total_price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	for _, o := range orders {
		err = tx.QueryRow(ctx, query,
			o.UserID,
			o.Username,
			o.ItemName,
			o.UnitPrice,
			o.Quantity,
			o.TotalPrice,
		).Scan(&o.ID, &o.CreatedAt)
		if err != nil {
			r.log.Error("Failed to insert order item",
				zap.Error(err),
				zap.Int64("user_id", o.UserID),
				zap.String("item_name", o.ItemName),
			)
			return fmt.Errorf("insert order item %q: %w", o.ItemName, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit order transaction", zap.Error(err))
		return fmt.Errorf("commit order transaction: %w", err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (*entity.RoomServiceOrder, error) {
	query := `
		SELECT id, user_id, username, item_name, unit_price, quantity, total_price, created_at
		FROM room_service_orders
		WHERE id = $1
	`

	var o entity.RoomServiceOrder
	err := r.db.QueryRow(ctx, query, id).Scan(
		&o.ID,
		&o.UserID,
		&o.Username,
		&o.ItemName,
		&o.UnitPrice,
		&o.Quantity,
		&o.TotalPrice,
		&o.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID", zap.Error(err), zap.Int64("order_id", id))
		return nil, fmt.Errorf("find order by ID %d: %w", id, err)
	}

	return &o, nil
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.RoomServiceOrder, error) {
	query := `
		SELECT id, user_id, username, item_name, unit_price, quantity, total_price, created_at
		FROM room_service_orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list orders", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("list orders for user %d: %w", userID, err)
	}
	defer rows.Close()

	orders := make([]*entity.RoomServiceOrder, 0)
	for rows.Next() {
		var o entity.RoomServiceOrder
		err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.Username,
			&o.ItemName,
			&o.UnitPrice,
			&o.Quantity,
			&o.TotalPrice,
			&o.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) Delete(ctx context.Context, id, userID int64) (int64, error) {
	query := `DELETE FROM room_service_orders WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.Int64("order_id", id),
			zap.Int64("user_id", userID),
		)
		return 0, fmt.Errorf("delete order %d: %w", id, err)
	}

	return result.RowsAffected(), nil
}
