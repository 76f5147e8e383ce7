package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	FindAll(ctx context.Context) ([]*entity.Room, error)
	FindByID(ctx context.Context, id int64) (*entity.Room, error)
	// FindFirstByType returns the cheapest room of the given type.
	FindFirstByType(ctx context.Context, roomType entity.RoomType) (*entity.Room, error)
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const roomColumns = `id, room_number, room_type, price_per_night, description, capacity, created_at`

func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY price_per_night, room_number`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	rooms := make([]*entity.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate room rows: %w", err)
	}

	return rooms, nil
}

func (r *roomRepository) FindByID(ctx context.Context, id int64) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	room, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID", zap.Error(err), zap.Int64("room_id", id))
		return nil, fmt.Errorf("find room by ID %d: %w", id, err)
	}

	return room, nil
}

func (r *roomRepository) FindFirstByType(ctx context.Context, roomType entity.RoomType) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE room_type = $1 ORDER BY price_per_night, room_number LIMIT 1`

	room, err := scanRoom(r.db.QueryRow(ctx, query, roomType))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by type", zap.Error(err), zap.String("room_type", string(roomType)))
		return nil, fmt.Errorf("find room by type %s: %w", roomType, err)
	}

	return room, nil
}

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var room entity.Room
	err := row.Scan(
		&room.ID,
		&room.RoomNumber,
		&room.RoomType,
		&room.PricePerNight,
		&room.Description,
		&room.Capacity,
		&room.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}
