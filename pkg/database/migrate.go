package database

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         BIGSERIAL PRIMARY KEY,
		name       VARCHAR(100) NOT NULL,
		email      VARCHAR(255) NOT NULL UNIQUE,
		password   VARCHAR(255) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		id              BIGSERIAL PRIMARY KEY,
		room_number     VARCHAR(10) NOT NULL UNIQUE,
		room_type       VARCHAR(20) NOT NULL CHECK (room_type IN ('standard', 'deluxe', 'suite')),
		price_per_night NUMERIC(10,2) NOT NULL CHECK (price_per_night > 0),
		description     TEXT NOT NULL DEFAULT '',
		capacity        INT NOT NULL DEFAULT 2,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id               BIGSERIAL PRIMARY KEY,
		user_id          BIGINT NOT NULL,
		username         VARCHAR(100) NOT NULL,
		room_id          BIGINT NOT NULL,
		room_type        VARCHAR(20) NOT NULL,
		check_in         DATE NOT NULL,
		check_out        DATE NOT NULL,
		nights           INT NOT NULL CHECK (nights > 0),
		guest_count      INT NOT NULL CHECK (guest_count >= 1),
		total_amount     NUMERIC(12,2) NOT NULL,
		special_requests TEXT,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (check_out > check_in)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS room_service_orders (
		id          BIGSERIAL PRIMARY KEY,
		user_id     BIGINT NOT NULL,
		username    VARCHAR(100) NOT NULL,
		item_name   VARCHAR(150) NOT NULL,
		unit_price  NUMERIC(10,2) NOT NULL CHECK (unit_price > 0),
		quantity    INT NOT NULL CHECK (quantity >= 1),
		total_price NUMERIC(12,2) NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_user ON room_service_orders (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id             BIGSERIAL PRIMARY KEY,
		user_id        BIGINT,
		username       VARCHAR(100) NOT NULL,
		amount         NUMERIC(12,2) NOT NULL CHECK (amount > 0),
		method         VARCHAR(20) NOT NULL CHECK (method IN ('card', 'paypal', 'bank', 'cash')),
		transaction_id VARCHAR(40) NOT NULL UNIQUE,
		status         VARCHAR(20) NOT NULL,
		order_id       BIGINT,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payments_user ON payments (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT,
		user_name  VARCHAR(100) NOT NULL,
		rating     INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment    TEXT NOT NULL,
		category   VARCHAR(20) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS support_tickets (
		id         BIGSERIAL PRIMARY KEY,
		username   VARCHAR(100) NOT NULL,
		message    TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id          BIGSERIAL PRIMARY KEY,
		name        VARCHAR(100) NOT NULL,
		category    VARCHAR(50) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price       NUMERIC(10,2) NOT NULL,
		available   BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS offers (
		id               BIGSERIAL PRIMARY KEY,
		title            VARCHAR(150) NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		discount_percent INT NOT NULL CHECK (discount_percent BETWEEN 0 AND 100),
		valid_until      DATE NOT NULL,
		active           BOOLEAN NOT NULL DEFAULT TRUE
	)`,
}

// seeds only run against empty tables.
var seeds = []struct {
	table string
	sql   string
}{
	{"rooms", `INSERT INTO rooms (room_number, room_type, price_per_night, description, capacity) VALUES
		('101', 'standard', 149.00, 'Queen bed, city view', 2),
		('102', 'standard', 149.00, 'Two single beds, garden view', 2),
		('201', 'deluxe', 249.00, 'King bed, balcony', 3),
		('202', 'deluxe', 249.00, 'King bed, sea view', 3),
		('301', 'suite', 399.00, 'Separate living room, jacuzzi', 4)`},
	{"services", `INSERT INTO services (name, category, description, price) VALUES
		('Airport Transfer', 'transport', 'Private car to or from the airport', 45.00),
		('Laundry', 'housekeeping', 'Same-day wash and fold', 20.00),
		('Spa Massage', 'wellness', 'Sixty minute full body massage', 90.00),
		('Breakfast Buffet', 'dining', 'Daily buffet breakfast', 25.00)`},
	{"offers", `INSERT INTO offers (title, description, discount_percent, valid_until) VALUES
		('Early Bird', 'Book 30 days ahead', 15, CURRENT_DATE + INTERVAL '180 days'),
		('Weekend Escape', 'Two nights Friday to Sunday', 10, CURRENT_DATE + INTERVAL '90 days'),
		('Long Stay', 'Seven nights or more', 20, CURRENT_DATE + INTERVAL '365 days')`},
}

// Migrate creates the schema and seeds the catalog tables. It is safe to run on every boot.
func Migrate(ctx context.Context, db PgxIface) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	for _, seed := range seeds {
		var count int
		if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM "+seed.table).Scan(&count); err != nil {
			return fmt.Errorf("count %s: %w", seed.table, err)
		}
		if count > 0 {
			continue
		}
		if _, err := db.Exec(ctx, seed.sql); err != nil {
			return fmt.Errorf("seed %s: %w", seed.table, err)
		}
	}

	return nil
}
