package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order on every start; each statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		date_time TEXT NOT NULL,
		type TEXT NOT NULL,
		total_amount NUMERIC NOT NULL DEFAULT 0,
		amount_received NUMERIC NOT NULL DEFAULT 0,
		amount_left NUMERIC NOT NULL DEFAULT 0,
		note TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_customers_user_name ON customers (user_id, name COLLATE "C")`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_customer_date ON transactions (customer_id, date_time)`,
}

// Migrate creates the tables and indexes the repositories expect.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
