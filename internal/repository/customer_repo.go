package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ledgerbook/backend/internal/models"
)

type PostgresCustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{db: db}
}

func (r *PostgresCustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO customers (user_id, name) VALUES ($1, $2) RETURNING id`,
		c.UserID, c.Name,
	).Scan(&c.ID)
}

func (r *PostgresCustomerRepository) ListByUser(ctx context.Context, userID int64) ([]models.Customer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name FROM customers WHERE user_id = $1 ORDER BY name COLLATE "C", id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *PostgresCustomerRepository) GetForUser(ctx context.Context, userID, customerID int64) (*models.Customer, error) {
	var c models.Customer
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name FROM customers WHERE id = $1 AND user_id = $2`,
		customerID, userID,
	).Scan(&c.ID, &c.UserID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
