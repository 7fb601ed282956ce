package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ledgerbook/backend/internal/models"
)

type PostgresTransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

const transactionColumns = `id, customer_id, date_time, type, total_amount, amount_received, amount_left, COALESCE(note, '')`

func (r *PostgresTransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO transactions (customer_id, date_time, type, total_amount, amount_received, amount_left, note)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		tx.CustomerID, tx.DateTime, string(tx.Kind), tx.TotalAmount, tx.AmountReceived, tx.AmountLeft, tx.Note,
	).Scan(&tx.ID)
}

func (r *PostgresTransactionRepository) Update(ctx context.Context, tx *models.Transaction) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE transactions
		 SET type = $1, total_amount = $2, amount_received = $3, amount_left = $4, note = $5
		 WHERE id = $6`,
		string(tx.Kind), tx.TotalAmount, tx.AmountReceived, tx.AmountLeft, tx.Note, tx.ID)
	if err != nil {
		return false, err
	}
	return affected(result)
}

func (r *PostgresTransactionRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return affected(result)
}

func (r *PostgresTransactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)

	tx, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (r *PostgresTransactionRepository) ListByPrefix(ctx context.Context, customerID int64, prefix string) ([]models.Transaction, error) {
	// prefixes are digits and dashes only, so no LIKE escaping is needed
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+transactionColumns+`
		 FROM transactions
		 WHERE customer_id = $1 AND date_time LIKE $2
		 ORDER BY date_time DESC, id DESC`,
		customerID, prefix+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *tx)
	}
	return transactions, rows.Err()
}

func (r *PostgresTransactionRepository) Months(ctx context.Context, customerID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT substr(date_time, 1, 7) AS month
		 FROM transactions
		 WHERE customer_id = $1
		 ORDER BY month DESC`,
		customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	months := []string{}
	for rows.Next() {
		var month string
		if err := rows.Scan(&month); err != nil {
			return nil, err
		}
		months = append(months, month)
	}
	return months, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(s scanner) (*models.Transaction, error) {
	var (
		tx   models.Transaction
		kind string
	)
	err := s.Scan(&tx.ID, &tx.CustomerID, &tx.DateTime, &kind,
		&tx.TotalAmount, &tx.AmountReceived, &tx.AmountLeft, &tx.Note)
	if err != nil {
		return nil, err
	}
	tx.Kind = models.Kind(kind)
	return &tx, nil
}

func affected(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
