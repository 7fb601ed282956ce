// Package repository persists users, customers and ledger entries.
//
// Every method is a single statement against the store; callers never hold a
// connection or a database transaction across two calls.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ledgerbook/backend/internal/models"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserRepository interface {
	// Create inserts u and sets its ID. ErrDuplicateEmail when the email exists.
	Create(ctx context.Context, u *models.User) error
	// CreateIfAbsent inserts u unless the email exists and reports whether it did.
	CreateIfAbsent(ctx context.Context, u *models.User) (bool, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *models.Customer) error
	// ListByUser returns the user's customers ordered by name.
	ListByUser(ctx context.Context, userID int64) ([]models.Customer, error)
	// GetForUser returns ErrNotFound when the customer belongs to someone else.
	GetForUser(ctx context.Context, userID, customerID int64) (*models.Customer, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	// Update rewrites kind, amounts and note and reports whether a row matched.
	Update(ctx context.Context, tx *models.Transaction) (bool, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	// ListByPrefix returns the customer's entries whose stored timestamp text
	// starts with prefix, newest first. An empty prefix matches everything.
	ListByPrefix(ctx context.Context, customerID int64, prefix string) ([]models.Transaction, error)
	// Months returns the distinct YYYY-MM values, newest first.
	Months(ctx context.Context, customerID int64) ([]string, error)
}

// Store bundles the repositories the services need.
type Store struct {
	Users        UserRepository
	Customers    CustomerRepository
	Transactions TransactionRepository
}

// NewPostgres wires the PostgreSQL repositories onto one pool.
func NewPostgres(db *sql.DB) *Store {
	return &Store{
		Users:        NewUserRepository(db),
		Customers:    NewCustomerRepository(db),
		Transactions: NewTransactionRepository(db),
	}
}
