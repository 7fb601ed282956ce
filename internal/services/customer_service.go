package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/repository"
)

// CustomerService manages each user's private customer list.
type CustomerService struct {
	customers repository.CustomerRepository
}

func NewCustomerService(customers repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// List returns the user's customers sorted by name.
func (s *CustomerService) List(ctx context.Context, userID int64) ([]models.Customer, error) {
	return s.customers.ListByUser(ctx, userID)
}

// Add stores a customer under the trimmed name. Duplicate names are allowed.
func (s *CustomerService) Add(ctx context.Context, userID int64, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrEmptyName
	}

	c := &models.Customer{UserID: userID, Name: name}
	if err := s.customers.Create(ctx, c); err != nil {
		return 0, fmt.Errorf("create customer: %w", err)
	}
	return c.ID, nil
}

// Get returns ErrNotFound unless the customer exists and belongs to userID.
func (s *CustomerService) Get(ctx context.Context, userID, customerID int64) (*models.Customer, error) {
	c, err := s.customers.GetForUser(ctx, userID, customerID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return c, err
}
