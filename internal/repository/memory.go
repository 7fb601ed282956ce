package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/ledgerbook/backend/internal/models"
)

// Memory is an in-process store with the same semantics as the PostgreSQL
// repositories. It backs tests and STORAGE_DRIVER=memory.
type Memory struct {
	mu           sync.Mutex
	users        map[int64]models.User
	customers    map[int64]models.Customer
	transactions map[int64]models.Transaction
	nextID       int64
}

func NewMemory() *Memory {
	return &Memory{
		users:        make(map[int64]models.User),
		customers:    make(map[int64]models.Customer),
		transactions: make(map[int64]models.Transaction),
	}
}

// Store exposes m through the repository interfaces.
func (m *Memory) Store() *Store {
	return &Store{
		Users:        memoryUsers{m},
		Customers:    memoryCustomers{m},
		Transactions: memoryTransactions{m},
	}
}

// TransactionCount is the number of stored ledger entries.
func (m *Memory) TransactionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.transactions)
}

func (m *Memory) id() int64 {
	m.nextID++
	return m.nextID
}

type memoryUsers struct{ m *Memory }

func (r memoryUsers) Create(_ context.Context, u *models.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if r.emailTaken(u.Email) {
		return ErrDuplicateEmail
	}
	u.ID = r.m.id()
	r.m.users[u.ID] = *u
	return nil
}

func (r memoryUsers) CreateIfAbsent(ctx context.Context, u *models.User) (bool, error) {
	err := r.Create(ctx, u)
	if err == ErrDuplicateEmail {
		return false, nil
	}
	return err == nil, err
}

func (r memoryUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for _, u := range r.m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r memoryUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	u, ok := r.m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r memoryUsers) emailTaken(email string) bool {
	for _, u := range r.m.users {
		if u.Email == email {
			return true
		}
	}
	return false
}

type memoryCustomers struct{ m *Memory }

func (r memoryCustomers) Create(_ context.Context, c *models.Customer) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	c.ID = r.m.id()
	r.m.customers[c.ID] = *c
	return nil
}

func (r memoryCustomers) ListByUser(_ context.Context, userID int64) ([]models.Customer, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	customers := []models.Customer{}
	for _, c := range r.m.customers {
		if c.UserID == userID {
			customers = append(customers, c)
		}
	}
	sort.Slice(customers, func(i, j int) bool {
		if customers[i].Name != customers[j].Name {
			return customers[i].Name < customers[j].Name
		}
		return customers[i].ID < customers[j].ID
	})
	return customers, nil
}

func (r memoryCustomers) GetForUser(_ context.Context, userID, customerID int64) (*models.Customer, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	c, ok := r.m.customers[customerID]
	if !ok || c.UserID != userID {
		return nil, ErrNotFound
	}
	return &c, nil
}

type memoryTransactions struct{ m *Memory }

func (r memoryTransactions) Create(_ context.Context, tx *models.Transaction) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	tx.ID = r.m.id()
	r.m.transactions[tx.ID] = *tx
	return nil
}

func (r memoryTransactions) Update(_ context.Context, tx *models.Transaction) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	stored, ok := r.m.transactions[tx.ID]
	if !ok {
		return false, nil
	}
	stored.Kind = tx.Kind
	stored.TotalAmount = tx.TotalAmount
	stored.AmountReceived = tx.AmountReceived
	stored.AmountLeft = tx.AmountLeft
	stored.Note = tx.Note
	r.m.transactions[tx.ID] = stored
	return true, nil
}

func (r memoryTransactions) Delete(_ context.Context, id int64) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.transactions[id]; !ok {
		return false, nil
	}
	delete(r.m.transactions, id)
	return true, nil
}

func (r memoryTransactions) GetByID(_ context.Context, id int64) (*models.Transaction, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	tx, ok := r.m.transactions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &tx, nil
}

func (r memoryTransactions) ListByPrefix(_ context.Context, customerID int64, prefix string) ([]models.Transaction, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	transactions := []models.Transaction{}
	for _, tx := range r.m.transactions {
		if tx.CustomerID == customerID && strings.HasPrefix(tx.DateTime.String(), prefix) {
			transactions = append(transactions, tx)
		}
	}
	sort.Slice(transactions, func(i, j int) bool {
		a, b := transactions[i].DateTime.String(), transactions[j].DateTime.String()
		if a != b {
			return a > b
		}
		return transactions[i].ID > transactions[j].ID
	})
	return transactions, nil
}

func (r memoryTransactions) Months(_ context.Context, customerID int64) ([]string, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	seen := make(map[string]struct{})
	for _, tx := range r.m.transactions {
		if tx.CustomerID == customerID {
			seen[tx.DateTime.Month()] = struct{}{}
		}
	}

	months := make([]string, 0, len(seen))
	for month := range seen {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months, nil
}
