package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/logger"
	"github.com/ledgerbook/backend/internal/metrics"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/repository"
)

// AllMonths disables month filtering.
const AllMonths = "All"

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// TransactionInput carries every rewritable field of a ledger entry.
type TransactionInput struct {
	Kind           models.Kind
	TotalAmount    decimal.Decimal
	AmountReceived decimal.Decimal
	Note           string
}

func (in TransactionInput) validate() error {
	if !in.Kind.Valid() {
		return ErrInvalidKind
	}
	if !in.TotalAmount.IsPositive() {
		return ErrInvalidAmount
	}
	if in.AmountReceived.IsNegative() {
		return ErrNegativeReceived
	}
	return nil
}

type LedgerOption func(*LedgerService)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) LedgerOption {
	return func(s *LedgerService) {
		s.now = now
	}
}

// LedgerService keeps the per-customer transaction history. It is stateless;
// ownership of the customer is checked by the caller.
type LedgerService struct {
	transactions repository.TransactionRepository
	now          func() time.Time
	log          *slog.Logger
}

func NewLedgerService(transactions repository.TransactionRepository, opts ...LedgerOption) *LedgerService {
	s := &LedgerService{
		transactions: transactions,
		now:          time.Now,
		log:          logger.Component("LEDGER"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NormalizeMonth maps the accepted month filter spellings to a timestamp
// prefix; the empty string means no filter.
func NormalizeMonth(month string) (string, error) {
	switch month {
	case "", AllMonths, "All Months":
		return "", nil
	}
	if !monthPattern.MatchString(month) {
		return "", ErrInvalidMonth
	}
	return month, nil
}

// List returns the customer's entries newest first, optionally restricted to
// one YYYY-MM month by prefix match on the stored timestamp.
func (s *LedgerService) List(ctx context.Context, customerID int64, month string) ([]models.Transaction, error) {
	prefix, err := NormalizeMonth(month)
	if err != nil {
		return nil, err
	}
	return s.transactions.ListByPrefix(ctx, customerID, prefix)
}

// ListToday returns the entries stamped with today's local date.
func (s *LedgerService) ListToday(ctx context.Context, customerID int64) ([]models.TodayEntry, error) {
	today := s.now().Format("2006-01-02")

	transactions, err := s.transactions.ListByPrefix(ctx, customerID, today)
	if err != nil {
		return nil, err
	}

	entries := make([]models.TodayEntry, 0, len(transactions))
	for _, tx := range transactions {
		entries = append(entries, models.TodayEntry{
			DateTime:    tx.DateTime,
			Kind:        tx.Kind,
			TotalAmount: tx.TotalAmount,
		})
	}
	return entries, nil
}

// Add records a new entry stamped with the current time.
func (s *LedgerService) Add(ctx context.Context, customerID int64, in TransactionInput) (int64, error) {
	if err := in.validate(); err != nil {
		metrics.LedgerOperations.WithLabelValues("add", "rejected").Inc()
		return 0, err
	}

	tx := &models.Transaction{
		CustomerID:     customerID,
		DateTime:       models.NewTimestamp(s.now()),
		Kind:           in.Kind,
		TotalAmount:    in.TotalAmount,
		AmountReceived: in.AmountReceived,
		AmountLeft:     in.TotalAmount.Sub(in.AmountReceived),
		Note:           in.Note,
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		metrics.LedgerOperations.WithLabelValues("add", "error").Inc()
		return 0, fmt.Errorf("create transaction: %w", err)
	}

	metrics.LedgerOperations.WithLabelValues("add", "ok").Inc()
	s.log.Info("transaction added", "transaction_id", tx.ID, "customer_id", customerID, "type", tx.Kind)
	return tx.ID, nil
}

// Update overwrites kind, amounts and note. Updating an id that does not
// exist is a no-op, not an error.
func (s *LedgerService) Update(ctx context.Context, id int64, in TransactionInput) error {
	if err := in.validate(); err != nil {
		metrics.LedgerOperations.WithLabelValues("update", "rejected").Inc()
		return err
	}

	found, err := s.transactions.Update(ctx, &models.Transaction{
		ID:             id,
		Kind:           in.Kind,
		TotalAmount:    in.TotalAmount,
		AmountReceived: in.AmountReceived,
		AmountLeft:     in.TotalAmount.Sub(in.AmountReceived),
		Note:           in.Note,
	})
	if err != nil {
		metrics.LedgerOperations.WithLabelValues("update", "error").Inc()
		return fmt.Errorf("update transaction %d: %w", id, err)
	}
	if !found {
		metrics.LedgerOperations.WithLabelValues("update", "missing").Inc()
		s.log.Debug("update matched no transaction", "transaction_id", id)
		return nil
	}

	metrics.LedgerOperations.WithLabelValues("update", "ok").Inc()
	s.log.Info("transaction updated", "transaction_id", id)
	return nil
}

// Delete hard-deletes an entry. Deleting an id that does not exist is a
// no-op, not an error.
func (s *LedgerService) Delete(ctx context.Context, id int64) error {
	found, err := s.transactions.Delete(ctx, id)
	if err != nil {
		metrics.LedgerOperations.WithLabelValues("delete", "error").Inc()
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}
	if !found {
		metrics.LedgerOperations.WithLabelValues("delete", "missing").Inc()
		s.log.Debug("delete matched no transaction", "transaction_id", id)
		return nil
	}

	metrics.LedgerOperations.WithLabelValues("delete", "ok").Inc()
	s.log.Info("transaction deleted", "transaction_id", id)
	return nil
}

func (s *LedgerService) Get(ctx context.Context, id int64) (*models.Transaction, error) {
	tx, err := s.transactions.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return tx, err
}

// AvailableMonths lists every month with at least one entry, newest first,
// regardless of any active filter.
func (s *LedgerService) AvailableMonths(ctx context.Context, customerID int64) ([]string, error) {
	return s.transactions.Months(ctx, customerID)
}

// DefaultMonth picks the current month when it has entries, otherwise All.
func (s *LedgerService) DefaultMonth(months []string) string {
	current := s.now().Format("2006-01")
	for _, m := range months {
		if m == current {
			return current
		}
	}
	return AllMonths
}

// Summarize totals the entries by kind. Balance is received minus given.
func Summarize(transactions []models.Transaction) models.Summary {
	received := decimal.Zero
	given := decimal.Zero

	for _, tx := range transactions {
		switch tx.Kind {
		case models.KindReceived:
			received = received.Add(tx.TotalAmount)
		case models.KindGiven:
			given = given.Add(tx.TotalAmount)
		}
	}

	return models.Summary{
		TotalReceived: received,
		TotalGiven:    given,
		Balance:       received.Sub(given),
	}
}
