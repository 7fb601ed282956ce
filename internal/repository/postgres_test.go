package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerbook/backend/internal/models"
)

var transactionRowColumns = []string{"id", "customer_id", "date_time", "type", "total_amount", "amount_received", "amount_left", "note"}

func TestUserRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("Jane", "jane@example.com", "digest").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		u := &models.User{Name: "Jane", Email: "jane@example.com", PasswordHash: "digest"}
		assert.NoError(t, repo.Create(ctx, u))
		assert.Equal(t, int64(7), u.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("Jane", "jane@example.com", "digest").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

		err := repo.Create(ctx, &models.User{Name: "Jane", Email: "jane@example.com", PasswordHash: "digest"})
		assert.ErrorIs(t, err, ErrDuplicateEmail)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other insert errors pass through", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("connection reset"))

		err := repo.Create(ctx, &models.User{})
		assert.EqualError(t, err, "connection reset")
	})

	t.Run("create if absent inserts", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users .* ON CONFLICT \\(email\\) DO NOTHING").
			WithArgs("Admin User", "admin@example.com", "digest").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		created, err := repo.CreateIfAbsent(ctx, &models.User{Name: "Admin User", Email: "admin@example.com", PasswordHash: "digest"})
		assert.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("create if absent skips existing", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users .* ON CONFLICT \\(email\\) DO NOTHING").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		created, err := repo.CreateIfAbsent(ctx, &models.User{Name: "Admin User", Email: "admin@example.com", PasswordHash: "digest"})
		assert.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("get by email", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email, password_hash FROM users WHERE email = \\$1").
			WithArgs("jane@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash"}).
				AddRow(7, "Jane", "jane@example.com", "digest"))

		u, err := repo.GetByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(7), u.ID)
		assert.Equal(t, "digest", u.PasswordHash)
	})

	t.Run("get by id not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email, password_hash FROM users WHERE id = \\$1").
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash"}))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCustomerRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO customers").
			WithArgs(1, "Acme").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

		c := &models.Customer{UserID: 1, Name: "Acme"}
		assert.NoError(t, repo.Create(ctx, c))
		assert.Equal(t, int64(3), c.ID)
	})

	t.Run("list ordered by name", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, name FROM customers WHERE user_id = \\$1 ORDER BY name COLLATE \"C\", id").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name"}).
				AddRow(3, 1, "Acme").
				AddRow(4, 1, "Bolt"))

		customers, err := repo.ListByUser(ctx, 1)
		require.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Equal(t, "Acme", customers[0].Name)
		assert.Equal(t, "Bolt", customers[1].Name)
	})

	t.Run("list empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, name FROM customers").
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name"}))

		customers, err := repo.ListByUser(ctx, 2)
		require.NoError(t, err)
		assert.NotNil(t, customers)
		assert.Empty(t, customers)
	})

	t.Run("get for another user", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, user_id, name FROM customers WHERE id = \\$1 AND user_id = \\$2").
			WithArgs(3, 2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name"}))

		_, err := repo.GetForUser(ctx, 2, 3)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransactionRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTransactionRepository(db)
	ctx := context.Background()

	ts, err := models.ParseTimestamp("2024-03-05 14:02:11")
	require.NoError(t, err)

	t.Run("create", func(t *testing.T) {
		tx := &models.Transaction{
			CustomerID:     3,
			DateTime:       ts,
			Kind:           models.KindReceived,
			TotalAmount:    decimal.RequireFromString("500"),
			AmountReceived: decimal.RequireFromString("450.50"),
			AmountLeft:     decimal.RequireFromString("49.50"),
			Note:           "cash",
		}

		mock.ExpectQuery("INSERT INTO transactions").
			WithArgs(3, "2024-03-05 14:02:11", "Received", "500", "450.5", "49.5", "cash").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		assert.NoError(t, repo.Create(ctx, tx))
		assert.Equal(t, int64(42), tx.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update", func(t *testing.T) {
		mock.ExpectExec("UPDATE transactions SET type = \\$1, total_amount = \\$2, amount_received = \\$3, amount_left = \\$4, note = \\$5 WHERE id = \\$6").
			WithArgs("Given", "120", "100", "20", "", 42).
			WillReturnResult(sqlmock.NewResult(0, 1))

		found, err := repo.Update(ctx, &models.Transaction{
			ID:             42,
			Kind:           models.KindGiven,
			TotalAmount:    decimal.NewFromInt(120),
			AmountReceived: decimal.NewFromInt(100),
			AmountLeft:     decimal.NewFromInt(20),
		})
		assert.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("delete missing row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM transactions WHERE id = \\$1").
			WithArgs(404).
			WillReturnResult(sqlmock.NewResult(0, 0))

		found, err := repo.Delete(ctx, 404)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("get by id", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, customer_id, date_time, .* FROM transactions WHERE id = \\$1").
			WithArgs(42).
			WillReturnRows(sqlmock.NewRows(transactionRowColumns).
				AddRow(42, 3, "2024-03-05 14:02:11", "Received", "500.00", "450.50", "49.50", ""))

		tx, err := repo.GetByID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, models.KindReceived, tx.Kind)
		assert.Equal(t, "2024-03", tx.DateTime.Month())
		assert.True(t, tx.AmountLeft.Equal(decimal.RequireFromString("49.5")))
	})

	t.Run("get by id not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, customer_id, date_time, .* FROM transactions WHERE id = \\$1").
			WithArgs(43).
			WillReturnRows(sqlmock.NewRows(transactionRowColumns))

		_, err := repo.GetByID(ctx, 43)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list by month prefix", func(t *testing.T) {
		mock.ExpectQuery("FROM transactions WHERE customer_id = \\$1 AND date_time LIKE \\$2 ORDER BY date_time DESC, id DESC").
			WithArgs(3, "2024-03%").
			WillReturnRows(sqlmock.NewRows(transactionRowColumns).
				AddRow(44, 3, "2024-03-09 08:00:00", "Given", "40", "40", "0", "fuel").
				AddRow(42, 3, "2024-03-05 14:02:11", "Received", "100", "100", "0", ""))

		transactions, err := repo.ListByPrefix(ctx, 3, "2024-03")
		require.NoError(t, err)
		require.Len(t, transactions, 2)
		assert.Equal(t, int64(44), transactions[0].ID)
		assert.Equal(t, "fuel", transactions[0].Note)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("months", func(t *testing.T) {
		mock.ExpectQuery("SELECT DISTINCT substr\\(date_time, 1, 7\\) AS month FROM transactions WHERE customer_id = \\$1 ORDER BY month DESC").
			WithArgs(3).
			WillReturnRows(sqlmock.NewRows([]string{"month"}).AddRow("2024-03").AddRow("2024-01"))

		months, err := repo.Months(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"2024-03", "2024-01"}, months)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
