package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ledgerbook/backend/internal/credentials"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) CreateIfAbsent(ctx context.Context, u *models.User) (bool, error) {
	args := m.Called(ctx, u)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type countingHasher struct {
	PasswordHasher
	verifies int
}

func (h *countingHasher) Verify(password, digest string) bool {
	h.verifies++
	return h.PasswordHasher.Verify(password, digest)
}

func newAccountService() (*AccountService, *repository.Memory) {
	mem := repository.NewMemory()
	return NewAccountService(mem.Store().Users, credentials.NewHasher(false, credentials.MinIterations)), mem
}

func TestAccountService_RegisterAndAuthenticate(t *testing.T) {
	service, _ := newAccountService()
	ctx := context.Background()

	registered, err := service.Register(ctx, "Jane", "jane@example.com", "secret1")
	require.NoError(t, err)
	assert.NotZero(t, registered.ID)
	assert.Equal(t, "Jane", registered.Name)

	t.Run("same credentials authenticate", func(t *testing.T) {
		user, err := service.Authenticate(ctx, "jane@example.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
		assert.Equal(t, "Jane", user.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Authenticate(ctx, "jane@example.com", "secret2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email gives the same error", func(t *testing.T) {
		_, err := service.Authenticate(ctx, "nobody@example.com", "secret1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("email is case-sensitive as stored", func(t *testing.T) {
		_, err := service.Authenticate(ctx, "Jane@example.com", "secret1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("duplicate email leaves the account unchanged", func(t *testing.T) {
		_, err := service.Register(ctx, "Impostor", "jane@example.com", "other-password")
		assert.ErrorIs(t, err, ErrEmailTaken)

		user, err := service.Authenticate(ctx, "jane@example.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
		assert.Equal(t, "Jane", user.Name)

		_, err = service.Authenticate(ctx, "jane@example.com", "other-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("get", func(t *testing.T) {
		user, err := service.Get(ctx, registered.ID)
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", user.Email)

		_, err = service.Get(ctx, 9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAccountService_AuthenticateDerivesKeyForUnknownEmail(t *testing.T) {
	ctx := context.Background()
	hasher := &countingHasher{PasswordHasher: credentials.NewHasher(false, credentials.MinIterations)}
	service := NewAccountService(repository.NewMemory().Store().Users, hasher)

	_, err := service.Register(ctx, "Jane", "jane@example.com", "secret1")
	require.NoError(t, err)

	_, err = service.Authenticate(ctx, "jane@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 1, hasher.verifies)

	hasher.verifies = 0
	_, err = service.Authenticate(ctx, "nobody@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 1, hasher.verifies)

	// the decoy digest never authenticates
	hasher.verifies = 0
	_, err = service.Authenticate(ctx, "nobody@example.com", BootstrapEmail+"$decoy")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 1, hasher.verifies)
}

func TestAccountService_EnsureBootstrapAccount(t *testing.T) {
	service, _ := newAccountService()
	ctx := context.Background()

	require.NoError(t, service.EnsureBootstrapAccount(ctx))
	first, err := service.Authenticate(ctx, BootstrapEmail, BootstrapPassword)
	require.NoError(t, err)
	assert.Equal(t, BootstrapName, first.Name)

	// second run is a no-op
	require.NoError(t, service.EnsureBootstrapAccount(ctx))
	second, err := service.Authenticate(ctx, BootstrapEmail, BootstrapPassword)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestAccountService_StoreErrors(t *testing.T) {
	ctx := context.Background()
	hasher := credentials.NewHasher(true, 0)

	t.Run("register store failure is not EmailTaken", func(t *testing.T) {
		users := &MockUserRepository{}
		users.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(errors.New("db down"))

		_, err := NewAccountService(users, hasher).Register(ctx, "A", "a@example.com", "secret1")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmailTaken)
		users.AssertExpectations(t)
	})

	t.Run("authenticate store failure is not InvalidCredentials", func(t *testing.T) {
		users := &MockUserRepository{}
		users.On("GetByEmail", ctx, "a@example.com").Return(nil, errors.New("db down"))

		_, err := NewAccountService(users, hasher).Authenticate(ctx, "a@example.com", "secret1")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("bootstrap skips insert when present", func(t *testing.T) {
		users := &MockUserRepository{}
		users.On("GetByEmail", ctx, BootstrapEmail).Return(&models.User{ID: 1, Email: BootstrapEmail}, nil)

		assert.NoError(t, NewAccountService(users, hasher).EnsureBootstrapAccount(ctx))
		users.AssertNotCalled(t, "CreateIfAbsent", mock.Anything, mock.Anything)
	})

	t.Run("bootstrap lookup failure", func(t *testing.T) {
		users := &MockUserRepository{}
		users.On("GetByEmail", ctx, BootstrapEmail).Return(nil, errors.New("db down"))

		assert.Error(t, NewAccountService(users, hasher).EnsureBootstrapAccount(ctx))
	})
}
