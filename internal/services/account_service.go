package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ledgerbook/backend/internal/logger"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/repository"
)

const (
	BootstrapName     = "Admin User"
	BootstrapEmail    = "admin@example.com"
	BootstrapPassword = "admin123"
)

// PasswordHasher is the credential store contract.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// AccountService registers and authenticates users.
type AccountService struct {
	users  repository.UserRepository
	hasher PasswordHasher
	log    *slog.Logger

	decoyOnce   sync.Once
	decoyDigest string
}

func NewAccountService(users repository.UserRepository, hasher PasswordHasher) *AccountService {
	return &AccountService{
		users:  users,
		hasher: hasher,
		log:    logger.Component("AUTH"),
	}
}

// Register creates a user. Email uniqueness is left to the store.
func (s *AccountService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Name: name, Email: email, PasswordHash: digest}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.log.Info("registration rejected, email taken", "email", email)
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Authenticate returns ErrInvalidCredentials for an unknown email and for a
// wrong password alike.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		// same key derivation cost as a known email
		s.hasher.Verify(password, s.decoy())
		s.log.Info("login failed", "reason", "unknown email")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.log.Info("login failed", "reason", "password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// decoy returns a digest no password is expected to match, produced with the
// hasher's current settings.
func (s *AccountService) decoy() string {
	s.decoyOnce.Do(func() {
		digest, err := s.hasher.Hash(BootstrapEmail + "$decoy")
		if err != nil {
			s.log.Warn("decoy digest unavailable", "error", err)
			return
		}
		s.decoyDigest = digest
	})
	return s.decoyDigest
}

func (s *AccountService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

// EnsureBootstrapAccount seeds the well-known admin account once.
func (s *AccountService) EnsureBootstrapAccount(ctx context.Context) error {
	if _, err := s.users.GetByEmail(ctx, BootstrapEmail); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("look up bootstrap account: %w", err)
	}

	digest, err := s.hasher.Hash(BootstrapPassword)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}

	created, err := s.users.CreateIfAbsent(ctx, &models.User{
		Name:         BootstrapName,
		Email:        BootstrapEmail,
		PasswordHash: digest,
	})
	if err != nil {
		return fmt.Errorf("create bootstrap account: %w", err)
	}
	if created {
		s.log.Info("bootstrap account created", "email", BootstrapEmail)
	}
	return nil
}
