package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/onboarding/pkg/logger"
	"github.com/dmitrymomot/onboarding/pkg/sanitizer"
	"github.com/dmitrymomot/onboarding/pkg/validator"
)

// PasswordHasher hashes and checks passwords and enforces their strength policy.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
	ValidateStrength(password string) error
	DummyHash() string
}

// Store looks up, creates and authenticates users by email and password.
type Store struct {
	storage Storage
	hasher  PasswordHasher
	logger  *slog.Logger
}

type StoreOption func(*Store)

func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewStore(storage Storage, hasher PasswordHasher, opts ...StoreOption) *Store {
	s := &Store{
		storage: storage,
		hasher:  hasher,
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetByEmail returns ErrUserNotFound when no user has the normalized email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*User, error) {
	user, err := s.storage.GetUserByEmail(ctx, sanitizer.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Create registers a user. A malformed email or a weak password fails with
// validator.ValidationErrors, a taken email with ErrEmailAlreadyExists.
func (s *Store) Create(ctx context.Context, email, password string) (*User, error) {
	email = sanitizer.NormalizeEmail(email)

	if err := validator.First(validator.ValidEmail("email", email)); err != nil {
		return nil, err
	}
	if err := s.hasher.ValidateStrength(password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.storage.CreateUser(ctx, email, hash)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		logger.UserID(user.ID),
		logger.Component("auth"),
	)

	return user, nil
}

// Authenticate returns ErrInvalidCredentials for a malformed email, an
// unknown email and a wrong password alike. Each of those paths performs one
// hash comparison.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = sanitizer.NormalizeEmail(email)

	if err := validator.First(validator.ValidEmail("email", email)); err != nil {
		s.hasher.Verify(password, s.hasher.DummyHash())
		return nil, ErrInvalidCredentials
	}

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.hasher.Verify(password, s.hasher.DummyHash())
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.DebugContext(ctx, "password mismatch",
			logger.UserID(user.ID),
			logger.Component("auth"),
		)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
