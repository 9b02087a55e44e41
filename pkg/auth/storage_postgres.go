package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/onboarding/pkg/pg"
)

const (
	emailUniqueConstraint = "users_email_key"

	getUserByEmailQuery = `SELECT id, email, password_hash, created_at FROM users WHERE email = $1`
	createUserQuery     = `INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id, email, password_hash, created_at`
)

// DB is the subset of *pgxpool.Pool used by PostgresStorage. QueryRow on a
// pool acquires one connection and releases it once the row is scanned.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresStorage struct {
	db DB
}

func NewPostgresStorage(db DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (s *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.QueryRow(ctx, getUserByEmailQuery, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &u, nil
}

// CreateUser relies on the unique constraint alone to detect duplicates, so
// concurrent registrations of one email cannot both succeed.
func (s *PostgresStorage) CreateUser(ctx context.Context, email, passwordHash string) (*User, error) {
	var u User
	err := s.db.QueryRow(ctx, createUserQuery, email, passwordHash).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if pg.IsDuplicateKeyError(err, emailUniqueConstraint) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &u, nil
}
