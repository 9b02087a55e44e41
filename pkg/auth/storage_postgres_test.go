package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/onboarding/pkg/auth"
)

var userColumns = []string{"id", "email", "password_hash", "created_at"}

func TestPostgresStorage_GetUserByEmail(t *testing.T) {
	t.Parallel()
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		want      *auth.User
		wantErr   error
		errMsg    string
	}{
		{
			name: "found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, email, password_hash, created_at FROM users WHERE email`).
					WithArgs("user@test.com").
					WillReturnRows(pgxmock.NewRows(userColumns).AddRow(int64(7), "user@test.com", "hash", createdAt))
			},
			want: &auth.User{ID: 7, Email: "user@test.com", PasswordHash: "hash", CreatedAt: createdAt},
		},
		{
			name: "not found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, email, password_hash, created_at FROM users WHERE email`).
					WithArgs("user@test.com").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: auth.ErrUserNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT id, email, password_hash, created_at FROM users WHERE email`).
					WithArgs("user@test.com").
					WillReturnError(errors.New("connection refused"))
			},
			errMsg: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, err := pgxmock.NewPool()
			require.NoError(t, err, "failed to create mock")
			defer mock.Close()

			tt.setupMock(mock)

			got, err := auth.NewPostgresStorage(mock).GetUserByEmail(context.Background(), "user@test.com")
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.NotErrorIs(t, err, auth.ErrUserNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresStorage_CreateUser(t *testing.T) {
	t.Parallel()
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		want      *auth.User
		wantErr   error
		errMsg    string
	}{
		{
			name: "inserted",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("user@test.com", "hash").
					WillReturnRows(pgxmock.NewRows(userColumns).AddRow(int64(1), "user@test.com", "hash", createdAt))
			},
			want: &auth.User{ID: 1, Email: "user@test.com", PasswordHash: "hash", CreatedAt: createdAt},
		},
		{
			name: "unique violation on email",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("user@test.com", "hash").
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})
			},
			wantErr: auth.ErrEmailAlreadyExists,
		},
		{
			name: "other constraint violation",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("user@test.com", "hash").
					WillReturnError(&pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "users_email_lowercase"})
			},
			errMsg: "failed to create user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock, err := pgxmock.NewPool()
			require.NoError(t, err, "failed to create mock")
			defer mock.Close()

			tt.setupMock(mock)

			got, err := auth.NewPostgresStorage(mock).CreateUser(context.Background(), "user@test.com", "hash")
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.NotErrorIs(t, err, auth.ErrEmailAlreadyExists)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresStorage_WithStore(t *testing.T) {
	t.Parallel()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("user@test.com", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})

	store := auth.NewStore(auth.NewPostgresStorage(mock), newHasher(t))
	_, err = store.Create(context.Background(), "User@Test.com", "Abcdef12!")
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
