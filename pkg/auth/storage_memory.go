package auth

import (
	"context"
	"sync"
	"time"
)

// MemoryStorage keeps users in process memory. It is meant for tests and
// local development.
type MemoryStorage struct {
	mu     sync.RWMutex
	users  map[string]User
	nextID int64
	now    func() time.Time
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users: make(map[string]User),
		now:   time.Now,
	}
}

func (s *MemoryStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (s *MemoryStorage) CreateUser(ctx context.Context, email, passwordHash string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[email]; exists {
		return nil, ErrEmailAlreadyExists
	}

	s.nextID++
	u := User{
		ID:           s.nextID,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    s.now().UTC(),
	}
	s.users[email] = u
	return &u, nil
}
