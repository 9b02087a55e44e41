package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/onboarding/pkg/password"
	"github.com/dmitrymomot/onboarding/pkg/validator"
)

func newHasher(t *testing.T, mutate ...func(*password.Config)) *password.Hasher {
	t.Helper()
	cfg := password.DefaultConfig()
	cfg.BcryptCost = bcrypt.MinCost
	for _, m := range mutate {
		m(&cfg)
	}
	h, err := password.New(cfg)
	require.NoError(t, err)
	return h
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("rejects cost out of range", func(t *testing.T) {
		t.Parallel()
		cfg := password.DefaultConfig()
		cfg.BcryptCost = 2
		_, err := password.New(cfg)
		assert.ErrorIs(t, err, password.ErrInvalidCost)
	})

	t.Run("rejects inverted length policy", func(t *testing.T) {
		t.Parallel()
		cfg := password.DefaultConfig()
		cfg.BcryptCost = bcrypt.MinCost
		cfg.MinLength = 20
		cfg.MaxLength = 10
		_, err := password.New(cfg)
		assert.ErrorIs(t, err, password.ErrInvalidLengthPolicy)
	})
}

func TestHashAndVerify(t *testing.T) {
	t.Parallel()
	h := newHasher(t)

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		hash, err := h.Hash("Abcdef12!")
		require.NoError(t, err)
		assert.NotEqual(t, "Abcdef12!", hash)
		assert.True(t, h.Verify("Abcdef12!", hash))
		assert.False(t, h.Verify("Abcdef12?", hash))
	})

	t.Run("uses configured cost", func(t *testing.T) {
		t.Parallel()
		hash, err := h.Hash("Abcdef12!")
		require.NoError(t, err)
		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.MinCost, cost)
	})

	t.Run("salted", func(t *testing.T) {
		t.Parallel()
		a, err := h.Hash("Abcdef12!")
		require.NoError(t, err)
		b, err := h.Hash("Abcdef12!")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("malformed hash never verifies", func(t *testing.T) {
		t.Parallel()
		assert.False(t, h.Verify("Abcdef12!", ""))
		assert.False(t, h.Verify("Abcdef12!", "not-a-bcrypt-hash"))
	})

	t.Run("long passwords hash and stay distinct", func(t *testing.T) {
		t.Parallel()
		long := "Aa1!" + strings.Repeat("x", 120)
		hash, err := h.Hash(long)
		require.NoError(t, err)
		assert.True(t, h.Verify(long, hash))
		assert.False(t, h.Verify(long+"y", hash))
		assert.False(t, h.Verify(long[:72], hash))
	})

	t.Run("dummy hash is a valid hash", func(t *testing.T) {
		t.Parallel()
		_, err := bcrypt.Cost([]byte(h.DummyHash()))
		require.NoError(t, err)
		assert.False(t, h.Verify("Abcdef12!", h.DummyHash()))
	})
}

func TestValidateStrength(t *testing.T) {
	t.Parallel()
	h := newHasher(t)

	tests := []struct {
		password string
		message  string
	}{
		{"short1", "password must be at least 8 characters long"},
		{"alllowercase1", "password must contain at least one uppercase letter"},
		{"Str0ngPass!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			t.Parallel()
			err := h.ValidateStrength(tt.password)
			if tt.message == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, []string{tt.message}, validator.ExtractValidationErrors(err).Messages())
		})
	}

	t.Run("special character rule can be disabled", func(t *testing.T) {
		t.Parallel()
		relaxed := newHasher(t, func(c *password.Config) { c.RequireSpecial = false })
		assert.NoError(t, relaxed.ValidateStrength("Str0ngPass"))
		assert.Error(t, h.ValidateStrength("Str0ngPass"))
	})

	t.Run("configurable min length", func(t *testing.T) {
		t.Parallel()
		strict := newHasher(t, func(c *password.Config) { c.MinLength = 12 })
		err := strict.ValidateStrength("Str0ngPass!")
		require.Error(t, err)
		assert.Equal(t, []string{"password must be at least 12 characters long"}, validator.ExtractValidationErrors(err).Messages())
	})
}
