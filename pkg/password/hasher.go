// Package password hashes passwords with bcrypt and enforces the strength policy.
package password

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/onboarding/pkg/validator"
)

// bcrypt rejects inputs longer than this many bytes.
const maxBcryptInput = 72

// Hasher is safe for concurrent use.
type Hasher struct {
	cost      int
	policy    validator.PasswordPolicy
	dummyHash string
}

// New validates cfg and precomputes a dummy hash at the configured cost.
func New(cfg Config) (*Hasher, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	h := &Hasher{
		cost: cfg.BcryptCost,
		policy: validator.PasswordPolicy{
			MinLength:      cfg.MinLength,
			MaxLength:      cfg.MaxLength,
			RequireSpecial: cfg.RequireSpecial,
		},
	}

	dummy, err := h.Hash("dummy-password-for-timing-equalization")
	if err != nil {
		return nil, err
	}
	h.dummyHash = dummy

	return h, nil
}

// Hash returns the bcrypt hash of password.
func (h *Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), h.cost)
	if err != nil {
		return "", errors.Join(ErrHashFailed, err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. A malformed hash never matches.
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(password)) == nil
}

// ValidateStrength returns validator.ValidationErrors holding the first
// violated rule, or nil.
func (h *Hasher) ValidateStrength(password string) error {
	return validator.First(validator.PasswordRules("password", password, h.policy)...)
}

// DummyHash is a valid hash of a fixed secret, used to spend one comparison
// on paths where no stored hash exists.
func (h *Hasher) DummyHash() string {
	return h.dummyHash
}

// bcryptInput pre-hashes passwords longer than bcrypt's input limit so that
// every password the policy allows can be hashed.
func bcryptInput(password string) []byte {
	if len(password) <= maxBcryptInput {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}
