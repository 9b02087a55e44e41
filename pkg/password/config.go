package password

import "golang.org/x/crypto/bcrypt"

// Config holds the hashing cost and the strength policy.
type Config struct {
	BcryptCost     int  `env:"PASSWORD_BCRYPT_COST" envDefault:"12"`       // BcryptCost is the adaptive cost factor, between 4 and 31.
	MinLength      int  `env:"PASSWORD_MIN_LENGTH" envDefault:"8"`         // MinLength is the minimum number of characters.
	MaxLength      int  `env:"PASSWORD_MAX_LENGTH" envDefault:"128"`       // MaxLength is the maximum number of characters.
	RequireSpecial bool `env:"PASSWORD_REQUIRE_SPECIAL" envDefault:"true"` // RequireSpecial enables the special-character rule.
}

func DefaultConfig() Config {
	return Config{
		BcryptCost:     12,
		MinLength:      8,
		MaxLength:      128,
		RequireSpecial: true,
	}
}

func (c Config) validate() error {
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return ErrInvalidCost
	}
	if c.MinLength <= 0 || c.MaxLength < c.MinLength {
		return ErrInvalidLengthPolicy
	}
	return nil
}
