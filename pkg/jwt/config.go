package jwt

import "time"

type Config struct {
	SigningKey      string        `env:"JWT_SECRET,required"`               // SigningKey is the HS256 secret, at least 32 bytes.
	Issuer          string        `env:"JWT_ISSUER"`                        // Issuer is written to and required in the iss claim when set.
	AccessTokenTTL  time.Duration `env:"JWT_ACCESS_TTL" envDefault:"30m"`   // AccessTokenTTL is the lifetime of access tokens.
	RefreshTokenTTL time.Duration `env:"JWT_REFRESH_TTL" envDefault:"168h"` // RefreshTokenTTL is the lifetime of refresh tokens.
}

// NewFromConfig creates a Service from cfg. Explicit opts override config values.
func NewFromConfig(cfg Config, opts ...Option) (*Service, error) {
	configOpts := make([]Option, 0, len(opts)+1)
	if cfg.Issuer != "" {
		configOpts = append(configOpts, WithIssuer(cfg.Issuer))
	}
	configOpts = append(configOpts, opts...)

	return NewFromString(cfg.SigningKey, configOpts...)
}
