package cookie

import (
	"net/http"
	"strings"
)

type Config struct {
	Domain   string `env:"COOKIE_DOMAIN" envDefault:""`          // Domain is the cookie domain; empty means host-only.
	SameSite string `env:"COOKIE_SAME_SITE" envDefault:"strict"` // SameSite is one of strict, lax or none.
	Secure   bool   `env:"COOKIE_SECURE" envDefault:"false"`     // Secure forces the Secure attribute regardless of environment.
}

// NewFromConfig creates a Manager from cfg. Explicit opts override config values.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := []Option{
		WithDomain(cfg.Domain),
		WithSameSite(parseSameSite(cfg.SameSite)),
	}
	if cfg.Secure {
		configOpts = append(configOpts, WithSecure(true))
	}
	return New(append(configOpts, opts...)...)
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}
