package main

import (
	"fmt"

	"github.com/dmitrymomot/onboarding/pkg/clientip"
	"github.com/dmitrymomot/onboarding/pkg/config"
	"github.com/dmitrymomot/onboarding/pkg/cookie"
	"github.com/dmitrymomot/onboarding/pkg/httpserver"
	"github.com/dmitrymomot/onboarding/pkg/jwt"
	"github.com/dmitrymomot/onboarding/pkg/logger"
	"github.com/dmitrymomot/onboarding/pkg/password"
	"github.com/dmitrymomot/onboarding/pkg/ratelimiter"
	"github.com/dmitrymomot/onboarding/pkg/redis"
	"github.com/dmitrymomot/onboarding/pkg/session"
)

const (
	storagePostgres = "postgres"
	storageMemory   = "memory"
)

type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`   // Env is development, staging or production.
	Name    string `env:"APP_NAME" envDefault:"onboarding"`   // Name is attached to every log record.
	Storage string `env:"AUTH_STORAGE" envDefault:"postgres"` // Storage is postgres or memory.
}

func (c appConfig) Validate() error {
	switch c.Storage {
	case storagePostgres, storageMemory:
		return nil
	default:
		return fmt.Errorf("AUTH_STORAGE must be %q or %q, got %q", storagePostgres, storageMemory, c.Storage)
	}
}

// configs groups everything loaded at startup except pg.Config, which is
// required only for postgres storage.
type configs struct {
	App         appConfig
	Log         logger.Config
	HTTP        httpserver.Config
	JWT         jwt.Config
	Password    password.Config
	Cookie      cookie.Config
	Session     session.Config
	Redis       redis.Config
	RateLimiter ratelimiter.Config
	ClientIP    clientip.Config
}

func loadConfigs() (configs, error) {
	var c configs
	for _, load := range []func() error{
		func() error { return config.Load(&c.App) },
		func() error { return config.Load(&c.Log) },
		func() error { return config.Load(&c.HTTP) },
		func() error { return config.Load(&c.JWT) },
		func() error { return config.Load(&c.Password) },
		func() error { return config.Load(&c.Cookie) },
		func() error { return config.Load(&c.Session) },
		func() error { return config.Load(&c.Redis) },
		func() error { return config.Load(&c.RateLimiter) },
		func() error { return config.Load(&c.ClientIP) },
	} {
		if err := load(); err != nil {
			return configs{}, err
		}
	}
	return c, nil
}
