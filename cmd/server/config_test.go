package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/onboarding/pkg/config"
)

func TestAppConfig_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, appConfig{Storage: storagePostgres}.Validate())
	assert.NoError(t, appConfig{Storage: storageMemory}.Validate())
	assert.Error(t, appConfig{Storage: "sqlite"}.Validate())
}

func TestLoadConfigs(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("AUTH_STORAGE", "memory")
	t.Setenv("JWT_ACCESS_TTL", "15m")

	cfg, err := loadConfigs()
	require.NoError(t, err)

	assert.Equal(t, storageMemory, cfg.App.Storage)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshTokenTTL)
	assert.Equal(t, 12, cfg.Password.BcryptCost)
	assert.Equal(t, "/api/auth/refresh", cfg.Session.RefreshPath)
	assert.Equal(t, 10, cfg.RateLimiter.Capacity)
	assert.False(t, cfg.Redis.Enabled())
	assert.Empty(t, cfg.ClientIP.TrustedProxies)
}

func TestLoadConfigs_TrustedProxies(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("AUTH_STORAGE", "memory")

	t.Setenv("CLIENTIP_TRUSTED_PROXIES", "10.0.0.0/8,192.0.2.1")
	cfg, err := loadConfigs()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/8", "192.0.2.1"}, cfg.ClientIP.TrustedProxies)

	t.Setenv("CLIENTIP_TRUSTED_PROXIES", "not-a-cidr")
	_, err = loadConfigs()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoadConfigs_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("AUTH_STORAGE", "sqlite")

	_, err := loadConfigs()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
