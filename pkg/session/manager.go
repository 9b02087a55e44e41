package session

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/onboarding/pkg/cookie"
)

// CookieManager maps access and refresh tokens onto cookies and extracts
// them again from incoming requests.
type CookieManager struct {
	access    *CookieTransport
	refresh   *CookieTransport
	extractor TokenSource
}

// NewCookieManager builds the access cookie (path "/"), the refresh cookie
// (path cfg.RefreshPath) and the extraction chain: header first, then the
// access cookie. Security attributes come from cookies' defaults.
func NewCookieManager(cookies *cookie.Manager, cfg Config) *CookieManager {
	defaults := DefaultConfig()
	if cfg.AccessCookieName == "" {
		cfg.AccessCookieName = defaults.AccessCookieName
	}
	if cfg.RefreshCookieName == "" {
		cfg.RefreshCookieName = defaults.RefreshCookieName
	}
	if cfg.RefreshPath == "" {
		cfg.RefreshPath = defaults.RefreshPath
	}
	if cfg.AuthHeader == "" {
		cfg.AuthHeader = defaults.AuthHeader
	}

	access := NewCookieTransport(cookies, cfg.AccessCookieName, "/")
	return &CookieManager{
		access:    access,
		refresh:   NewCookieTransport(cookies, cfg.RefreshCookieName, cfg.RefreshPath),
		extractor: NewChain(NewHeaderSource(cfg.AuthHeader), access),
	}
}

func (m *CookieManager) WriteAccessCookie(w http.ResponseWriter, token string, ttl time.Duration) error {
	return m.access.SetToken(w, token, ttl)
}

func (m *CookieManager) WriteRefreshCookie(w http.ResponseWriter, token string, ttl time.Duration) error {
	return m.refresh.SetToken(w, token, ttl)
}

func (m *CookieManager) ClearAccessCookie(w http.ResponseWriter) error {
	return m.access.ClearToken(w)
}

func (m *CookieManager) ClearRefreshCookie(w http.ResponseWriter) error {
	return m.refresh.ClearToken(w)
}

// ExtractToken returns the access token from the Authorization header or,
// failing that, from the access cookie.
func (m *CookieManager) ExtractToken(r *http.Request) (string, error) {
	return m.extractor.GetToken(r)
}

// RefreshToken returns the token held in the refresh cookie.
func (m *CookieManager) RefreshToken(r *http.Request) (string, error) {
	return m.refresh.GetToken(r)
}
