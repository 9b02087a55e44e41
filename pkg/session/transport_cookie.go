package session

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/onboarding/pkg/cookie"
)

// CookieTransport stores a token as "Bearer <token>" in a named cookie
// bound to a fixed path.
type CookieTransport struct {
	cookieMgr  *cookie.Manager
	cookieName string
	path       string
}

func NewCookieTransport(cookieMgr *cookie.Manager, cookieName, path string) *CookieTransport {
	if path == "" {
		path = "/"
	}
	return &CookieTransport{
		cookieMgr:  cookieMgr,
		cookieName: cookieName,
		path:       path,
	}
}

func (t *CookieTransport) GetToken(r *http.Request) (string, error) {
	value, err := t.cookieMgr.Get(r, t.cookieName)
	if err != nil {
		return "", ErrTokenNotFound
	}
	token, ok := stripScheme(value, BearerScheme)
	if !ok {
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (t *CookieTransport) SetToken(w http.ResponseWriter, token string, ttl time.Duration) error {
	if token == "" {
		return ErrEmptyToken
	}
	if ttl <= 0 {
		return ErrInvalidTTL
	}
	return t.cookieMgr.Set(w, t.cookieName, BearerScheme+" "+token,
		cookie.WithPath(t.path),
		cookie.WithMaxAge(maxAge(ttl)),
	)
}

func (t *CookieTransport) ClearToken(w http.ResponseWriter) error {
	return t.cookieMgr.Delete(w, t.cookieName, cookie.WithPath(t.path))
}

// maxAge rounds ttl up to whole seconds. A zero Max-Age would turn the
// cookie into a browser-session cookie.
func maxAge(ttl time.Duration) int {
	return int((ttl + time.Second - 1) / time.Second)
}
