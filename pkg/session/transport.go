package session

import (
	"net/http"
	"time"
)

// BearerScheme marks a token value in both the Authorization header and the
// access cookie, so one extraction path serves both transports.
const BearerScheme = "Bearer"

// TokenSource reads a token from a request without side effects.
type TokenSource interface {
	GetToken(r *http.Request) (string, error)
}

// Transport is a TokenSource that can also write and clear the token.
type Transport interface {
	TokenSource
	SetToken(w http.ResponseWriter, token string, ttl time.Duration) error
	ClearToken(w http.ResponseWriter) error
}
