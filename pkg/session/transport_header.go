package session

import (
	"net/http"
	"strings"
)

// HeaderSource reads "<scheme> <token>" from a request header.
type HeaderSource struct {
	headerName string
	scheme     string
}

type HeaderOption func(*HeaderSource)

// WithScheme changes the expected scheme. The comparison is case-insensitive.
func WithScheme(scheme string) HeaderOption {
	return func(h *HeaderSource) {
		h.scheme = scheme
	}
}

func NewHeaderSource(headerName string, opts ...HeaderOption) *HeaderSource {
	h := &HeaderSource{
		headerName: headerName,
		scheme:     BearerScheme,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *HeaderSource) GetToken(r *http.Request) (string, error) {
	token, ok := stripScheme(r.Header.Get(h.headerName), h.scheme)
	if !ok {
		return "", ErrTokenNotFound
	}
	return token, nil
}

// stripScheme returns the token from "<scheme> <token>". Values without the
// scheme, or with an empty token, are not well formed.
func stripScheme(value, scheme string) (string, bool) {
	prefix, token, ok := strings.Cut(strings.TrimSpace(value), " ")
	if !ok || !strings.EqualFold(prefix, scheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}
