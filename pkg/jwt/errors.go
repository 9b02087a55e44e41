package jwt

import "errors"

var (
	// ErrInvalidToken is the only error VerifyToken returns. Bad signatures,
	// malformed tokens and expired tokens are deliberately indistinguishable.
	ErrInvalidToken      = errors.New("jwt: invalid token")
	ErrMissingSigningKey = errors.New("jwt: missing signing key")
	ErrInvalidSigningKey = errors.New("jwt: signing key must be at least 32 bytes")
	ErrInvalidTTL        = errors.New("jwt: ttl must be positive")
	ErrInvalidSubject    = errors.New("jwt: subject must not be empty")
)
