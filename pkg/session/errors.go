package session

import "errors"

var (
	ErrTokenNotFound = errors.New("session.token_not_found")
	ErrEmptyToken    = errors.New("session.empty_token")
	ErrInvalidTTL    = errors.New("session.invalid_ttl")
)
