package auth

import (
	"errors"
	"net/http"
)

// Kind classifies service errors for the HTTP boundary.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthentication
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	default:
		return "unexpected"
	}
}

// StatusCode maps the kind to 400, 401 or 500.
func (k Kind) StatusCode() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error is returned by every Service operation. Message is safe to show to
// clients. Err is the underlying cause and is meant for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode lets HTTP error handlers map the error without knowing Kind.
func (e *Error) StatusCode() int {
	return e.Kind.StatusCode()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error with the same kind and message, so the sentinels
// below work with errors.Is regardless of the wrapped cause.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

var (
	ErrCredentialsRequired  = &Error{Kind: KindValidation, Message: "username and password are required"}
	ErrInvalidCredentials   = &Error{Kind: KindAuthentication, Message: "invalid email or password"}
	ErrRefreshTokenNotFound = &Error{Kind: KindAuthentication, Message: "refresh token not found"}
	ErrInvalidRefreshToken  = &Error{Kind: KindAuthentication, Message: "invalid or expired refresh token"}
	ErrAccessTokenNotFound  = &Error{Kind: KindAuthentication, Message: "access token not found"}
	ErrInvalidAccessToken   = &Error{Kind: KindAuthentication, Message: "invalid or expired access token"}
	ErrUserNotFound         = &Error{Kind: KindAuthentication, Message: "user not found"}
	ErrInternal             = &Error{Kind: KindUnexpected, Message: "internal server error"}

	ErrInvalidConfig = errors.New("invalid auth service configuration")
)

func validationError(message string, cause error) *Error {
	return &Error{Kind: KindValidation, Message: message, Err: cause}
}

func unexpectedError(cause error) *Error {
	return &Error{Kind: KindUnexpected, Message: ErrInternal.Message, Err: cause}
}
