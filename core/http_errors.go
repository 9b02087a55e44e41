package core

import (
	"net/http"
	"strings"
)

// HTTPError represents an HTTP error with status code and machine-readable key.
// The Key is what clients receive as the "code" field of an error body.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // Error key (e.g., "not_found", "unauthorized")
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

// Message is the human-readable form of the key: "too_many_requests" becomes
// "too many requests".
func (e HTTPError) Message() string {
	return strings.ReplaceAll(e.Key, "_", " ")
}

// 4xx Client Errors
var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrUnauthorized         = HTTPError{Code: http.StatusUnauthorized, Key: "unauthorized"}
	ErrForbidden            = HTTPError{Code: http.StatusForbidden, Key: "forbidden"}
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed     = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrConflict             = HTTPError{Code: http.StatusConflict, Key: "conflict"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrTooManyRequests      = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
)

// 5xx Server Errors
var (
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrServiceUnavailable  = HTTPError{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
)

var byStatus = map[int]HTTPError{}

func init() {
	for _, e := range []HTTPError{
		ErrBadRequest, ErrUnauthorized, ErrForbidden, ErrNotFound, ErrMethodNotAllowed,
		ErrConflict, ErrUnsupportedMediaType, ErrTooManyRequests,
		ErrInternalServerError, ErrServiceUnavailable,
	} {
		byStatus[e.Code] = e
	}
}

// NewHTTPError creates a custom HTTP error with the given status code and key.
//
// Example:
//
//	err := core.NewHTTPError(http.StatusForbidden, "insufficient_permissions")
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// FromStatus returns the predefined error for code. Unknown 4xx codes fall
// back to ErrBadRequest and everything else to ErrInternalServerError.
func FromStatus(code int) HTTPError {
	if e, ok := byStatus[code]; ok {
		return e
	}
	if code >= 400 && code < 500 {
		return ErrBadRequest
	}
	return ErrInternalServerError
}
