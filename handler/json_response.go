package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/onboarding/core"
)

// ErrorBody is the JSON shape of every error response:
// {"error": {"code": "...", "message": "..."}}.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON renders v as the response body, with status 200 unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders an ErrorBody with httpErr's status and key. An empty
// message falls back to the key's readable form.
func JSONError(httpErr core.HTTPError, message string) Response {
	if message == "" {
		message = httpErr.Message()
	}
	return &jsonResponse{
		status: httpErr.Code,
		body:   ErrorBody{Error: ErrorDetail{Code: httpErr.Key, Message: message}},
	}
}

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error defers err to the ErrorHandler configured for the wrapped handler.
func Error(err error) Response {
	return errorResponse{err: err}
}
