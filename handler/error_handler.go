package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/onboarding/core"
	"github.com/dmitrymomot/onboarding/pkg/binder"
	"github.com/dmitrymomot/onboarding/pkg/logger"
	"github.com/dmitrymomot/onboarding/pkg/requestid"
)

const internalErrorMessage = "internal server error"

// StatusError is implemented by domain errors that know their HTTP status.
// Error() must be safe to show to clients; 5xx messages are replaced anyway.
type StatusError interface {
	error
	StatusCode() int
}

// ErrorInfo contains classified error information
type ErrorInfo struct {
	HTTPError core.HTTPError
	Message   string
	LogLevel  slog.Level
}

// ClassifyError maps err to the status, key and client message of its
// response. Unknown errors become a 500 with a generic message.
func ClassifyError(err error) ErrorInfo {
	info := ErrorInfo{
		HTTPError: core.ErrInternalServerError,
		Message:   internalErrorMessage,
	}

	var statusErr StatusError
	var httpErr core.HTTPError
	switch {
	case binder.IsBindingError(err):
		info.HTTPError = core.ErrBadRequest
		info.Message = "invalid request body"
	case errors.As(err, &statusErr):
		info.HTTPError = core.FromStatus(statusErr.StatusCode())
		info.Message = statusErr.Error()
	case errors.As(err, &httpErr):
		info.HTTPError = httpErr
		info.Message = httpErr.Message()
	}

	if info.HTTPError.Code >= http.StatusInternalServerError {
		info.Message = internalErrorMessage
		info.LogLevel = slog.LevelError
	} else {
		info.LogLevel = slog.LevelWarn
	}

	return info
}

// NewErrorHandler creates the JSON error handler. Every error is logged with
// the request id; the client only sees the classified message.
// Configure this once in main.go and pass to all modules.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := ClassifyError(err)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", info.HTTPError.Code),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if renderErr := JSONError(info.HTTPError, info.Message).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}
