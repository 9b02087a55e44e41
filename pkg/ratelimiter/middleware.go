package ratelimiter

import (
	"encoding/json"
	"hash/fnv"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/onboarding/pkg/clientip"
	"github.com/dmitrymomot/onboarding/pkg/logger"
)

const maxKeyLength = 64

// KeyFunc derives the bucket key for a request.
type KeyFunc func(r *http.Request) string

// Static returns a constant key part, typically the route name.
func Static(name string) KeyFunc {
	return func(*http.Request) string { return name }
}

// ByClientIP keys requests by the address clientip's middleware resolved,
// falling back to the peer address.
func ByClientIP(r *http.Request) string {
	if ip := clientip.FromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.GetIP(r)
}

// Composite joins the non-empty parts with ":". Keys longer than 64 bytes are
// replaced by their FNV-1a hash in base36.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}
		combined := strings.Join(parts, ":")
		if len(combined) > maxKeyLength {
			h := fnv.New64a()
			_, _ = h.Write([]byte(combined))
			return strconv.FormatUint(h.Sum64(), 36)
		}
		return combined
	}
}

type middlewareConfig struct {
	logger *slog.Logger
	now    func() time.Time
	onDeny func(r *http.Request)
}

type MiddlewareOption func(*middlewareConfig)

func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// OnDeny registers a callback run for every rejected request.
func OnDeny(fn func(r *http.Request)) MiddlewareOption {
	return func(c *middlewareConfig) { c.onDeny = fn }
}

// Middleware takes one token per request. Denied requests get 429 with a
// Retry-After header. Store failures get 500; both bodies use the
// {"error":{"code","message"}} shape of the API.
func Middleware(b *Bucket, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{logger: logger.Discard(), now: time.Now}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)
			if key == "" {
				key = "unknown"
			}

			result, err := b.Allow(r.Context(), key)
			if err != nil {
				cfg.logger.ErrorContext(r.Context(), "rate limiter failed",
					logger.Component("ratelimiter"),
					logger.Error(err),
				)
				writeError(w, http.StatusInternalServerError, "internal_server_error", "internal server error")
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				retry := int((result.RetryAfter(cfg.now()) + time.Second - 1) / time.Second)
				w.Header().Set("Retry-After", strconv.Itoa(max(retry, 1)))
				if cfg.onDeny != nil {
					cfg.onDeny(r)
				}
				cfg.logger.WarnContext(r.Context(), "rate limit exceeded",
					logger.Component("ratelimiter"),
					logger.ClientIP(ByClientIP(r)),
				)
				writeError(w, http.StatusTooManyRequests, "too_many_requests", "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
