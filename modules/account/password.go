package account

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/onboarding/core"
	"github.com/dmitrymomot/onboarding/handler"
	"github.com/dmitrymomot/onboarding/pkg/binder"
	"github.com/dmitrymomot/onboarding/pkg/logger"
	"github.com/dmitrymomot/onboarding/pkg/metrics"
	"github.com/dmitrymomot/onboarding/pkg/ratelimiter"
	svcauth "github.com/dmitrymomot/onboarding/svc/auth"
)

type loginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordHandler serves the email and password session endpoints.
type PasswordHandler struct {
	svc          *svcauth.Service
	limiter      *ratelimiter.Bucket
	metrics      *metrics.Metrics
	logger       *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

type Option func(*PasswordHandler)

// WithRateLimiter throttles /login and /register per client IP.
func WithRateLimiter(b *ratelimiter.Bucket) Option {
	return func(h *PasswordHandler) { h.limiter = b }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(h *PasswordHandler) { h.metrics = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(h *PasswordHandler) {
		if l != nil {
			h.logger = l
		}
	}
}

func NewPasswordHandler(svc *svcauth.Service, opts ...Option) *PasswordHandler {
	h := &PasswordHandler{
		svc:    svc,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.errorHandler = handler.NewErrorHandler(h.logger)
	return h
}

func (h *PasswordHandler) Handle() http.Handler {
	r := chi.NewRouter()

	r.With(h.throttle(svcauth.OpLogin)).Post("/login", handler.Wrap(h.login,
		handler.WithBinders[handler.Context, loginRequest](binder.Form()),
		handler.WithErrorHandler[handler.Context, loginRequest](h.errorHandler),
	))
	r.With(h.throttle(svcauth.OpRegister)).Post("/register", handler.Wrap(h.register,
		handler.WithBinders[handler.Context, registerRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, registerRequest](h.errorHandler),
	))
	r.Post("/refresh", handler.Wrap(h.refresh,
		handler.WithErrorHandler[handler.Context, struct{}](h.errorHandler),
	))
	r.Post("/logout", handler.Wrap(h.logout,
		handler.WithErrorHandler[handler.Context, struct{}](h.errorHandler),
	))
	r.With(h.RequireAuth).Get("/me", handler.Wrap(h.me,
		handler.WithErrorHandler[handler.Context, struct{}](h.errorHandler),
	))

	return r
}

func (h *PasswordHandler) login(ctx handler.Context, req loginRequest) handler.Response {
	resp, err := h.svc.Login(ctx, ctx.ResponseWriter(), req.Username, req.Password)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(resp)
}

func (h *PasswordHandler) register(ctx handler.Context, req registerRequest) handler.Response {
	resp, err := h.svc.Register(ctx, ctx.ResponseWriter(), req.Email, req.Password)
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(resp)
}

func (h *PasswordHandler) refresh(ctx handler.Context, _ struct{}) handler.Response {
	resp, err := h.svc.Refresh(ctx, ctx.ResponseWriter(), ctx.Request())
	if err != nil {
		return handler.Error(err)
	}
	return handler.JSON(resp)
}

func (h *PasswordHandler) logout(ctx handler.Context, _ struct{}) handler.Response {
	return handler.JSON(h.svc.Logout(ctx, ctx.ResponseWriter()))
}

func (h *PasswordHandler) me(ctx handler.Context, _ struct{}) handler.Response {
	user := svcauth.UserFromContext(ctx)
	if user == nil {
		return handler.Error(core.ErrUnauthorized)
	}
	return handler.JSON(user)
}

// throttle returns a pass-through middleware when no limiter is configured.
func (h *PasswordHandler) throttle(op string) func(http.Handler) http.Handler {
	if h.limiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return ratelimiter.Middleware(h.limiter,
		ratelimiter.Composite(ratelimiter.Static(op), ratelimiter.ByClientIP),
		ratelimiter.WithLogger(h.logger),
		ratelimiter.OnDeny(func(*http.Request) {
			h.metrics.Record(op, metrics.OutcomeRateLimited)
		}),
	)
}
