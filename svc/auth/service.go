package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	authstore "github.com/dmitrymomot/onboarding/pkg/auth"
	"github.com/dmitrymomot/onboarding/pkg/jwt"
	"github.com/dmitrymomot/onboarding/pkg/logger"
	"github.com/dmitrymomot/onboarding/pkg/metrics"
	"github.com/dmitrymomot/onboarding/pkg/validator"
)

const (
	TokenTypeBearer = "bearer"
	component       = "auth"
)

// Operation names used in logs and metrics.
const (
	OpLogin    = "login"
	OpRegister = "register"
	OpRefresh  = "refresh"
	OpIdentify = "identify"
	OpLogout   = "logout"
)

// CredentialStore is implemented by *authstore.Store.
type CredentialStore interface {
	GetByEmail(ctx context.Context, email string) (*authstore.User, error)
	Create(ctx context.Context, email, password string) (*authstore.User, error)
	Authenticate(ctx context.Context, email, password string) (*authstore.User, error)
}

// TokenCodec is implemented by *jwt.Service.
type TokenCodec interface {
	CreateToken(subject string, userID int64, ttl time.Duration) (string, error)
	VerifyToken(token string) (*jwt.Payload, error)
}

// SessionCookies is implemented by *session.CookieManager.
type SessionCookies interface {
	WriteAccessCookie(w http.ResponseWriter, token string, ttl time.Duration) error
	WriteRefreshCookie(w http.ResponseWriter, token string, ttl time.Duration) error
	ClearAccessCookie(w http.ResponseWriter) error
	ClearRefreshCookie(w http.ResponseWriter) error
	ExtractToken(r *http.Request) (string, error)
	RefreshToken(r *http.Request) (string, error)
}

type Config struct {
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// TokenResponse is the body returned by login, register and refresh.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Service runs the login, register, refresh, identify and logout flows.
// It keeps no per-request state.
type Service struct {
	store   CredentialStore
	tokens  TokenCodec
	cookies SessionCookies
	cfg     Config
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(store CredentialStore, tokens TokenCodec, cookies SessionCookies, cfg Config, opts ...Option) (*Service, error) {
	if cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL <= 0 {
		return nil, fmt.Errorf("%w: token ttls must be positive", ErrInvalidConfig)
	}
	s := &Service{
		store:   store,
		tokens:  tokens,
		cookies: cookies,
		cfg:     cfg,
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Login authenticates username (an email) and password and starts a session:
// both tokens are minted and written as cookies.
func (s *Service) Login(ctx context.Context, w http.ResponseWriter, username, password string) (*TokenResponse, error) {
	if err := validator.Apply(
		validator.Required("username", username),
		validator.Required("password", password),
	); err != nil {
		s.metrics.Record(OpLogin, metrics.OutcomeInvalid)
		return nil, ErrCredentialsRequired
	}

	user, err := s.store.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, authstore.ErrInvalidCredentials) {
			s.metrics.Record(OpLogin, metrics.OutcomeDenied)
			s.logger.InfoContext(ctx, "login rejected", logger.Component(component), logger.Operation(OpLogin))
			return nil, ErrInvalidCredentials
		}
		return nil, s.fail(ctx, OpLogin, err)
	}

	resp, err := s.startSession(w, user)
	if err != nil {
		return nil, s.fail(ctx, OpLogin, err)
	}

	s.metrics.Record(OpLogin, metrics.OutcomeSuccess)
	s.logger.InfoContext(ctx, "user logged in", logger.Component(component), logger.UserID(user.ID))
	return resp, nil
}

// Register creates the account and starts a session exactly like Login.
// Validation failures and a taken email are reported as KindValidation with
// the store's message.
func (s *Service) Register(ctx context.Context, w http.ResponseWriter, email, password string) (*TokenResponse, error) {
	user, err := s.store.Create(ctx, email, password)
	if err != nil {
		if errs := validator.ExtractValidationErrors(err); len(errs) > 0 {
			s.metrics.Record(OpRegister, metrics.OutcomeInvalid)
			return nil, validationError(strings.Join(errs.Messages(), "; "), err)
		}
		if errors.Is(err, authstore.ErrEmailAlreadyExists) {
			s.metrics.Record(OpRegister, metrics.OutcomeConflict)
			return nil, validationError(authstore.ErrEmailAlreadyExists.Error(), err)
		}
		return nil, s.fail(ctx, OpRegister, err)
	}

	resp, err := s.startSession(w, user)
	if err != nil {
		return nil, s.fail(ctx, OpRegister, err)
	}

	s.metrics.Record(OpRegister, metrics.OutcomeSuccess)
	return resp, nil
}

// Refresh mints a new access token from the refresh cookie. The refresh
// token itself is left in place. Whenever the refresh token cannot be used
// its cookie is cleared.
func (s *Service) Refresh(ctx context.Context, w http.ResponseWriter, r *http.Request) (*TokenResponse, error) {
	token, err := s.cookies.RefreshToken(r)
	if err != nil {
		s.metrics.Record(OpRefresh, metrics.OutcomeDenied)
		return nil, ErrRefreshTokenNotFound
	}

	payload, err := s.tokens.VerifyToken(token)
	if err != nil {
		s.clearRefresh(ctx, w)
		s.metrics.Record(OpRefresh, metrics.OutcomeDenied)
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.store.GetByEmail(ctx, payload.Subject)
	if err != nil {
		if errors.Is(err, authstore.ErrUserNotFound) {
			s.clearRefresh(ctx, w)
			s.metrics.Record(OpRefresh, metrics.OutcomeDenied)
			return nil, ErrUserNotFound
		}
		return nil, s.fail(ctx, OpRefresh, err)
	}
	if user.ID != payload.UserID {
		s.clearRefresh(ctx, w)
		s.metrics.Record(OpRefresh, metrics.OutcomeDenied)
		return nil, ErrInvalidRefreshToken
	}

	access, err := s.tokens.CreateToken(user.Email, user.ID, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, s.fail(ctx, OpRefresh, err)
	}
	if err := s.cookies.WriteAccessCookie(w, access, s.cfg.AccessTokenTTL); err != nil {
		return nil, s.fail(ctx, OpRefresh, err)
	}

	s.metrics.Record(OpRefresh, metrics.OutcomeSuccess)
	return s.tokenResponse(access), nil
}

// Identify resolves the caller from the Authorization header or, failing
// that, the access cookie. Like Refresh, it rejects a token whose user_id
// does not belong to the subject.
func (s *Service) Identify(ctx context.Context, r *http.Request) (*authstore.User, error) {
	token, err := s.cookies.ExtractToken(r)
	if err != nil {
		s.metrics.Record(OpIdentify, metrics.OutcomeDenied)
		return nil, ErrAccessTokenNotFound
	}

	payload, err := s.tokens.VerifyToken(token)
	if err != nil {
		s.metrics.Record(OpIdentify, metrics.OutcomeDenied)
		return nil, ErrInvalidAccessToken
	}

	user, err := s.store.GetByEmail(ctx, payload.Subject)
	if err != nil {
		if errors.Is(err, authstore.ErrUserNotFound) {
			s.metrics.Record(OpIdentify, metrics.OutcomeDenied)
			return nil, ErrUserNotFound
		}
		return nil, s.fail(ctx, OpIdentify, err)
	}
	if user.ID != payload.UserID {
		s.metrics.Record(OpIdentify, metrics.OutcomeDenied)
		return nil, ErrInvalidAccessToken
	}

	s.metrics.Record(OpIdentify, metrics.OutcomeSuccess)
	return user, nil
}

// Logout clears both cookies. It never fails: tokens stay valid until they
// expire, only the client's copies are dropped.
func (s *Service) Logout(ctx context.Context, w http.ResponseWriter) *MessageResponse {
	if err := s.cookies.ClearAccessCookie(w); err != nil {
		s.logger.WarnContext(ctx, "failed to clear access cookie", logger.Component(component), logger.Error(err))
	}
	s.clearRefresh(ctx, w)
	s.metrics.Record(OpLogout, metrics.OutcomeSuccess)
	return &MessageResponse{Message: "successfully logged out"}
}

func (s *Service) startSession(w http.ResponseWriter, user *authstore.User) (*TokenResponse, error) {
	access, err := s.tokens.CreateToken(user.Email, user.ID, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}
	refresh, err := s.tokens.CreateToken(user.Email, user.ID, s.cfg.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("create refresh token: %w", err)
	}
	if err := s.cookies.WriteAccessCookie(w, access, s.cfg.AccessTokenTTL); err != nil {
		return nil, fmt.Errorf("write access cookie: %w", err)
	}
	if err := s.cookies.WriteRefreshCookie(w, refresh, s.cfg.RefreshTokenTTL); err != nil {
		return nil, fmt.Errorf("write refresh cookie: %w", err)
	}
	return s.tokenResponse(access), nil
}

func (s *Service) tokenResponse(access string) *TokenResponse {
	return &TokenResponse{
		AccessToken: access,
		TokenType:   TokenTypeBearer,
		ExpiresIn:   int(s.cfg.AccessTokenTTL.Seconds()),
	}
}

func (s *Service) clearRefresh(ctx context.Context, w http.ResponseWriter) {
	if err := s.cookies.ClearRefreshCookie(w); err != nil {
		s.logger.WarnContext(ctx, "failed to clear refresh cookie", logger.Component(component), logger.Error(err))
	}
}

func (s *Service) fail(ctx context.Context, op string, err error) error {
	s.metrics.Record(op, metrics.OutcomeError)
	s.logger.ErrorContext(ctx, "auth operation failed",
		logger.Component(component),
		logger.Operation(op),
		logger.Error(err),
	)
	return unexpectedError(err)
}
