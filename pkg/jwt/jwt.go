package jwt

import (
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

const minSigningKeyLength = 32

// Payload is the identity carried by a verified token.
type Payload struct {
	Subject string `json:"sub"`
	UserID  int64  `json:"user_id"`
}

type claims struct {
	UserID int64 `json:"user_id"`
	gojwt.RegisteredClaims
}

// Service creates and verifies HS256 identity tokens.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	signingKey []byte
	issuer     string
	now        func() time.Time
	parser     *gojwt.Parser
}

type Option func(*Service)

// WithClock overrides the time source used for iat, exp and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIssuer sets the iss claim on created tokens and requires it on verification.
func WithIssuer(issuer string) Option {
	return func(s *Service) {
		s.issuer = issuer
	}
}

func New(signingKey []byte, opts ...Option) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	if len(signingKey) < minSigningKeyLength {
		return nil, ErrInvalidSigningKey
	}

	s := &Service{
		signingKey: signingKey,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	parserOpts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithExpirationRequired(),
		gojwt.WithIssuedAt(),
		gojwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		parserOpts = append(parserOpts, gojwt.WithIssuer(s.issuer))
	}
	s.parser = gojwt.NewParser(parserOpts...)

	return s, nil
}

func NewFromString(signingKey string, opts ...Option) (*Service, error) {
	return New([]byte(signingKey), opts...)
}

// CreateToken signs {sub, user_id} with an expiry ttl from now.
func (s *Service) CreateToken(subject string, userID int64, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", ErrInvalidSubject
	}
	if ttl <= 0 {
		return "", ErrInvalidTTL
	}

	now := s.now()
	c := claims{
		UserID: userID,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  gojwt.NewNumericDate(now),
			ExpiresAt: gojwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return gojwt.NewWithClaims(gojwt.SigningMethodHS256, c).SignedString(s.signingKey)
}

// VerifyToken checks the signature, algorithm and expiry of token.
// Any failure yields ErrInvalidToken with no further detail.
func (s *Service) VerifyToken(token string) (*Payload, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	var c claims
	parsed, err := s.parser.ParseWithClaims(token, &c, func(*gojwt.Token) (any, error) {
		return s.signingKey, nil
	})
	if err != nil || !parsed.Valid || c.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Payload{Subject: c.Subject, UserID: c.UserID}, nil
}
