// Package auth resolves bearer tokens to usernames.
package auth

import (
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/linq/acme-integration/internal/domain/shared"
	"github.com/linq/acme-integration/internal/infrastructure/config"
)

// DefaultTokenTTL applies when Issue is called without a positive ttl.
const DefaultTokenTTL = 30 * time.Minute

// Common errors
var (
	ErrEmptyToken     = errors.New("token is empty")
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrMissingSubject = errors.New("missing sub in claims")
)

// demoTokens is the static allow-list that lets the demo run without a
// token-issuing endpoint.
var demoTokens = map[string]string{
	"linq-demo-token":       "demo_user",
	"linq-assessment-token": "assessment_user",
	"linq-sales-engineer":   "sales_user",
}

// DemoTokens returns a copy of the static allow-list.
func DemoTokens() map[string]string {
	return maps.Clone(demoTokens)
}

// AuthenticationError is returned for every token that cannot be resolved.
// It matches both its reason and shared.ErrUnauthorized with errors.Is.
type AuthenticationError struct {
	Reason error
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	return "authentication failed: " + e.Reason.Error()
}

// Unwrap exposes the reason and the domain error code.
func (e *AuthenticationError) Unwrap() []error {
	return []error{e.Reason, shared.ErrUnauthorized}
}

func authError(reason error) error {
	return &AuthenticationError{Reason: reason}
}

// Claims are the caller-supplied claims encoded by Issue.
type Claims struct {
	Subject string
	Extra   map[string]any
}

// Option configures a TokenService
type Option func(*TokenService)

// WithClock replaces the clock used for issuing and verifying expiry.
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) {
		s.now = now
	}
}

// TokenService issues and resolves HS256 bearer tokens.
type TokenService struct {
	secret     []byte
	issuer     string
	defaultTTL time.Duration
	demoTokens map[string]string
	now        func() time.Time
}

// NewTokenService creates a token service from auth settings
func NewTokenService(cfg config.AuthConfig, opts ...Option) *TokenService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	s := &TokenService{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		defaultTTL: ttl,
		now:        time.Now,
	}
	if cfg.DemoTokensEnabled {
		s.demoTokens = demoTokens
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve returns the username behind token. Allow-listed demo tokens are
// matched first and never decoded. Anything else must be a valid, unexpired
// HS256 token carrying a sub claim.
func (s *TokenService) Resolve(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", authError(ErrEmptyToken)
	}
	if user, ok := s.demoTokens[token]; ok {
		return user, nil
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", authError(ErrExpiredToken)
		}
		return "", authError(fmt.Errorf("%w: %v", ErrInvalidToken, err))
	}
	if !parsed.Valid {
		return "", authError(ErrInvalidToken)
	}
	if claims.Subject == "" {
		return "", authError(ErrMissingSubject)
	}
	return claims.Subject, nil
}

// Issue signs claims with an expiry ttl from now. A ttl <= 0 uses the
// configured default.
func (s *TokenService) Issue(claims Claims, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	now := s.now()

	mc := jwt.MapClaims{}
	for k, v := range claims.Extra {
		mc[k] = v
	}
	if claims.Subject != "" {
		mc["sub"] = claims.Subject
	}
	if s.issuer != "" {
		mc["iss"] = s.issuer
	}
	mc["iat"] = jwt.NewNumericDate(now)
	mc["exp"] = jwt.NewNumericDate(now.Add(ttl))

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// DefaultTTL returns the expiry applied when Issue gets no ttl.
func (s *TokenService) DefaultTTL() time.Duration {
	return s.defaultTTL
}
