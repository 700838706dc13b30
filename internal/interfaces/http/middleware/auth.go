package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/linq/acme-integration/internal/domain/shared"
	"github.com/linq/acme-integration/internal/infrastructure/auth"
	"github.com/linq/acme-integration/internal/infrastructure/logger"
	"github.com/linq/acme-integration/internal/infrastructure/telemetry"
	"github.com/linq/acme-integration/internal/interfaces/http/dto"
)

// Auth context keys
const (
	AuthUserKey   = "auth_user"
	AuthHeaderKey = "Authorization"
	BearerScheme  = "Bearer"
)

// TokenResolver turns a bearer token into a username.
type TokenResolver interface {
	Resolve(token string) (string, error)
}

// AuthConfig holds configuration for the bearer auth middleware
type AuthConfig struct {
	// Resolver is required for token validation
	Resolver TokenResolver
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
	// SkipPathPrefixes are path prefixes that don't require authentication
	SkipPathPrefixes []string
	// Metrics receives one auth_failures_total increment per rejection
	Metrics *telemetry.ContactMetrics
	// Logger for middleware logging
	Logger *zap.Logger
}

// BearerAuth creates bearer authentication middleware
func BearerAuth(resolver TokenResolver) gin.HandlerFunc {
	return BearerAuthWithConfig(AuthConfig{Resolver: resolver})
}

// BearerAuthWithConfig creates bearer authentication middleware with custom config
func BearerAuthWithConfig(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		token, ok := bearerToken(c.GetHeader(AuthHeaderKey))
		if !ok {
			rejectAuth(c, cfg, "missing_credentials", auth.ErrEmptyToken)
			return
		}

		user, err := cfg.Resolver.Resolve(token)
		if err != nil {
			rejectAuth(c, cfg, failureReason(err), err)
			return
		}

		c.Set(AuthUserKey, user)
		c.Request = c.Request.WithContext(logger.WithUser(c.Request.Context(), user))
		c.Next()
	}
}

// bearerToken extracts the credentials from an Authorization header. The
// scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "expired"
	case errors.Is(err, auth.ErrMissingSubject):
		return "missing_subject"
	case errors.Is(err, auth.ErrEmptyToken):
		return "missing_credentials"
	default:
		return "invalid"
	}
}

// rejectAuth aborts with 401. The body never says why the token failed.
// Without a configured logger the request-scoped one is used.
func rejectAuth(c *gin.Context, cfg AuthConfig, reason string, err error) {
	log := cfg.Logger
	if log == nil {
		log = logger.GetGinLogger(c)
	}
	cfg.Metrics.RecordAuthFailure(c.Request.Context(), reason)
	log.Debug("Authentication failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("reason", reason),
		zap.Error(err))

	c.Header("WWW-Authenticate", BearerScheme)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeUnauthorized,
		shared.ErrUnauthorized.Message,
		getRequestID(c),
	))
}

// GetUser returns the authenticated username, or "" outside protected routes.
func GetUser(c *gin.Context) string {
	return c.GetString(AuthUserKey)
}
