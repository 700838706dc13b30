package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linq/acme-integration/internal/domain/shared"
	"github.com/linq/acme-integration/internal/infrastructure/config"
)

const testSecret = "test-secret-key-at-least-32-chars"

func newTestTokenService(opts ...Option) *TokenService {
	return NewTokenService(config.AuthConfig{
		Secret:            testSecret,
		Issuer:            "test-issuer",
		DemoTokensEnabled: true,
	}, opts...)
}

// clock is a manually advanced time source.
type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func TestNewTokenService(t *testing.T) {
	t.Run("defaults ttl to 30 minutes", func(t *testing.T) {
		svc := newTestTokenService()
		assert.Equal(t, 30*time.Minute, svc.DefaultTTL())
	})

	t.Run("uses configured ttl", func(t *testing.T) {
		svc := NewTokenService(config.AuthConfig{Secret: testSecret, TokenTTL: time.Hour})
		assert.Equal(t, time.Hour, svc.DefaultTTL())
	})
}

func TestResolve_DemoTokens(t *testing.T) {
	svc := newTestTokenService()

	cases := map[string]string{
		"linq-demo-token":       "demo_user",
		"linq-assessment-token": "assessment_user",
		"linq-sales-engineer":   "sales_user",
	}
	for token, want := range cases {
		t.Run(token, func(t *testing.T) {
			user, err := svc.Resolve(token)
			require.NoError(t, err)
			assert.Equal(t, want, user)
		})
	}

	t.Run("disabled allow-list falls through to verification", func(t *testing.T) {
		svc := NewTokenService(config.AuthConfig{Secret: testSecret, DemoTokensEnabled: false})

		_, err := svc.Resolve("linq-demo-token")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("returns a copy of the allow-list", func(t *testing.T) {
		tokens := DemoTokens()
		tokens["linq-demo-token"] = "intruder"
		user, err := svc.Resolve("linq-demo-token")
		require.NoError(t, err)
		assert.Equal(t, "demo_user", user)
	})
}

func TestIssueAndResolve(t *testing.T) {
	c := &clock{now: time.Date(2025, 7, 25, 10, 30, 0, 0, time.UTC)}
	svc := newTestTokenService(WithClock(c.Now))

	token, err := svc.Issue(Claims{Subject: "alice"}, 0)
	require.NoError(t, err)

	t.Run("resolves before expiry", func(t *testing.T) {
		user, err := svc.Resolve(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", user)
	})

	t.Run("default expiry is 30 minutes", func(t *testing.T) {
		claims := jwt.MapClaims{}
		_, _, err := jwt.NewParser().ParseUnverified(token, claims)
		require.NoError(t, err)

		exp, err := claims.GetExpirationTime()
		require.NoError(t, err)
		assert.Equal(t, c.now.Add(30*time.Minute).Unix(), exp.Unix())

		iss, err := claims.GetIssuer()
		require.NoError(t, err)
		assert.Equal(t, "test-issuer", iss)
	})

	t.Run("fails after expiry", func(t *testing.T) {
		later := &clock{now: c.now.Add(31 * time.Minute)}
		expiredView := newTestTokenService(WithClock(later.Now))

		_, err := expiredView.Resolve(token)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrExpiredToken)
		var authErr *AuthenticationError
		assert.True(t, errors.As(err, &authErr))
	})

	t.Run("honours caller ttl", func(t *testing.T) {
		short, err := svc.Issue(Claims{Subject: "bob"}, time.Minute)
		require.NoError(t, err)

		later := newTestTokenService(WithClock(func() time.Time { return c.now.Add(2 * time.Minute) }))
		_, err = later.Resolve(short)
		assert.ErrorIs(t, err, ErrExpiredToken)

		user, err := svc.Resolve(short)
		require.NoError(t, err)
		assert.Equal(t, "bob", user)
	})

	t.Run("carries extra claims", func(t *testing.T) {
		tok, err := svc.Issue(Claims{Subject: "carol", Extra: map[string]any{"role": "sales"}}, 0)
		require.NoError(t, err)

		claims := jwt.MapClaims{}
		_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
		require.NoError(t, err)
		assert.Equal(t, "sales", claims["role"])
		assert.Equal(t, "carol", claims["sub"])
	})
}

func TestResolve_Failures(t *testing.T) {
	svc := newTestTokenService()
	now := time.Now()

	sign := func(t *testing.T, method jwt.SigningMethod, claims jwt.Claims, key []byte) string {
		t.Helper()
		tok, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return tok
	}

	cases := []struct {
		name  string
		token func(t *testing.T) string
		want  error
	}{
		{
			name:  "empty",
			token: func(*testing.T) string { return "   " },
			want:  ErrEmptyToken,
		},
		{
			name:  "garbage",
			token: func(*testing.T) string { return "definitely-not-a-token" },
			want:  ErrInvalidToken,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, jwt.MapClaims{
					"sub": "mallory",
					"exp": now.Add(time.Hour).Unix(),
				}, []byte("some-other-secret"))
			},
			want: ErrInvalidToken,
		},
		{
			name: "wrong algorithm",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS512, jwt.MapClaims{
					"sub": "mallory",
					"exp": now.Add(time.Hour).Unix(),
				}, []byte(testSecret))
			},
			want: ErrInvalidToken,
		},
		{
			name: "missing expiry",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, jwt.MapClaims{"sub": "alice"}, []byte(testSecret))
			},
			want: ErrInvalidToken,
		},
		{
			name: "missing subject",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, jwt.MapClaims{
					"exp": now.Add(time.Hour).Unix(),
				}, []byte(testSecret))
			},
			want: ErrMissingSubject,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := svc.Resolve(tc.token(t))

			assert.Empty(t, user)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, shared.ErrUnauthorized)
		})
	}
}
