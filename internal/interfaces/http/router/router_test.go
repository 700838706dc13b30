package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/linq/acme-integration/internal/application/integration"
	"github.com/linq/acme-integration/internal/infrastructure/acme"
	"github.com/linq/acme-integration/internal/infrastructure/auth"
	"github.com/linq/acme-integration/internal/infrastructure/config"
	"github.com/linq/acme-integration/internal/interfaces/http/dto"
	"github.com/linq/acme-integration/internal/interfaces/http/middleware"
	"github.com/linq/acme-integration/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()

	group := NewDomainGroup("test", "/test")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	group.Group("nested", "/nested").DELETE("/:id", func(c *gin.Context) {
		c.String(http.StatusOK, c.Param("id"))
	})

	NewRouter(engine, WithBasePath("/api")).Register(group).Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/test/ping", nil))
	assert.Equal(t, "pong", w.Body.String())

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/test/nested/42", nil))
	assert.Equal(t, "42", w.Body.String())

	assert.Equal(t, "test", group.Name())
	assert.Equal(t, "/test", group.Prefix())
}

func TestRouterUse_AppliesToRegistrars(t *testing.T) {
	engine := gin.New()
	group := NewDomainGroup("test", "/test").GET("", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("mark"))
	})

	NewRouter(engine).
		Use(func(c *gin.Context) { c.Set("mark", "router") }).
		Register(group).
		Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, "router", w.Body.String())
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "linq-acmecrm-integration", Env: "development", Version: "1.0.0"},
		HTTP: config.HTTPConfig{
			Host:             "0.0.0.0",
			Port:             "8200",
			MaxBodySize:      1 << 20,
			CORSAllowOrigins: []string{"*"},
			CORSAllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			CORSAllowHeaders: []string{"Content-Type", "Authorization"},
		},
		Auth: config.AuthConfig{
			Secret:            "router-test-secret-at-least-32-chars",
			TokenTTL:          30 * time.Minute,
			DemoTokensEnabled: true,
		},
		Swagger: config.SwaggerConfig{Enabled: true},
	}
}

func newTestEngine(t *testing.T, cfg *config.Config, log *zap.Logger) *gin.Engine {
	t.Helper()
	return NewEngine(Dependencies{
		Config:   cfg,
		Logger:   log,
		Contacts: integration.NewContactService(acme.NewService()),
		Tokens:   auth.NewTokenService(cfg.Auth),
	})
}

func serve(engine *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	return testutil.Serve(engine, method, path, token, body)
}

func TestNewEngine_PublicRoutes(t *testing.T) {
	engine := newTestEngine(t, testConfig(), nil)

	w := serve(engine, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"docs":"/swagger/index.html"`)

	w = serve(engine, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Contains(t, w.Body.String(), `"port":"8200"`)

	w = serve(engine, http.MethodGet, "/mapping/schema", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"linq_to_acme"`)

	w = serve(engine, http.MethodGet, "/swagger/index.html", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Content-Security-Policy"))
}

func TestNewEngine_ContactsRequireAuth(t *testing.T) {
	engine := newTestEngine(t, testConfig(), nil)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/contacts"},
		{http.MethodGet, "/contacts"},
		{http.MethodGet, "/contacts/stats"},
		{http.MethodGet, "/contacts/acme_00000000"},
		{http.MethodPatch, "/contacts/acme_00000000/status"},
		{http.MethodDelete, "/contacts/acme_00000000"},
	} {
		w := serve(engine, route.method, route.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)

		w = serve(engine, route.method, route.path, "wrong-token", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestNewEngine_EndToEnd(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	engine := newTestEngine(t, testConfig(), zap.New(core))

	w := serve(engine, http.MethodPost, "/contacts", "linq-assessment-token",
		`{"firstName":"John","lastName":"Doe","email":"john.doe@example.com"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := testutil.DecodeJSON[integration.CreateResult](t, w)
	assert.Equal(t, "Contact successfully created in AcmeCRM by user assessment_user", created.Message)

	w = serve(engine, http.MethodGet, "/contacts/"+created.ContactID, "linq-assessment-token", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"firstName":"John"`)

	w = serve(engine, http.MethodGet, "/contacts/stats", "linq-sales-engineer", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user":"sales_user"`)
	assert.Contains(t, w.Body.String(), `"total_contacts":1`)

	requests := logs.FilterMessage("HTTP Request").All()
	require.Len(t, requests, 3)
	assert.Equal(t, "assessment_user", requests[0].ContextMap()["user"])
	assert.NotEmpty(t, requests[0].ContextMap()["request_id"])
}

func TestNewEngine_IssuedToken(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.DemoTokensEnabled = false
	engine := newTestEngine(t, cfg, nil)

	w := serve(engine, http.MethodGet, "/contacts", "linq-demo-token", "")
	testutil.AssertErrorResponse(t, w, http.StatusUnauthorized, dto.ErrCodeUnauthorized)

	token, err := auth.NewTokenService(cfg.Auth).Issue(auth.Claims{Subject: "alice"}, time.Minute)
	require.NoError(t, err)
	w = serve(engine, http.MethodGet, "/contacts", token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestNewEngine_SwaggerDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Swagger.Enabled = false
	engine := newTestEngine(t, cfg, nil)

	w := serve(engine, http.MethodGet, "/swagger/index.html", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(engine, http.MethodGet, "/", "", "")
	assert.NotContains(t, w.Body.String(), `"docs"`)
}

func TestNewEngine_UnknownRouteAndMethod(t *testing.T) {
	engine := newTestEngine(t, testConfig(), nil)

	w := serve(engine, http.MethodGet, "/nope", "", "")
	resp := testutil.AssertErrorResponse(t, w, http.StatusNotFound, dto.ErrCodeNotFound)
	assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), resp.Error.RequestID)

	w = serve(engine, http.MethodPut, "/health", "", "")
	testutil.AssertErrorResponse(t, w, http.StatusMethodNotAllowed, dto.ErrCodeMethodNotAllowed)
}

func TestNewEngine_RateLimit(t *testing.T) {
	cfg := testConfig()
	limiter := middleware.NewRateLimiter(1, time.Minute)
	t.Cleanup(limiter.Close)

	engine := NewEngine(Dependencies{
		Config:      cfg,
		Contacts:    integration.NewContactService(acme.NewService()),
		Tokens:      auth.NewTokenService(cfg.Auth),
		RateLimiter: limiter,
	})

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(engine, http.MethodGet, "/health", "", "").Code)
}

func TestNewEngine_CORSPreflight(t *testing.T) {
	engine := newTestEngine(t, testConfig(), nil)

	req := httptest.NewRequest(http.MethodOptions, "/contacts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
