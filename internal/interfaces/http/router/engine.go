package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/linq/acme-integration/internal/application/integration"
	"github.com/linq/acme-integration/internal/infrastructure/config"
	"github.com/linq/acme-integration/internal/infrastructure/logger"
	"github.com/linq/acme-integration/internal/infrastructure/telemetry"
	"github.com/linq/acme-integration/internal/interfaces/http/dto"
	"github.com/linq/acme-integration/internal/interfaces/http/handler"
	"github.com/linq/acme-integration/internal/interfaces/http/middleware"
)

// SwaggerIndexPath is advertised by GET / when the docs are enabled.
const SwaggerIndexPath = "/swagger/index.html"

// Dependencies are the collaborators the HTTP layer needs.
type Dependencies struct {
	Config   *config.Config
	Logger   *zap.Logger
	Contacts *integration.ContactService
	Tokens   middleware.TokenResolver

	// Optional.
	Metrics       *telemetry.ContactMetrics
	MeterProvider *telemetry.MeterProvider
	RateLimiter   *middleware.RateLimiter
}

// NewEngine builds the gin engine with the full middleware chain:
//
//  1. RequestID
//  2. Recovery
//  3. Tracing (when telemetry is enabled)
//  4. request logging
//  5. HTTP metrics (when metrics are enabled)
//  6. security headers
//  7. CORS
//  8. body limit
//  9. rate limit (when a limiter is given)
func NewEngine(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	middleware.SetupValidator()

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
		MeterProvider: deps.MeterProvider,
		Enabled:       cfg.Telemetry.MetricsEnabled,
		Logger:        log,
	}))
	engine.Use(middleware.Secure())

	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	cors.AllowMethods = cfg.HTTP.CORSAllowMethods
	cors.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(cors))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if deps.RateLimiter != nil {
		engine.Use(middleware.RateLimit(deps.RateLimiter))
	}

	docsPath := ""
	if cfg.Swagger.Enabled {
		docsPath = SwaggerIndexPath
	}
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:    cfg.Swagger.Enabled,
			AllowedIPs: cfg.Swagger.AllowedIPs,
		}),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	systemHandler := handler.NewSystemHandler(cfg.App.Version, cfg.HTTP.Port, docsPath)
	contactHandler := handler.NewContactHandler(deps.Contacts)
	mappingHandler := handler.NewMappingHandler(deps.Contacts)

	systemRoutes := NewDomainGroup("system", "/").
		GET("", systemHandler.Info).
		GET("health", systemHandler.Health)

	mappingRoutes := NewDomainGroup("mapping", "/mapping").
		GET("/schema", mappingHandler.Schema)

	contactRoutes := NewDomainGroup("contacts", "/contacts").
		Use(
			middleware.BearerAuthWithConfig(middleware.AuthConfig{
				Resolver: deps.Tokens,
				Metrics:  deps.Metrics,
			}),
			middleware.TraceAttributes(),
		).
		POST("", contactHandler.Create).
		GET("", contactHandler.List).
		GET("/stats", contactHandler.Stats).
		GET("/:id", contactHandler.Get).
		PATCH("/:id/status", contactHandler.UpdateStatus).
		DELETE("/:id", contactHandler.Delete)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeNotFound, "Not Found", c.GetString(logger.GinRequestIDKey)))
	})
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeMethodNotAllowed, "Method Not Allowed", c.GetString(logger.GinRequestIDKey)))
	})

	NewRouter(engine).
		Register(systemRoutes).
		Register(mappingRoutes).
		Register(contactRoutes).
		Setup()

	return engine
}
