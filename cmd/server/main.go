package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/linq/acme-integration/docs"
	"github.com/linq/acme-integration/internal/application/integration"
	"github.com/linq/acme-integration/internal/infrastructure/acme"
	"github.com/linq/acme-integration/internal/infrastructure/auth"
	"github.com/linq/acme-integration/internal/infrastructure/config"
	"github.com/linq/acme-integration/internal/infrastructure/logger"
	"github.com/linq/acme-integration/internal/infrastructure/telemetry"
	"github.com/linq/acme-integration/internal/interfaces/http/middleware"
	"github.com/linq/acme-integration/internal/interfaces/http/router"
)

//	@title			Linq-AcmeCRM Integration API
//	@version		1.0
//	@description	Translates contacts between the Linq and AcmeCRM schemas and stores them in a mock CRM.

//	@host		localhost:8200
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	ctx := context.Background()

	// The log bridge must exist before the logger so the first lines are exported too.
	logProvider, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
		Enabled:           cfg.Telemetry.LogsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    cfg.App.Version,
		Insecure:          cfg.Telemetry.Insecure,
	})
	if err != nil {
		panic("Failed to initialize log exporter: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}, logProvider.ZapCore(logger.ParseLevel(cfg.Telemetry.LogsLevel)))
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Linq-AcmeCRM integration",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", cfg.App.Version),
		zap.String("addr", cfg.HTTP.Addr()),
	)

	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    cfg.App.Version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}

	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    cfg.App.Version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize meter provider", zap.Error(err))
	}

	store := acme.NewService()
	contacts := integration.NewContactService(store)
	tokens := auth.NewTokenService(cfg.Auth)
	if cfg.Auth.DemoTokensEnabled {
		log.Warn("Demo bearer tokens are accepted")
	}

	var contactMetrics *telemetry.ContactMetrics
	if meterProvider.IsEnabled() {
		contactMetrics, err = telemetry.NewContactMetrics(meterProvider.Meter(telemetry.TracerName), integration.StoreSnapshot(store))
		if err != nil {
			log.Warn("Contact metrics disabled", zap.Error(err))
		}
		contacts.SetMetrics(contactMetrics)
	}

	var rateLimiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer rateLimiter.Close()
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.NewEngine(router.Dependencies{
		Config:        cfg,
		Logger:        log,
		Contacts:      contacts,
		Tokens:        tokens,
		Metrics:       contactMetrics,
		MeterProvider: meterProvider,
		RateLimiter:   rateLimiter,
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           engine,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	telemetry.LogShutdown(log, "contact_metrics", contactMetrics.Close())
	telemetry.LogShutdown(log, "meter", meterProvider.Shutdown(shutdownCtx))
	telemetry.LogShutdown(log, "tracer", tracerProvider.Shutdown(shutdownCtx))
	log.Info("Server exited gracefully")
	telemetry.LogShutdown(log, "logger", logProvider.Shutdown(shutdownCtx))
}
