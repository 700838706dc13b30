package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newSpanRecorder(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })
	return sr, tp
}

func TestTracing_Disabled(t *testing.T) {
	sr, tp := newSpanRecorder(t)

	router := gin.New()
	router.Use(Tracing(TracingConfig{Enabled: false, TracerProvider: tp}))
	router.GET("/health", okHandler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, sr.Ended())
}

func TestTracing_SpanCarriesRouteUserAndRequestID(t *testing.T) {
	sr, tp := newSpanRecorder(t)

	router := gin.New()
	router.Use(
		RequestID(),
		Tracing(TracingConfig{Enabled: true, ServiceName: "linq-test", TracerProvider: tp}),
		BearerAuth(newTokenService(t)),
		TraceAttributes(),
	)
	router.GET("/contacts/:id", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/contacts/acme_deadbeef", nil)
	req.Header.Set(AuthHeaderKey, "Bearer linq-sales-engineer")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Contains(t, span.Name(), "/contacts/:id")

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "sales_user", attrs["enduser.id"].AsString())
	assert.Equal(t, w.Header().Get(RequestIDHeader), attrs["request_id"].AsString())
}
