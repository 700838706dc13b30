package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	t.Run("returns attached logger", func(t *testing.T) {
		l := zap.NewExample()
		assert.Same(t, l, FromContext(WithContext(context.Background(), l)))
	})

	t.Run("falls back to nop", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})
}

func TestContextValues(t *testing.T) {
	ctx := WithUser(WithRequestID(context.Background(), "req-1"), "demo_user")

	assert.Equal(t, "req-1", GetRequestID(ctx))
	assert.Equal(t, "demo_user", GetUser(ctx))
	assert.Empty(t, GetRequestID(context.Background()))
	assert.Empty(t, GetUser(context.Background()))
}

func TestL_EnrichesWithContextFields(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := WithContext(context.Background(), zap.New(core))
	ctx = WithRequestID(ctx, "req-42")
	ctx = WithUser(ctx, "sales_user")

	L(ctx).Info("listed contacts")

	require.Equal(t, 1, recorded.Len())
	fields := recorded.All()[0].ContextMap()
	assert.Equal(t, "req-42", fields["request_id"])
	assert.Equal(t, "sales_user", fields["user"])
	assert.NotContains(t, fields, "trace_id")
}

func TestL_AddsTraceCorrelation(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	core, recorded := observer.New(zapcore.InfoLevel)
	ctx, span := tp.Tracer("test").Start(WithContext(context.Background(), zap.New(core)), "op")
	defer span.End()

	L(ctx).Info("traced")

	fields := recorded.All()[0].ContextMap()
	assert.Equal(t, span.SpanContext().TraceID().String(), fields["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), fields["span_id"])
}

func TestL_WithoutLoggerDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		L(context.Background()).Info("nowhere")
	})
}
