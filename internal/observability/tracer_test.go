package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInitTracing_Disabled(t *testing.T) {
	tp, err := InitTracing(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	assert.False(t, tp.IsEnabled())

	_, span := tp.Tracer("test").Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestSessionInjector(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := NewTracerProvider(Config{ServiceName: "test"}, sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx := WithSessionID(context.Background(), "abc-123")
	_, span := tp.Tracer("test").Start(ctx, "turn")
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Contains(t, spans[0].Attributes, attribute.String("session.id", "abc-123"))
}

func TestSessionIDFromContext(t *testing.T) {
	assert.Empty(t, SessionIDFromContext(context.Background()))
	assert.Equal(t, "s1", SessionIDFromContext(WithSessionID(context.Background(), "s1")))
}

func TestParseHeaders(t *testing.T) {
	assert.Equal(t, map[string]string{"Authorization": "Basic abc", "x-team": "games"},
		ParseHeaders("Authorization=Basic abc, x-team=games"))
	assert.Empty(t, ParseHeaders(""))
	assert.Empty(t, ParseHeaders("novalue"))
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("OTEL_TRACES_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318/v1/traces")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "k=v")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "true")
	t.Setenv("ENVIRONMENT", "")

	cfg := LoadConfigFromEnv()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "temple-escape", cfg.ServiceName)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "http://localhost:4318/v1/traces", cfg.Endpoint)
	assert.Equal(t, map[string]string{"k": "v"}, cfg.Headers)
	assert.True(t, cfg.Insecure)
}
