package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/sprite/internal/adapters/telemetry"
	"go.trai.ch/sprite/internal/core/domain"
)

func setupRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr
}

func attrMap(kvs []attribute.KeyValue) map[string]string {
	m := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		m[string(kv.Key)] = kv.Value.Emit()
	}
	return m
}

func TestOTelTracer_Start(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	ctx, span := tracer.Start(context.Background(), "sprite.emit")
	require.NotNil(t, ctx)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "sprite.emit", spans[0].Name())
}

func TestOTelSpan_SetAttribute(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	_, span := tracer.Start(context.Background(), "sprite.route")
	span.SetAttribute("path", "icons/home.svg")
	span.SetAttribute("caches", 2)
	span.SetAttribute("bytes", int64(512))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("dirty", true)
	span.SetAttribute("roots", []string{"icons", "brand"})
	span.SetAttribute("kind", domain.ChangeRemoved)
	span.SetAttribute("other", struct{ N int }{N: 7})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, map[string]string{
		"path":   "icons/home.svg",
		"caches": "2",
		"bytes":  "512",
		"ratio":  "0.5",
		"dirty":  "true",
		"roots":  `["icons","brand"]`,
		"kind":   "removed",
		"other":  "{7}",
	}, attrMap(spans[0].Attributes()))
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := setupRecorder(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	_, span := tracer.Start(context.Background(), "sprite.emit")
	span.RecordError(errors.New("disk full"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "disk full", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := context.Background()
	got, span := tracer.Start(ctx, "anything")
	assert.Equal(t, ctx, got)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}

type infoLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (l *infoLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, msg)
}

func (l *infoLogger) Warn(string) {}
func (l *infoLogger) Error(error) {}

func TestInstallLogProvider(t *testing.T) {
	log := &infoLogger{}
	shutdown := telemetry.InstallLogProvider(log)

	tracer := telemetry.NewOTelTracer("test-tracer")
	_, span := tracer.Start(context.Background(), "sprite.emit")
	span.SetAttribute("symbols", 3)
	span.SetAttribute("output", "public/sprite.svg")
	span.RecordError(errors.New("boom"))
	span.End()

	require.NoError(t, shutdown(context.Background()))

	require.Len(t, log.msgs, 1)
	msg := log.msgs[0]
	assert.True(t, strings.HasPrefix(msg, "trace sprite.emit "), msg)
	assert.True(t, strings.HasSuffix(msg, ` output=public/sprite.svg symbols=3 error="boom"`), msg)
}

func TestFormatSpan(t *testing.T) {
	stub := tracetest.SpanStub{
		Name:       "sprite.route",
		Attributes: []attribute.KeyValue{attribute.String("path", "icons/a.svg"), attribute.Int("caches", 1)},
	}
	stub.EndTime = stub.StartTime.Add(1500)

	got := telemetry.FormatSpan(stub.Snapshot())
	assert.Equal(t, "trace sprite.route 2µs caches=1 path=icons/a.svg", got)
}
