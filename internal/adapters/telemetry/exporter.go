package telemetry

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/sprite/internal/core/ports"
)

var _ sdktrace.SpanExporter = (*LogExporter)(nil)

// LogExporter writes one log line per finished span.
type LogExporter struct {
	logger ports.Logger
}

// NewLogExporter creates a new LogExporter.
func NewLogExporter(logger ports.Logger) *LogExporter {
	return &LogExporter{logger: logger}
}

// ExportSpans logs each span with its duration and attributes.
func (e *LogExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		e.logger.Info(FormatSpan(span))
	}
	return nil
}

// Shutdown does nothing; the exporter holds no resources.
func (e *LogExporter) Shutdown(_ context.Context) error {
	return nil
}

// FormatSpan renders a span as "trace <name> <duration> key=value...".
// Attributes are sorted by key.
func FormatSpan(span sdktrace.ReadOnlySpan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "trace %s %s", span.Name(), span.EndTime().Sub(span.StartTime()).Round(time.Microsecond))

	attrs := slices.Clone(span.Attributes())
	slices.SortFunc(attrs, func(a, b attribute.KeyValue) int {
		return strings.Compare(string(a.Key), string(b.Key))
	})
	for _, kv := range attrs {
		fmt.Fprintf(&b, " %s=%s", kv.Key, kv.Value.Emit())
	}

	if status := span.Status(); status.Code == codes.Error {
		fmt.Fprintf(&b, " error=%q", status.Description)
	}
	return b.String()
}

// InstallLogProvider makes the global tracer provider log every finished span.
// The returned function flushes and shuts the provider down.
func InstallLogProvider(logger ports.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(NewLogExporter(logger)))
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
