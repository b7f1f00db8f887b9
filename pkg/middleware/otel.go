package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wayfind-dev/wayfind/pkg/router"
)

// Default tracer name for Wayfind applications.
const defaultTracerName = "wayfind"

// OTelConfig configures the OpenTelemetry navigation hook.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "wayfind").
	TracerName string

	// Filter determines which navigations to trace by canonical path.
	// Return true to trace, false to skip. If nil, all navigations are
	// traced.
	Filter func(path string) bool

	// Attributes are added to every navigation span.
	Attributes []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry navigation hook.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithPathFilter sets a filter function for navigations.
func WithPathFilter(filter func(path string) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithSpanAttributes sets attributes added to every navigation span.
func WithSpanAttributes(attrs ...attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.Attributes = attrs
	}
}

func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName: defaultTracerName,
	}
}

// otelHook traces each navigation from resolve start to settlement.
type otelHook struct {
	config OTelConfig
}

// OpenTelemetry creates a navigation hook that records a span per
// navigation.
//
// The span covers resolve start to settlement. It carries the canonical
// path, the matched route pattern, and the outcome; handler failures are
// recorded as span errors. Superseded navigations end with an Ok status and
// outcome "Stale".
//
// The tracer uses the global OpenTelemetry tracer provider. Configure it in
// your main() before starting the server:
//
//	tp := sdktrace.NewTracerProvider(
//	    sdktrace.WithBatcher(exporter),
//	    sdktrace.WithResource(resource.NewWithAttributes(
//	        semconv.SchemaURL,
//	        semconv.ServiceName("my-app"),
//	    )),
//	)
//	otel.SetTracerProvider(tp)
func OpenTelemetry(opts ...OTelOption) router.Hook {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)
	return &otelHook{config: config}
}

// ResolveStart implements router.Hook.
func (h *otelHook) ResolveStart(path string) func(router.Outcome) {
	if h.config.Filter != nil && !h.config.Filter(path) {
		return nil
	}

	attrs := []attribute.KeyValue{
		attribute.String("wayfind.path", path),
	}
	attrs = append(attrs, h.config.Attributes...)

	_, span := h.config.tracer.Start(
		context.Background(),
		"wayfind.navigate",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
		trace.WithTimestamp(time.Now()),
	)

	return func(o router.Outcome) {
		span.SetAttributes(
			attribute.String("wayfind.pattern", o.Pattern),
			attribute.String("wayfind.outcome", o.Kind.String()),
		)
		if o.Kind == router.OutcomeFailed && o.Err != nil {
			span.RecordError(o.Err)
			span.SetStatus(codes.Error, o.Err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}
