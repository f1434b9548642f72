// Package trace sets up OpenTelemetry tracing for sortlist.
package trace

import (
	"context"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName is the instrumentation name used for list spans.
const TracerName = "sortlist/reorder"

// Provider exports spans to an OTLP endpoint. A nil *Provider is valid and
// hands out no-op tracers.
type Provider struct {
	provider *sdktrace.TracerProvider
}

// NewProvider creates an OTLP/HTTP provider for endpoint.
// Returns nil if endpoint is empty (disabled).
func NewProvider(ctx context.Context, endpoint, serviceName string) (*Provider, error) {
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // local collectors only
	)
	if err != nil {
		return nil, err
	}
	return newProvider(sdktrace.WithBatcher(exporter), serviceName), nil
}

func newProvider(opt sdktrace.TracerProviderOption, serviceName string) *Provider {
	if serviceName == "" {
		serviceName = "sortlist"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	return &Provider{
		provider: sdktrace.NewTracerProvider(opt, sdktrace.WithResource(res)),
	}
}

// Tracer returns the tracer for list spans.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(TracerName)
	}
	return p.provider.Tracer(TracerName)
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
