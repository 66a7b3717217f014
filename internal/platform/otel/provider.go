// Package otel configures OpenTelemetry tracing for service processes.
package otel

import (
	"context"
	"fmt"

	"github.com/innovasmart/site/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ShutdownFunc flushes pending spans and releases the exporter.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Settings controls span export. Tracing stays off until Endpoint is set.
type Settings struct {
	Endpoint string `env:"INNOVASMART_OTEL_ENDPOINT"`
	Enabled  bool   `env:"INNOVASMART_OTEL_ENABLED" envDefault:"true"`
	// SampleRatio is the share of root traces kept, in [0, 1].
	SampleRatio float64 `env:"INNOVASMART_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// LoadSettings reads tracing settings from environ, or from the process
// environment when environ is nil.
func LoadSettings(environ map[string]string) (Settings, error) {
	var s Settings
	if err := config.ParseEnvFrom(&s, environ); err != nil {
		return Settings{}, err
	}
	if s.SampleRatio < 0 || s.SampleRatio > 1 {
		return Settings{}, fmt.Errorf("otel sample ratio %g outside [0, 1]", s.SampleRatio)
	}
	return s, nil
}

// Active reports whether spans should be exported.
func (s Settings) Active() bool {
	return s.Enabled && s.Endpoint != ""
}

func (s Settings) sampler() sdktrace.Sampler {
	if s.SampleRatio >= 1 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(s.SampleRatio))
}

// Setup loads settings from the process environment and installs the global
// tracer provider for serviceName.
func Setup(ctx context.Context, serviceName string) (ShutdownFunc, error) {
	settings, err := LoadSettings(nil)
	if err != nil {
		return noopShutdown, err
	}
	return SetupWith(ctx, serviceName, settings)
}

// SetupWith installs an OTLP/HTTP tracer provider and the W3C trace context
// propagator. Inactive settings leave the globals untouched and return a
// no-op shutdown.
func SetupWith(ctx context.Context, serviceName string, settings Settings) (ShutdownFunc, error) {
	if !settings.Active() {
		return noopShutdown, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(settings.Endpoint))
	if err != nil {
		return noopShutdown, fmt.Errorf("otlp exporter: %w", err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noopShutdown, fmt.Errorf("otel resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(settings.sampler()),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return provider.Shutdown, nil
}
