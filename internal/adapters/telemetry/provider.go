package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// SetupProvider installs a tracer provider as the global OTel provider and
// returns a shutdown function that flushes pending spans.
//
// No exporter is configured by default: spans stay in-process and feed the
// daemon's own instrumentation. Deployments that want to ship traces can add
// a span processor here.
func SetupProvider(opts ...sdktrace.TracerProviderOption) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
