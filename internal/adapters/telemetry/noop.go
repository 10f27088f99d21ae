package telemetry

import (
	"context"

	"go.mexp.dev/mexpd/internal/core/ports"
)

// NoOpTracer satisfies ports.Tracer without recording anything. Used by the
// one-shot CLI paths where span overhead buys nothing.
type NoOpTracer struct{}

// NewNoOpTracer returns a tracer that discards all spans.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start returns the context unchanged and a span that does nothing.
func (t *NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noOpSpan{}
}

type noOpSpan struct{}

func (noOpSpan) End()                     {}
func (noOpSpan) RecordError(error)        {}
func (noOpSpan) SetAttribute(string, any) {}
