package ports

import "context"

// Span represents one traced operation.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Span interface {
	// End marks the span as finished.
	End()
	// RecordError attaches an error to the span.
	RecordError(err error)
	// SetAttribute attaches a key/value attribute to the span.
	SetAttribute(key string, value any)
}

// Tracer creates spans around expansion operations.
type Tracer interface {
	Start(ctx context.Context, name string) (context.Context, Span)
}
