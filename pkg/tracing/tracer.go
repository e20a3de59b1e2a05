// Package tracing times chart operations.
package tracing

// Tracer starts spans.
type Tracer interface {
	StartSpan(operationName string) Span
}

// Span is a timed operation. Baggage items are reported when it finishes.
type Span interface {
	SetBaggageItem(key string, value any)
	Finish()
}
