package usecase

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("cricket-live/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

// startUsecaseSpan only opens child spans. Calls without a traced parent,
// such as startup wiring, stay untraced.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// recordOutcome tags the span with the error kind. Only upstream, config
// and unexpected failures mark it as an error; a match nobody has data for
// is a normal answer.
func recordOutcome(span trace.Span, err error) {
	if err == nil {
		return
	}
	kind := errorKind(err)
	span.SetAttributes(attribute.String("error.kind", kind))
	switch kind {
	case "invalid_input", "not_found", "unauthorized":
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, kind)
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrDependencyUnavailable):
		return "dependency_unavailable"
	case errors.Is(err, ErrUpstream):
		return "upstream"
	default:
		return "internal"
	}
}
