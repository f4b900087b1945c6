package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("sports-scoreboard/internal/usecase")

// startUsecaseSpan only opens spans inside an existing trace, so background work
// such as the warm-up loop does not produce a root span per call.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, trace.SpanFromContext(context.Background())
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func matchAttr(matchID string) attribute.KeyValue {
	return attribute.String("scoreboard.match_id", matchID)
}

func sportAttr(slug string) attribute.KeyValue {
	return attribute.String("scoreboard.sport", slug)
}
