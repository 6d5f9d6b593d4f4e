package global

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type stderrSpanExporter struct{}

// NewStderrSpanExporter produces the trivial wiring to route trace
// spans to the log. This is noisy and only intended for basic
// debugging.
func NewStderrSpanExporter() sdktrace.SpanExporter {
	return stderrSpanExporter{}
}

func (stderrSpanExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		log.Printf("%s %s %s %s %s %s",
			span.StartTime().Format(time.RFC3339),
			span.EndTime().Sub(span.StartTime()).String(),
			span.Name(),
			span.Status().Code.String(),
			span.Status().Description,
			formatAttributes(span),
		)
	}
	return nil
}

func (stderrSpanExporter) Shutdown(ctx context.Context) error {
	return nil
}

func formatAttributes(span sdktrace.ReadOnlySpan) string {
	var out strings.Builder
	out.WriteString("{")
	for i, kv := range span.Attributes() {
		if i > 0 {
			out.WriteString(",")
		}
		out.WriteString(string(kv.Key))
		out.WriteString("=")
		out.WriteString(fmt.Sprintf("%#v", kv.Value.AsInterface()))
	}
	out.WriteString("}")
	return out.String()
}
