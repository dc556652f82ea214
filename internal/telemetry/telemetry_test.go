package telemetry

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestConfigureHoneycombWithoutKey(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if ConfigureHoneycomb("", "anything") {
		t.Fatal("ConfigureHoneycomb with empty key should report disabled")
	}
	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != "" {
		t.Errorf("endpoint = %q, want unset", got)
	}
}

func TestConfigureHoneycombDefaultDataset(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if !ConfigureHoneycomb("secret", "") {
		t.Fatal("ConfigureHoneycomb with key should report enabled")
	}
	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != honeycombEndpoint {
		t.Errorf("endpoint = %q, want %q", got, honeycombEndpoint)
	}
	headers := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS")
	if !strings.Contains(headers, "x-honeycomb-team=secret") {
		t.Errorf("headers %q missing team key", headers)
	}
	if !strings.Contains(headers, "x-honeycomb-dataset=lavamaze") {
		t.Errorf("headers %q missing default dataset", headers)
	}
}

func TestTracersStartSpans(t *testing.T) {
	ctx := context.Background()

	_, span := Tracer("test").Start(ctx, "noop.span")
	span.End()

	_, span = NoopTracer().Start(ctx, "noop.span")
	if span.SpanContext().IsValid() {
		t.Error("no-op tracer should produce invalid span contexts")
	}
	span.End()
}
