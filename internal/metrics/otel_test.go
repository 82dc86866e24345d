package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledExportsUpstreamMetrics(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "wowp-data-service",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })
	if rec == nil || handler == nil {
		t.Fatalf("expected recorder and handler when enabled")
	}

	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordRelatedLookup("batch", time.Millisecond, nil)
	rec.RecordUpstreamCall("get-aircraft", time.Millisecond, errors.New("boom"))
	rec.RecordRateLimit("get-aircraft", time.Second)

	if got := rec.Calls("get-aircraft"); got != 1 {
		t.Fatalf("expected in-memory stats alongside otel, got %d", got)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rr.Body.String()
	for _, name := range []string{"upstream_calls_total", "upstream_errors_total", "related_lookups_total", "http_requests_total"} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in exposition, got:\n%s", name, body)
		}
	}
}

func TestSetupPropagatesReaderErrors(t *testing.T) {
	orig := promReaderFactory
	t.Cleanup(func() { promReaderFactory = orig })
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("no registry")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected error from reader factory")
	}
}

func TestSetupPropagatesOTLPErrors(t *testing.T) {
	orig := otlpReaderFactory
	t.Cleanup(func() { otlpReaderFactory = orig })
	otlpReaderFactory = func(context.Context, string, bool) (sdkmetric.Reader, error) {
		return nil, errors.New("bad endpoint")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true, OtlpEndpoint: "collector:4318"}); err == nil {
		t.Fatalf("expected error from otlp factory")
	}
}

func TestSetupPropagatesInstrumentErrors(t *testing.T) {
	orig := instrumentFactory
	t.Cleanup(func() { instrumentFactory = orig })
	instrumentFactory = func(metric.MeterProvider) (*otelInstruments, error) {
		return nil, errors.New("no meter")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected error from instrument factory")
	}
}
