package testutil

import (
	"context"
	"net/http"
	"testing"

	"github.com/preston-bernstein/wowp-data-service/internal/metrics"
)

// NewRecorderWithShutdown returns an in-memory recorder and a no-op shutdown.
func NewRecorderWithShutdown() (*metrics.Recorder, func(context.Context) error) {
	return metrics.NewRecorder(), func(context.Context) error { return nil }
}

// NewScrapeRecorder returns a recorder backed by a live Prometheus exporter
// and the handler that serves its scrape output. Telemetry is shut down when
// the test ends.
func NewScrapeRecorder(t *testing.T) (*metrics.Recorder, http.Handler) {
	t.Helper()
	rec, handler, shutdown, err := metrics.Setup(context.Background(), metrics.TelemetryConfig{
		Enabled:     true,
		ServiceName: "wowp-data-service-test",
	})
	if err != nil {
		t.Fatalf("metrics setup: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })
	return rec, handler
}

// Scrape returns the Prometheus text output of handler.
func Scrape(t *testing.T, handler http.Handler) string {
	t.Helper()
	rr := Serve(handler, http.MethodGet, "/metrics", nil)
	AssertStatus(t, rr, http.StatusOK)
	return rr.Body.String()
}
