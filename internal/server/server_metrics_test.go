package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/preston-bernstein/wowp-data-service/internal/config"
	"github.com/preston-bernstein/wowp-data-service/internal/metrics"
	"github.com/preston-bernstein/wowp-data-service/internal/teststubs"
	"github.com/preston-bernstein/wowp-data-service/internal/testutil"
)

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: true},
		Provider: config.ProviderFixture,
	}

	srv := newServerWithMetrics(cfg, nil, &teststubs.StubProvider{}, nil)
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server after setup failure")
	}
}

func TestNewServerWithMetricsDisabledSkipsServer(t *testing.T) {
	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: false},
		Provider: config.ProviderFixture,
	}

	srv := newServerWithMetrics(cfg, nil, &teststubs.StubProvider{}, nil)
	if srv.metrics == nil {
		t.Fatalf("expected recorder to be set even when metrics disabled")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server when disabled")
	}
}

func TestNewServerWithMetricsEnabledServesScrapeEndpoint(t *testing.T) {
	cfg := config.Config{
		Metrics: config.MetricsConfig{
			Enabled:     true,
			Port:        "0",
			ServiceName: "wowp-data-service-test",
		},
		Provider: config.ProviderFixture,
	}

	srv := newServerWithMetrics(cfg, nil, nil, nil)
	if srv.metricsServer == nil {
		t.Fatalf("expected metrics server")
	}
	defer func() {
		if srv.metricsStop != nil {
			_ = srv.metricsStop(context.Background())
		}
	}()

	testutil.AssertStatus(t, testutil.Serve(srv.Handler(), http.MethodGet, "/clans", nil), http.StatusOK)

	rr := testutil.Serve(srv.metricsServer.Handler(), http.MethodGet, "/metrics", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(rr.Body.String(), "/clans") {
		t.Fatalf("expected http route in scrape output")
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec, shutdown := testutil.NewRecorderWithShutdown()
	cfg := config.Config{
		Metrics:  config.MetricsConfig{Enabled: true},
		Provider: config.ProviderFixture,
	}

	srv := newServerWithMetrics(cfg, nil, &teststubs.StubProvider{}, rec)
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
	if srv.metricsStop != nil {
		t.Fatalf("expected injected recorder to skip telemetry shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected injected shutdown to succeed, got %v", err)
	}
}
