package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/wowp-data-service/internal/app/aircraft"
	"github.com/preston-bernstein/wowp-data-service/internal/metrics"
	"github.com/preston-bernstein/wowp-data-service/internal/providers"
	"github.com/preston-bernstein/wowp-data-service/internal/providers/fixture"
)

func TestFixturesHelper(t *testing.T) {
	a := SampleAircraft(42)
	if a.ID != 42 || a.Name == "" || !a.Tier.Valid {
		t.Fatalf("unexpected aircraft fixture %+v", a)
	}
	p := SamplePlayer(7)
	if p.ID != 7 || p.Nickname == "" || !p.Statistics.Battles.Valid {
		t.Fatalf("unexpected player fixture %+v", p)
	}
	c := SampleClan(9)
	if c.ID != 9 || c.Tag == "" {
		t.Fatalf("unexpected clan fixture %+v", c)
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Language", r.Header.Get("Accept-Language"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)

	rr3 := Get(handler, "/hdr", map[string]string{"Accept-Language": "de"})
	if rr3.Header().Get("Content-Language") != "de" {
		t.Fatalf("expected request headers to be forwarded")
	}
}

func TestServerStubs(t *testing.T) {
	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	sh.HandlerVal = http.NewServeMux()
	_ = sh.ListenAndServe()
	_ = sh.Shutdown(context.Background())
	_ = sh.Handler()
	_ = sh.Addr()
	if sh.ListenCalls != 1 || sh.ShutdownCalls != 1 {
		t.Fatalf("expected listen/shutdown calls, got %+v", sh)
	}

	b := &BlockingHTTPServer{Unblock: make(chan struct{}), HandlerVal: http.NewServeMux()}
	if err := b.ListenAndServe(); err != nil {
		t.Fatalf("expected nil listen error for blocking server")
	}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	_ = b.Handler()
	if b.Addr() != b.AddrVal {
		t.Fatalf("expected blocking server addr passthrough")
	}
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}
	if b.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown called once")
	}

	e := &ErrHTTPServer{}
	if err := e.ListenAndServe(); err == nil {
		t.Fatalf("expected listen error")
	}
	_ = e.Shutdown(context.Background())
	_ = e.Handler()
	if e.Addr() == "" || e.ShutdownCalls != 1 {
		t.Fatalf("unexpected ErrHTTPServer state %+v", e)
	}

	c := &CloseableHTTPServer{}
	if err := c.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected ErrServerClosed, got %v", err)
	}
	_ = c.Shutdown(context.Background())
	_ = c.Handler()
	if c.Addr() == "" || c.ShutdownCalls != 1 {
		t.Fatalf("unexpected CloseableHTTPServer state %+v", c)
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Debug("hello", "k", "v")
	if !strings.Contains(buf.String(), "k=v") {
		t.Fatalf("expected debug output, got %q", buf.String())
	}

	jsonLogger, jsonBuf := NewJSONBufferLogger()
	jsonLogger.Info("first", "n", 1)
	jsonLogger.Warn("second")
	records := LogRecords(t, jsonBuf)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if rec, ok := FindLog(records, "second"); !ok || rec["level"] != "WARN" {
		t.Fatalf("expected warn record, got %v", rec)
	}
	if _, ok := FindLog(records, "missing"); ok {
		t.Fatalf("expected no match for unknown message")
	}

	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}

	live, handler := NewScrapeRecorder(t)
	live.RecordUpstreamCall("list-clans", 5*time.Millisecond, nil)
	if !strings.Contains(Scrape(t, handler), "list-clans") {
		t.Fatalf("expected upstream call in scrape output")
	}
}

func TestFixtureServices(t *testing.T) {
	rec := metrics.NewRecorder()
	svcs := NewFixtureServices(nil, rec, aircraft.StrategyBatch)

	list, err := svcs.Aircraft.List(context.Background(), "usa", "")
	if err != nil || len(list) == 0 {
		t.Fatalf("expected usa aircraft from fixture, got %d (%v)", len(list), err)
	}
	if rec.Calls(providers.OpListAircraft) != 1 {
		t.Fatalf("expected one recorded list call, got %d", rec.Calls(providers.OpListAircraft))
	}

	failing := NewFixtureServices(nil, nil, aircraft.StrategyCatalog, fixture.WithFailure("/clans/list/", http.StatusServiceUnavailable))
	if _, err := failing.Clans.List(context.Background()); !errors.Is(err, providers.ErrStatus) {
		t.Fatalf("expected status error from failing fixture, got %v", err)
	}
}
