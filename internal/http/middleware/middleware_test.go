package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/wowp-data-service/internal/logging"
	"github.com/preston-bernstein/wowp-data-service/internal/metrics"
	"github.com/preston-bernstein/wowp-data-service/internal/testutil"
)

func TestLoggingMiddlewareSetsRequestIDAndLogger(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected request id in context")
		}
		if logging.FromContext(r.Context(), nil) == nil {
			t.Fatalf("expected request logger in context")
		}
		w.WriteHeader(http.StatusTeapot)
	})

	handler := LoggingMiddleware(logger, rec, next)
	rr := testutil.Serve(handler, http.MethodGet, "/aircraft", nil)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if got := rec.Snapshot("http").Calls; got != 0 {
		t.Fatalf("expected no upstream metrics recorded, got %d", got)
	}
	if !strings.Contains(buf.String(), "status_code=418") {
		t.Fatalf("expected completion log with status, got %s", buf.String())
	}
}

func TestLoggingMiddlewareGeneratesRequestIDWhenMissing(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected generated request id")
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(logger, nil, next)
	rr := testutil.Serve(handler, http.MethodGet, "/aircraft?nation=usa", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("X-Request-ID"); got == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
}

func TestLoggingMiddlewareKeepsValidIncomingRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "client-supplied-1")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, nil, next), req)

	if seen != "client-supplied-1" || rr.Header().Get("X-Request-ID") != "client-supplied-1" {
		t.Fatalf("expected incoming id to be kept, got ctx=%q header=%q", seen, rr.Header().Get("X-Request-ID"))
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "not valid!")
	rr = testutil.ServeRequest(LoggingMiddleware(logger, nil, next), req)
	if seen == "not valid!" || rr.Header().Get("X-Request-ID") == "not valid!" {
		t.Fatalf("expected invalid incoming id to be replaced")
	}
}

func TestLoggingMiddlewareUsesForwardedFor(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(logger, nil, next)
	req := httptest.NewRequest(http.MethodGet, "/aircraft", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	rr := testutil.ServeRequest(handler, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(buf.String(), "client_ip=198.51.100.1") {
		t.Fatalf("expected forwarded client ip in log, got %s", buf.String())
	}
}

func TestLoggingMiddlewareDefaultsLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	rr := testutil.Serve(LoggingMiddleware(nil, nil, next), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestResponseWriterDefaultsStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}
	if w.status != 0 {
		t.Fatalf("expected zero status before write, got %d", w.status)
	}
	w.WriteHeader(http.StatusAccepted)
	if w.status != http.StatusAccepted {
		t.Fatalf("expected status set to 202, got %d", w.status)
	}
	if w.Unwrap() != rr {
		t.Fatalf("expected Unwrap to return the underlying writer")
	}
}

func TestRoutePatternUsesChiTemplate(t *testing.T) {
	var pattern string
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req)
			pattern = routePattern(req)
		})
	})
	r.Get("/aircraft/{id}", func(w http.ResponseWriter, req *http.Request) {})

	testutil.Serve(r, http.MethodGet, "/aircraft/4101", nil)
	if pattern != "/aircraft/{id}" {
		t.Fatalf("expected route template, got %q", pattern)
	}

	testutil.Serve(r, http.MethodGet, "/nowhere", nil)
	if pattern != unmatchedRoute {
		t.Fatalf("expected unmatched label, got %q", pattern)
	}
}

func TestRoutePatternWithoutRouter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/aircraft/1", nil)
	if got := routePattern(req); got != unmatchedRoute {
		t.Fatalf("expected unmatched label outside chi, got %q", got)
	}
}

func TestRequestIDHelpers(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Fatalf("expected empty id, got %s", got)
	}

	ctx = withRequestID(ctx, "abc123")
	if got := RequestIDFromContext(ctx); got != "abc123" {
		t.Fatalf("expected id from context, got %s", got)
	}
}

func BenchmarkLoggingMiddleware(b *testing.B) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	rec := metrics.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Microsecond)
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(logger, rec, next)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/aircraft", nil)
		handler.ServeHTTP(rr, req)
	}
}
