package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNearestRank(t *testing.T) {
	sorted := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if got := nearestRank(sorted, 50); got != 5 {
		t.Fatalf("p50 = %d", got)
	}
	if got := nearestRank(sorted, 95); got != 10 {
		t.Fatalf("p95 = %d", got)
	}
	if got := nearestRank(nil, 50); got != 0 {
		t.Fatalf("empty p50 = %d", got)
	}
}

func TestRouteLatenciesWindow(t *testing.T) {
	l := newRouteLatencies(3)
	for _, ms := range []int64{100, 100, 100, 1, 1, 1} {
		l.observe("GET /x", ms)
	}
	p50, p95 := l.observe("GET /x", 1)
	if p50 != 1 || p95 != 1 {
		t.Fatalf("old samples should roll off, got p50=%d p95=%d", p50, p95)
	}
}

func TestTelemetryAndRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := chi.NewRouter()
	r.Use(RequestID())
	r.Use(Telemetry(zap.New(core)))
	r.Get("/api/reports/export/{format}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("file"))
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	req := httptest.NewRequest("GET", "/api/reports/export/pdf", nil)
	req.Header.Set("X-Correlation-Id", "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Header().Get("X-Request-Id") != "abc-123" {
		t.Fatalf("expected inbound correlation id to be reused, got %q", rec.Header().Get("X-Request-Id"))
	}

	req = httptest.NewRequest("GET", "/boom", nil)
	req.Header.Set("X-Request-Id", strings.Repeat("x", 200))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if id := rec.Header().Get("X-Request-Id"); len(id) != 36 {
		t.Fatalf("expected a fresh uuid for an oversized id, got %q", id)
	}

	entries := logs.FilterMessage("http_request").All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(entries))
	}
	first := entries[0].ContextMap()
	if first["routePattern"] != "/api/reports/export/{format}" || first["requestId"] != "abc-123" || first["bytes"] != int64(4) {
		t.Fatalf("unexpected fields %v", first)
	}
	if entries[1].Level != zapcore.WarnLevel || entries[1].ContextMap()["status"] != int64(502) {
		t.Fatalf("expected a warn line for the 502, got %v %v", entries[1].Level, entries[1].ContextMap())
	}
}
