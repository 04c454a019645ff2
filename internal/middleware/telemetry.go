package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const latencySamplesPerRoute = 200

// routeLatencies keeps the last samples per route for rolling percentiles.
type routeLatencies struct {
	mu     sync.Mutex
	size   int
	routes map[string]*latencyRing
}

type latencyRing struct {
	samples []int64
	next    int
}

func newRouteLatencies(size int) *routeLatencies {
	return &routeLatencies{size: size, routes: make(map[string]*latencyRing)}
}

// observe records ms for route and returns the route's p50 and p95.
func (l *routeLatencies) observe(route string, ms int64) (int64, int64) {
	l.mu.Lock()
	ring, ok := l.routes[route]
	if !ok {
		ring = &latencyRing{samples: make([]int64, 0, l.size)}
		l.routes[route] = ring
	}
	if len(ring.samples) < l.size {
		ring.samples = append(ring.samples, ms)
	} else {
		ring.samples[ring.next] = ms
		ring.next = (ring.next + 1) % l.size
	}
	sorted := append([]int64(nil), ring.samples...)
	l.mu.Unlock()

	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return nearestRank(sorted, 50), nearestRank(sorted, 95)
}

// nearestRank expects sorted input.
func nearestRank(sorted []int64, pct int) int64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := (pct*len(sorted)+99)/100 - 1
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(data []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(data)
	w.bytes += n
	return n, err
}

func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Telemetry logs one http_request line per request with rolling per-route
// latency percentiles. Server errors log at warn level.
func Telemetry(logger *zap.Logger) func(http.Handler) http.Handler {
	latencies := newRouteLatencies(latencySamplesPerRoute)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if logger == nil {
				next.ServeHTTP(w, r)
				return
			}
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}

			next.ServeHTTP(sw, r)

			status := sw.status
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start).Milliseconds()

			route := r.URL.Path
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				route = rc.RoutePattern()
			}
			p50, p95 := latencies.observe(r.Method+" "+route, elapsed)

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("routePattern", route),
				zap.String("requestId", RequestIDFromContext(r.Context())),
				zap.Int("status", status),
				zap.Int("bytes", sw.bytes),
				zap.Int64("duration_ms", elapsed),
				zap.Int64("p50_ms", p50),
				zap.Int64("p95_ms", p95),
			}
			if status >= http.StatusInternalServerError {
				logger.Warn("http_request", fields...)
				return
			}
			logger.Info("http_request", fields...)
		})
	}
}
