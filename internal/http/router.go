package httpapi

import (
	"net/http"
	"time"

	"restaurant-backoffice/internal/config"
	"restaurant-backoffice/internal/http/handlers"
	"restaurant-backoffice/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func NewRouter(logger *zap.Logger, cfg config.Config, h *handlers.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Telemetry(logger))

	if cfg.IsDevelopment() || len(cfg.CorsAllowedOrigins) > 0 {
		options := cors.Options{
			AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders: []string{
				"Accept",
				"Authorization",
				"Content-Type",
				"X-Requested-With",
				"X-Request-Id",
				"Cache-Control",
			},
			ExposedHeaders:   []string{"Content-Disposition", "X-Export-Id", "X-Export-Url", "X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           300,
		}

		if cfg.IsDevelopment() {
			options.AllowOriginFunc = func(_ *http.Request, origin string) bool {
				return true
			}
		} else {
			options.AllowedOrigins = cfg.CorsAllowedOrigins
		}

		r.Use(cors.Handler(options))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(setResponseHeader("Cache-Control", "no-store"))
		r.Use(middleware.OperatorAuth(cfg.JWTSecret, cfg.IsDevelopment()))

		r.Get("/reports/categories", h.ReportsCategories)
		r.Post("/reports/reload", h.ReportsReload)
		r.Get("/reports/view", h.ReportsView)
		r.Get("/reports/export/{format}", h.ReportsExport)
		r.Get("/reports/exports", h.ReportsExports)

		r.Get("/payment-modes", h.PaymentModes)

		r.Get("/settings", h.SettingsSections)
		r.Get("/settings/{section}/{id}", h.SettingsGet)
		r.Put("/settings/{section}/{id}", h.SettingsPut)

		r.Get("/preferences/{key}", h.PreferencesGet)
		r.Put("/preferences/{key}", h.PreferencesPut)
	})

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.status),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

func setResponseHeader(name string, value string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(name, value)
			next.ServeHTTP(w, r)
		})
	}
}
