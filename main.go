package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-backoffice/internal/backend"
	"restaurant-backoffice/internal/config"
	"restaurant-backoffice/internal/db"
	httpapi "restaurant-backoffice/internal/http"
	"restaurant-backoffice/internal/http/handlers"
	"restaurant-backoffice/internal/logger"
	"restaurant-backoffice/internal/queue"
	"restaurant-backoffice/internal/session"
	"restaurant-backoffice/internal/storage"
	"restaurant-backoffice/internal/store"
	"restaurant-backoffice/internal/utils"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx := context.Background()
	loc := utils.ResolveLocation(cfg.ReportTimezone)

	if cfg.JWTSecret == "" && !cfg.IsDevelopment() {
		log.Fatal("JWT_SECRET is required outside development")
	}

	posClient := backend.NewClient(cfg.POSAPIBaseURL, cfg.POSAPITimeout)
	h := &handlers.Handler{
		Logger:   log,
		Config:   cfg,
		Location: loc,
		Backend:  posClient,
		Views: session.NewRegistry(posClient, session.Options{
			Location: loc,
			Logger:   log,
			IdleTTL:  cfg.ReportSessionIdleTTL,
			MaxViews: cfg.ReportSessionMaxViews,
		}),
	}

	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal("database connection failed", zap.Error(err))
		}
		defer pool.Close()

		st := store.New(pool)
		if err := st.EnsureSchema(ctx); err != nil {
			log.Fatal("database schema failed", zap.Error(err))
		}
		h.Store = st
	} else {
		log.Info("export history and preferences disabled (DATABASE_URL is empty)")
	}

	if cfg.ObjectStoreEnabled() {
		objectStore, err := storage.NewObjectStore(ctx, storage.Config{
			Endpoint:        cfg.ObjectStoreEndpoint,
			Region:          cfg.ObjectStoreRegion,
			AccessKeyID:     cfg.ObjectStoreAccessKeyID,
			SecretAccessKey: cfg.ObjectStoreSecretKey,
			Bucket:          cfg.ObjectStoreBucket,
			PublicBaseURL:   cfg.ObjectStorePublicBase,
			StorageClass:    cfg.ObjectStoreStorageClass,
			KeyPrefix:       cfg.ObjectStoreKeyPrefix,
		})
		if err != nil {
			if cfg.Env == "production" {
				log.Fatal("object store init failed", zap.Error(err))
			}
			log.Warn("object store init failed; exports will not be archived", zap.Error(err))
		} else {
			h.Archive = objectStore
		}
	}

	if cfg.RabbitMQURL != "" {
		qc, err := queue.New(cfg.RabbitMQURL)
		if err != nil {
			if cfg.Env == "production" {
				log.Fatal("rabbitmq connection failed", zap.Error(err))
			}
			log.Warn("rabbitmq connection failed; continuing without report events", zap.Error(err))
			qc = nil
		}
		if qc != nil {
			if err := queue.EnsureReportEventsTopology(qc, cfg.ReportEventsExchange); err != nil {
				if cfg.Env == "production" {
					log.Fatal("rabbitmq topology failed", zap.Error(err))
				}
				log.Warn("rabbitmq topology failed; continuing without report events", zap.Error(err))
				_ = qc.Close()
				qc = nil
			}
		}
		if qc != nil {
			defer qc.Close()
			log.Info("report events enabled", zap.String("exchange", cfg.ReportEventsExchange), zap.String("routingKey", cfg.ReportExportedRouteKey))
			h.Events = queue.NewEventPublisher(qc, cfg.ReportEventsExchange, cfg.ReportExportedRouteKey)
		}
	} else {
		log.Info("report events disabled (RABBITMQ_URL is empty)")
	}

	apiServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(log, cfg, h),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("backoffice api ready", zap.String("base", "/api"), zap.String("posApi", cfg.POSAPIBaseURL), zap.String("timezone", loc.String()))
		log.Info("backoffice service listening", zap.String("addr", cfg.HTTPAddr))
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctxShutdown); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}
}
