package handlers

import (
	"context"
	"encoding/json"
	"time"

	"restaurant-backoffice/internal/config"
	"restaurant-backoffice/internal/queue"
	"restaurant-backoffice/internal/report"
	"restaurant-backoffice/internal/session"
	"restaurant-backoffice/internal/store"

	"go.uber.org/zap"
)

// Backend is the POS REST API the service reads reports and settings from.
type Backend interface {
	FetchOrders(ctx context.Context) ([]report.RawOrder, error)
	FetchPaymentModes(ctx context.Context, outletID string) ([]report.PaymentMode, error)
	GetSettings(ctx context.Context, section, id string) (map[string]any, error)
	PutSettings(ctx context.Context, section, id string, payload map[string]any) (map[string]any, error)
}

type Store interface {
	RecordExport(ctx context.Context, rec store.ExportRecord) (store.ExportRecord, error)
	ListExports(ctx context.Context, limit int64) ([]store.ExportRecord, error)
	GetPreference(ctx context.Context, operatorID, key string) (store.Preference, error)
	SetPreference(ctx context.Context, operatorID, key string, value json.RawMessage) (store.Preference, error)
}

type Archive interface {
	ExportKey(outletID, id, filename string, at time.Time) string
	PutExport(ctx context.Context, key string, body []byte, contentType string, filename string) (string, error)
}

type Events interface {
	PublishReportExported(ctx context.Context, event queue.ReportExportedEvent) error
}

// Handler serves the back-office API. Store, Archive and Events are optional
// and left nil when their infrastructure is not configured.
type Handler struct {
	Logger   *zap.Logger
	Config   config.Config
	Location *time.Location
	Backend  Backend
	Views    *session.Registry
	Store    Store
	Archive  Archive
	Events   Events
	Now      func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *Handler) location() *time.Location {
	if h.Location != nil {
		return h.Location
	}
	return time.Local
}
