package handlers

import (
	"bytes"
	"context"
	"net/http"
	"strconv"

	"restaurant-backoffice/internal/export"
	"restaurant-backoffice/internal/queue"
	"restaurant-backoffice/internal/store"
	"restaurant-backoffice/pkg/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReportsExport renders the current table as a download. Archiving, the
// audit record and the event are best effort and never fail the download.
func (h *Handler) ReportsExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(readPathString(r, "format"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "UNSUPPORTED_FORMAT", err.Error())
		return
	}

	query, snap, table, ok := h.buildReport(w, r)
	if !ok {
		return
	}

	now := h.now()
	loc := h.location()
	var buf bytes.Buffer
	if err := export.Write(format, table, &buf, export.Options{
		BillSummaryRowLimit: h.Config.PDFBillSummaryRowLimit,
		GeneratedAt:         now.In(loc),
	}); err != nil {
		h.Logger.Error("report export failed", zap.String("category", string(query.Category)), zap.String("format", string(format)), zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to generate the report file")
		return
	}

	rec := store.ExportRecord{
		ID:         uuid.New(),
		OperatorID: operatorID(r),
		OutletID:   snap.OutletID,
		Category:   string(query.Category),
		Format:     string(format),
		Filename:   export.Filename(query.Category, format, now, loc),
		RowCount:   len(table.Rows),
		CreatedAt:  now.UTC(),
	}
	body := buf.Bytes()

	ctx := r.Context()
	h.archiveExport(ctx, &rec, body, format)
	h.recordExport(ctx, rec)
	h.publishExport(ctx, rec)

	w.Header().Set("X-Export-Id", rec.ID.String())
	if rec.ObjectURL != nil {
		w.Header().Set("X-Export-Url", *rec.ObjectURL)
	}
	response.File(w, format.ContentType(), rec.Filename, body)
}

// ReportsExports lists the export audit log, newest first.
func (h *Handler) ReportsExports(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		response.Error(w, http.StatusServiceUnavailable, "STORE_DISABLED", "Export history requires DATABASE_URL")
		return
	}
	limit := h.Config.ExportHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	records, err := h.Store.ListExports(r.Context(), store.ClampLimit(limit, h.Config.ExportHistoryLimit))
	if err != nil {
		h.Logger.Error("list exports failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load export history")
		return
	}
	response.Success(w, records)
}

func (h *Handler) archiveExport(ctx context.Context, rec *store.ExportRecord, body []byte, format export.Format) {
	if h.Archive == nil {
		return
	}
	key := h.Archive.ExportKey(rec.OutletID, rec.ID.String(), rec.Filename, rec.CreatedAt)
	url, err := h.Archive.PutExport(ctx, key, body, format.ContentType(), rec.Filename)
	if err != nil {
		h.Logger.Warn("export archive failed", zap.String("key", key), zap.Error(err))
		return
	}
	rec.ObjectURL = &url
}

func (h *Handler) recordExport(ctx context.Context, rec store.ExportRecord) {
	if h.Store == nil {
		return
	}
	if _, err := h.Store.RecordExport(ctx, rec); err != nil {
		h.Logger.Warn("export audit failed", zap.String("export_id", rec.ID.String()), zap.Error(err))
	}
}

func (h *Handler) publishExport(ctx context.Context, rec store.ExportRecord) {
	if h.Events == nil {
		return
	}
	err := h.Events.PublishReportExported(ctx, queue.ReportExportedEvent{
		ExportID:   rec.ID.String(),
		OperatorID: rec.OperatorID,
		OutletID:   rec.OutletID,
		Category:   rec.Category,
		Format:     rec.Format,
		Filename:   rec.Filename,
		ObjectURL:  rec.ObjectURL,
		RowCount:   rec.RowCount,
		ExportedAt: rec.CreatedAt,
	})
	if err != nil {
		h.Logger.Warn("export event failed", zap.String("export_id", rec.ID.String()), zap.Error(err))
	}
}
