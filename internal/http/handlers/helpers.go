package handlers

import (
	"errors"
	"net/http"
	"strings"

	"restaurant-backoffice/internal/backend"
	"restaurant-backoffice/internal/middleware"
	"restaurant-backoffice/internal/report"
	"restaurant-backoffice/internal/session"
	"restaurant-backoffice/pkg/response"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func readPathString(r *http.Request, key string) string {
	return strings.TrimSpace(chi.URLParam(r, key))
}

func operatorID(r *http.Request) string {
	if authCtx, ok := middleware.GetAuthContext(r.Context()); ok && authCtx.UserID != "" {
		return authCtx.UserID
	}
	return "anonymous"
}

// resolveOutletID prefers the query, then the operator's outlet claim, then
// the configured default.
func (h *Handler) resolveOutletID(r *http.Request) string {
	if v := strings.TrimSpace(r.URL.Query().Get("outletid")); v != "" {
		return v
	}
	if authCtx, ok := middleware.GetAuthContext(r.Context()); ok && authCtx.OutletID != "" {
		return authCtx.OutletID
	}
	return h.Config.DefaultOutletID
}

func (h *Handler) view(r *http.Request) *session.View {
	return h.Views.Get(operatorID(r))
}

type reportQuery struct {
	Category report.Category
	Filter   report.FilterState
}

func readReportQuery(r *http.Request) (reportQuery, error) {
	q := r.URL.Query()
	category, err := report.ParseCategory(q.Get("category"))
	if err != nil {
		return reportQuery{}, err
	}
	reportType, err := report.ParseReportType(q.Get("reportType"))
	if err != nil {
		return reportQuery{}, err
	}
	return reportQuery{
		Category: category,
		Filter: report.FilterState{
			ReportType: reportType,
			CustomRange: report.DateRange{
				Start: strings.TrimSpace(q.Get("start")),
				End:   strings.TrimSpace(q.Get("end")),
			},
			Filters: report.AttributeFilters{
				OrderType:   strings.TrimSpace(q.Get("orderType")),
				PaymentMode: strings.TrimSpace(q.Get("paymentMode")),
				Outlet:      strings.TrimSpace(q.Get("outlet")),
			},
		},
	}, nil
}

// writeBackendError maps backend client failures onto the response envelope.
func (h *Handler) writeBackendError(w http.ResponseWriter, err error, message string) {
	var statusErr *backend.StatusError
	switch {
	case errors.Is(err, session.ErrSuperseded):
		response.Error(w, http.StatusConflict, "RELOAD_SUPERSEDED", "A newer reload replaced this request")
	case errors.Is(err, backend.ErrMissingOutlet):
		response.Error(w, http.StatusBadRequest, "OUTLET_REQUIRED", "Outlet id is required")
	case errors.Is(err, backend.ErrNotFound):
		response.Error(w, http.StatusNotFound, "NOT_FOUND", message)
	case errors.As(err, &statusErr):
		h.Logger.Warn(message, zap.Int("backend_status", statusErr.StatusCode), zap.Error(err))
		if statusErr.Message != "" {
			message += ": " + statusErr.Message
		}
		response.Error(w, http.StatusBadGateway, "BACKEND_ERROR", message)
	default:
		h.Logger.Warn(message, zap.Error(err))
		response.Error(w, http.StatusBadGateway, "BACKEND_UNAVAILABLE", message)
	}
}
