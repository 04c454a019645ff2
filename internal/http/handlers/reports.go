package handlers

import (
	"net/http"

	"restaurant-backoffice/internal/report"
	"restaurant-backoffice/internal/session"
	"restaurant-backoffice/pkg/response"

	"go.uber.org/zap"
)

type tablePayload struct {
	Category report.Category `json:"category"`
	Title    string          `json:"title"`
	Columns  []report.Column `json:"columns"`
	Rows     [][]string      `json:"rows"`
	Totals   []string        `json:"totals"`
	RowCount int             `json:"rowCount"`
}

func newTablePayload(t report.Table) tablePayload {
	return tablePayload{
		Category: t.Category,
		Title:    t.Title,
		Columns:  t.Columns,
		Rows:     t.FormattedRows(),
		Totals:   t.FormattedTotals(),
		RowCount: len(t.Rows),
	}
}

type categoryPayload struct {
	Key   report.Category `json:"key"`
	Title string          `json:"title"`
}

// ReportsReload refetches orders and payment modes for the operator's view.
func (h *Handler) ReportsReload(w http.ResponseWriter, r *http.Request) {
	outletID := h.resolveOutletID(r)
	snap, err := h.view(r).Reload(r.Context(), outletID)
	if err != nil {
		h.writeBackendError(w, err, "Failed to load report data")
		return
	}
	response.Success(w, snap)
}

// ReportsView applies the query's filters and returns the formatted table
// for the requested category.
func (h *Handler) ReportsView(w http.ResponseWriter, r *http.Request) {
	query, snap, table, ok := h.buildReport(w, r)
	if !ok {
		return
	}
	aggregate, err := report.Aggregate(query.Category, snap.Bills, h.now().In(h.location()))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	response.Success(w, map[string]any{
		"category":  query.Category,
		"view":      snap,
		"table":     newTablePayload(table),
		"aggregate": aggregate,
		"stats":     report.Stats(snap.Bills),
	})
}

func (h *Handler) ReportsCategories(w http.ResponseWriter, r *http.Request) {
	out := make([]categoryPayload, 0, len(report.Categories()))
	for _, c := range report.Categories() {
		out = append(out, categoryPayload{Key: c, Title: c.Title()})
	}
	response.Success(w, out)
}

// buildReport loads the operator's snapshot if needed, applies the filter
// state from the query and aggregates the table. It writes the error
// response itself and reports false when the request cannot continue.
func (h *Handler) buildReport(w http.ResponseWriter, r *http.Request) (reportQuery, session.Snapshot, report.Table, bool) {
	query, err := readReportQuery(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return reportQuery{}, session.Snapshot{}, report.Table{}, false
	}

	view := h.view(r)
	if _, err := view.EnsureLoaded(r.Context(), h.resolveOutletID(r)); err != nil {
		h.writeBackendError(w, err, "Failed to load report data")
		return reportQuery{}, session.Snapshot{}, report.Table{}, false
	}

	snap := view.ApplyFilters(query.Filter)
	table, err := report.BuildTable(query.Category, snap.Bills, report.TableOptions{
		PaymentModes: snap.PaymentModes,
		Now:          h.now().In(h.location()),
	})
	if err != nil {
		h.Logger.Error("report table failed", zap.String("category", string(query.Category)), zap.Error(err))
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return reportQuery{}, session.Snapshot{}, report.Table{}, false
	}
	return query, snap, table, true
}
