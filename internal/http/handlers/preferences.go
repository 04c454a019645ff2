package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"restaurant-backoffice/internal/store"
	"restaurant-backoffice/pkg/response"

	"go.uber.org/zap"
)

type preferenceRequest struct {
	Value json.RawMessage `json:"value"`
}

// PreferencesGet returns an operator preference such as the KOT print outlet.
func (h *Handler) PreferencesGet(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		response.Error(w, http.StatusServiceUnavailable, "STORE_DISABLED", "Preferences require DATABASE_URL")
		return
	}
	pref, err := h.Store.GetPreference(r.Context(), operatorID(r), readPathString(r, "key"))
	if err != nil {
		h.writePreferenceError(w, err)
		return
	}
	response.Success(w, pref)
}

func (h *Handler) PreferencesPut(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		response.Error(w, http.StatusServiceUnavailable, "STORE_DISABLED", "Preferences require DATABASE_URL")
		return
	}
	var req preferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Value) == 0 {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request body must be {\"value\": <json>}")
		return
	}
	pref, err := h.Store.SetPreference(r.Context(), operatorID(r), readPathString(r, "key"), req.Value)
	if err != nil {
		h.writePreferenceError(w, err)
		return
	}
	response.Success(w, pref)
}

func (h *Handler) writePreferenceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidPreference):
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, store.ErrNotFound):
		response.Error(w, http.StatusNotFound, "NOT_FOUND", "Preference not set")
	default:
		h.Logger.Error("preference store failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to access preferences")
	}
}
