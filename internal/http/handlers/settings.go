package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"restaurant-backoffice/internal/backend"
	"restaurant-backoffice/internal/settings"
	"restaurant-backoffice/pkg/response"
)

type settingsPayload struct {
	Section string         `json:"section"`
	ID      string         `json:"id"`
	Exists  bool           `json:"exists"`
	Form    map[string]any `json:"form"`
}

func (h *Handler) SettingsSections(w http.ResponseWriter, r *http.Request) {
	out := make([]*settings.Section, 0, len(settings.Names()))
	for _, name := range settings.Names() {
		section, _ := settings.Lookup(name)
		out = append(out, section)
	}
	response.Success(w, out)
}

// SettingsGet returns the camelCase form for a section. A record the
// backend does not have yet yields a blank form bound to the outlet.
func (h *Handler) SettingsGet(w http.ResponseWriter, r *http.Request) {
	section, ok := h.readSection(w, r)
	if !ok {
		return
	}
	id := readPathString(r, "id")

	form, exists, err := h.loadSettingsForm(r, section, id)
	if err != nil {
		h.writeBackendError(w, err, "Failed to load settings")
		return
	}
	response.Success(w, settingsPayload{Section: section.Name, ID: id, Exists: exists, Form: form})
}

// SettingsPut merges the submitted form fields over the stored record and
// saves every column of the section.
func (h *Handler) SettingsPut(w http.ResponseWriter, r *http.Request) {
	section, ok := h.readSection(w, r)
	if !ok {
		return
	}
	id := readPathString(r, "id")

	var changes map[string]any
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&changes); err != nil || changes == nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request body must be a JSON object")
		return
	}

	current, _, err := h.loadSettingsForm(r, section, id)
	if err != nil {
		h.writeBackendError(w, err, "Failed to load settings")
		return
	}
	merged, err := section.Merge(current, changes)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	payload, err := section.Encode(merged)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if _, err := h.Backend.PutSettings(r.Context(), section.Name, id, payload); err != nil {
		h.writeBackendError(w, err, "Failed to save settings")
		return
	}
	// The backend only acknowledges the write, so the saved form is the
	// payload we sent, decoded back to form types.
	response.Success(w, settingsPayload{Section: section.Name, ID: id, Exists: true, Form: section.Decode(payload)})
}

func (h *Handler) readSection(w http.ResponseWriter, r *http.Request) (*settings.Section, bool) {
	section, err := settings.Lookup(readPathString(r, "section"))
	if err != nil {
		response.Error(w, http.StatusNotFound, "UNKNOWN_SECTION", err.Error())
		return nil, false
	}
	return section, true
}

func (h *Handler) loadSettingsForm(r *http.Request, section *settings.Section, id string) (map[string]any, bool, error) {
	record, err := h.Backend.GetSettings(r.Context(), section.Name, id)
	if errors.Is(err, backend.ErrNotFound) {
		return section.Decode(map[string]any{"outletid": id}), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return section.Decode(record), true, nil
}
