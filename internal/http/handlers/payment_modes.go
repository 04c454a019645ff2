package handlers

import (
	"net/http"

	"restaurant-backoffice/pkg/response"
)

func (h *Handler) PaymentModes(w http.ResponseWriter, r *http.Request) {
	modes, err := h.Backend.FetchPaymentModes(r.Context(), h.resolveOutletID(r))
	if err != nil {
		h.writeBackendError(w, err, "Failed to load payment modes")
		return
	}
	response.Success(w, modes)
}
