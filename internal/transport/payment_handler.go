package transport

import (
	"encoding/json"
	"net/http"

	"shopline-be/internal/utils"
)

func (h *Handler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req processPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.OrderID == 0 {
		writeError(w, http.StatusBadRequest, "Order ID required")
		return
	}

	o, err := h.payments.Process(r.Context(), userID, req.OrderID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.metrics.PaymentsProcessed.Inc()
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Payment processed successfully",
		"order":   o,
	})
}
