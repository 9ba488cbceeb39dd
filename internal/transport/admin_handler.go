package transport

import "net/http"

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.GetStats(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total_users":        stats.TotalUsers,
		"total_orders":       stats.TotalOrders,
		"total_revenue":      stats.TotalRevenue,
		"http_requests":      h.metrics.HTTPRequests.Load(),
		"orders_placed":      h.metrics.OrdersPlaced.Load(),
		"payments_processed": h.metrics.PaymentsProcessed.Load(),
	})
}
