package transport

import (
	"database/sql"
	"net/http"

	"shopline-be/internal/admin"
	"shopline-be/internal/metrics"
	"shopline-be/internal/order"
	"shopline-be/internal/payment"
	"shopline-be/internal/product"
	"shopline-be/internal/user"
)

// Handler holds the domain services behind the REST surface.
type Handler struct {
	users    user.Service
	products product.Service
	orders   order.Service
	payments payment.Service
	admin    admin.Service
	db       *sql.DB
	metrics  *metrics.Registry
}

func NewHandler(
	users user.Service,
	products product.Service,
	orders order.Service,
	payments payment.Service,
	adminSvc admin.Service,
	db *sql.DB,
	reg *metrics.Registry,
) *Handler {
	return &Handler{
		users:    users,
		products: products,
		orders:   orders,
		payments: payments,
		admin:    adminSvc,
		db:       db,
		metrics:  reg,
	}
}

// CountRequests is the metrics middleware for the whole router.
func (h *Handler) CountRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.metrics.HTTPRequests.Inc()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
