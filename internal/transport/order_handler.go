package transport

import (
	"encoding/json"
	"net/http"

	"shopline-be/internal/order"
	"shopline-be/internal/user"
	"shopline-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	lines := make([]order.Line, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, order.Line{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	o, err := h.orders.PlaceOrder(r.Context(), userID, lines)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.metrics.OrdersPlaced.Inc()
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Order created successfully",
		"order":   o,
	})
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	orders, err := h.orders.GetOrders(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if orders == nil {
		orders = []*order.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	isAdmin := utils.GetUserRoleFromContext(r.Context()) == string(user.RoleAdmin)

	orderID, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	o, err := h.orders.GetOrderDetail(r.Context(), userID, orderID, isAdmin)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, o)
}
