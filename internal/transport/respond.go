package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"shopline-be/internal/order"
	"shopline-be/internal/payment"
	"shopline-be/internal/product"
	"shopline-be/internal/user"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeDomainError maps sentinel errors onto HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, product.ErrInvalidProduct):
		writeError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, user.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())

	case errors.Is(err, order.ErrUnauthorized):
		writeError(w, http.StatusForbidden, err.Error())

	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, order.ErrProductNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, user.ErrEmailExists),
		errors.Is(err, order.ErrInsufficientStock),
		errors.Is(err, payment.ErrOrderNotPending):
		writeError(w, http.StatusConflict, err.Error())

	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
