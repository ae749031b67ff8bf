package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"bijoux-be/internal/cart"
	"bijoux-be/internal/catalog"
	"bijoux-be/internal/checkout"
	"bijoux-be/internal/customer"
	"bijoux-be/internal/logger"
	"bijoux-be/internal/order"
	"bijoux-be/internal/user"

	"go.uber.org/zap"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps the domain error taxonomy onto HTTP statuses. Validation,
// not-found and payment errors surface their specific message; persistence
// failures surface a generic retry prompt.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var declined *checkout.PaymentDeclinedError
	var invalid *ValidationError

	switch {
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: invalid.Error()})

	case errors.As(err, &declined):
		writeJSON(w, http.StatusPaymentRequired, errorResponse{Message: declined.Record.Message})

	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrInvalidLine),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrInvalidProduct),
		errors.Is(err, catalog.ErrUnknownSize),
		errors.Is(err, catalog.ErrUnknownColor):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})

	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrInactiveAccount):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: err.Error()})

	case errors.Is(err, order.ErrUnauthorized):
		writeJSON(w, http.StatusForbidden, errorResponse{Message: err.Error()})

	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, cart.ErrItemNotFound),
		errors.Is(err, customer.ErrNotFound),
		errors.Is(err, customer.ErrAddressNotFound),
		errors.Is(err, order.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: err.Error()})

	case errors.Is(err, user.ErrEmailExists),
		errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, order.ErrStatusConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Message: err.Error()})

	default:
		logger.FromCtx(r.Context()).Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Message: "something went wrong, please try again",
		})
	}
}
