package rest

import (
	"net/http"

	"bijoux-be/internal/checkout"
	"bijoux-be/internal/customer"
	"bijoux-be/internal/logger"
	"bijoux-be/internal/middleware"
	"bijoux-be/internal/payment"

	"go.uber.org/zap"
)

// SubmitCheckout handles POST /checkout. The submitted cart lines are
// advisory on price (re-resolved server-side); the server cart is cleared
// only after the order write is confirmed.
func (h *Handler) SubmitCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req checkoutRequest
	if err := bind(r, &req, h.validate); err != nil {
		writeError(w, r, err)
		return
	}

	actor, _ := middleware.ActorFrom(ctx)
	if req.CustomerID != actor.ID {
		writeError(w, r, &ValidationError{msg: "customerId does not match the authenticated customer"})
		return
	}

	cust, err := h.CustomerSvc.GetByID(ctx, actor.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	c, err := toCartValue(req.Cart)
	if err != nil {
		writeError(w, r, err)
		return
	}

	o, err := h.CheckoutSvc.Submit(ctx, checkout.Params{
		Customer: *cust,
		Cart:     c,
		Shipping: customer.UpsertAddressInput{
			RecipientName:  req.ShippingAddress.RecipientName,
			RecipientPhone: req.ShippingAddress.RecipientPhone,
			Street:         req.ShippingAddress.Street,
			Ward:           req.ShippingAddress.Ward,
			District:       req.ShippingAddress.District,
			City:           req.ShippingAddress.City,
			PostalCode:     req.ShippingAddress.PostalCode,
			Country:        req.ShippingAddress.Country,
		},
		DeliveryMethod: req.DeliveryMethod,
		Notes:          req.Notes,
		Payment: payment.Attempt{
			CardNumber: req.Payment.CardNumber,
			CardHolder: req.Payment.CardHolder,
			Expiry:     req.Payment.Expiry,
			CVV:        req.Payment.CVV,
			Method:     req.Payment.Method,
			TestMode:   req.Payment.IsTestMode,
		},
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	// Clear the server cart only now that the order exists. Clearing
	// is idempotent and best-effort; a failure here must not undo checkout.
	if err := h.CartSvc.Clear(ctx, actor.ID); err != nil {
		logger.FromCtx(ctx).Warn("cart clear after checkout failed",
			zap.Uint("customer_id", actor.ID),
			zap.Uint("order_id", o.ID),
			zap.Error(err),
		)
	}

	writeJSON(w, http.StatusOK, checkoutResponse{
		OrderID:       o.ID,
		Status:        o.Status,
		Total:         o.Total,
		TransactionID: o.Payment.TransactionID,
	})
}
