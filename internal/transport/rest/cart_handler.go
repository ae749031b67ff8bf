package rest

import (
	"net/http"

	"bijoux-be/internal/cart"
	"bijoux-be/internal/middleware"
)

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	c, err := h.CartSvc.GetCart(r.Context(), actor.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(c))
}

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	var req addCartItemRequest
	if err := bind(r, &req, h.validate); err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.CartSvc.AddItem(r.Context(), actor.ID, req.ProductID, req.Quantity, req.Size, req.Color)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(c))
}

func (h *Handler) SetCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	var req setCartQuantityRequest
	if err := bind(r, &req, h.validate); err != nil {
		writeError(w, r, err)
		return
	}

	key := cart.LineKey{ProductID: req.ProductID, Size: req.Size, Color: req.Color}
	c, err := h.CartSvc.SetItemQuantity(r.Context(), actor.ID, key, req.Quantity)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(c))
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	actor, _ := middleware.ActorFrom(r.Context())

	key := cart.LineKey{
		ProductID: r.URL.Query().Get("productId"),
		Size:      r.URL.Query().Get("size"),
		Color:     r.URL.Query().Get("color"),
	}
	if key.ProductID == "" {
		writeError(w, r, &ValidationError{msg: "productId query parameter is required"})
		return
	}

	c, err := h.CartSvc.RemoveItem(r.Context(), actor.ID, key)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCartResponse(c))
}
