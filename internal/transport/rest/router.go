package rest

import (
	"net/http"

	"bijoux-be/internal/logger"
	"bijoux-be/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires the storefront and admin surfaces. Catalog reads are
// public; everything touching a cart, order or checkout requires a verified
// bearer identity, and admin routes require the admin role on top.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.AuthMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)

	r.Get("/products/{productID}", h.GetProduct)
	r.Get("/categories", h.ListCategories)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/addresses", h.ListAddresses)

		r.Get("/cart", h.GetCart)
		r.Post("/cart/items", h.AddCartItem)
		r.Patch("/cart/items", h.SetCartItemQuantity)
		r.Delete("/cart/items", h.RemoveCartItem)

		r.Post("/checkout", h.SubmitCheckout)

		r.Get("/orders", h.ListMyOrders)
		r.Get("/orders/{orderID}", h.GetOrder)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)

		r.Get("/admin/orders", h.AdminListOrders)
		r.Patch("/admin/orders/{orderID}/status", h.AdminTransitionOrder)
		r.Post("/admin/users/{userID}/reactivate", h.AdminReactivateUser)
	})

	return r
}
