package rest

import (
	"bijoux-be/internal/cart"
	"bijoux-be/internal/catalog"
	"bijoux-be/internal/checkout"
	"bijoux-be/internal/customer"
	"bijoux-be/internal/order"
	"bijoux-be/internal/user"

	validatorv10 "github.com/go-playground/validator/v10"
)

// Handler holds the service surfaces the HTTP layer dispatches into. It owns
// no business logic; every operation takes the actor/customer explicitly
// from the request.
type Handler struct {
	CatalogSvc  catalog.Service
	CartSvc     cart.Service
	CustomerSvc customer.Service
	CheckoutSvc checkout.Service
	OrderSvc    order.Service
	UserSvc     user.Service

	validate *validatorv10.Validate
}

func NewHandler(
	catalogSvc catalog.Service,
	cartSvc cart.Service,
	customerSvc customer.Service,
	checkoutSvc checkout.Service,
	orderSvc order.Service,
	userSvc user.Service,
) *Handler {
	return &Handler{
		CatalogSvc:  catalogSvc,
		CartSvc:     cartSvc,
		CustomerSvc: customerSvc,
		CheckoutSvc: checkoutSvc,
		OrderSvc:    orderSvc,
		UserSvc:     userSvc,
		validate:    newValidator(),
	}
}
