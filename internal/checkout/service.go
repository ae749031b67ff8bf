package checkout

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"bijoux-be/internal/cart"
	"bijoux-be/internal/catalog"
	"bijoux-be/internal/customer"
	"bijoux-be/internal/logger"
	"bijoux-be/internal/mail"
	"bijoux-be/internal/order"
	"bijoux-be/internal/payment"

	"go.uber.org/zap"
)

// Params is everything one checkout needs, passed explicitly. The customer
// value is the pre-validated bearer identity; nothing here reads ambient
// session state.
type Params struct {
	Customer       customer.Customer
	Cart           cart.Cart
	Shipping       customer.UpsertAddressInput
	DeliveryMethod string
	Notes          string
	Payment        payment.Attempt
}

// Service turns a cart into exactly one outcome: a persisted CONFIRMED order
// or a rejected attempt. It never clears the cart itself; the caller does
// that, and only after Submit returns an order.
type Service interface {
	Submit(ctx context.Context, params Params) (*order.Order, error)
}

type service struct {
	catalogSvc  catalog.Service
	customerSvc customer.Service
	orderRepo   order.Repository
	processor   payment.Processor
	sender      mail.Sender
}

func NewService(
	catalogSvc catalog.Service,
	customerSvc customer.Service,
	orderRepo order.Repository,
	processor payment.Processor,
	sender mail.Sender,
) Service {
	return &service{
		catalogSvc:  catalogSvc,
		customerSvc: customerSvc,
		orderRepo:   orderRepo,
		processor:   processor,
		sender:      sender,
	}
}

func (s *service) Submit(ctx context.Context, params Params) (*order.Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SubmitCheckout"),
		zap.Uint("customer_id", params.Customer.ID),
		zap.Int("line_count", len(params.Cart.Lines)),
	)

	// 1. Cart validation. Pure reads; nothing below runs if this fails.
	if params.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	// 2. Price re-resolution. Whatever unit prices the cart lines carried
	// are advisory only; every line is re-priced from the catalog and the
	// total recomputed with the cart model's decimal arithmetic.
	priced := cart.Cart{}
	items := make([]order.Line, 0, len(params.Cart.Lines))
	for _, l := range params.Cart.Lines {
		vp, err := s.catalogSvc.ResolvePrice(ctx, l.Product.ID, l.Size, l.Color)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) ||
				errors.Is(err, catalog.ErrUnknownSize) ||
				errors.Is(err, catalog.ErrUnknownColor) {
				return nil, fmt.Errorf("%w: product %s: %v", ErrInvalidLine, l.Product.ID, err)
			}
			return nil, err
		}
		if l.Quantity <= 0 {
			return nil, fmt.Errorf("%w: product %s: quantity %d", ErrInvalidLine, l.Product.ID, l.Quantity)
		}

		priced.Lines = append(priced.Lines, cart.Line{
			Product: cart.ProductRef{
				ID:        vp.ProductID,
				Name:      vp.Name,
				ImageURL:  vp.ImageURL,
				UnitPrice: vp.UnitPrice,
			},
			Quantity: l.Quantity,
			Size:     l.Size,
			Color:    l.Color,
		})
		items = append(items, order.Line{
			ProductID:   vp.ProductID,
			ProductName: vp.Name,
			ImageURL:    vp.ImageURL,
			UnitPrice:   vp.UnitPrice,
			Quantity:    l.Quantity,
			Size:        l.Size,
			Color:       l.Color,
		})
	}
	total := cart.Total(priced)

	// 3. Payment. A declined attempt is fully inert: no address write, no
	// order, cart untouched.
	rec := s.processor.Charge(ctx, total, params.Payment)
	if rec.Status != payment.StatusSuccess {
		log.Info("checkout rejected by payment",
			zap.String("transaction_id", rec.TransactionID),
			zap.String("message", rec.Message),
		)
		return nil, &PaymentDeclinedError{Record: rec}
	}

	// 4. Address upsert, best-effort. The order is the primary outcome; a
	// failed address save must not roll back a successful payment.
	if _, err := s.customerSvc.UpsertAddress(ctx, params.Customer.ID, params.Shipping); err != nil {
		log.Warn("address upsert failed, continuing checkout", zap.Error(err))
	}

	// 5. Order creation: build the complete value, then one atomic write.
	o := &order.Order{
		CustomerID:     params.Customer.ID,
		CustomerName:   params.Customer.Name,
		CustomerEmail:  params.Customer.Email,
		Total:          total,
		Status:         order.StatusConfirmed,
		DeliveryMethod: params.DeliveryMethod,
		Notes:          params.Notes,
		Shipping: order.AddressSnapshot{
			RecipientName:  params.Shipping.RecipientName,
			RecipientPhone: params.Shipping.RecipientPhone,
			Street:         params.Shipping.Street,
			Ward:           params.Shipping.Ward,
			District:       params.Shipping.District,
			City:           params.Shipping.City,
			PostalCode:     params.Shipping.PostalCode,
			Country:        params.Shipping.Country,
		},
		Payment: rec,
		Items:   items,
	}

	if err := s.orderRepo.Create(ctx, o); err != nil {
		// Payment says success but no order exists. Surface a hard failure
		// and leave the cart alone so the customer can retry.
		log.Error("order persistence failed after successful payment",
			zap.String("transaction_id", rec.TransactionID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// Confirmation mail is fire-and-forget.
	if err := s.sender.Send(ctx, params.Customer.Email, mail.TemplateOrderConfirmed, mail.TemplateArgs{
		"order_id": strconv.FormatUint(uint64(o.ID), 10),
		"total":    o.Total.String(),
	}); err != nil {
		log.Warn("order confirmation mail failed", zap.Error(err))
	}

	log.Info("checkout completed",
		zap.Uint("order_id", o.ID),
		zap.String("total", o.Total.String()),
		zap.String("transaction_id", rec.TransactionID),
	)

	return o, nil
}
