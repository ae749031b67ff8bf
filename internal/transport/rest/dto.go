package rest

import (
	"time"

	"bijoux-be/internal/cart"
	"bijoux-be/internal/customer"
	"bijoux-be/internal/order"

	"github.com/shopspring/decimal"
)

// -- Auth --

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	// Cart is the locally-held (pre-login) cart, merged into the account's
	// stored cart on success.
	Cart []cartLineInput `json:"cart" validate:"dive"`
}

type loginResponse struct {
	Token    string       `json:"token"`
	Cart     cartResponse `json:"cart"`
	Warnings []string     `json:"warnings,omitempty"`
}

// -- Cart --

type cartLineInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type addCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type setCartQuantityRequest struct {
	ProductID string `json:"productId" validate:"required"`
	// Quantity zero removes the line.
	Quantity int    `json:"quantity" validate:"min=0"`
	Size     string `json:"size"`
	Color    string `json:"color"`
}

type cartLineResponse struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	ImageURL  *string         `json:"imageUrl,omitempty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
}

type cartResponse struct {
	Lines     []cartLineResponse `json:"lines"`
	Total     decimal.Decimal    `json:"total"`
	ItemCount int                `json:"itemCount"`
}

func toCartResponse(c cart.Cart) cartResponse {
	out := cartResponse{
		Lines:     make([]cartLineResponse, 0, len(c.Lines)),
		Total:     cart.Total(c),
		ItemCount: cart.ItemCount(c),
	}
	for _, l := range c.Lines {
		out.Lines = append(out.Lines, cartLineResponse{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			ImageURL:  l.Product.ImageURL,
			UnitPrice: l.Product.UnitPrice,
			Quantity:  l.Quantity,
			Size:      l.Size,
			Color:     l.Color,
		})
	}
	return out
}

// -- Checkout --

type addressInput struct {
	RecipientName  string `json:"recipientName" validate:"required"`
	RecipientPhone string `json:"recipientPhone" validate:"required"`
	Street         string `json:"street" validate:"required"`
	Ward           string `json:"ward"`
	District       string `json:"district"`
	City           string `json:"city" validate:"required"`
	PostalCode     string `json:"postalCode"`
	Country        string `json:"country" validate:"required"`
}

type addressResponse struct {
	ID             string `json:"id"`
	RecipientName  string `json:"recipientName"`
	RecipientPhone string `json:"recipientPhone,omitempty"`
	Street         string `json:"street"`
	Ward           string `json:"ward,omitempty"`
	District       string `json:"district,omitempty"`
	City           string `json:"city"`
	PostalCode     string `json:"postalCode,omitempty"`
	Country        string `json:"country"`
	IsCurrent      bool   `json:"isCurrent"`
}

func toAddressResponse(a *customer.Address) addressResponse {
	return addressResponse{
		ID:             a.ID.String(),
		RecipientName:  a.RecipientName,
		RecipientPhone: a.RecipientPhone,
		Street:         a.Street,
		Ward:           a.Ward,
		District:       a.District,
		City:           a.City,
		PostalCode:     a.PostalCode,
		Country:        a.Country,
		IsCurrent:      a.IsCurrent,
	}
}

type paymentInput struct {
	CardNumber string `json:"cardNumber"`
	CardHolder string `json:"cardHolder"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	Method     string `json:"method" validate:"required"`
	IsTestMode bool   `json:"isTestMode"`
}

type checkoutRequest struct {
	CustomerID uint `json:"customerId" validate:"required"`
	// Cart may be empty; the orchestrator rejects that with its own error
	// so the outcome matches a direct submit of an empty cart.
	Cart            []cartLineInput `json:"cart" validate:"dive"`
	ShippingAddress addressInput    `json:"shippingAddress" validate:"required"`
	DeliveryMethod  string          `json:"deliveryMethod" validate:"required"`
	Notes           string          `json:"notes"`
	Payment         paymentInput    `json:"payment" validate:"required"`
}

type checkoutResponse struct {
	OrderID       uint            `json:"orderId"`
	Status        order.Status    `json:"status"`
	Total         decimal.Decimal `json:"total"`
	TransactionID string          `json:"transactionId"`
}

// -- Orders --

type transitionRequest struct {
	Status order.Status `json:"status" validate:"required"`
}

type orderLineResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	ImageURL    *string         `json:"imageUrl,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Size        string          `json:"size,omitempty"`
	Color       string          `json:"color,omitempty"`
}

type orderResponse struct {
	ID             uint                `json:"id"`
	Status         order.Status        `json:"status"`
	Total          decimal.Decimal     `json:"total"`
	DeliveryMethod string              `json:"deliveryMethod"`
	Notes          string              `json:"notes,omitempty"`
	CustomerName   string              `json:"customerName"`
	CustomerEmail  string              `json:"customerEmail"`
	Shipping       addressInput        `json:"shippingAddress"`
	Items          []orderLineResponse `json:"items"`
	MaskedCard     string              `json:"maskedCard,omitempty"`
	PaymentMethod  string              `json:"paymentMethod"`
	TransactionID  string              `json:"transactionId"`
	CreatedAt      string              `json:"createdAt"`
	UpdatedAt      string              `json:"updatedAt"`
}

func toOrderResponse(o *order.Order) orderResponse {
	out := orderResponse{
		ID:             o.ID,
		Status:         o.Status,
		Total:          o.Total,
		DeliveryMethod: o.DeliveryMethod,
		Notes:          o.Notes,
		CustomerName:   o.CustomerName,
		CustomerEmail:  o.CustomerEmail,
		Shipping: addressInput{
			RecipientName:  o.Shipping.RecipientName,
			RecipientPhone: o.Shipping.RecipientPhone,
			Street:         o.Shipping.Street,
			Ward:           o.Shipping.Ward,
			District:       o.Shipping.District,
			City:           o.Shipping.City,
			PostalCode:     o.Shipping.PostalCode,
			Country:        o.Shipping.Country,
		},
		MaskedCard:    o.Payment.MaskedCard,
		PaymentMethod: o.Payment.Method,
		TransactionID: o.Payment.TransactionID,
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     o.UpdatedAt.UTC().Format(time.RFC3339),
	}
	for _, it := range o.Items {
		out.Items = append(out.Items, orderLineResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ImageURL:    it.ImageURL,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Size:        it.Size,
			Color:       it.Color,
		})
	}
	return out
}

// toCartValue folds wire lines into a Cart through cart.Add, so two lines
// carrying the same (product, size, color) collapse into a single line.
func toCartValue(lines []cartLineInput) (cart.Cart, error) {
	c := cart.Cart{}
	for _, l := range lines {
		merged, err := cart.Add(c, cart.ProductRef{ID: l.ProductID}, l.Quantity, l.Size, l.Color)
		if err != nil {
			return cart.Cart{}, err
		}
		c = merged
	}
	return c, nil
}
