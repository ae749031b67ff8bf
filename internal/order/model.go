package order

import (
	"time"

	"bijoux-be/internal/payment"

	"github.com/shopspring/decimal"
)

// Status is the single lifecycle vocabulary shared by the admin and customer
// storefronts. Both views read this one field; there is no separate
// display-side status set.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusApproved  Status = "APPROVED"
	StatusShipped   Status = "SHIPPED"
	StatusDelivered Status = "DELIVERED"
	StatusCanceled  Status = "CANCELED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusApproved,
		StatusShipped, StatusDelivered, StatusCanceled:
		return true
	}
	return false
}

// legalTransitions is the full edge set of the lifecycle. Terminal states
// (DELIVERED, CANCELED) and CONFIRMED-at-rest have no outgoing edges here;
// history never reverses.
var legalTransitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusCanceled},
	StatusApproved: {StatusShipped},
	StatusShipped:  {StatusDelivered},
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range legalTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// adminOnly marks edges only an admin actor may take.
func adminOnly(from, to Status) bool {
	return from == StatusPending && (to == StatusApproved || to == StatusCanceled)
}

// Line is a frozen copy of the product at order time, not a live catalog
// reference. Later catalog edits must not rewrite history.
type Line struct {
	ID          uint
	ProductID   string
	ProductName string
	ImageURL    *string
	UnitPrice   decimal.Decimal
	Quantity    int
	Size        string
	Color       string
}

// AddressSnapshot is the shipping address as it was at checkout. Immutable
// after creation even if the customer's address book changes.
type AddressSnapshot struct {
	RecipientName  string
	RecipientPhone string
	Street         string
	Ward           string
	District       string
	City           string
	PostalCode     string
	Country        string
}

type Order struct {
	ID             uint
	CustomerID     uint
	CustomerName   string
	CustomerEmail  string
	Total          decimal.Decimal
	Status         Status
	DeliveryMethod string
	Notes          string
	Shipping       AddressSnapshot
	Payment        payment.Record
	Items          []Line
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Filter narrows the admin order listing.
type Filter struct {
	Status *Status
	// Search matches against customer name/email.
	Search *string
}
