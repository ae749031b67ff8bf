package customer

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID        uint
	Email     string
	Name      string
	Phone     string
	CreatedAt time.Time
}

// Address is one entry in a customer's address book. Two addresses are the
// same entry when street, district and city all match; upserts dedup on that
// key. Orders never reference these rows; they carry their own frozen copy.
type Address struct {
	ID             uuid.UUID
	CustomerID     uint
	RecipientName  string
	RecipientPhone string
	Street         string
	Ward           string
	District       string
	City           string
	PostalCode     string
	Country        string
	IsCurrent      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type UpsertAddressInput struct {
	RecipientName  string
	RecipientPhone string
	Street         string
	Ward           string
	District       string
	City           string
	PostalCode     string
	Country        string
}
