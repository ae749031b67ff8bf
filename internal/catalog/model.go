package catalog

import (
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	ProductStatusActive   = "active"
	ProductStatusDisabled = "disabled"
)

type Product struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Slug       string          `json:"slug"`
	CategoryID string          `json:"category_id"`
	Price      decimal.Decimal `json:"price"`
	ImageURL   *string         `json:"image_url,omitempty"`
	// Sizes and Colors are the variant options offered for the piece,
	// e.g. ring sizes ("5".."9") and metal colors ("gold", "silver").
	// An empty slice means the option does not apply to this product.
	Sizes       pq.StringArray `json:"sizes"`
	Colors      pq.StringArray `json:"colors"`
	Description *string        `json:"description,omitempty"`
	Status      string         `json:"status"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// VariantPrice is the authoritative line price for a (product, size, color)
// selection at the moment of resolution. Price is per-product today; the
// size/color fields are carried so a per-variant price table can be added
// without changing callers.
type VariantPrice struct {
	ProductID string
	Name      string
	ImageURL  *string
	Size      string
	Color     string
	UnitPrice decimal.Decimal
}

type GetProductOptions struct {
	ProductID  string
	OnlyActive bool
}
