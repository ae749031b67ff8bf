package cart

import (
	"github.com/shopspring/decimal"
)

// ProductRef is the slice of catalog data a cart line carries. UnitPrice is
// advisory on the client path; checkout re-resolves it from the catalog.
type ProductRef struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	ImageURL  *string         `json:"image_url,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LineKey identifies a cart line: one line per (product, size, color).
// Empty size/color means the option was not selected.
type LineKey struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type Line struct {
	Product  ProductRef `json:"product"`
	Quantity int        `json:"quantity"`
	Size     string     `json:"size,omitempty"`
	Color    string     `json:"color,omitempty"`
}

func (l Line) Key() LineKey {
	return LineKey{ProductID: l.Product.ID, Size: l.Size, Color: l.Color}
}

// Cart is an ordered sequence of lines. The zero value is an empty cart.
// Mutating operations return a new Cart; no line ever holds quantity < 1.
type Cart struct {
	Lines []Line `json:"lines"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Add merges quantity into an existing line with the same key, or appends a
// new line.
func Add(c Cart, p ProductRef, qty int, size, color string) (Cart, error) {
	if p.ID == "" {
		return c, ErrInvalidProduct
	}
	if qty <= 0 {
		return c, ErrInvalidQuantity
	}

	key := LineKey{ProductID: p.ID, Size: size, Color: color}
	out := Cart{Lines: make([]Line, len(c.Lines))}
	copy(out.Lines, c.Lines)

	for i, l := range out.Lines {
		if l.Key() == key {
			out.Lines[i].Quantity += qty
			return out, nil
		}
	}

	out.Lines = append(out.Lines, Line{Product: p, Quantity: qty, Size: size, Color: color})
	return out, nil
}

// SetQuantity replaces the quantity of the line with the given key.
// A quantity of zero or less removes the line.
func SetQuantity(c Cart, key LineKey, qty int) Cart {
	if qty <= 0 {
		return Remove(c, key)
	}

	out := Cart{Lines: make([]Line, len(c.Lines))}
	copy(out.Lines, c.Lines)
	for i, l := range out.Lines {
		if l.Key() == key {
			out.Lines[i].Quantity = qty
		}
	}
	return out
}

// Remove drops the line with the given key, preserving the order of the rest.
func Remove(c Cart, key LineKey) Cart {
	out := Cart{Lines: make([]Line, 0, len(c.Lines))}
	for _, l := range c.Lines {
		if l.Key() != key {
			out.Lines = append(out.Lines, l)
		}
	}
	return out
}

// Total sums unit price times quantity over all lines. Decimal arithmetic is
// load-bearing here: this total is compared against the server-recomputed
// total at checkout, so it must not drift.
func Total(c Cart) decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Product.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// ItemCount is the sum of line quantities.
func ItemCount(c Cart) int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}
