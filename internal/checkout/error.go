package checkout

import (
	"errors"
	"fmt"

	"bijoux-be/internal/payment"
)

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrInvalidLine = errors.New("cart line no longer valid")
	// ErrPersistence means payment succeeded but the order write failed.
	// Nothing was half-committed; the cart is intact and the attempt can be
	// retried, at worst creating a duplicate order rather than a corrupt one.
	ErrPersistence = errors.New("order could not be persisted")
)

// PaymentDeclinedError carries the gateway's record so the caller can show
// the decline message and correlate the transaction id. The attempt had no
// side effects.
type PaymentDeclinedError struct {
	Record payment.Record
}

func (e *PaymentDeclinedError) Error() string {
	return fmt.Sprintf("payment declined: %s", e.Record.Message)
}
