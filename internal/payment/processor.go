package payment

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
)

// Attempt carries the payment details submitted with a checkout. TestMode
// short-circuits the gateway and always succeeds.
type Attempt struct {
	CardNumber string
	CardHolder string
	Expiry     string
	CVV        string
	Method     string
	TestMode   bool
}

// Record is the outcome of one charge attempt. A TransactionID is issued for
// failures too, so declined attempts can still be correlated in logs and
// support tickets.
type Record struct {
	TransactionID string
	MaskedCard    string
	Method        string
	Status        Status
	Message       string
	TestMode      bool
	ProcessedAt   time.Time
}

// Processor is the gateway seam. The shipped implementation is the
// simulator; a real gateway client slots in here without touching the
// checkout orchestrator.
type Processor interface {
	Charge(ctx context.Context, amount decimal.Decimal, attempt Attempt) Record
}

// MaskCard keeps the last four digits and stars the rest.
func MaskCard(number string) string {
	digits := strings.ReplaceAll(strings.ReplaceAll(number, " ", ""), "-", "")
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
