package payment

import (
	"context"
	"math/rand"
	"time"

	"bijoux-be/internal/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const msgMissingFields = "missing payment fields"

// Simulator is a stand-in gateway. Test-mode attempts always succeed;
// otherwise complete card details draw a random outcome at SuccessRate, and
// incomplete details fail outright. It never persists anything.
type Simulator struct {
	SuccessRate float64
	// ForceTestMode treats every attempt as a test-mode attempt, for
	// environments with no card data at all.
	ForceTestMode bool
	randFloat     func() float64
	now           func() time.Time
}

func NewSimulator(successRate float64) *Simulator {
	return &Simulator{
		SuccessRate: successRate,
		randFloat:   rand.Float64,
		now:         time.Now,
	}
}

func (s *Simulator) Charge(ctx context.Context, amount decimal.Decimal, attempt Attempt) Record {
	rec := Record{
		TransactionID: uuid.New().String(),
		MaskedCard:    MaskCard(attempt.CardNumber),
		Method:        attempt.Method,
		TestMode:      attempt.TestMode,
		ProcessedAt:   s.now(),
	}

	switch {
	case attempt.TestMode || s.ForceTestMode:
		rec.Status = StatusSuccess
		rec.Message = "test mode charge approved"

	case attempt.CardNumber == "" || attempt.CardHolder == "" ||
		attempt.Expiry == "" || attempt.CVV == "":
		rec.Status = StatusFailed
		rec.Message = msgMissingFields

	case s.randFloat() < s.SuccessRate:
		rec.Status = StatusSuccess
		rec.Message = "charge approved"

	default:
		rec.Status = StatusFailed
		rec.Message = "card declined"
	}

	logger.FromCtx(ctx).Info("simulated charge processed",
		zap.String("transaction_id", rec.TransactionID),
		zap.String("status", string(rec.Status)),
		zap.String("amount", amount.String()),
		zap.Bool("test_mode", rec.TestMode),
	)

	return rec
}

var _ Processor = (*Simulator)(nil)
