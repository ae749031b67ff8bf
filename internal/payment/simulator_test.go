package payment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func fixedSimulator(rate, roll float64) *Simulator {
	s := NewSimulator(rate)
	s.randFloat = func() float64 { return roll }
	s.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func fullAttempt() Attempt {
	return Attempt{
		CardNumber: "4111 1111 1111 1234",
		CardHolder: "An Tran",
		Expiry:     "12/27",
		CVV:        "123",
		Method:     "card",
	}
}

func TestSimulator_Charge(t *testing.T) {
	ctx := context.Background()
	amount := decimal.RequireFromString("1000000")

	t.Run("TestModeAlwaysSucceeds", func(t *testing.T) {
		// Even a roll that would decline a live charge.
		s := fixedSimulator(0.0, 0.99)

		rec := s.Charge(ctx, amount, Attempt{TestMode: true})
		assert.Equal(t, StatusSuccess, rec.Status)
		assert.Equal(t, "test mode charge approved", rec.Message)
		assert.True(t, rec.TestMode)
	})

	t.Run("ForceTestModeOverridesLiveAttempts", func(t *testing.T) {
		s := fixedSimulator(0.0, 0.99)
		s.ForceTestMode = true

		rec := s.Charge(ctx, amount, fullAttempt())
		assert.Equal(t, StatusSuccess, rec.Status)
	})

	t.Run("MissingFieldsFail", func(t *testing.T) {
		s := fixedSimulator(1.0, 0.0)

		a := fullAttempt()
		a.CVV = ""
		rec := s.Charge(ctx, amount, a)
		assert.Equal(t, StatusFailed, rec.Status)
		assert.Equal(t, "missing payment fields", rec.Message)
	})

	t.Run("RollBelowRateApproves", func(t *testing.T) {
		s := fixedSimulator(0.9, 0.5)

		rec := s.Charge(ctx, amount, fullAttempt())
		assert.Equal(t, StatusSuccess, rec.Status)
		assert.Equal(t, "charge approved", rec.Message)
	})

	t.Run("RollAtOrAboveRateDeclines", func(t *testing.T) {
		s := fixedSimulator(0.9, 0.9)

		rec := s.Charge(ctx, amount, fullAttempt())
		assert.Equal(t, StatusFailed, rec.Status)
		assert.Equal(t, "card declined", rec.Message)
	})

	t.Run("EveryAttemptGetsATransactionID", func(t *testing.T) {
		s := fixedSimulator(0.0, 0.99)

		rec := s.Charge(ctx, amount, fullAttempt())
		assert.Equal(t, StatusFailed, rec.Status)
		assert.NotEmpty(t, rec.TransactionID)
		assert.Equal(t, "************1234", rec.MaskedCard)
	})
}

func TestMaskCard(t *testing.T) {
	assert.Equal(t, "************1111", MaskCard("4111 1111 1111 1111"))
	assert.Equal(t, "1234", MaskCard("1234"))
	assert.Equal(t, "", MaskCard(""))
	assert.Equal(t, "************1111", MaskCard("4111-1111-1111-1111"))
}
