package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	coremocks "github.com/vyronamart/group-ledger/mocks/port/core"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixedTime).Maybe()

	t.Run("Valid debit", func(t *testing.T) {
		tx, err := NewTransaction(
			1,            // userID
			-500,         // amount
			TypePurchase, // type
			" groceries ",
			0, // balanceAfter
			mockTime,
		)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), tx.UserID)
		assert.Equal(t, int64(-500), tx.Amount)
		assert.Equal(t, "groceries", tx.Description)
		assert.Equal(t, fixedTime, tx.CreatedAt)
		assert.True(t, tx.IsDebit())
		assert.False(t, tx.IsCredit())
	})

	t.Run("Zero amount is allowed", func(t *testing.T) {
		tx, err := NewTransaction(1, 0, TypeAdjustment, "", 100, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(0), tx.Amount)
		assert.False(t, tx.IsDebit())
		assert.False(t, tx.IsCredit())
	})

	t.Run("Zero userID", func(t *testing.T) {
		tx, err := NewTransaction(0, 100, TypeTopUp, "", 100, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, tx)
	})

	t.Run("Empty type", func(t *testing.T) {
		tx, err := NewTransaction(1, 100, "", "", 100, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)
		assert.Nil(t, tx)
	})
}

func TestParseTransactionType(t *testing.T) {
	t.Run("Known types", func(t *testing.T) {
		for _, raw := range []string{"purchase", "contribution", "refund", "topup", "reward", " Adjustment "} {
			_, err := ParseTransactionType(raw)
			assert.NoError(t, err, raw)
		}
	})

	t.Run("Unknown type", func(t *testing.T) {
		_, err := ParseTransactionType("win")
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("Empty type", func(t *testing.T) {
		_, err := ParseTransactionType("  ")
		assert.ErrorIs(t, err, errs.ErrInvalidTransactionType)
	})
}

func TestTransactionType_IsSelfServiceDebit(t *testing.T) {
	tests := []struct {
		txType TransactionType
		amount int64
		want   bool
	}{
		{TypePurchase, -250, true},
		{TypeContribution, -100, true},
		{TypePurchase, 0, true},
		{TypePurchase, 250, false},
		{TypeTopUp, 500, false},
		{TypeReward, 10, false},
		{TypeRefund, 100, false},
		{TypeAdjustment, -5, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.txType.IsSelfServiceDebit(tt.amount), "%s %d", tt.txType, tt.amount)
	}
}
