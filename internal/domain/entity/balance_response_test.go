package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserToBalanceResponse(t *testing.T) {
	t.Run("Converts user to balance response", func(t *testing.T) {
		user := &User{ID: 42, Balance: 12345}

		response := UserToBalanceResponse(user)

		assert.Equal(t, uint64(42), response.UserID)
		assert.Equal(t, int64(12345), response.Balance)
		assert.Equal(t, "₹123.45", response.Formatted)
	})

	t.Run("Handles zero balance", func(t *testing.T) {
		response := UserToBalanceResponse(&User{ID: 1})

		assert.Equal(t, int64(0), response.Balance)
		assert.Equal(t, "₹0.00", response.Formatted)
	})
}

func TestNewReconcileReport(t *testing.T) {
	t.Run("Consistent ledger", func(t *testing.T) {
		report := NewReconcileReport(1, 400, 400, 3)

		assert.True(t, report.Consistent)
		assert.Equal(t, int64(0), report.Drift)
		assert.Equal(t, int64(3), report.TransactionCount)
	})

	t.Run("Drifted ledger", func(t *testing.T) {
		report := NewReconcileReport(1, 500, 400, 2)

		assert.False(t, report.Consistent)
		assert.Equal(t, int64(100), report.Drift)
	})
}
