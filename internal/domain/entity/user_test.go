package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	coremocks "github.com/vyronamart/group-ledger/mocks/port/core"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser(1, " asha@example.com ", "Asha", 50000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
		assert.Equal(t, "asha@example.com", user.Email)
		assert.Equal(t, int64(50000), user.Balance)
		assert.Equal(t, "₹500.00", user.FormattedBalance())
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Zero ID should return error", func(t *testing.T) {
		user, err := NewUser(0, "", "", 100, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, user)
	})

	t.Run("Negative initial balance", func(t *testing.T) {
		user, err := NewUser(1, "", "", -1, mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, user)
	})
}

func TestUser_CanApply(t *testing.T) {
	user := &User{ID: 1, Balance: 100}

	assert.True(t, user.CanApply(-100))
	assert.True(t, user.CanApply(0))
	assert.True(t, user.CanApply(50))
	assert.False(t, user.CanApply(-101))
}
