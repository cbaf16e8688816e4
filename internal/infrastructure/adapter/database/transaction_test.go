package database_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vyronamart/group-ledger/internal/domain/entity"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	"github.com/vyronamart/group-ledger/internal/domain/port/usecase"
	"github.com/vyronamart/group-ledger/internal/domain/usecase/wallet"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/clock"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/database"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/logger"
	coremocks "github.com/vyronamart/group-ledger/mocks/port/core"
)

func setupDB(t *testing.T) *database.TestDBManager {
	t.Helper()
	return database.NewTestDBManager(t, logger.NewNoopLogger(), clock.NewSystemClock())
}

func TestUnitOfWork(t *testing.T) {
	ctx := context.Background()

	t.Run("commit keeps both writes", func(t *testing.T) {
		// Arrange
		tdb := setupDB(t)
		tdb.CreateTestUser(t, 1, 100)
		uow := tdb.Manager.CreateUnitOfWork()

		// Act
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		user, err := uow.GetUserRepository(txCtx).ApplyBalanceDelta(txCtx, 1, 50)
		require.NoError(t, err)
		txn, err := entity.NewTransaction(1, 50, entity.TypeTopUp, "", user.Balance, tdb.TimeProvider)
		require.NoError(t, err)
		require.NoError(t, uow.GetTransactionRepository(txCtx).Create(txCtx, txn))
		require.NoError(t, uow.Commit(txCtx))

		// Assert
		assert.Equal(t, int64(150), tdb.Balance(t, 1))
		_, count, err := uow.GetTransactionRepository(ctx).SumByUserID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
		assert.NoError(t, uow.Rollback(txCtx), "rollback after commit is a no-op")
	})

	t.Run("rollback discards the balance change", func(t *testing.T) {
		// Arrange
		tdb := setupDB(t)
		tdb.CreateTestUser(t, 1, 100)
		uow := tdb.Manager.CreateUnitOfWork()

		// Act
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		_, err = uow.GetUserRepository(txCtx).ApplyBalanceDelta(txCtx, 1, -60)
		require.NoError(t, err)
		require.NoError(t, uow.Rollback(txCtx))

		// Assert
		assert.Equal(t, int64(100), tdb.Balance(t, 1))
	})

	t.Run("nested begin is refused", func(t *testing.T) {
		tdb := setupDB(t)
		uow := tdb.Manager.CreateUnitOfWork()

		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = uow.Rollback(txCtx) }()

		_, err = uow.Begin(txCtx)
		assert.Error(t, err)
	})

	t.Run("commit without transaction", func(t *testing.T) {
		tdb := setupDB(t)
		uow := tdb.Manager.CreateUnitOfWork()

		assert.Error(t, uow.Commit(ctx))
		assert.Error(t, uow.Rollback(ctx))
	})
}

func TestWalletConcurrentDebits(t *testing.T) {
	// Arrange
	ctx := context.Background()
	tdb := setupDB(t)
	tdb.CreateTestUser(t, 1, 100)
	service := wallet.NewWalletService(
		tdb.Manager.CreateUnitOfWork(),
		tdb.TimeProvider,
		tdb.Logger,
		coremocks.NewMockMetrics(t).AllowAll(),
	)

	// Act
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = service.ApplyDelta(ctx, usecase.ApplyDeltaRequest{
				UserID: 1,
				Amount: -100,
				Type:   string(entity.TypePurchase),
			})
		}(i)
	}
	wg.Wait()

	// Assert
	failures := 0
	for _, err := range results {
		if err != nil {
			assert.ErrorIs(t, err, errs.ErrInsufficientBalance)
			failures++
		}
	}
	assert.Equal(t, 1, failures)
	assert.Equal(t, int64(0), tdb.Balance(t, 1))

	report, err := service.Reconcile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.TransactionCount)
	assert.Equal(t, int64(-100), report.LedgerSum)
}
