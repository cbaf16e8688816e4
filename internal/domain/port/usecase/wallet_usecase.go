package usecase

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// ApplyDeltaRequest describes one signed balance change
type ApplyDeltaRequest struct {
	UserID      uint64
	Amount      int64 // paise; negative debits
	Type        string
	Description string
}

// ApplyDeltaResult is returned after a committed balance change
type ApplyDeltaResult struct {
	Balance     int64
	Transaction *entity.Transaction
}

// CreateUserRequest provisions a wallet
type CreateUserRequest struct {
	ID             uint64
	Email          string
	Name           string
	InitialBalance int64
}

// WalletUseCase defines wallet operations
type WalletUseCase interface {
	// ApplyDelta applies a signed amount and appends a ledger row in one unit of work
	ApplyDelta(ctx context.Context, req ApplyDeltaRequest) (*ApplyDeltaResult, error)

	// GetBalance returns the stored balance, not recomputed from history
	GetBalance(ctx context.Context, userID uint64) (*entity.BalanceResponse, error)

	// ListTransactions returns the ledger newest first
	ListTransactions(ctx context.Context, userID uint64, limit, offset int) ([]*entity.Transaction, error)

	// CreateUser provisions a wallet; a positive opening balance is recorded as a topup row
	CreateUser(ctx context.Context, req CreateUserRequest) (*entity.User, error)

	// Reconcile compares the stored balance with the ledger sum without changing anything
	Reconcile(ctx context.Context, userID uint64) (*entity.ReconcileReport, error)
}
