package persistence

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// TransactionRepository stores the append-only wallet ledger
type TransactionRepository interface {
	// Create appends a ledger row and assigns its ID
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByUserID returns a user's rows newest first (created_at desc, id desc).
	// limit <= 0 means no limit.
	ListByUserID(ctx context.Context, userID uint64, limit, offset int) ([]*entity.Transaction, error)

	// SumByUserID returns the sum of a user's amounts and the number of rows
	SumByUserID(ctx context.Context, userID uint64) (sum int64, count int64, err error)
}
