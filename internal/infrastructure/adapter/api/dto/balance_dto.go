package dto

import (
	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// BalanceResponse represents the API response for the caller's balance
type BalanceResponse struct {
	UserID    uint64 `json:"userId"`
	Balance   int64  `json:"balance"`
	Formatted string `json:"formatted"`
}

// ReconcileResponse reports drift between the stored balance and the ledger
type ReconcileResponse struct {
	UserID           uint64 `json:"userId"`
	StoredBalance    int64  `json:"storedBalance"`
	LedgerSum        int64  `json:"ledgerSum"`
	TransactionCount int64  `json:"transactionCount"`
	Drift            int64  `json:"drift"`
	Consistent       bool   `json:"consistent"`
}

// NewBalanceResponse converts the use case balance view
func NewBalanceResponse(b *entity.BalanceResponse) BalanceResponse {
	return BalanceResponse{
		UserID:    b.UserID,
		Balance:   b.Balance,
		Formatted: b.Formatted,
	}
}

// NewReconcileResponse converts a reconcile report
func NewReconcileResponse(r *entity.ReconcileReport) ReconcileResponse {
	return ReconcileResponse{
		UserID:           r.UserID,
		StoredBalance:    r.StoredBalance,
		LedgerSum:        r.LedgerSum,
		TransactionCount: r.TransactionCount,
		Drift:            r.Drift,
		Consistent:       r.Consistent,
	}
}
