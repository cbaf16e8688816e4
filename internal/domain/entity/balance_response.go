package entity

// BalanceResponse represents the response for the balance endpoint
type BalanceResponse struct {
	UserID    uint64 `json:"userId"`
	Balance   int64  `json:"balance"`
	Formatted string `json:"formatted"`
}

// UserToBalanceResponse converts a User entity to a BalanceResponse
// This is a separate function rather than a method on User to keep domain models clean
func UserToBalanceResponse(user *User) BalanceResponse {
	return BalanceResponse{
		UserID:    user.ID,
		Balance:   user.Balance,
		Formatted: user.FormattedBalance(),
	}
}

// ReconcileReport compares a stored balance with the sum of its ledger
type ReconcileReport struct {
	UserID           uint64 `json:"userId"`
	StoredBalance    int64  `json:"storedBalance"`
	LedgerSum        int64  `json:"ledgerSum"`
	TransactionCount int64  `json:"transactionCount"`
	Drift            int64  `json:"drift"`
	Consistent       bool   `json:"consistent"`
}

// NewReconcileReport derives drift from the stored balance and ledger totals
func NewReconcileReport(userID uint64, stored, ledgerSum, count int64) ReconcileReport {
	drift := stored - ledgerSum
	return ReconcileReport{
		UserID:           userID,
		StoredBalance:    stored,
		LedgerSum:        ledgerSum,
		TransactionCount: count,
		Drift:            drift,
		Consistent:       drift == 0,
	}
}
