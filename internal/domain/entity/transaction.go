package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
)

// TransactionType tags the business reason for a balance change
type TransactionType string

// Transaction types
const (
	TypePurchase     TransactionType = "purchase"
	TypeContribution TransactionType = "contribution"
	TypeRefund       TransactionType = "refund"
	TypeTopUp        TransactionType = "topup"
	TypeReward       TransactionType = "reward"
	TypeAdjustment   TransactionType = "adjustment"
)

// ParseTransactionType validates a raw type tag
func ParseTransactionType(raw string) (TransactionType, error) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(raw)))
	switch t {
	case TypePurchase, TypeContribution, TypeRefund, TypeTopUp, TypeReward, TypeAdjustment:
		return t, nil
	case "":
		return "", fmt.Errorf("%w: type is required", errs.ErrInvalidTransactionType)
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidTransactionType, raw)
	}
}

// IsSelfServiceDebit reports whether a customer may apply amount of this type
// to their own wallet: only purchases and contributions, and never a credit.
// Every other combination is a back-office operation.
func (t TransactionType) IsSelfServiceDebit(amount int64) bool {
	return (t == TypePurchase || t == TypeContribution) && amount <= 0
}

// Transaction is an immutable ledger row describing one applied delta
type Transaction struct {
	ID           uint64          // Assigned by the store
	UserID       uint64          // Owner of the wallet
	Amount       int64           // Signed delta in paise
	Type         TransactionType // Business reason
	Description  string          // Free text
	BalanceAfter int64           // Wallet balance once this delta was applied
	CreatedAt    time.Time
}

// NewTransaction creates a ledger row for an already-applied delta
func NewTransaction(
	userID uint64,
	amount int64,
	txType TransactionType,
	description string,
	balanceAfter int64,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if txType == "" {
		return nil, fmt.Errorf("%w: type is required", errs.ErrInvalidTransactionType)
	}

	return &Transaction{
		UserID:       userID,
		Amount:       amount,
		Type:         txType,
		Description:  strings.TrimSpace(description),
		BalanceAfter: balanceAfter,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// IsCredit returns true if this transaction increased the balance
func (t *Transaction) IsCredit() bool {
	return t.Amount > 0
}

// IsDebit returns true if this transaction decreased the balance
func (t *Transaction) IsDebit() bool {
	return t.Amount < 0
}
