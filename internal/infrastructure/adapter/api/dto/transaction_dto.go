package dto

import (
	"time"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// ApplyDeltaRequest represents the API request for a signed balance change.
// Amount is a pointer so that an explicit zero is accepted. UserID names
// another wallet and is honoured for operators only.
type ApplyDeltaRequest struct {
	UserID      *uint64 `json:"userId" binding:"omitempty,min=1"`
	Amount      *int64  `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=purchase contribution refund topup reward adjustment"`
	Description string  `json:"description" binding:"max=255"`
}

// ListTransactionsQuery pages through the caller's ledger
type ListTransactionsQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// TransactionResponse represents one ledger row
type TransactionResponse struct {
	ID           uint64    `json:"id"`
	UserID       uint64    `json:"userId"`
	Amount       int64     `json:"amount"`
	Type         string    `json:"type"`
	Description  string    `json:"description,omitempty"`
	BalanceAfter int64     `json:"balanceAfter"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ApplyDeltaResponse represents the API response for an applied balance change
type ApplyDeltaResponse struct {
	Balance     int64               `json:"balance"`
	Formatted   string              `json:"formatted"`
	Transaction TransactionResponse `json:"transaction"`
}

// NewTransactionResponse converts a ledger row
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		UserID:       t.UserID,
		Amount:       t.Amount,
		Type:         string(t.Type),
		Description:  t.Description,
		BalanceAfter: t.BalanceAfter,
		CreatedAt:    t.CreatedAt,
	}
}

// NewTransactionList converts ledger rows
func NewTransactionList(rows []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(rows))
	for _, t := range rows {
		out = append(out, NewTransactionResponse(t))
	}
	return out
}
