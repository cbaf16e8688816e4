package model

import (
	"time"
)

// Transaction represents one append-only wallet ledger row
type Transaction struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	UserID       uint64    `gorm:"not null;index:idx_transactions_user_created,priority:1"`
	Amount       int64     `gorm:"not null"` // Signed delta in paise
	Type         string    `gorm:"not null;size:32"`
	Description  string    `gorm:"size:255"`
	BalanceAfter int64     `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null;index:idx_transactions_user_created,priority:2"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
