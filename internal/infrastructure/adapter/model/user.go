package model

import (
	"time"
)

// User represents the database model for wallet holders
type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement:false"`
	Email        string    `gorm:"not null;size:255;index"`
	Name         string    `gorm:"not null;size:255"`
	Balance      int64     `gorm:"not null;default:0;check:chk_users_balance,balance >= 0"` // Balance in paise
	RewardPoints int64     `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
