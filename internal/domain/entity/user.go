package entity

import (
	"strings"
	"time"

	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
)

// User represents a wallet holder
type User struct {
	ID           uint64    // Unique identifier for the user
	Email        string    // Notification address
	Name         string    // Display name
	Balance      int64     // Balance in paise, never negative once persisted
	RewardPoints int64     // Loyalty points, informational only
	CreatedAt    time.Time // When the user was created
	UpdatedAt    time.Time // When the balance last changed
}

// NewUser creates a new user with the given ID and initial balance in paise
func NewUser(id uint64, email, name string, initialBalance int64, timeProvider coreport.TimeProvider) (*User, error) {
	if id == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if initialBalance < 0 {
		return nil, errs.ErrInvalidAmount
	}

	now := timeProvider.Now()
	return &User{
		ID:        id,
		Email:     strings.TrimSpace(email),
		Name:      strings.TrimSpace(name),
		Balance:   initialBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// FormattedBalance returns the balance as a rupee string
func (u *User) FormattedBalance() string {
	return FormatRupees(u.Balance)
}

// CanApply reports whether applying delta keeps the balance non-negative
func (u *User) CanApply(delta int64) bool {
	return u.Balance+delta >= 0
}
