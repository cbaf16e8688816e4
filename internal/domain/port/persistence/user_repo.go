package persistence

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// UserRepository defines the wallet-holder operations of the Ledger Store
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrPersistence: If the store read fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// Create inserts a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If user with same ID already exists
	// - ErrPersistence: If the store write fails
	Create(ctx context.Context, user *entity.User) error

	// ApplyBalanceDelta adds delta to the stored balance with a single guarded
	// update that refuses to take the balance below zero, then returns the
	// updated user. Concurrent calls never lose an update.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrInsufficientBalance: If the guard rejected the update
	// - ErrPersistence: If the store write fails
	ApplyBalanceDelta(ctx context.Context, id uint64, delta int64) (*entity.User, error)
}
