package persistence

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// GroupRepository defines operations on shopping groups and their memberships
type GroupRepository interface {
	// Create inserts the group and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateRoomCode: If another group already holds the room code
	// - ErrPersistence: If the store write fails
	Create(ctx context.Context, group *entity.ShoppingGroup) error

	// GetByID returns a group, active or not, with its member count
	//
	// Possible errors:
	// - ErrGroupNotFound: If no group has this ID
	GetByID(ctx context.Context, id uint64) (*entity.ShoppingGroup, error)

	// GetActiveByRoomCode resolves a room code to an active group
	//
	// Possible errors:
	// - ErrRoomCodeUnused: If no active group uses the code
	GetActiveByRoomCode(ctx context.Context, roomCode string) (*entity.ShoppingGroup, error)

	// ListActive returns active groups ordered by ID, member counts computed by one aggregate query
	ListActive(ctx context.Context) ([]*entity.ShoppingGroup, error)

	// Deactivate soft-closes a group
	Deactivate(ctx context.Context, group *entity.ShoppingGroup) error

	// AddMember inserts a membership row
	//
	// Possible errors:
	// - ErrAlreadyMember: If the (group, user) pair already exists
	AddMember(ctx context.Context, membership *entity.GroupMembership) error

	// IsMember reports whether the user belongs to the group
	IsMember(ctx context.Context, groupID, userID uint64) (bool, error)

	// ListMembers returns memberships ordered by join time
	ListMembers(ctx context.Context, groupID uint64) ([]*entity.GroupMembership, error)
}
