package usecase

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// AddCartItemRequest describes a product added to a group cart
type AddCartItemRequest struct {
	ProductID string
	Name      string
	Price     int64
	Quantity  int64
}

// GroupUseCase defines group lifecycle and cart operations
type GroupUseCase interface {
	CreateGroup(ctx context.Context, principal entity.Principal, name, description string) (*entity.ShoppingGroup, error)
	JoinGroup(ctx context.Context, principal entity.Principal, groupID uint64) (*entity.GroupMembership, error)
	JoinGroupByRoomCode(ctx context.Context, principal entity.Principal, roomCode string) (*entity.ShoppingGroup, error)
	ListGroups(ctx context.Context) ([]*entity.ShoppingGroup, error)
	GetGroup(ctx context.Context, groupID uint64) (*entity.ShoppingGroup, error)
	ListMembers(ctx context.Context, groupID uint64) ([]*entity.GroupMembership, error)
	CloseGroup(ctx context.Context, principal entity.Principal, groupID uint64) (*entity.ShoppingGroup, error)
	AddCartItem(ctx context.Context, principal entity.Principal, groupID uint64, req AddCartItemRequest) (*entity.CartItem, error)
	GetAggregateCart(ctx context.Context, groupID uint64) (*entity.AggregateCart, error)
	ListCartItems(ctx context.Context, groupID uint64) ([]*entity.CartItem, error)
}
