package persistence

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// CartRepository stores group cart lines
type CartRepository interface {
	// Add inserts a cart line and assigns its ID
	Add(ctx context.Context, item *entity.CartItem) error

	// Aggregate sums price x quantity over the group's cart in one query
	Aggregate(ctx context.Context, groupID uint64) (entity.AggregateCart, error)

	// ListByGroup returns the group's cart lines oldest first
	ListByGroup(ctx context.Context, groupID uint64) ([]*entity.CartItem, error)
}
