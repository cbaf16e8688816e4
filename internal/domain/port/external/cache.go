package external

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// GroupListCache holds the active group listing between mutations
type GroupListCache interface {
	// GetActiveGroups returns the cached listing; found is false on a miss.
	// generation counts invalidations and is passed back to SetActiveGroups.
	GetActiveGroups(ctx context.Context) (groups []*entity.ShoppingGroup, generation int64, found bool, err error)
	// SetActiveGroups stores the listing unless Invalidate ran after generation was read
	SetActiveGroups(ctx context.Context, groups []*entity.ShoppingGroup, generation int64) error
	// Invalidate drops the listing and advances the generation
	Invalidate(ctx context.Context) error
}
