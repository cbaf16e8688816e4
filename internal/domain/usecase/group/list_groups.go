package group

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
)

// ListGroups returns active groups with member counts.
// Cache failures fall back to the store. A listing read from the store is
// written back only under the generation seen before the read, so a mutation
// that lands in between is never masked by a stale snapshot.
func (s *Service) ListGroups(ctx context.Context) ([]*entity.ShoppingGroup, error) {
	populate := false
	var generation int64
	if s.cache != nil {
		groups, gen, found, err := s.cache.GetActiveGroups(ctx)
		switch {
		case err != nil:
			s.logger.Warn("Group cache read failed, using store", map[string]any{
				"error": err.Error(),
			})
		case found:
			return groups, nil
		default:
			populate = true
			generation = gen
		}
	}

	groups, err := s.uow.GetGroupRepository(ctx).ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if populate {
		if err := s.cache.SetActiveGroups(ctx, groups, generation); err != nil {
			s.logger.Warn("Failed to populate group cache", map[string]any{
				"error": err.Error(),
			})
		}
	}
	return groups, nil
}

// GetGroup returns one group, active or closed, with its member count
func (s *Service) GetGroup(ctx context.Context, groupID uint64) (*entity.ShoppingGroup, error) {
	if groupID == 0 {
		return nil, errs.ErrInvalidGroupID
	}
	return s.uow.GetGroupRepository(ctx).GetByID(ctx, groupID)
}
