package group

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	"github.com/vyronamart/group-ledger/internal/domain/port/usecase"
)

// AddCartItem adds a product line to an active group's cart on behalf of a member
func (s *Service) AddCartItem(
	ctx context.Context,
	principal entity.Principal,
	groupID uint64,
	req usecase.AddCartItemRequest,
) (*entity.CartItem, error) {
	if principal.IsZero() {
		return nil, errs.ErrUnauthorized
	}

	item, err := entity.NewCartItem(groupID, principal.UserID, req.ProductID, req.Name, req.Price, req.Quantity, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if _, err := s.activeGroup(ctx, groupID); err != nil {
		return nil, err
	}

	member, err := s.uow.GetGroupRepository(ctx).IsMember(ctx, groupID, principal.UserID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, errs.ErrNotGroupMember
	}

	if err := s.uow.GetCartRepository(ctx).Add(ctx, item); err != nil {
		s.logger.Error("Failed to add cart item", errs.Fields(err))
		return nil, err
	}

	s.metrics.RecordGroupEvent(eventCartItemAdded)
	s.logger.Info("Cart item added", map[string]any{
		"group_id": groupID,
		"user_id":  principal.UserID,
		"subtotal": item.Subtotal(),
	})
	return item, nil
}

// GetAggregateCart sums price x quantity over the group's cart. It takes no
// locks; lines added concurrently show up on the next read.
func (s *Service) GetAggregateCart(ctx context.Context, groupID uint64) (*entity.AggregateCart, error) {
	if groupID == 0 {
		return nil, errs.ErrInvalidGroupID
	}

	if _, err := s.uow.GetGroupRepository(ctx).GetByID(ctx, groupID); err != nil {
		return nil, err
	}

	cart, err := s.uow.GetCartRepository(ctx).Aggregate(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// ListCartItems returns the individual lines behind the aggregate, oldest first
func (s *Service) ListCartItems(ctx context.Context, groupID uint64) ([]*entity.CartItem, error) {
	if groupID == 0 {
		return nil, errs.ErrInvalidGroupID
	}

	if _, err := s.uow.GetGroupRepository(ctx).GetByID(ctx, groupID); err != nil {
		return nil, err
	}

	return s.uow.GetCartRepository(ctx).ListByGroup(ctx, groupID)
}
