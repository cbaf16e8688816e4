package group

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
)

// JoinGroup adds the caller to an active group as a plain member
func (s *Service) JoinGroup(ctx context.Context, principal entity.Principal, groupID uint64) (*entity.GroupMembership, error) {
	if principal.IsZero() {
		return nil, errs.ErrUnauthorized
	}
	if groupID == 0 {
		return nil, errs.ErrInvalidGroupID
	}

	group, err := s.activeGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return s.join(ctx, group, principal.UserID)
}

// JoinGroupByRoomCode resolves a room code and joins that group
func (s *Service) JoinGroupByRoomCode(ctx context.Context, principal entity.Principal, roomCode string) (*entity.ShoppingGroup, error) {
	if principal.IsZero() {
		return nil, errs.ErrUnauthorized
	}

	code, err := entity.NormalizeRoomCode(roomCode)
	if err != nil {
		return nil, err
	}

	group, err := s.uow.GetGroupRepository(ctx).GetActiveByRoomCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if _, err := s.join(ctx, group, principal.UserID); err != nil {
		return nil, err
	}
	group.MemberCount++
	return group, nil
}

func (s *Service) join(ctx context.Context, group *entity.ShoppingGroup, userID uint64) (*entity.GroupMembership, error) {
	membership, err := entity.NewMembership(group.ID, userID, entity.RoleMember, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.uow.GetGroupRepository(ctx).AddMember(ctx, membership); err != nil {
		if errs.IsValidationError(err) {
			s.logger.Warn("Join rejected", map[string]any{
				"group_id": group.ID,
				"user_id":  userID,
				"error":    err.Error(),
			})
		} else {
			s.logger.Error("Failed to join group", errs.Fields(err))
		}
		return nil, err
	}

	s.invalidateListing(ctx)
	s.metrics.RecordGroupEvent(eventJoined)
	s.logger.Info("User joined group", map[string]any{
		"group_id": group.ID,
		"user_id":  userID,
	})
	return membership, nil
}

// ListMembers returns the memberships of an existing group
func (s *Service) ListMembers(ctx context.Context, groupID uint64) ([]*entity.GroupMembership, error) {
	if groupID == 0 {
		return nil, errs.ErrInvalidGroupID
	}

	repo := s.uow.GetGroupRepository(ctx)
	if _, err := repo.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	return repo.ListMembers(ctx, groupID)
}

// CloseGroup soft-deactivates a group. Only its creator may close it.
func (s *Service) CloseGroup(ctx context.Context, principal entity.Principal, groupID uint64) (*entity.ShoppingGroup, error) {
	if principal.IsZero() {
		return nil, errs.ErrUnauthorized
	}
	if groupID == 0 {
		return nil, errs.ErrInvalidGroupID
	}

	group, err := s.activeGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.IsCreator(principal.UserID) {
		return nil, errs.ErrNotGroupCreator
	}

	group.Close(s.timeProvider)
	if err := s.uow.GetGroupRepository(ctx).Deactivate(ctx, group); err != nil {
		return nil, err
	}

	s.invalidateListing(ctx)
	s.metrics.RecordGroupEvent(eventClosed)
	s.logger.Info("Group closed", map[string]any{
		"group_id": group.ID,
	})
	return group, nil
}

// activeGroup loads a group and treats an inactive one as missing
func (s *Service) activeGroup(ctx context.Context, groupID uint64) (*entity.ShoppingGroup, error) {
	group, err := s.uow.GetGroupRepository(ctx).GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.Active {
		return nil, errs.ErrGroupNotFound
	}
	return group, nil
}
