package group

import (
	"context"
	"errors"
	"fmt"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
)

// CreateGroup creates an active group with the caller as its creator member.
// A room code collision regenerates the code, up to MaxRoomCodeAttempts times.
func (s *Service) CreateGroup(ctx context.Context, principal entity.Principal, name, description string) (*entity.ShoppingGroup, error) {
	if principal.IsZero() {
		return nil, errs.ErrUnauthorized
	}

	// Validate once up front
	if _, err := entity.NewShoppingGroup(name, description, principal.UserID, "", s.timeProvider); err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= s.options.MaxRoomCodeAttempts; attempt++ {
		code, err := entity.GenerateRoomCode(s.options.RoomCodeLength)
		if err != nil {
			return nil, err
		}

		group, err := entity.NewShoppingGroup(name, description, principal.UserID, code, s.timeProvider)
		if err != nil {
			return nil, err
		}

		err = s.createWithCreator(ctx, group)
		if errors.Is(err, errs.ErrDuplicateRoomCode) {
			s.logger.Debug("Room code collision, regenerating", map[string]any{
				"attempt":   attempt,
				"room_code": code,
			})
			continue
		}
		if err != nil {
			s.logger.Error("Failed to create group", errs.Fields(err))
			return nil, err
		}

		s.invalidateListing(ctx)
		s.metrics.RecordGroupEvent(eventCreated)
		s.logger.Info("Group created", map[string]any{
			"group_id":   group.ID,
			"creator_id": group.CreatorID,
			"room_code":  group.RoomCode,
		})
		return group, nil
	}

	return nil, errs.NewPersistenceError("create group",
		fmt.Errorf("no free room code after %d attempts", s.options.MaxRoomCodeAttempts))
}

// createWithCreator writes the group and the creator membership in one unit of work
func (s *Service) createWithCreator(ctx context.Context, group *entity.ShoppingGroup) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return errs.NewPersistenceError("begin create group", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = s.uow.Rollback(txCtx)
		}
	}()

	groups := s.uow.GetGroupRepository(txCtx)
	if err := groups.Create(txCtx, group); err != nil {
		return err
	}

	membership, err := entity.NewMembership(group.ID, group.CreatorID, entity.RoleCreator, s.timeProvider)
	if err != nil {
		return err
	}
	if err := groups.AddMember(txCtx, membership); err != nil {
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return errs.NewPersistenceError("commit create group", err)
	}
	committed = true
	group.MemberCount = 1
	return nil
}
