package repository

import (
	"context"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	errs "github.com/vyronamart/group-ledger/internal/domain/error"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// groupWithCountColumns selects a group plus its member count from a
// LEFT JOIN against memberships grouped by group id
const groupWithCountColumns = "shopping_groups.id, shopping_groups.name, shopping_groups.description, " +
	"shopping_groups.creator_id, shopping_groups.active, shopping_groups.room_code, " +
	"shopping_groups.created_at, shopping_groups.closed_at, COUNT(group_memberships.user_id) AS member_count"

// GroupRepository implements GroupRepository interface using GORM
type GroupRepository struct {
	db      *gorm.DB
	logger  coreport.Logger
	errors  dbErrorHandler
	members dbErrorHandler
}

// NewGroupRepository creates a new GroupRepository instance
func NewGroupRepository(db *gorm.DB, logger coreport.Logger) *GroupRepository {
	classifier := NewErrorClassifier()
	return &GroupRepository{
		db:     db,
		logger: logger,
		errors: dbErrorHandler{
			logger:     logger,
			classifier: classifier,
			notFound:   errs.ErrGroupNotFound,
			duplicate:  errs.ErrDuplicateRoomCode,
		},
		members: dbErrorHandler{
			logger:     logger,
			classifier: classifier,
			notFound:   errs.ErrGroupNotFound,
			duplicate:  errs.ErrAlreadyMember,
		},
	}
}

func groupFromCount(row *model.GroupWithCount) *entity.ShoppingGroup {
	return &entity.ShoppingGroup{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatorID:   row.CreatorID,
		Active:      row.Active,
		RoomCode:    row.RoomCode,
		MemberCount: row.MemberCount,
		CreatedAt:   row.CreatedAt,
		ClosedAt:    row.ClosedAt,
	}
}

func (r *GroupRepository) withCounts(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("shopping_groups").
		Select(groupWithCountColumns).
		Joins("LEFT JOIN group_memberships ON group_memberships.group_id = shopping_groups.id").
		Group("shopping_groups.id")
}

// Create inserts the group; the unique room code index rejects collisions
func (r *GroupRepository) Create(ctx context.Context, group *entity.ShoppingGroup) error {
	groupModel := model.ShoppingGroup{
		Name:        group.Name,
		Description: group.Description,
		CreatorID:   group.CreatorID,
		Active:      group.Active,
		RoomCode:    group.RoomCode,
		CreatedAt:   group.CreatedAt,
		ClosedAt:    group.ClosedAt,
	}

	if err := r.db.WithContext(ctx).Create(&groupModel).Error; err != nil {
		return r.errors.handle("creating group", err, map[string]any{
			"room_code":  group.RoomCode,
			"creator_id": group.CreatorID,
		})
	}
	group.ID = groupModel.ID

	r.logger.Debug("Group created successfully", map[string]any{
		"group_id":  group.ID,
		"room_code": group.RoomCode,
	})
	return nil
}

// GetByID returns a group with its member count, active or not
func (r *GroupRepository) GetByID(ctx context.Context, id uint64) (*entity.ShoppingGroup, error) {
	var rows []model.GroupWithCount
	if err := r.withCounts(ctx).Where("shopping_groups.id = ?", id).Scan(&rows).Error; err != nil {
		return nil, r.errors.handle("getting group", err, map[string]any{"group_id": id})
	}
	if len(rows) == 0 {
		return nil, errs.ErrGroupNotFound
	}
	return groupFromCount(&rows[0]), nil
}

// GetActiveByRoomCode resolves a room code among active groups
func (r *GroupRepository) GetActiveByRoomCode(ctx context.Context, roomCode string) (*entity.ShoppingGroup, error) {
	var rows []model.GroupWithCount
	err := r.withCounts(ctx).
		Where("shopping_groups.room_code = ? AND shopping_groups.active = ?", roomCode, true).
		Scan(&rows).Error
	if err != nil {
		return nil, r.errors.handle("resolving room code", err, map[string]any{"room_code": roomCode})
	}
	if len(rows) == 0 {
		return nil, errs.ErrRoomCodeUnused
	}
	return groupFromCount(&rows[0]), nil
}

// ListActive returns active groups ordered by id with member counts
func (r *GroupRepository) ListActive(ctx context.Context) ([]*entity.ShoppingGroup, error) {
	var rows []model.GroupWithCount
	err := r.withCounts(ctx).
		Where("shopping_groups.active = ?", true).
		Order("shopping_groups.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, r.errors.handle("listing groups", err, nil)
	}

	groups := make([]*entity.ShoppingGroup, 0, len(rows))
	for i := range rows {
		groups = append(groups, groupFromCount(&rows[i]))
	}
	return groups, nil
}

// Deactivate marks the group inactive and stamps closed_at
func (r *GroupRepository) Deactivate(ctx context.Context, group *entity.ShoppingGroup) error {
	result := r.db.WithContext(ctx).Model(&model.ShoppingGroup{}).
		Where("id = ? AND active = ?", group.ID, true).
		Updates(map[string]any{
			"active":    false,
			"closed_at": group.ClosedAt,
		})
	if result.Error != nil {
		return r.errors.handle("closing group", result.Error, map[string]any{"group_id": group.ID})
	}
	if result.RowsAffected == 0 {
		return errs.ErrGroupNotFound
	}
	return nil
}

// AddMember inserts a membership; the composite key rejects a second join
func (r *GroupRepository) AddMember(ctx context.Context, membership *entity.GroupMembership) error {
	row := model.GroupMembership{
		GroupID:  membership.GroupID,
		UserID:   membership.UserID,
		Role:     string(membership.Role),
		JoinedAt: membership.JoinedAt,
	}

	if err := r.db.WithContext(ctx).Omit("Group").Create(&row).Error; err != nil {
		return r.members.handle("adding member", err, map[string]any{
			"group_id": membership.GroupID,
			"user_id":  membership.UserID,
		})
	}
	return nil
}

// IsMember reports whether the user holds a membership row in the group
func (r *GroupRepository) IsMember(ctx context.Context, groupID, userID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.GroupMembership{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	if err != nil {
		return false, r.members.handle("checking membership", err, map[string]any{
			"group_id": groupID,
			"user_id":  userID,
		})
	}
	return count > 0, nil
}

// ListMembers returns the group's members in join order
func (r *GroupRepository) ListMembers(ctx context.Context, groupID uint64) ([]*entity.GroupMembership, error) {
	var rows []model.MemberWithName
	err := r.db.WithContext(ctx).
		Table("group_memberships").
		Select("group_memberships.group_id, group_memberships.user_id, group_memberships.role, " +
			"group_memberships.joined_at, COALESCE(users.name, '') AS user_name").
		Joins("LEFT JOIN users ON users.id = group_memberships.user_id").
		Where("group_memberships.group_id = ?", groupID).
		Order("group_memberships.joined_at ASC").
		Order("group_memberships.user_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, r.members.handle("listing members", err, map[string]any{"group_id": groupID})
	}

	members := make([]*entity.GroupMembership, 0, len(rows))
	for _, row := range rows {
		members = append(members, &entity.GroupMembership{
			GroupID:  row.GroupID,
			UserID:   row.UserID,
			UserName: row.UserName,
			Role:     entity.MembershipRole(row.Role),
			JoinedAt: row.JoinedAt,
		})
	}
	return members, nil
}
