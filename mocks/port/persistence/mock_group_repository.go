package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// MockGroupRepository is a testify mock for persistence.GroupRepository
type MockGroupRepository struct {
	mock.Mock
}

// NewMockGroupRepository creates a mock whose expectations are asserted on cleanup
func NewMockGroupRepository(t testingT) *MockGroupRepository {
	m := &MockGroupRepository{}
	register(&m.Mock, t)
	return m
}

func (m *MockGroupRepository) Create(ctx context.Context, group *entity.ShoppingGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) GetByID(ctx context.Context, id uint64) (*entity.ShoppingGroup, error) {
	args := m.Called(ctx, id)
	group, _ := args.Get(0).(*entity.ShoppingGroup)
	return group, args.Error(1)
}

func (m *MockGroupRepository) GetActiveByRoomCode(ctx context.Context, roomCode string) (*entity.ShoppingGroup, error) {
	args := m.Called(ctx, roomCode)
	group, _ := args.Get(0).(*entity.ShoppingGroup)
	return group, args.Error(1)
}

func (m *MockGroupRepository) ListActive(ctx context.Context) ([]*entity.ShoppingGroup, error) {
	args := m.Called(ctx)
	groups, _ := args.Get(0).([]*entity.ShoppingGroup)
	return groups, args.Error(1)
}

func (m *MockGroupRepository) Deactivate(ctx context.Context, group *entity.ShoppingGroup) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) AddMember(ctx context.Context, membership *entity.GroupMembership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockGroupRepository) IsMember(ctx context.Context, groupID, userID uint64) (bool, error) {
	args := m.Called(ctx, groupID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGroupRepository) ListMembers(ctx context.Context, groupID uint64) ([]*entity.GroupMembership, error) {
	args := m.Called(ctx, groupID)
	members, _ := args.Get(0).([]*entity.GroupMembership)
	return members, args.Error(1)
}
