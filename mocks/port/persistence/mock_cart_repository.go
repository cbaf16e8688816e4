package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// MockCartRepository is a testify mock for persistence.CartRepository
type MockCartRepository struct {
	mock.Mock
}

// NewMockCartRepository creates a mock whose expectations are asserted on cleanup
func NewMockCartRepository(t testingT) *MockCartRepository {
	m := &MockCartRepository{}
	register(&m.Mock, t)
	return m
}

func (m *MockCartRepository) Add(ctx context.Context, item *entity.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) Aggregate(ctx context.Context, groupID uint64) (entity.AggregateCart, error) {
	args := m.Called(ctx, groupID)
	return args.Get(0).(entity.AggregateCart), args.Error(1)
}

func (m *MockCartRepository) ListByGroup(ctx context.Context, groupID uint64) ([]*entity.CartItem, error) {
	args := m.Called(ctx, groupID)
	items, _ := args.Get(0).([]*entity.CartItem)
	return items, args.Error(1)
}
