package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vyronamart/group-ledger/internal/domain/port/persistence"
)

// MockUnitOfWork is a testify mock for persistence.UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

// NewMockUnitOfWork creates a mock whose expectations are asserted on cleanup
func NewMockUnitOfWork(t testingT) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	register(&m.Mock, t)
	return m
}

func (m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	txCtx, _ := args.Get(0).(context.Context)
	return txCtx, args.Error(1)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.UserRepository)
}

func (m *MockUnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.TransactionRepository)
}

func (m *MockUnitOfWork) GetGroupRepository(ctx context.Context) persistence.GroupRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.GroupRepository)
}

func (m *MockUnitOfWork) GetCartRepository(ctx context.Context) persistence.CartRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.CartRepository)
}

func (m *MockUnitOfWork) GetOrderRepository(ctx context.Context) persistence.OrderRepository {
	args := m.Called(ctx)
	return args.Get(0).(persistence.OrderRepository)
}
