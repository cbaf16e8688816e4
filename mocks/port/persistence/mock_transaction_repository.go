package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// MockTransactionRepository is a testify mock for persistence.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

// NewMockTransactionRepository creates a mock whose expectations are asserted on cleanup
func NewMockTransactionRepository(t testingT) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	register(&m.Mock, t)
	return m
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListByUserID(ctx context.Context, userID uint64, limit, offset int) ([]*entity.Transaction, error) {
	args := m.Called(ctx, userID, limit, offset)
	txs, _ := args.Get(0).([]*entity.Transaction)
	return txs, args.Error(1)
}

func (m *MockTransactionRepository) SumByUserID(ctx context.Context, userID uint64) (int64, int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}
