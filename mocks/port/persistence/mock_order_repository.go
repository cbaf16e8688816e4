package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
)

// MockOrderRepository is a testify mock for persistence.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

// NewMockOrderRepository creates a mock whose expectations are asserted on cleanup
func NewMockOrderRepository(t testingT) *MockOrderRepository {
	m := &MockOrderRepository{}
	register(&m.Mock, t)
	return m
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uint64) (*entity.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*entity.Order)
	return order, args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, order *entity.Order, from entity.OrderStatus) error {
	args := m.Called(ctx, order, from)
	return args.Error(0)
}

func (m *MockOrderRepository) AddEvent(ctx context.Context, event *entity.OrderStatusEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockOrderRepository) MarkEventNotified(ctx context.Context, eventID uint64, notified bool) error {
	args := m.Called(ctx, eventID, notified)
	return args.Error(0)
}

func (m *MockOrderRepository) ListEvents(ctx context.Context, orderID uint64) ([]*entity.OrderStatusEvent, error) {
	args := m.Called(ctx, orderID)
	events, _ := args.Get(0).([]*entity.OrderStatusEvent)
	return events, args.Error(1)
}
