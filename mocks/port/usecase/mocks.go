package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	ucport "github.com/vyronamart/group-ledger/internal/domain/port/usecase"
)

// MockWalletUseCase is a testify mock for usecase.WalletUseCase
type MockWalletUseCase struct {
	mock.Mock
}

func (m *MockWalletUseCase) ApplyDelta(ctx context.Context, req ucport.ApplyDeltaRequest) (*ucport.ApplyDeltaResult, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*ucport.ApplyDeltaResult)
	return res, args.Error(1)
}

func (m *MockWalletUseCase) GetBalance(ctx context.Context, userID uint64) (*entity.BalanceResponse, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).(*entity.BalanceResponse)
	return res, args.Error(1)
}

func (m *MockWalletUseCase) ListTransactions(ctx context.Context, userID uint64, limit, offset int) ([]*entity.Transaction, error) {
	args := m.Called(ctx, userID, limit, offset)
	res, _ := args.Get(0).([]*entity.Transaction)
	return res, args.Error(1)
}

func (m *MockWalletUseCase) CreateUser(ctx context.Context, req ucport.CreateUserRequest) (*entity.User, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*entity.User)
	return res, args.Error(1)
}

func (m *MockWalletUseCase) Reconcile(ctx context.Context, userID uint64) (*entity.ReconcileReport, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).(*entity.ReconcileReport)
	return res, args.Error(1)
}

// MockGroupUseCase is a testify mock for usecase.GroupUseCase
type MockGroupUseCase struct {
	mock.Mock
}

func (m *MockGroupUseCase) CreateGroup(ctx context.Context, principal entity.Principal, name, description string) (*entity.ShoppingGroup, error) {
	args := m.Called(ctx, principal, name, description)
	res, _ := args.Get(0).(*entity.ShoppingGroup)
	return res, args.Error(1)
}

func (m *MockGroupUseCase) JoinGroup(ctx context.Context, principal entity.Principal, groupID uint64) (*entity.GroupMembership, error) {
	args := m.Called(ctx, principal, groupID)
	res, _ := args.Get(0).(*entity.GroupMembership)
	return res, args.Error(1)
}

func (m *MockGroupUseCase) JoinGroupByRoomCode(ctx context.Context, principal entity.Principal, roomCode string) (*entity.ShoppingGroup, error) {
	args := m.Called(ctx, principal, roomCode)
	res, _ := args.Get(0).(*entity.ShoppingGroup)
	return res, args.Error(1)
}

func (m *MockGroupUseCase) ListGroups(ctx context.Context) ([]*entity.ShoppingGroup, error) {
	args := m.Called(ctx)
	res, _ := args.Get(0).([]*entity.ShoppingGroup)
	return res, args.Error(1)
}

func (m *MockGroupUseCase) GetGroup(ctx context.Context, groupID uint64) (*entity.ShoppingGroup, error) {
	args := m.Called(ctx, groupID)
	res, _ := args.Get(0).(*entity.ShoppingGroup)
	return res, args.Error(1)
}

func (m *MockGroupUseCase) ListMembers(ctx context.Context, groupID uint64) ([]*entity.GroupMembership, error) {
	args := m.Called(ctx, groupID)
	res, _ := args.Get(0).([]*entity.GroupMembership)
	return res, args.Error(1)
}

func (m *MockGroupUseCase) CloseGroup(ctx context.Context, principal entity.Principal, groupID uint64) (*entity.ShoppingGroup, error) {
	args := m.Called(ctx, principal, groupID)
	res, _ := args.Get(0).(*entity.ShoppingGroup)
	return res, args.Error(1)
}

func (m *MockGroupUseCase) AddCartItem(ctx context.Context, principal entity.Principal, groupID uint64, req ucport.AddCartItemRequest) (*entity.CartItem, error) {
	args := m.Called(ctx, principal, groupID, req)
	res, _ := args.Get(0).(*entity.CartItem)
	return res, args.Error(1)
}

func (m *MockGroupUseCase) GetAggregateCart(ctx context.Context, groupID uint64) (*entity.AggregateCart, error) {
	args := m.Called(ctx, groupID)
	res, _ := args.Get(0).(*entity.AggregateCart)
	return res, args.Error(1)
}

func (m *MockGroupUseCase) ListCartItems(ctx context.Context, groupID uint64) ([]*entity.CartItem, error) {
	args := m.Called(ctx, groupID)
	res, _ := args.Get(0).([]*entity.CartItem)
	return res, args.Error(1)
}

// MockPaymentUseCase is a testify mock for usecase.PaymentUseCase
type MockPaymentUseCase struct {
	mock.Mock
}

func (m *MockPaymentUseCase) GenerateIntent(ctx context.Context, req ucport.GenerateIntentRequest) (*entity.PaymentIntent, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*entity.PaymentIntent)
	return res, args.Error(1)
}

// MockOrderUseCase is a testify mock for usecase.OrderUseCase
type MockOrderUseCase struct {
	mock.Mock
}

func (m *MockOrderUseCase) CreateOrder(ctx context.Context, principal entity.Principal, req ucport.CreateOrderRequest) (*entity.Order, error) {
	args := m.Called(ctx, principal, req)
	res, _ := args.Get(0).(*entity.Order)
	return res, args.Error(1)
}

func (m *MockOrderUseCase) GetOrder(ctx context.Context, principal entity.Principal, orderID uint64) (*ucport.OrderDetails, error) {
	args := m.Called(ctx, principal, orderID)
	res, _ := args.Get(0).(*ucport.OrderDetails)
	return res, args.Error(1)
}

func (m *MockOrderUseCase) AdvanceStatus(ctx context.Context, orderID uint64, target entity.OrderStatus) (*entity.Order, error) {
	args := m.Called(ctx, orderID, target)
	res, _ := args.Get(0).(*entity.Order)
	return res, args.Error(1)
}
