package external

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vyronamart/group-ledger/internal/domain/entity"
	extport "github.com/vyronamart/group-ledger/internal/domain/port/external"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockEmailSender is a testify mock for external.EmailSender
type MockEmailSender struct {
	mock.Mock
}

// NewMockEmailSender creates a mock whose expectations are asserted on cleanup
func NewMockEmailSender(t testingT) *MockEmailSender {
	m := &MockEmailSender{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEmailSender) Send(ctx context.Context, to, subject, html string) (extport.SendResult, error) {
	args := m.Called(ctx, to, subject, html)
	return args.Get(0).(extport.SendResult), args.Error(1)
}

// MockQRRenderer is a testify mock for external.QRRenderer
type MockQRRenderer struct {
	mock.Mock
}

// NewMockQRRenderer creates a mock whose expectations are asserted on cleanup
func NewMockQRRenderer(t testingT) *MockQRRenderer {
	m := &MockQRRenderer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockQRRenderer) RenderPNG(content string, size int) ([]byte, error) {
	args := m.Called(content, size)
	png, _ := args.Get(0).([]byte)
	return png, args.Error(1)
}

// MockGroupListCache is a testify mock for external.GroupListCache
type MockGroupListCache struct {
	mock.Mock
}

// NewMockGroupListCache creates a mock whose expectations are asserted on cleanup
func NewMockGroupListCache(t testingT) *MockGroupListCache {
	m := &MockGroupListCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockGroupListCache) GetActiveGroups(ctx context.Context) ([]*entity.ShoppingGroup, int64, bool, error) {
	args := m.Called(ctx)
	groups, _ := args.Get(0).([]*entity.ShoppingGroup)
	generation, _ := args.Get(1).(int64)
	return groups, generation, args.Bool(2), args.Error(3)
}

func (m *MockGroupListCache) SetActiveGroups(ctx context.Context, groups []*entity.ShoppingGroup, generation int64) error {
	args := m.Called(ctx, groups, generation)
	return args.Error(0)
}

func (m *MockGroupListCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
