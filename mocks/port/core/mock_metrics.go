package core

import (
	"github.com/stretchr/testify/mock"
)

// MockMetrics is a testify mock for core.Metrics
type MockMetrics struct {
	mock.Mock
}

// NewMockMetrics creates a MockMetrics whose expectations are asserted on cleanup
func NewMockMetrics(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMetrics {
	m := &MockMetrics{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMetrics) RecordWalletDelta(txType string, outcome string) {
	m.Called(txType, outcome)
}

func (m *MockMetrics) RecordGroupEvent(event string) {
	m.Called(event)
}

func (m *MockMetrics) RecordPaymentIntent(outcome string) {
	m.Called(outcome)
}

func (m *MockMetrics) RecordNotification(status string, outcome string) {
	m.Called(status, outcome)
}

// AllowAll accepts any metric call
func (m *MockMetrics) AllowAll() *MockMetrics {
	m.On("RecordWalletDelta", mock.Anything, mock.Anything).Return().Maybe()
	m.On("RecordGroupEvent", mock.Anything).Return().Maybe()
	m.On("RecordPaymentIntent", mock.Anything).Return().Maybe()
	m.On("RecordNotification", mock.Anything, mock.Anything).Return().Maybe()
	return m
}
