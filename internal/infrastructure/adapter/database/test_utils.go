package database

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

var testDBCounter atomic.Uint64

// TestDBManager wraps a Manager connected to a private in-memory SQLite
// database with the full schema applied
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects and migrates a fresh database; it is closed on test cleanup.
// A single connection serializes access the way one PostgreSQL row lock would.
func NewTestDBManager(t testing.TB, logger coreport.Logger, timeProvider coreport.TimeProvider) *TestDBManager {
	t.Helper()

	config := &Config{
		Driver:        DriverSQLite,
		Database:      fmt.Sprintf("file:ledger_test_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", testDBCounter.Add(1)),
		MaxOpenConns:  1,
		MaxIdleConns:  1,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 1,
	}

	manager := NewManager(config, logger, timeProvider, nil)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// DB returns the connected database
func (m *TestDBManager) DB() *gorm.DB {
	return m.Manager.DB()
}

// CreateTestUser inserts a user with the given balance in paise
func (m *TestDBManager) CreateTestUser(t testing.TB, id uint64, balance int64) {
	t.Helper()

	now := m.TimeProvider.Now()
	user := model.User{
		ID:        id,
		Email:     fmt.Sprintf("user%d@example.com", id),
		Name:      fmt.Sprintf("User %d", id),
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}

// Balance reads a user's stored balance
func (m *TestDBManager) Balance(t testing.TB, id uint64) int64 {
	t.Helper()

	var user model.User
	if err := m.DB().First(&user, id).Error; err != nil {
		t.Fatalf("Failed to read test user: %v", err)
	}
	return user.Balance
}
