package migration

import (
	"context"
	"fmt"

	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.1.0"
)

// step is one versioned schema change
type step struct {
	version string
	name    string
	run     func(db *gorm.DB) error
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
	steps            []step
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	m := &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
	m.steps = []step{
		{version: "1.0.0", name: "base schema", run: m.autoMigrateModels},
		{version: "1.1.0", name: "ledger indexes", run: m.advancedIndexMgr.CreateAdvancedIndexes},
	}
	return m
}

// Models lists every table the service owns, parents first
func Models() []any {
	return []any{
		&model.User{},
		&model.Transaction{},
		&model.ShoppingGroup{},
		&model.GroupMembership{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderStatusEvent{},
	}
}

// MigrateAll applies every step newer than the recorded schema version
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
		"dialect":        m.db.Dialector.Name(),
	})

	db := m.db.WithContext(ctx)
	if err := db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		m.logger.Error("Failed to read applied migrations", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	for _, s := range m.steps {
		if applied[s.version] {
			continue
		}

		m.logger.Info("Applying migration", map[string]any{
			"version": s.version,
			"name":    s.name,
		})
		if err := s.run(db); err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"version": s.version,
				"name":    s.name,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s (%s): %w", s.version, s.name, err)
		}
		if err := m.setVersion(ctx, s); err != nil {
			return err
		}
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion returns the newest applied version, or "" on a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var versions []model.MigrationVersion
	err := m.db.WithContext(ctx).
		Order("applied_at DESC").
		Order("id DESC").
		Limit(1).
		Find(&versions).Error
	if err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", nil
	}
	return versions[0].Version, nil
}

func (m *MigrationManager) appliedVersions(ctx context.Context) (map[string]bool, error) {
	var versions []string
	if err := m.db.WithContext(ctx).Model(&model.MigrationVersion{}).Pluck("version", &versions).Error; err != nil {
		return nil, err
	}

	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}
	return applied, nil
}

// setVersion records a migration step as applied
func (m *MigrationManager) setVersion(ctx context.Context, s step) error {
	migrationVersion := model.MigrationVersion{
		Version:   s.version,
		Name:      s.name,
		AppliedAt: m.timeProvider.Now(),
		Details:   fmt.Sprintf("dialect=%s", m.db.Dialector.Name()),
	}
	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}

// autoMigrateModels creates or updates the tables of every model
func (m *MigrationManager) autoMigrateModels(db *gorm.DB) error {
	m.logger.Info("Auto-migrating database models", nil)
	return db.AutoMigrate(Models()...)
}
