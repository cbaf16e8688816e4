package migration

import (
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// index is one CREATE INDEX statement and the dialects that support it
type index struct {
	name         string
	sql          string
	postgresOnly bool
}

var ledgerIndexes = []index{
	{
		name: "idx_shopping_groups_active_id",
		sql:  `CREATE INDEX IF NOT EXISTS idx_shopping_groups_active_id ON shopping_groups (id) WHERE active`,
	},
	{
		name: "idx_group_memberships_group_joined",
		sql:  `CREATE INDEX IF NOT EXISTS idx_group_memberships_group_joined ON group_memberships (group_id, joined_at)`,
	},
	{
		name: "idx_order_status_events_order_id",
		sql:  `CREATE INDEX IF NOT EXISTS idx_order_status_events_order_id ON order_status_events (order_id, id)`,
	},
	{
		name: "idx_transactions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
			ON transactions USING BRIN (created_at) WITH (pages_per_range = 32)`,
		postgresOnly: true,
	},
}

// AdvancedIndexManager creates the indexes AutoMigrate cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates partial and composite indexes, skipping
// PostgreSQL-only ones on other dialects
func (m *AdvancedIndexManager) CreateAdvancedIndexes(db *gorm.DB) error {
	postgres := db.Dialector.Name() == "postgres"

	for _, idx := range ledgerIndexes {
		if idx.postgresOnly && !postgres {
			m.logger.Debug("Skipping PostgreSQL-only index", map[string]any{
				"index": idx.name,
			})
			continue
		}
		if err := db.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	if postgres {
		m.applyPerformanceTweaks(db)
	}
	return nil
}

// applyPerformanceTweaks is best effort; failures are logged only
func (m *AdvancedIndexManager) applyPerformanceTweaks(db *gorm.DB) {
	if err := db.Exec(`ALTER TABLE users SET (fillfactor = 90)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for users table", map[string]any{
			"error": err.Error(),
		})
	}
	if err := db.Exec(`ALTER TABLE transactions ALTER COLUMN user_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for transactions.user_id", map[string]any{
			"error": err.Error(),
		})
	}
}
