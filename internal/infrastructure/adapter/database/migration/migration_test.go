package migration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/clock"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/database"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/logger"
	"github.com/vyronamart/group-ledger/internal/infrastructure/adapter/model"
)

func TestMigrateAll(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNoopLogger()
	tp := clock.NewSystemClock()
	tdb := database.NewTestDBManager(t, log, tp)
	manager := migration.NewMigrationManager(tdb.DB(), log, tp)

	t.Run("records every step", func(t *testing.T) {
		version, err := manager.GetCurrentVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, migration.CurrentSchemaVersion, version)

		for _, m := range migration.Models() {
			assert.True(t, tdb.DB().Migrator().HasTable(m))
		}
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		require.NoError(t, manager.MigrateAll(ctx))

		var count int64
		require.NoError(t, tdb.DB().Model(&model.MigrationVersion{}).Count(&count).Error)
		assert.Equal(t, int64(2), count)
	})

	t.Run("ledger indexes exist", func(t *testing.T) {
		assert.True(t, tdb.DB().Migrator().HasIndex(&model.GroupMembership{}, "idx_group_memberships_group_joined"))
	})
}
