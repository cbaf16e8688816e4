package database

import (
	"database/sql"
	"time"
)

// QueryObserver receives one sample per executed SQL statement
type QueryObserver interface {
	ObserveQuery(operation, table string, elapsed time.Duration, failed bool)
}

// PoolObserver receives periodic connection pool snapshots
type PoolObserver interface {
	ObservePool(stats sql.DBStats)
}

type noopObserver struct{}

func (noopObserver) ObserveQuery(string, string, time.Duration, bool) {}
func (noopObserver) ObservePool(sql.DBStats)                          {}
