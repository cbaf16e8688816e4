package clock

import (
	"time"

	"github.com/vyronamart/group-ledger/internal/domain/port/core"
)

// SystemClock implements core.TimeProvider on the wall clock. All times it
// hands out are UTC so stored timestamps compare equal across hosts.
type SystemClock struct{}

// NewSystemClock creates a wall-clock time provider
func NewSystemClock() core.TimeProvider {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

func (SystemClock) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

func (SystemClock) Until(t time.Time) core.Duration {
	return core.Duration(time.Until(t))
}
