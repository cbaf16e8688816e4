package core

import "time"

// Duration keeps the domain ports free of direct time.Duration arithmetic
type Duration time.Duration

// Std converts to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider is the only source of "now" for entities and services, so
// tests can pin timestamps on ledger rows, room codes and intent expiry.
type TimeProvider interface {
	// Now returns the current time in UTC
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) Duration
	// Until returns the time left before t; negative once t has passed
	Until(t time.Time) Duration
}
