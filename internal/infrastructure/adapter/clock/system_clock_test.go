package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock(t *testing.T) {
	c := NewSystemClock()

	t.Run("now is UTC", func(t *testing.T) {
		assert.Equal(t, time.UTC, c.Now().Location())
	})

	t.Run("since", func(t *testing.T) {
		past := time.Now().Add(-time.Minute)
		assert.GreaterOrEqual(t, c.Since(past).Std(), time.Minute)
	})

	t.Run("until", func(t *testing.T) {
		assert.Greater(t, c.Until(time.Now().Add(time.Hour)).Std(), 59*time.Minute)
		assert.Negative(t, int64(c.Until(time.Now().Add(-time.Second))))
	})
}
