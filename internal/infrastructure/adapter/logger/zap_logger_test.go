package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vyronamart/group-ledger/internal/domain/port/core"
	"github.com/vyronamart/group-ledger/internal/infrastructure/config"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevels(t *testing.T) {
	// Arrange
	zc, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLoggerFromCore(zc, core.LogLevelInfo)

	// Act
	log.Debug("hidden", nil)
	log.Info("Group created", map[string]any{"group_id": uint64(7)})
	log.SetLevel(core.LogLevelError)
	log.Warn("dropped", nil)
	log.Error("Order email not sent", map[string]any{"error": errors.New("smtp down")})

	// Assert
	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "Group created", entries[0].Message)
	assert.Equal(t, uint64(7), entries[0].ContextMap()["group_id"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "smtp down", entries[1].ContextMap()["error"])
	assert.Equal(t, core.LogLevelError, log.GetLevel())
}

func TestParseLevel(t *testing.T) {
	testCases := map[string]core.LogLevel{
		"debug":   core.LogLevelDebug,
		"INFO":    core.LogLevelInfo,
		"warning": core.LogLevelWarn,
		"error":   core.LogLevelError,
		"":        core.LogLevelInfo,
	}
	for input, expected := range testCases {
		assert.Equal(t, expected, ParseLevel(input), input)
	}
}

func TestNewZapLogger(t *testing.T) {
	log, err := NewZapLogger(config.LoggerConfig{
		Level:  "warn",
		Format: "json",
		Output: "stderr",
	}, map[string]any{"service": "group-ledger"})

	require.NoError(t, err)
	assert.Equal(t, core.LogLevelWarn, log.GetLevel())
}

func TestNoopLogger(t *testing.T) {
	log := NewNoopLogger()
	log.SetLevel(core.LogLevelDebug)
	log.Info("ignored", map[string]any{"k": "v"})

	assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	assert.NoError(t, log.Flush())
}
