package config

import (
	"testing"

	"github.com/fission-codes/go-tour/errors"
	golog "github.com/ipfs/go-log/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "plaintext", cfg.LogFormat)
	assert.Equal(t, []uint8{0, 3, 5, 9, 200}, cfg.Seeds)
	assert.Empty(t, cfg.Keys)
	assert.False(t, cfg.Diagram)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TOUR_LOG_LEVEL", "debug")
	t.Setenv("TOUR_LOG_FORMAT", "json")
	t.Setenv("TOUR_SEEDS", "1,7")
	t.Setenv("TOUR_KEYS", "alice,bob")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 7}, cfg.Seeds)
	assert.Equal(t, []string{"alice", "bob"}, cfg.Keys)

	logging := cfg.Logging()
	assert.Equal(t, golog.JSONOutput, logging.Format)
	assert.Equal(t, golog.LevelDebug, logging.Level)
	assert.True(t, logging.Stdout)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	t.Setenv("TOUR_LOG_FORMAT", "xml")
	_, err := Load()
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestLoadRejectsBadSeed(t *testing.T) {
	t.Setenv("TOUR_SEEDS", "300")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidateRejectsUnknownLevel(t *testing.T) {
	cfg := Config{LogLevel: "chatty", LogFormat: "plaintext"}
	assert.ErrorIs(t, cfg.Validate(), errors.ErrInvalidConfig)
}

func TestLoggingKeepsDisposalLinesAtWarn(t *testing.T) {
	cfg := Config{LogLevel: "warn", LogFormat: "plaintext"}
	logging := cfg.Logging()
	assert.Equal(t, golog.LevelWarn, logging.Level)
	assert.Equal(t, golog.LevelInfo, logging.SubsystemLevels[Subsystem])
}

func TestLoggingKeepsDebugWhenRequested(t *testing.T) {
	cfg := Config{LogLevel: "debug", LogFormat: "plaintext"}
	assert.Equal(t, golog.LevelDebug, cfg.Logging().SubsystemLevels[Subsystem])
}
