// FILE: builder_test.go
package rollog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderBuild(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := NewBuilder().
		Directory(tmpDir).
		Prefix("built").
		LevelString("warn").
		DailyRolling(true).
		MaxFileSize(4096).
		MaxFiles(7).
		StdoutTarget("stderr").
		Build()
	require.NoError(t, err)
	require.True(t, logger.IsConfigured())

	cfg := logger.GetConfig()
	assert.Equal(t, tmpDir, cfg.Directory)
	assert.Equal(t, "built", cfg.Prefix)
	assert.Equal(t, LevelWarn, cfg.Level)
	assert.True(t, cfg.DailyRolling)
	assert.Equal(t, int64(4096), cfg.MaxFileSize)
	assert.Equal(t, int64(7), cfg.MaxFiles)
	assert.Equal(t, "stderr", cfg.StdoutTarget)
}

func TestBuilderInvalidLevel(t *testing.T) {
	_, err := NewBuilder().LevelString("loud").Build()
	assert.Error(t, err)
}

func TestBuilderInvalidConfig(t *testing.T) {
	_, err := NewBuilder().Prefix("").Build()
	assert.Error(t, err)
}
