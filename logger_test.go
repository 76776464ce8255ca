// FILE: logger_test.go
package rollog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestLogger creates a configured logger in a temp directory
func createTestLogger(t *testing.T) (*Logger, string) {
	t.Helper()
	tmpDir := t.TempDir()
	logger := NewLogger()

	cfg := DefaultConfig()
	cfg.Directory = tmpDir
	cfg.Prefix = "test"

	err := logger.Configure(cfg)
	require.NoError(t, err)

	return logger, tmpDir
}

func livePath(dir string) string {
	return filepath.Join(dir, "test-latest.log")
}

func readLive(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(livePath(dir))
	require.NoError(t, err)
	return string(data)
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger()

	assert.NotNil(t, logger)
	assert.False(t, logger.IsConfigured())
	assert.Nil(t, logger.GetConfig())
}

func TestConfigure(t *testing.T) {
	logger, tmpDir := createTestLogger(t)

	assert.True(t, logger.IsConfigured())

	cfg := logger.GetConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, tmpDir, cfg.Directory)
	assert.Equal(t, "test", cfg.Prefix)

	// State points at the live file even before the first write
	assert.Equal(t, livePath(tmpDir), logger.state.livePath)
	assert.Equal(t, int64(0), logger.state.currentSize)
}

func TestConfigureNil(t *testing.T) {
	logger := NewLogger()
	err := logger.Configure(nil)
	assert.Error(t, err)
	assert.False(t, logger.IsConfigured())
}

func TestConfigureInvalid(t *testing.T) {
	logger := NewLogger()
	cfg := DefaultConfig()
	cfg.Prefix = ""
	err := logger.Configure(cfg)
	assert.Error(t, err)
	assert.False(t, logger.IsConfigured())
}

func TestConfigureCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b", "logs")

	logger := NewLogger()
	cfg := DefaultConfig()
	cfg.Directory = nested

	require.NoError(t, logger.Configure(cfg))

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigureIsSnapshot(t *testing.T) {
	logger, _ := createTestLogger(t)

	// Mutating the caller's config after Configure must not leak in
	cfg := logger.GetConfig()
	cfg.Prefix = "other"
	assert.Equal(t, "test", logger.GetConfig().Prefix)
}

func TestConfigureString(t *testing.T) {
	tmpDir := t.TempDir()
	logger := NewLogger()

	err := logger.ConfigureString(
		"directory="+tmpDir,
		"prefix=app",
		"level=warn",
		"max_file_size=2048",
		"max_files=3",
		"daily_rolling=true",
	)
	require.NoError(t, err)

	cfg := logger.GetConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "app", cfg.Prefix)
	assert.Equal(t, LevelWarn, cfg.Level)
	assert.Equal(t, int64(2048), cfg.MaxFileSize)
	assert.Equal(t, int64(3), cfg.MaxFiles)
	assert.True(t, cfg.DailyRolling)
}

func TestConfigureStringErrors(t *testing.T) {
	logger := NewLogger()

	err := logger.ConfigureString("no_equals_sign")
	assert.Error(t, err)

	err = logger.ConfigureString("unknown_key=1")
	assert.Error(t, err)

	// Multiple bad overrides are reported together
	err = logger.ConfigureString("max_files=abc", "bogus=1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple configuration errors")

	assert.False(t, logger.IsConfigured())
}

func TestReconfigureUnconfigured(t *testing.T) {
	logger := NewLogger()
	assert.Error(t, logger.Reconfigure())
}

func TestWriteUnconfigured(t *testing.T) {
	logger := NewLogger()

	// Must be a silent no-op, never a panic
	logger.Write(LevelInfo, "dropped")
	logger.Info("tag", "dropped")

	assert.Nil(t, logger.LogFiles())
	assert.False(t, logger.DeleteLogFiles())
}

func TestLogFiles(t *testing.T) {
	logger, tmpDir := createTestLogger(t)

	logger.Write(LevelInfo, "hello")

	// A non-log file in the directory is not listed
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("x"), 0644))

	files := logger.LogFiles()
	require.Len(t, files, 1)
	assert.Equal(t, livePath(tmpDir), files[0])
}

func TestDeleteLogFiles(t *testing.T) {
	logger, tmpDir := createTestLogger(t)

	cfg := logger.GetConfig()
	cfg.MaxFileSize = 40 // Force rotations
	require.NoError(t, logger.Configure(cfg))

	for i := 0; i < 10; i++ {
		logger.Write(LevelInfo, "some entry content")
	}
	require.Greater(t, len(logger.LogFiles()), 1)

	assert.True(t, logger.DeleteLogFiles())

	// Deletion reconfigures: bookkeeping starts over
	assert.Equal(t, int64(0), logger.state.currentSize)
	assert.Equal(t, uint64(0), logger.state.rotationIndex)

	logger.Write(LevelInfo, "fresh entry")

	files := logger.LogFiles()
	require.Len(t, files, 1)
	assert.Equal(t, livePath(tmpDir), files[0])

	content := readLive(t, tmpDir)
	assert.Contains(t, content, "fresh entry")
	assert.NotContains(t, content, "some entry content")
}

func TestConsoleMirror(t *testing.T) {
	logger, tmpDir := createTestLogger(t)

	var mirror bytes.Buffer
	logger.console = &mirror

	logger.Info("svc", "mirrored")
	assert.Contains(t, mirror.String(), "svc: mirrored")
	assert.Contains(t, readLive(t, tmpDir), "svc: mirrored")

	// Raw writes bypass the diagnostic mirror
	mirror.Reset()
	logger.Write(LevelInfo, "file only")
	assert.Empty(t, mirror.String())
	assert.Contains(t, readLive(t, tmpDir), "file only")
}

func TestLevelFiltering(t *testing.T) {
	logger, tmpDir := createTestLogger(t)

	cfg := logger.GetConfig()
	cfg.Level = LevelWarn
	require.NoError(t, logger.Configure(cfg))

	logger.Debug("tag", "debug entry")
	logger.Info("tag", "info entry")
	logger.Warn("tag", "warn entry")
	logger.Error("tag", "error entry")

	content := readLive(t, tmpDir)
	assert.NotContains(t, content, "debug entry")
	assert.NotContains(t, content, "info entry")
	assert.Contains(t, content, "warn entry")
	assert.Contains(t, content, "error entry")
}

func TestConcurrentWrites(t *testing.T) {
	logger, tmpDir := createTestLogger(t)

	cfg := logger.GetConfig()
	cfg.MaxFileSize = 0
	require.NoError(t, logger.Configure(cfg))

	const goroutines = 10
	const perGoroutine = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				logger.Info("worker", "goroutine", id, "iteration", i)
			}
		}(g)
	}
	wg.Wait()

	// Every entry landed intact as its own line
	content := readLive(t, tmpDir)
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	assert.Len(t, lines, goroutines*perGoroutine)
	for _, line := range lines {
		assert.Contains(t, line, "worker: goroutine")
	}
}

func TestTaggedLevels(t *testing.T) {
	logger, tmpDir := createTestLogger(t)

	logger.Debug("mod", "d")
	logger.Info("mod", "i")
	logger.Warn("mod", "w")
	logger.Error("mod", "e")

	lines := strings.Split(strings.TrimSuffix(readLive(t, tmpDir), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "DEBUG mod: d")
	assert.Contains(t, lines[1], "INFO  mod: i")
	assert.Contains(t, lines[2], "WARN  mod: w")
	assert.Contains(t, lines[3], "ERROR mod: e")
}
