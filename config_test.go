// FILE: config_test.go
package rollog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, LevelDebug, cfg.Level)
	assert.Equal(t, "app", cfg.Prefix)
	assert.Equal(t, "", cfg.Directory)
	assert.False(t, cfg.DailyRolling)
	assert.Equal(t, int64(1_048_576), cfg.MaxFileSize)
	assert.Equal(t, int64(5), cfg.MaxFiles)
	assert.False(t, cfg.EnableStdout)
	assert.Equal(t, "stdout", cfg.StdoutTarget)
}

func TestConfigClone(t *testing.T) {
	cfg1 := DefaultConfig()
	cfg1.Level = LevelDebug
	cfg1.Directory = "/custom/path"

	cfg2 := cfg1.Clone()

	assert.Equal(t, cfg1.Level, cfg2.Level)
	assert.Equal(t, cfg1.Directory, cfg2.Directory)

	// Modify original
	cfg1.Level = LevelError

	// Verify clone unchanged
	assert.Equal(t, LevelDebug, cfg2.Level)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantError string
	}{
		{
			name:      "valid config",
			modify:    func(c *Config) {},
			wantError: "",
		},
		{
			name:      "empty prefix",
			modify:    func(c *Config) { c.Prefix = "" },
			wantError: "prefix cannot be empty",
		},
		{
			name:      "prefix with separator",
			modify:    func(c *Config) { c.Prefix = "a/b" },
			wantError: "path separators",
		},
		{
			name:      "invalid stdout target",
			modify:    func(c *Config) { c.StdoutTarget = "file" },
			wantError: "invalid stdout_target",
		},
		{
			name:      "negative max file size",
			modify:    func(c *Config) { c.MaxFileSize = -1 },
			wantError: "max_file_size cannot be negative",
		},
		{
			name:      "negative max files",
			modify:    func(c *Config) { c.MaxFiles = -1 },
			wantError: "max_files cannot be negative",
		},
		{
			name:      "zero max file size is unlimited",
			modify:    func(c *Config) { c.MaxFileSize = 0 },
			wantError: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.validate()
			if tt.wantError == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
			}
		})
	}
}

func TestNewConfigFromDefaults(t *testing.T) {
	cfg, err := NewConfigFromDefaults(map[string]any{
		"prefix":        "svc",
		"max_file_size": 4096,
		"daily_rolling": true,
	})
	require.NoError(t, err)
	assert.Equal(t, "svc", cfg.Prefix)
	assert.Equal(t, int64(4096), cfg.MaxFileSize)
	assert.True(t, cfg.DailyRolling)
	// Untouched fields keep defaults
	assert.Equal(t, int64(5), cfg.MaxFiles)

	_, err = NewConfigFromDefaults(map[string]any{"nope": 1})
	assert.Error(t, err)

	_, err = NewConfigFromDefaults(map[string]any{"prefix": 42})
	assert.Error(t, err)
}

func TestNewConfigFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "rollog.toml")

	content := `
[rollog]
  level = 4
  prefix = "filecfg"
  directory = "/var/log/filecfg"
  daily_rolling = true
  max_file_size = 2048
  max_files = 7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, cfg.Level)
	assert.Equal(t, "filecfg", cfg.Prefix)
	assert.Equal(t, "/var/log/filecfg", cfg.Directory)
	assert.True(t, cfg.DailyRolling)
	assert.Equal(t, int64(2048), cfg.MaxFileSize)
	assert.Equal(t, int64(7), cfg.MaxFiles)
}

func TestNewConfigFromFileMissing(t *testing.T) {
	// A missing file yields the defaults rather than an error
	cfg, err := NewConfigFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "app", cfg.Prefix)
}

func TestApplyConfigField(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, applyConfigField(cfg, "level", "error"))
	assert.Equal(t, LevelError, cfg.Level)

	require.NoError(t, applyConfigField(cfg, "level", "-4"))
	assert.Equal(t, LevelDebug, cfg.Level)

	require.NoError(t, applyConfigField(cfg, "stdout_target", "stderr"))
	assert.Equal(t, "stderr", cfg.StdoutTarget)

	assert.Error(t, applyConfigField(cfg, "max_files", "many"))
	assert.Error(t, applyConfigField(cfg, "daily_rolling", "maybe"))
	assert.Error(t, applyConfigField(cfg, "level", "loud"))
	assert.Error(t, applyConfigField(cfg, "unknown", "1"))
}

func TestLevelParsing(t *testing.T) {
	for str, want := range map[string]int64{
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"WARN":    LevelWarn,
		" error ": LevelError,
	} {
		got, err := Level(str)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := Level("verbose")
	assert.Error(t, err)
}
