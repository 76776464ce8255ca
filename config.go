// FILE: config.go
package rollog

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/lixenwraith/config"
)

// Config holds all logger configuration values
type Config struct {
	// Basic settings
	Level     int64  `toml:"level"`
	Prefix    string `toml:"prefix"`    // Base name for log files
	Directory string `toml:"directory"` // Empty means current working directory

	// Rotation and retention
	DailyRolling bool  `toml:"daily_rolling"` // Rotate on calendar day change
	MaxFileSize  int64 `toml:"max_file_size"` // Bytes per live file, 0 = unlimited
	MaxFiles     int64 `toml:"max_files"`     // Retention bound on log file count

	// Console mirror settings
	EnableStdout bool   `toml:"enable_stdout"` // Mirror tagged logs to stdout/stderr
	StdoutTarget string `toml:"stdout_target"` // "stdout" or "stderr"

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"` // Write internal errors to stderr
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Level:     LevelDebug,
	Prefix:    "app",
	Directory: "",

	DailyRolling: false,
	MaxFileSize:  1_048_576,
	MaxFiles:     5,

	EnableStdout: false,
	StdoutTarget: "stdout",

	InternalErrorsToStderr: false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("rollog.", *cfg); err != nil {
		return nil, fmt.Errorf("failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "rollog.", cfg); err != nil {
		return nil, fmt.Errorf("failed to extract config values: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewConfigFromDefaults creates a Config with default values and applies overrides
func NewConfigFromDefaults(overrides map[string]any) (*Config, error) {
	cfg := DefaultConfig()

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, fmt.Errorf("failed to apply overrides: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		// Get the toml tag to determine the config key
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		key := prefix + tomlTag

		val, found := loader.Get(key)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// applyOverrides applies a map of overrides to the Config struct
func applyOverrides(cfg *Config, overrides map[string]any) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	// Map toml tags to field values for lookup
	fieldMap := make(map[string]reflect.Value)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tomlTag := field.Tag.Get("toml")
		if tomlTag != "" {
			fieldMap[tomlTag] = v.Field(i)
		}
	}

	for key, value := range overrides {
		fieldValue, exists := fieldMap[key]
		if !exists {
			return fmt.Errorf("unknown config key: %s", key)
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

// applyConfigField applies a single key-value override to a Config.
// This is the core field mapping logic for string overrides.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	case "level":
		// Accept both numeric and named values
		if numVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			cfg.Level = numVal
		} else {
			levelVal, err := Level(value)
			if err != nil {
				return err
			}
			cfg.Level = levelVal
		}

	case "prefix":
		cfg.Prefix = value

	case "directory":
		cfg.Directory = value

	case "daily_rolling":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid bool for daily_rolling: '%s'", value)
		}
		cfg.DailyRolling = boolVal

	case "max_file_size":
		numVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid number for max_file_size: '%s'", value)
		}
		cfg.MaxFileSize = numVal

	case "max_files":
		numVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid number for max_files: '%s'", value)
		}
		cfg.MaxFiles = numVal

	case "enable_stdout":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid bool for enable_stdout: '%s'", value)
		}
		cfg.EnableStdout = boolVal

	case "stdout_target":
		cfg.StdoutTarget = value

	case "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid bool for internal_errors_to_stderr: '%s'", value)
		}
		cfg.InternalErrorsToStderr = boolVal

	default:
		return fmtErrorf("unknown config key: '%s'", key)
	}

	return nil
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if strings.TrimSpace(c.Prefix) == "" {
		return fmtErrorf("log prefix cannot be empty")
	}

	if strings.ContainsAny(c.Prefix, `/\`) {
		return fmtErrorf("log prefix cannot contain path separators: %s", c.Prefix)
	}

	if c.StdoutTarget != "stdout" && c.StdoutTarget != "stderr" {
		return fmtErrorf("invalid stdout_target: '%s' (use stdout or stderr)", c.StdoutTarget)
	}

	if c.MaxFileSize < 0 {
		return fmtErrorf("max_file_size cannot be negative: %d", c.MaxFileSize)
	}

	if c.MaxFiles < 0 {
		return fmtErrorf("max_files cannot be negative: %d", c.MaxFiles)
	}

	return nil
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// directory returns the effective log directory, mapping the empty default
// to the current working directory.
func (c *Config) directory() string {
	if c.Directory == "" {
		return "."
	}
	return c.Directory
}
