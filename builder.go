// FILE: builder.go
package rollog

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger instance with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger()

	// Configure handles all validation and state recovery.
	if err := logger.Configure(b.cfg); err != nil {
		return nil, err
	}

	return logger, nil
}

// Level sets the minimum log level.
func (b *Builder) Level(level int64) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the minimum log level from a string.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := Level(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = levelVal
	return b
}

// Prefix sets the base name for log files.
func (b *Builder) Prefix(prefix string) *Builder {
	b.cfg.Prefix = prefix
	return b
}

// Directory sets the log directory.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// DailyRolling enables rotation on calendar day change.
func (b *Builder) DailyRolling(enable bool) *Builder {
	b.cfg.DailyRolling = enable
	return b
}

// MaxFileSize sets the maximum live file size in bytes, 0 for unlimited.
func (b *Builder) MaxFileSize(size int64) *Builder {
	b.cfg.MaxFileSize = size
	return b
}

// MaxFiles sets the retention bound on the log file count.
func (b *Builder) MaxFiles(count int64) *Builder {
	b.cfg.MaxFiles = count
	return b
}

// EnableStdout enables mirroring tagged logs to stdout/stderr.
func (b *Builder) EnableStdout(enable bool) *Builder {
	b.cfg.EnableStdout = enable
	return b
}

// StdoutTarget selects the mirror target, "stdout" or "stderr".
func (b *Builder) StdoutTarget(target string) *Builder {
	b.cfg.StdoutTarget = target
	return b
}

// InternalErrorsToStderr enables reporting of internal faults on stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}
