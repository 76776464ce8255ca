// FILE: logger.go
package rollog

import (
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Logger is the core struct that encapsulates all logger functionality.
// All mutating operations serialize behind a single mutex; file I/O is
// synchronous and bounded by OS call latency.
type Logger struct {
	mu      sync.Mutex
	cfg     *Config // nil until the first successful Configure
	state   loggerState
	store   FileStore
	console io.Writer // mirror target for tagged logs, nil when disabled

	now func() time.Time
}

// NewLogger creates a new unconfigured Logger instance backed by the OS
// filesystem. Logging operations are dropped until Configure is called.
func NewLogger() *Logger {
	return NewLoggerWithStore(OSFileStore{})
}

// NewLoggerWithStore creates a Logger backed by the provided file store.
func NewLoggerWithStore(store FileStore) *Logger {
	return &Logger{
		store: store,
		now:   time.Now,
	}
}

// Configure validates the configuration and replaces the logger state
// wholesale: the live file path is recomputed, the current size is recovered
// from disk and the rotation index resumes past any existing rotated file.
// File store failures during recovery degrade to zero values and never fail
// the call; only an invalid configuration is rejected.
func (l *Logger) Configure(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.apply(cfg.Clone())
	return nil
}

// ConfigureString applies string key-value overrides on top of the current
// configuration (or the defaults when unconfigured) and reconfigures.
// Each override should be in the format "key=value".
func (l *Logger) ConfigureString(overrides ...string) error {
	cfg := l.GetConfig()
	if cfg == nil {
		cfg = DefaultConfig()
	}

	var errs []error
	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := applyConfigField(cfg, key, value); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return combineConfigErrors(errs)
	}

	return l.Configure(cfg)
}

// Reconfigure re-applies the last known configuration unchanged, re-running
// the directory ensure and state recovery. Useful after external deletion of
// log files.
func (l *Logger) Reconfigure() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cfg == nil {
		return fmtErrorf("logger not configured")
	}
	l.apply(l.cfg)
	return nil
}

// IsConfigured reports whether Configure has succeeded at least once.
func (l *Logger) IsConfigured() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cfg != nil
}

// GetConfig returns a copy of the current configuration, nil when
// unconfigured.
func (l *Logger) GetConfig() *Config {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cfg == nil {
		return nil
	}
	return l.cfg.Clone()
}

// LogFiles returns the paths of all .log files in the log directory, in
// file store listing order. Empty when unconfigured or on listing failure.
func (l *Logger) LogFiles() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cfg == nil {
		l.internalLog("log file listing before configure\n")
		return nil
	}
	return l.logFiles()
}

// DeleteLogFiles removes every log file in the directory, live file
// included, then reconfigures so logging resumes against a fresh state.
// Returns false if any deletion failed; partial deletion is possible and is
// not rolled back.
func (l *Logger) DeleteLogFiles() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cfg == nil {
		l.internalLog("log file deletion before configure\n")
		return false
	}

	ok := true
	for _, path := range l.logFiles() {
		if err := l.store.Remove(path); err != nil {
			l.internalLog("failed to delete log file '%s': %v\n", path, err)
			ok = false
		}
	}

	l.apply(l.cfg)
	return ok
}

// apply installs the configuration and rebuilds state. Caller must hold the
// mutex.
func (l *Logger) apply(cfg *Config) {
	l.cfg = cfg
	l.console = consoleWriter(cfg)
	l.recoverState()
}

// logFiles lists .log paths under the configured directory. Caller must
// hold the mutex.
func (l *Logger) logFiles() []string {
	dir := l.cfg.directory()
	names, err := l.store.ListDir(dir)
	if err != nil {
		l.internalLog("failed to read log directory '%s': %v\n", dir, err)
		return nil
	}

	var paths []string
	for _, name := range names {
		if strings.HasSuffix(name, logExtension) {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths
}
