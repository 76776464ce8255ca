// FILE: default.go
package rollog

// Global instance for package-level functions
var defaultLogger = NewLogger()

// Default package-level functions that delegate to the default logger

// Configure validates and applies the configuration to the default logger
func Configure(cfg *Config) error {
	return defaultLogger.Configure(cfg)
}

// ConfigureString applies key=value overrides to the default logger
func ConfigureString(overrides ...string) error {
	return defaultLogger.ConfigureString(overrides...)
}

// Reconfigure re-applies the default logger's last known configuration
func Reconfigure() error {
	return defaultLogger.Reconfigure()
}

// Write appends one entry to the live log file at the given level
func Write(level int64, message string) {
	defaultLogger.Write(level, message)
}

// Debug logs a tagged message at debug level
func Debug(tag string, args ...any) {
	defaultLogger.Debug(tag, args...)
}

// Info logs a tagged message at info level
func Info(tag string, args ...any) {
	defaultLogger.Info(tag, args...)
}

// Warn logs a tagged message at warning level
func Warn(tag string, args ...any) {
	defaultLogger.Warn(tag, args...)
}

// Error logs a tagged message at error level
func Error(tag string, args ...any) {
	defaultLogger.Error(tag, args...)
}

// LogFiles returns the paths of all log files of the default logger
func LogFiles() []string {
	return defaultLogger.LogFiles()
}

// DeleteLogFiles removes all log files of the default logger and reconfigures
func DeleteLogFiles() bool {
	return defaultLogger.DeleteLogFiles()
}

// IsConfigured reports whether the default logger has been configured
func IsConfigured() bool {
	return defaultLogger.IsConfigured()
}

// GetConfig returns a copy of the default logger's configuration
func GetConfig() *Config {
	return defaultLogger.GetConfig()
}
