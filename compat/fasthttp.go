// FILE: compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/rollog"
	"github.com/valyala/fasthttp"
)

// FastHTTPAdapter wraps rollog.Logger to implement fasthttp Logger interface
type FastHTTPAdapter struct {
	logger        *rollog.Logger
	defaultLevel  int64
	levelDetector func(string) int64 // Function to detect log level from message
}

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *rollog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  rollog.LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the default log level for Printf calls
func WithDefaultLevel(level int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	// Detect log level from message content
	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != 0 {
			level = detected
		}
	}

	switch level {
	case rollog.LevelDebug:
		a.logger.Debug("fasthttp", msg)
	case rollog.LevelWarn:
		a.logger.Warn("fasthttp", msg)
	case rollog.LevelError:
		a.logger.Error("fasthttp", msg)
	default:
		a.logger.Info("fasthttp", msg)
	}
}

// DetectLogLevel attempts to detect log level from message content
func DetectLogLevel(msg string) int64 {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return rollog.LevelError
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "warning") ||
		strings.Contains(msgLower, "deprecated") {
		return rollog.LevelWarn
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return rollog.LevelDebug
	}

	return rollog.LevelInfo
}
