package compat

import (
	"fmt"

	"github.com/lixenwraith/rollog"
)

// Builder provides a flexible way to create configured logger adapters for gnet and fasthttp
// It can use an existing *rollog.Logger instance or create a new one from a *rollog.Config
type Builder struct {
	logger *rollog.Logger
	logCfg *rollog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters
// Recommended for applications that already have a central logger instance
// If this is set WithConfig is ignored
func (b *Builder) WithLogger(l *rollog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("rollog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance
// This is used only if an existing logger is NOT provided via WithLogger
// If neither WithLogger nor WithConfig is used, a default logger will be created
func (b *Builder) WithConfig(cfg *rollog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// GetLogger resolves the logger to be used, creating one if necessary
func (b *Builder) GetLogger() (*rollog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	// An existing logger was provided, so we use it
	if b.logger != nil {
		return b.logger, nil
	}

	// Create a new logger instance
	l := rollog.NewLogger()
	cfg := b.logCfg
	if cfg == nil {
		// If no config was provided, use the default
		cfg = rollog.DefaultConfig()
	}

	if err := l.Configure(cfg); err != nil {
		return nil, err
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
// It can be used for servers that require a standard gnet logger
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.GetLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.GetLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}
