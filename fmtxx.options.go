package fmtxx

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// rendererOverride replaces the thunk for one kind.
type rendererOverride struct {
	kind  Kind
	thunk Thunk
}

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	errorStrategy ErrorStrategy
	logger        *zap.Logger
	overrides     []rendererOverride
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		errorStrategy: ErrorStrategyThrow,
		logger:        nil,
	}
}

// WithErrorStrategy sets how bad directives are handled.
// Default: ErrorStrategyThrow
func WithErrorStrategy(strategy ErrorStrategy) Option {
	return func(c *engineConfig) {
		c.errorStrategy = strategy
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithRenderer replaces the renderer for kind. The invalid and formatter kinds
// cannot be replaced, and a nil thunk is rejected; New reports both.
// Later options for the same kind win.
func WithRenderer(kind Kind, thunk Thunk) Option {
	return func(c *engineConfig) {
		c.overrides = append(c.overrides, rendererOverride{kind: kind, thunk: thunk})
	}
}
