package fmtxx

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Engine interprets templates of both dialects against a renderer registry.
// It is immutable after New and safe for concurrent use; the writers passed to
// it are not.
type Engine struct {
	registry *Registry
	config   *engineConfig
	logger   *zap.Logger
}

// New creates a new Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	registry := NewRegistry()
	for _, o := range config.overrides {
		next, err := registry.withThunk(o.kind, o.thunk)
		if err != nil {
			return nil, err
		}
		registry = next
		logger.Debug(LogMsgRendererOverride, zap.String(LogFieldKind, o.kind.String()))
	}

	logger.Debug(LogMsgEngineCreated, zap.String(LogFieldStrategy, config.errorStrategy.String()))

	return &Engine{
		registry: registry,
		config:   config,
		logger:   logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Registry returns the engine's renderer registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// ErrorStrategy returns the configured error strategy.
func (e *Engine) ErrorStrategy() ErrorStrategy {
	return e.config.errorStrategy
}

// Format interprets a brace-dialect template and writes the result to w.
//
// With the default strategy, formatting stops at the first bad directive; the
// text before it has been written, nothing of the directive itself.
func (e *Engine) Format(w Writer, template string, args ...Arg) error {
	return e.Execute(w, DialectBrace, template, args...)
}

// Printf interprets a printf-dialect template and writes the result to w.
func (e *Engine) Printf(w Writer, template string, args ...Arg) error {
	return e.Execute(w, DialectPrintf, template, args...)
}

// Execute interprets template in the given dialect.
func (e *Engine) Execute(w Writer, dialect Dialect, template string, args ...Arg) error {
	s := session{
		engine:   e,
		w:        w,
		dialect:  dialect,
		template: template,
		args:     args,
		strategy: e.config.errorStrategy,
	}

	if ce := e.logger.Check(zapcore.DebugLevel, LogMsgFormatStart); ce != nil {
		ce.Write(
			zap.String(LogFieldDialect, dialect.String()),
			zap.Int(LogFieldLength, len(template)),
			zap.Int(LogFieldArgs, len(args)),
		)
	}

	switch dialect {
	case DialectBrace:
		s.runBrace()
	case DialectPrintf:
		s.runPrintf()
	default:
		return NewUnknownDialectError(dialect.String())
	}

	if ce := e.logger.Check(zapcore.DebugLevel, LogMsgFormatEnd); ce != nil {
		ce.Write(
			zap.String(LogFieldDialect, dialect.String()),
			zap.Int(LogFieldErrors, len(s.errs)),
		)
	}
	return s.result()
}

var defaultEngine = MustNew()

// Format interprets a brace-dialect template with the default engine and
// returns w for chaining.
func Format[W Writer](w W, template string, args ...Arg) (W, error) {
	err := defaultEngine.Format(w, template, args...)
	return w, err
}

// Printf interprets a printf-dialect template with the default engine and
// returns w for chaining.
func Printf[W Writer](w W, template string, args ...Arg) (W, error) {
	err := defaultEngine.Printf(w, template, args...)
	return w, err
}

// Sformat formats a brace-dialect template into a new string.
func Sformat(template string, args ...Arg) (string, error) {
	w := NewBufferWriter(len(template))
	err := defaultEngine.Format(w, template, args...)
	return w.String(), err
}

// Sprintf formats a printf-dialect template into a new string.
func Sprintf(template string, args ...Arg) (string, error) {
	w := NewBufferWriter(len(template))
	err := defaultEngine.Printf(w, template, args...)
	return w.String(), err
}

// Fformat formats a brace-dialect template to out and returns the number of
// bytes written. A formatting error takes precedence over a write error.
func Fformat(out io.Writer, template string, args ...Arg) (int, error) {
	return fexecute(out, DialectBrace, template, args)
}

// Fprintf formats a printf-dialect template to out and returns the number of
// bytes written. A formatting error takes precedence over a write error.
func Fprintf(out io.Writer, template string, args ...Arg) (int, error) {
	return fexecute(out, DialectPrintf, template, args)
}

func fexecute(out io.Writer, dialect Dialect, template string, args []Arg) (int, error) {
	w := NewStreamWriter(out)
	if err := defaultEngine.Execute(w, dialect, template, args...); err != nil {
		return int(w.Count()), err
	}
	return int(w.Count()), w.Err()
}
