package fmtxx

import (
	"io/fs"
	"time"
)

// Dialect names a template grammar.
type Dialect string

// Supported dialects
const (
	DialectBrace  Dialect = "brace"
	DialectPrintf Dialect = "printf"
)

// String returns the dialect name
func (d Dialect) String() string {
	return string(d)
}

// ParseDialect converts a name into a Dialect.
func ParseDialect(name string) (Dialect, error) {
	switch Dialect(name) {
	case DialectBrace, DialectPrintf:
		return Dialect(name), nil
	default:
		return "", NewUnknownDialectError(name)
	}
}

// ErrorStrategy defines how the interpreter reacts to a bad directive
type ErrorStrategy int

const (
	// ErrorStrategyThrow stops at the first bad directive and returns its error
	ErrorStrategyThrow ErrorStrategy = iota
	// ErrorStrategyKeepRaw writes the directive text verbatim and continues
	ErrorStrategyKeepRaw
	// ErrorStrategyRemove drops the directive from the output and continues
	ErrorStrategyRemove
)

// Error strategy names
const (
	ErrorStrategyNameThrow   = "throw"
	ErrorStrategyNameKeepRaw = "keepraw"
	ErrorStrategyNameRemove  = "remove"
)

// String returns the strategy name
func (s ErrorStrategy) String() string {
	switch s {
	case ErrorStrategyKeepRaw:
		return ErrorStrategyNameKeepRaw
	case ErrorStrategyRemove:
		return ErrorStrategyNameRemove
	default:
		return ErrorStrategyNameThrow
	}
}

// ParseErrorStrategy converts a strategy name into an ErrorStrategy.
// Unknown names fall back to ErrorStrategyThrow.
func ParseErrorStrategy(name string) ErrorStrategy {
	switch name {
	case ErrorStrategyNameKeepRaw:
		return ErrorStrategyKeepRaw
	case ErrorStrategyNameRemove:
		return ErrorStrategyRemove
	default:
		return ErrorStrategyThrow
	}
}

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyLine       = "line"
	MetaKeyColumn     = "column"
	MetaKeyOffset     = "offset"
	MetaKeyDialect    = "dialect"
	MetaKeyDirective  = "directive"
	MetaKeyIndex      = "index"
	MetaKeyCount      = "count"
	MetaKeyConversion = "conversion"
	MetaKeyReason     = "reason"
	MetaKeyKind       = "kind"
	MetaKeyName       = "name"
	MetaKeyDriver     = "driver"
)

// Log message constants
const (
	LogMsgEngineCreated     = "engine created"
	LogMsgRendererOverride  = "renderer overridden"
	LogMsgFormatStart       = "formatting started"
	LogMsgFormatEnd         = "formatting complete"
	LogMsgDirectiveFailed   = "directive failed, continuing"
	LogMsgCatalogOpened     = "catalog opened"
	LogMsgCatalogEntrySaved = "catalog entry saved"
	LogMsgCatalogDeleted    = "catalog entry deleted"
	LogMsgCatalogMigrated   = "catalog schema migrated"
)

// Log field names
const (
	LogFieldDialect  = "dialect"
	LogFieldLength   = "template_length"
	LogFieldArgs     = "arg_count"
	LogFieldErrors   = "error_count"
	LogFieldStrategy = "strategy"
	LogFieldKind     = "kind"
	LogFieldName     = "name"
	LogFieldPath     = "path"
	LogFieldDriver   = "driver"
)

// Catalog driver names
const (
	CatalogDriverMemory   = "memory"
	CatalogDriverFile     = "file"
	CatalogDriverPostgres = "postgres"
)

// Postgres catalog defaults
const (
	PostgresDefaultTablePrefix  = "fmtxx_"
	PostgresDefaultMaxOpenConns = 10
	PostgresDefaultMaxIdleConns = 2
	PostgresDefaultConnMaxLife  = 5 * time.Minute
	PostgresDefaultQueryTimeout = 30 * time.Second
	PostgresTemplatesTable      = "templates"
)

// File catalog permissions
const (
	FileCatalogPerm    fs.FileMode = 0o644
	FileCatalogDirPerm fs.FileMode = 0o755
)
