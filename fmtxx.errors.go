package fmtxx

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-fmtxx/internal"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Template errors
	ErrMsgMalformedTemplate     = "malformed template"
	ErrMsgUnterminatedDirective = "unterminated directive"
	ErrMsgUnexpectedChar        = "unexpected character in directive"
	ErrMsgStrayMarker           = "stray directive marker"
	ErrMsgArgumentIndex         = "argument index out of range"
	ErrMsgUnsupportedConversion = "unsupported conversion"
	ErrMsgUnknownDialect        = "unknown template dialect"

	// Registry errors
	ErrMsgRegistry          = "invalid renderer registration"
	ErrMsgNilThunk          = "renderer thunk cannot be nil"
	ErrMsgKindNotOverridden = "renderer kind cannot be overridden"

	// Catalog errors
	ErrMsgEntryNotFound           = "catalog entry not found"
	ErrMsgCatalogClosed           = "catalog is closed"
	ErrMsgInvalidEntry            = "invalid catalog entry"
	ErrMsgEmptyEntryName          = "catalog entry name cannot be empty"
	ErrMsgCatalogIO               = "catalog storage failed"
	ErrMsgUnknownDriver           = "unknown catalog driver"
	ErrMsgNilCatalogDriver        = "catalog driver is nil"
	ErrMsgDriverAlreadyRegistered = "catalog driver already registered"
	ErrMsgEmptyConnString         = "postgres connection string cannot be empty"
	ErrMsgInvalidTablePrefix      = "postgres table prefix must be lowercase letters, digits or underscores"
)

// Error code constants for categorization
const (
	ErrCodeTemplate = "FMTXX_TEMPLATE"
	ErrCodeArgument = "FMTXX_ARGUMENT"
	ErrCodeRegistry = "FMTXX_REGISTRY"
	ErrCodeCatalog  = "FMTXX_CATALOG"
)

// Sentinel errors. Every error returned by this package wraps exactly one of
// these, so callers can branch with errors.Is.
var (
	ErrMalformedTemplate       = errors.New(ErrMsgMalformedTemplate)
	ErrArgumentIndexOutOfRange = errors.New(ErrMsgArgumentIndex)
	ErrUnsupportedConversion   = errors.New(ErrMsgUnsupportedConversion)
	ErrRegistry                = errors.New(ErrMsgRegistry)
	ErrEntryNotFound           = errors.New(ErrMsgEntryNotFound)
	ErrCatalogClosed           = errors.New(ErrMsgCatalogClosed)
	ErrInvalidEntry            = errors.New(ErrMsgInvalidEntry)
	ErrCatalogIO               = errors.New(ErrMsgCatalogIO)
)

// ErrorKind classifies formatting errors.
type ErrorKind int

// Error kinds
const (
	ErrorKindNone ErrorKind = iota
	ErrorKindMalformedTemplate
	ErrorKindArgumentIndexOutOfRange
	ErrorKindUnsupportedConversion
)

// String returns the kind name
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindMalformedTemplate:
		return "MalformedTemplate"
	case ErrorKindArgumentIndexOutOfRange:
		return "ArgumentIndexOutOfRange"
	case ErrorKindUnsupportedConversion:
		return "UnsupportedConversion"
	default:
		return "None"
	}
}

// KindOf reports the formatting error kind carried by err. For joined errors
// MalformedTemplate takes precedence over ArgumentIndexOutOfRange, which takes
// precedence over UnsupportedConversion.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, ErrMalformedTemplate):
		return ErrorKindMalformedTemplate
	case errors.Is(err, ErrArgumentIndexOutOfRange):
		return ErrorKindArgumentIndexOutOfRange
	case errors.Is(err, ErrUnsupportedConversion):
		return ErrorKindUnsupportedConversion
	default:
		return ErrorKindNone
	}
}

// NewMalformedTemplateError creates a malformed template error with position context
func NewMalformedTemplateError(msg string, dialect Dialect, template string, offset int, directive string) error {
	pos := internal.PositionOf(template, offset)
	return cuserr.WrapStdError(ErrMalformedTemplate, ErrCodeTemplate, msg).
		WithMetadata(MetaKeyDialect, dialect.String()).
		WithMetadata(MetaKeyDirective, directive).
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

// NewArgumentIndexError creates an error for a directive that resolves past the argument list
func NewArgumentIndexError(dialect Dialect, template string, offset, index, count int) error {
	pos := internal.PositionOf(template, offset)
	return cuserr.WrapStdError(ErrArgumentIndexOutOfRange, ErrCodeArgument, ErrMsgArgumentIndex).
		WithMetadata(MetaKeyDialect, dialect.String()).
		WithMetadata(MetaKeyIndex, strconv.Itoa(index)).
		WithMetadata(MetaKeyCount, strconv.Itoa(count)).
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

// NewUnsupportedConversionError creates an error for an unknown printf conversion character
func NewUnsupportedConversionError(template string, offset int, conv byte) error {
	pos := internal.PositionOf(template, offset)
	return cuserr.WrapStdError(ErrUnsupportedConversion, ErrCodeTemplate, ErrMsgUnsupportedConversion).
		WithMetadata(MetaKeyDialect, DialectPrintf.String()).
		WithMetadata(MetaKeyConversion, string(conv)).
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

// NewUnknownDialectError creates an error for an unrecognised dialect name
func NewUnknownDialectError(name string) error {
	return cuserr.NewValidationError(ErrCodeTemplate, ErrMsgUnknownDialect).
		WithMetadata(MetaKeyDialect, name)
}

// NewRegistryError creates a renderer registration error
func NewRegistryError(msg string, kind Kind) error {
	return cuserr.WrapStdError(ErrRegistry, ErrCodeRegistry, msg).
		WithMetadata(MetaKeyKind, kind.String())
}

// NewEntryNotFoundError creates a catalog lookup error
func NewEntryNotFoundError(name string) error {
	return cuserr.WrapStdError(ErrEntryNotFound, ErrCodeCatalog, ErrMsgEntryNotFound).
		WithMetadata(MetaKeyName, name)
}

// NewCatalogClosedError creates an error for use of a closed catalog
func NewCatalogClosedError() error {
	return cuserr.WrapStdError(ErrCatalogClosed, ErrCodeCatalog, ErrMsgCatalogClosed)
}

// NewInvalidEntryError creates an error for an entry rejected by Put
func NewInvalidEntryError(name string, reason string, cause error) error {
	err := cuserr.WrapStdError(ErrInvalidEntry, ErrCodeCatalog, ErrMsgInvalidEntry).
		WithMetadata(MetaKeyName, name).
		WithMetadata(MetaKeyReason, reason)
	if cause != nil {
		return errors.Join(err, cause)
	}
	return err
}

// NewCatalogIOError wraps a storage failure from a catalog backend
func NewCatalogIOError(driver string, cause error) error {
	return errors.Join(
		cuserr.WrapStdError(ErrCatalogIO, ErrCodeCatalog, ErrMsgCatalogIO).
			WithMetadata(MetaKeyDriver, driver),
		cause,
	)
}

// NewUnknownDriverError creates an error for an unregistered catalog driver
func NewUnknownDriverError(driver string) error {
	return cuserr.NewValidationError(ErrCodeCatalog, ErrMsgUnknownDriver).
		WithMetadata(MetaKeyDriver, driver)
}

// fromScanError converts an internal scan failure into a public error.
func fromScanError(dialect Dialect, template string, err *internal.ScanError) error {
	directive := template[err.Start:err.End]
	switch err.Reason {
	case internal.ReasonUnsupportedConversion:
		return NewUnsupportedConversionError(template, err.Offset, err.Char)
	case internal.ReasonUnexpectedChar:
		return NewMalformedTemplateError(ErrMsgUnexpectedChar, dialect, template, err.Offset, directive)
	case internal.ReasonStrayMarker:
		return NewMalformedTemplateError(ErrMsgStrayMarker, dialect, template, err.Offset, directive)
	default:
		return NewMalformedTemplateError(ErrMsgUnterminatedDirective, dialect, template, err.Offset, directive)
	}
}
