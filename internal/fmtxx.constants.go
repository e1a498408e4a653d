package internal

import "strings"

// Marker characters
const (
	CharOpenBrace  = '{'
	CharCloseBrace = '}'
	CharColon      = ':'
	CharPercent    = '%'
	CharDot        = '.'
	CharNewline    = '\n'
)

// Flag characters shared by the printf dialect and the residual layout
const (
	CharFlagMinus     = '-'
	CharFlagPlus      = '+'
	CharFlagZero      = '0'
	CharFlagSpace     = ' '
	CharFlagAlternate = '#'
)

// Alignment characters
const (
	CharAlignLeft   = '<'
	CharAlignRight  = '>'
	CharAlignCenter = '^'
)

// Type codes understood by the spec parser.
const TypeCodes = "bcdeEfFgGiopsuxXaA"

// Printf conversion characters. 'v' selects the natural rendering.
const Conversions = "diuoxXbeEfFgGaAscpv"

// C length modifiers skipped by the printf scanner.
const LengthModifiers = "hlLqjzt"

// Limits
const (
	// MaxWidth caps width and precision values parsed from templates.
	MaxWidth = 1 << 12
	// MaxIndex caps explicit argument indices; larger values saturate.
	MaxIndex = 1 << 20
	// ScratchSize is the capacity of pooled renderer scratch buffers.
	ScratchSize = 128
)

// Scan failure reasons
const (
	ReasonUnterminated          = "unterminated directive"
	ReasonUnexpectedChar        = "unexpected character in directive"
	ReasonStrayMarker           = "stray directive marker"
	ReasonUnsupportedConversion = "unsupported conversion"
)

// Padding runs used to avoid per-character writes.
const (
	spaces = "                                                                "
	zeros  = "0000000000000000000000000000000000000000000000000000000000000000"
)

// IsTypeCode reports whether ch is a recognised spec type code.
func IsTypeCode(ch byte) bool {
	return strings.IndexByte(TypeCodes, ch) >= 0
}

// IsConversion reports whether ch is a recognised printf conversion.
func IsConversion(ch byte) bool {
	return strings.IndexByte(Conversions, ch) >= 0
}

func isLengthModifier(ch byte) bool {
	return strings.IndexByte(LengthModifiers, ch) >= 0
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
