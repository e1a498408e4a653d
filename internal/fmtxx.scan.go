package internal

import "fmt"

// Position represents a location in the source template
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// PositionOf computes the line and column of a byte offset in src.
// Offsets past the end are clamped.
func PositionOf(src string, offset int) Position {
	if offset > len(src) {
		offset = len(src)
	}
	pos := Position{Offset: offset, Line: 1, Column: 1}
	for i := 0; i < offset; i++ {
		if src[i] == CharNewline {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

// ScanError describes a directive that could not be scanned.
// Start is the offset of the directive marker, Offset points at the offending
// byte and End is where scanning can resume when the caller continues.
type ScanError struct {
	Reason string
	Start  int
	Offset int
	End    int
	Char   byte
}

// Error implements the error interface
func (e *ScanError) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("%s %q at offset %d", e.Reason, e.Char, e.Offset)
	}
	return fmt.Sprintf("%s at offset %d", e.Reason, e.Offset)
}

// BraceDirective is a scanned {index:spec} directive.
type BraceDirective struct {
	Start    int    // offset of '{'
	End      int    // offset just past '}'
	Index    int    // explicit index, valid when Explicit is set
	Explicit bool   // an index was written in the directive
	Spec     string // text between ':' and '}', sub-span of the source
}

// ScanBraceDirective scans the directive whose marker is at src[open].
// The caller has already ruled out the "{{" and "}}" escapes, so a '}' there
// is a stray marker.
func ScanBraceDirective(src string, open int) (BraceDirective, error) {
	d := BraceDirective{Start: open}
	if src[open] != CharOpenBrace {
		return d, &ScanError{Reason: ReasonStrayMarker, Start: open, Offset: open, End: open + 1, Char: src[open]}
	}
	pos := open + 1

	if pos < len(src) && isDigit(src[pos]) {
		d.Index, pos = scanNumber(src, pos, MaxIndex)
		d.Explicit = true
	}

	if pos >= len(src) {
		return d, &ScanError{Reason: ReasonUnterminated, Start: open, Offset: open, End: len(src)}
	}

	switch src[pos] {
	case CharCloseBrace:
		d.End = pos + 1
		return d, nil
	case CharColon:
		specStart := pos + 1
		for pos = specStart; pos < len(src); pos++ {
			if src[pos] == CharCloseBrace {
				d.Spec = src[specStart:pos]
				d.End = pos + 1
				return d, nil
			}
		}
		return d, &ScanError{Reason: ReasonUnterminated, Start: open, Offset: open, End: len(src)}
	default:
		return d, &ScanError{
			Reason: ReasonUnexpectedChar,
			Start:  open,
			Offset: pos,
			End:    resumeAfterClose(src, pos),
			Char:   src[pos],
		}
	}
}

// PrintfDirective is a scanned %[flags][width][.precision][length]conv directive.
type PrintfDirective struct {
	Start     int    // offset of '%'
	End       int    // offset just past the conversion character
	Conv      byte   // conversion character
	Sign      byte   // 0, '+' or ' '
	Alternate bool   // '#' flag present
	Extra     string // flags, width and precision, sub-span of the source
	Raw       string // everything after '%', sub-span of the source
}

// ScanPrintfDirective scans the directive whose '%' is at src[open].
// The caller has already ruled out the "%%" escape.
func ScanPrintfDirective(src string, open int) (PrintfDirective, error) {
	d := PrintfDirective{Start: open}
	pos := open + 1

flags:
	for ; pos < len(src); pos++ {
		switch src[pos] {
		case CharFlagPlus:
			d.Sign = CharFlagPlus
		case CharFlagSpace:
			if d.Sign == 0 {
				d.Sign = CharFlagSpace
			}
		case CharFlagAlternate:
			d.Alternate = true
		case CharFlagMinus, CharFlagZero:
		default:
			break flags
		}
	}

	if pos < len(src) && isDigit(src[pos]) {
		_, pos = scanNumber(src, pos, MaxWidth)
	}
	if pos < len(src) && src[pos] == CharDot {
		pos++
		if pos < len(src) && isDigit(src[pos]) {
			_, pos = scanNumber(src, pos, MaxWidth)
		}
	}
	d.Extra = src[open+1 : pos]

	for pos < len(src) && isLengthModifier(src[pos]) {
		pos++
	}

	if pos >= len(src) {
		return d, &ScanError{Reason: ReasonUnterminated, Start: open, Offset: open, End: len(src)}
	}

	conv := src[pos]
	if !IsConversion(conv) {
		return d, &ScanError{
			Reason: ReasonUnsupportedConversion,
			Start:  open,
			Offset: pos,
			End:    pos + 1,
			Char:   conv,
		}
	}

	d.Conv = conv
	d.End = pos + 1
	d.Raw = src[open+1 : d.End]
	return d, nil
}

// scanNumber reads a run of decimal digits starting at pos, saturating at limit.
func scanNumber(src string, pos int, limit int) (int, int) {
	n := 0
	for pos < len(src) && isDigit(src[pos]) {
		if n < limit {
			n = n*10 + int(src[pos]-'0')
			if n > limit {
				n = limit
			}
		}
		pos++
	}
	return n, pos
}

// resumeAfterClose returns the offset just past the next '}' at or after pos,
// or the end of src.
func resumeAfterClose(src string, pos int) int {
	for ; pos < len(src); pos++ {
		if src[pos] == CharCloseBrace {
			return pos + 1
		}
	}
	return len(src)
}
