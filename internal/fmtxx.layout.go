package internal

import (
	"unicode/utf8"
)

// Sink is the subset of the public Writer the helpers need.
type Sink interface {
	Write(s string)
}

// Layout is the parsed residual of a spec: fill, alignment, width and precision.
type Layout struct {
	Fill      string // fill character as a sub-span of the spec, empty means space
	Align     byte   // 0, '<', '>' or '^'
	ZeroPad   bool
	Width     int
	Precision int // -1 when absent
}

// HasPrecision reports whether a precision was given.
func (l Layout) HasPrecision() bool {
	return l.Precision >= 0
}

// ParseLayout parses [[fill]align]{flag}[width][.precision].
// Unknown trailing characters are ignored.
func ParseLayout(s string) Layout {
	l := Layout{Precision: -1}
	pos := 0

	if len(s) > 0 {
		_, size := utf8.DecodeRuneInString(s)
		switch {
		case size < len(s) && isAlign(s[size]):
			l.Fill = s[:size]
			l.Align = s[size]
			pos = size + 1
		case isAlign(s[0]):
			l.Align = s[0]
			pos = 1
		}
	}

flags:
	for ; pos < len(s); pos++ {
		switch s[pos] {
		case CharFlagMinus:
			if l.Align == 0 {
				l.Align = CharAlignLeft
			}
		case CharFlagZero:
			l.ZeroPad = true
		case CharFlagPlus, CharFlagSpace, CharFlagAlternate:
		default:
			break flags
		}
	}

	if pos < len(s) && isDigit(s[pos]) {
		l.Width, pos = scanNumber(s, pos, MaxWidth)
	}
	if pos < len(s) && s[pos] == CharDot {
		l.Precision, _ = scanNumber(s, pos+1, MaxWidth)
	}
	return l
}

// PadText writes text aligned within the layout width. Text is right-aligned
// unless the layout says otherwise. Width counts runes.
func PadText(w Sink, text string, l Layout) {
	pad := l.Width - utf8.RuneCountInString(text)
	if pad <= 0 {
		w.Write(text)
		return
	}
	left, right := split(pad, l.Align)
	Repeat(w, l.fill(), left)
	w.Write(text)
	Repeat(w, l.fill(), right)
}

// PadNumber writes sign, prefix and digits aligned within the layout width.
// Zero padding goes between the prefix and the digits and only applies when no
// explicit alignment was requested.
func PadNumber(w Sink, sign, prefix, digits string, l Layout) {
	pad := l.Width - len(sign) - len(prefix) - len(digits)
	if pad <= 0 {
		writeNumber(w, sign, prefix, digits)
		return
	}
	if l.ZeroPad && l.Align == 0 {
		writeNumber(w, sign, prefix, "")
		Repeat(w, zeros[:1], pad)
		w.Write(digits)
		return
	}
	left, right := split(pad, l.Align)
	Repeat(w, l.fill(), left)
	writeNumber(w, sign, prefix, digits)
	Repeat(w, l.fill(), right)
}

// Repeat writes fill n times. A single space or zero is written in chunks
// cut from the preallocated runs.
func Repeat(w Sink, fill string, n int) {
	if n <= 0 || fill == "" {
		return
	}
	if len(fill) == 1 && (fill[0] == ' ' || fill[0] == '0') {
		run := spaces
		if fill[0] == '0' {
			run = zeros
		}
		for n > len(run) {
			w.Write(run)
			n -= len(run)
		}
		w.Write(run[:n])
		return
	}
	for ; n > 0; n-- {
		w.Write(fill)
	}
}

// TruncateText cuts s to at most n bytes without splitting a UTF-8 sequence.
func TruncateText(s string, n int) string {
	if n < 0 || n >= len(s) {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func (l Layout) fill() string {
	if l.Fill == "" {
		return spaces[:1]
	}
	return l.Fill
}

func writeNumber(w Sink, sign, prefix, digits string) {
	if sign != "" {
		w.Write(sign)
	}
	if prefix != "" {
		w.Write(prefix)
	}
	if digits != "" {
		w.Write(digits)
	}
}

func split(pad int, align byte) (int, int) {
	switch align {
	case CharAlignLeft:
		return 0, pad
	case CharAlignCenter:
		return pad / 2, pad - pad/2
	default:
		return pad, 0
	}
}

func isAlign(ch byte) bool {
	return ch == CharAlignLeft || ch == CharAlignRight || ch == CharAlignCenter
}
