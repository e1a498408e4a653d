package fmtxx

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/itsatony/go-fmtxx/internal"
)

// Number prefixes for the alternate form
const (
	prefixHexLower = "0x"
	prefixHexUpper = "0X"
	prefixOctal    = "0"
	prefixBinary   = "0b"
)

// Sign strings
const (
	signMinus = "-"
	signPlus  = "+"
	signSpace = " "
)

// Boolean texts
const (
	textTrue  = "true"
	textFalse = "false"
)

// FormatInt renders a signed integer.
//
// Codes d, i and u (or none) render decimal; x, X, o and b render hexadecimal,
// octal and binary; c renders the value as a character; float codes render it
// as a float. Precision is the minimum number of digits.
func FormatInt(w Writer, v int64, spec Spec) {
	switch {
	case spec.Code == 'c':
		FormatChar(w, rune(v), spec.withoutCode())
		return
	case isFloatCode(spec.Code):
		FormatFloat64(w, float64(v), spec)
		return
	}
	sign := signFor(spec.Sign)
	mag := uint64(v)
	if v < 0 {
		sign = signMinus
		mag = -mag
	}
	formatInteger(w, sign, mag, spec)
}

// FormatUint renders an unsigned integer with the same codes as FormatInt.
func FormatUint(w Writer, v uint64, spec Spec) {
	switch {
	case spec.Code == 'c':
		FormatChar(w, rune(v), spec.withoutCode())
		return
	case isFloatCode(spec.Code):
		FormatFloat64(w, float64(v), spec)
		return
	}
	formatInteger(w, signFor(spec.Sign), v, spec)
}

// FormatFloat64 renders a float64.
//
// Codes f and e default to six digits of precision; g (or no code) renders the
// shortest representation that round-trips; a renders hexadecimal. Upper-case
// codes use upper-case exponents and digits.
func FormatFloat64(w Writer, v float64, spec Spec) {
	formatFloat(w, v, 64, spec)
}

// FormatFloat32 renders a float32. Shortest forms use float32 precision, so
// 0.1 renders as "0.1" rather than its float64 widening.
func FormatFloat32(w Writer, v float32, spec Spec) {
	formatFloat(w, float64(v), 32, spec)
}

// FormatBool renders "true" or "false"; integer codes render 1 or 0.
func FormatBool(w Writer, v bool, spec Spec) {
	if isIntegerCode(spec.Code) {
		var n uint64
		if v {
			n = 1
		}
		FormatUint(w, n, spec)
		return
	}
	text := textFalse
	if v {
		text = textTrue
	}
	formatText(w, text, spec.layout())
}

// FormatChar renders a rune as UTF-8 text; integer codes render its code point.
func FormatChar(w Writer, r rune, spec Spec) {
	if isIntegerCode(spec.Code) {
		FormatInt(w, int64(r), spec)
		return
	}
	s := internal.GetScratch()
	buf := utf8.AppendRune(s[:0], r)
	internal.PadText(w, internal.View(buf), spec.layout())
	internal.PutScratch(s)
}

// FormatString renders text. Precision truncates to that many bytes without
// splitting a UTF-8 sequence.
func FormatString(w Writer, v string, spec Spec) {
	formatText(w, v, spec.layout())
}

// FormatPointer renders an address as "0x" followed by hex digits; code X
// selects upper-case digits. A nil pointer renders "0x0".
func FormatPointer(w Writer, addr uintptr, spec Spec) {
	s := internal.GetScratch()
	buf := strconv.AppendUint(s[:0], uint64(addr), 16)
	if spec.Code == 'X' {
		upper(buf)
	}
	internal.PadNumber(w, "", prefixHexLower, internal.View(buf), spec.layout())
	internal.PutScratch(s)
}

// Pad writes text honouring the width, fill, alignment and precision in spec.
// Formatter implementations use it to lay out their own output.
func Pad(w Writer, text string, spec Spec) {
	formatText(w, text, spec.layout())
}

func formatText(w Writer, text string, l internal.Layout) {
	if l.HasPrecision() {
		text = internal.TruncateText(text, l.Precision)
	}
	internal.PadText(w, text, l)
}

func formatInteger(w Writer, sign string, mag uint64, spec Spec) {
	l := spec.layout()
	base := 10
	prefix := ""
	switch spec.Code {
	case 'x':
		base, prefix = 16, prefixHexLower
	case 'X':
		base, prefix = 16, prefixHexUpper
	case 'o':
		base, prefix = 8, prefixOctal
	case 'b':
		base, prefix = 2, prefixBinary
	}
	if !spec.Alternate || (mag == 0 && spec.Code != 'o') {
		prefix = ""
	}

	s := internal.GetScratch()
	buf := s[:0]
	if l.HasPrecision() {
		// an explicit precision overrides zero padding
		l.ZeroPad = false
		digits := countDigits(mag, base)
		if mag == 0 && l.Precision == 0 {
			digits = 0
		}
		for i := digits; i < l.Precision; i++ {
			buf = append(buf, '0')
		}
		if digits > 0 {
			buf = strconv.AppendUint(buf, mag, base)
		}
	} else {
		buf = strconv.AppendUint(buf, mag, base)
	}
	if spec.Code == 'X' {
		upper(buf)
	}
	if prefix == prefixOctal && len(buf) > 0 && buf[0] == '0' {
		prefix = ""
	}
	internal.PadNumber(w, sign, prefix, internal.View(buf), l)
	internal.PutScratch(s)
}

func formatFloat(w Writer, v float64, bitSize int, spec Spec) {
	l := spec.layout()
	var conv byte = 'g'
	prec := -1
	switch spec.Code {
	case 'f', 'F':
		conv, prec = 'f', 6
	case 'e', 'E':
		conv, prec = spec.Code, 6
	case 'g', 'G':
		conv = spec.Code
	case 'a':
		conv = 'x'
	case 'A':
		conv = 'X'
	}
	if l.HasPrecision() {
		prec = l.Precision
	}

	sign := signFor(spec.Sign)
	if math.Signbit(v) {
		sign = signMinus
		v = -v
	}

	s := internal.GetScratch()
	var buf []byte
	switch {
	case math.IsNaN(v):
		sign = ""
		l.ZeroPad = false
		buf = append(s[:0], "NaN"...)
	case math.IsInf(v, 0):
		l.ZeroPad = false
		buf = append(s[:0], "Inf"...)
	default:
		buf = strconv.AppendFloat(s[:0], v, conv, prec, bitSize)
	}
	internal.PadNumber(w, sign, "", internal.View(buf), l)
	internal.PutScratch(s)
}

func (s Spec) withoutCode() Spec {
	s.Code = 0
	return s
}

func signFor(p SignPolicy) string {
	switch p {
	case SignAlways:
		return signPlus
	case SignSpace:
		return signSpace
	default:
		return ""
	}
}

func isIntegerCode(c byte) bool {
	switch c {
	case 'd', 'i', 'u', 'x', 'X', 'o', 'b':
		return true
	}
	return false
}

func isFloatCode(c byte) bool {
	switch c {
	case 'e', 'E', 'f', 'F', 'g', 'G', 'a', 'A':
		return true
	}
	return false
}

func countDigits(v uint64, base int) int {
	n := 1
	for v >= uint64(base) {
		v /= uint64(base)
		n++
	}
	return n
}

func upper(b []byte) {
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
}
