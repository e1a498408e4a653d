package fmtxx

import (
	"math"
	"unsafe"
)

// Kind identifies which renderer an Arg dispatches to.
type Kind uint8

// Argument kinds
const (
	KindInvalid Kind = iota
	KindInt
	KindUint
	KindFloat32
	KindFloat64
	KindBool
	KindChar
	KindString
	KindPointer
	KindFormatter

	// KindCount is the number of kinds, usable as an array bound.
	KindCount
)

var kindNames = [KindCount]string{
	KindInvalid:   "invalid",
	KindInt:       "int",
	KindUint:      "uint",
	KindFloat32:   "float32",
	KindFloat64:   "float64",
	KindBool:      "bool",
	KindChar:      "char",
	KindString:    "string",
	KindPointer:   "pointer",
	KindFormatter: "formatter",
}

// String returns the kind name
func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return kindNames[KindInvalid]
}

// Formatter is implemented by types that render themselves.
type Formatter interface {
	FormatTo(w Writer, spec Spec)
}

// Signed matches every signed integer type, including named ones.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned matches every unsigned integer type, including named ones.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Floating matches both float types, including named ones.
type Floating interface {
	~float32 | ~float64
}

// Arg is a type-erased argument: a kind that selects the renderer and the
// value stored inline. Args are built with the typed constructors below, so a
// value without a renderer cannot be passed at all. The zero Arg renders
// nothing.
type Arg struct {
	kind Kind
	num  uint64
	str  string
	ptr  unsafe.Pointer
	fmtr Formatter
}

// Int wraps a signed integer. Named integer types, such as enumerations,
// render their underlying value.
func Int[T Signed](v T) Arg {
	return Arg{kind: KindInt, num: uint64(int64(v))}
}

// Uint wraps an unsigned integer.
func Uint[T Unsigned](v T) Arg {
	return Arg{kind: KindUint, num: uint64(v)}
}

// Float wraps a float, keeping its precision for shortest formatting.
func Float[T Floating](v T) Arg {
	if unsafe.Sizeof(v) == 4 {
		return Arg{kind: KindFloat32, num: uint64(math.Float32bits(float32(v)))}
	}
	return Arg{kind: KindFloat64, num: math.Float64bits(float64(v))}
}

// Bool wraps a boolean.
func Bool[T ~bool](v T) Arg {
	a := Arg{kind: KindBool}
	if bool(v) {
		a.num = 1
	}
	return a
}

// Char wraps a rune rendered as text. Use Int for its code point.
func Char(r rune) Arg {
	return Arg{kind: KindChar, num: uint64(uint32(r))}
}

// Str wraps a string.
func Str[T ~string](v T) Arg {
	return Arg{kind: KindString, str: string(v)}
}

// Bytes wraps a byte slice rendered as text. The slice is viewed, not copied,
// and must not change until the formatting call returns.
func Bytes[T ~[]byte](v T) Arg {
	b := []byte(v)
	if len(b) == 0 {
		return Arg{kind: KindString}
	}
	return Arg{kind: KindString, str: unsafe.String(unsafe.SliceData(b), len(b))}
}

// Ptr wraps a pointer rendered as an address.
func Ptr[T any](p *T) Arg {
	return Arg{kind: KindPointer, ptr: unsafe.Pointer(p)}
}

// Value wraps a Formatter. A nil Formatter renders nothing.
func Value(f Formatter) Arg {
	if f == nil {
		return Arg{}
	}
	return Arg{kind: KindFormatter, fmtr: f}
}

// Kind returns the argument kind.
func (a Arg) Kind() Kind {
	return a.kind
}

// Int64 returns the payload of a KindInt argument.
func (a Arg) Int64() int64 {
	return int64(a.num)
}

// Uint64 returns the payload of a KindUint argument.
func (a Arg) Uint64() uint64 {
	return a.num
}

// Float64 returns the payload of a KindFloat32 or KindFloat64 argument.
func (a Arg) Float64() float64 {
	if a.kind == KindFloat32 {
		return float64(math.Float32frombits(uint32(a.num)))
	}
	return math.Float64frombits(a.num)
}

// Bool returns the payload of a KindBool argument.
func (a Arg) Bool() bool {
	return a.num != 0
}

// Rune returns the payload of a KindChar argument.
func (a Arg) Rune() rune {
	return rune(uint32(a.num))
}

// Text returns the payload of a KindString argument.
func (a Arg) Text() string {
	return a.str
}

// Addr returns the payload of a KindPointer argument.
func (a Arg) Addr() uintptr {
	return uintptr(a.ptr)
}

// Formatter returns the payload of a KindFormatter argument.
func (a Arg) Formatter() Formatter {
	return a.fmtr
}
