package fmtxx

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func render(fn func(w Writer)) string {
	w := NewBufferWriter(0)
	fn(w)
	return w.String()
}

func TestFormatInt(t *testing.T) {
	tests := []struct {
		spec     string
		value    int64
		expected string
	}{
		{"", 42, "42"},
		{"", -42, "-42"},
		{"", math.MinInt64, "-9223372036854775808"},
		{"d", 42, "42"},
		{"x", 255, "ff"},
		{"X", 255, "FF"},
		{"#x", 255, "0xff"},
		{"#X", 255, "0XFF"},
		{"#x", 0, "0"},
		{"x", -255, "-ff"},
		{"b", 5, "101"},
		{"#b", 5, "0b101"},
		{"o", 8, "10"},
		{"#o", 8, "010"},
		{"#o", 0, "0"},
		{"08", -42, "-0000042"},
		{"#010x", 255, "0x000000ff"},
		{">6", 42, "    42"},
		{"<6", 42, "42    "},
		{"^6", 42, "  42  "},
		{"*^7", 42, "**42***"},
		{"<06", 42, "42    "},
		{"+", 42, "+42"},
		{"+", -42, "-42"},
		{" ", 42, " 42"},
		{".5", 42, "00042"},
		{"8.5", 42, "   00042"},
		{"08.3", 7, "     007"},
		{".0", 0, ""},
		{"c", 65, "A"},
		{"c", 0x263A, "☺"},
		{"f", 3, "3.000000"},
		{"s", 12, "12"},
		{"3", 12345, "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got := render(func(w Writer) { FormatInt(w, tt.value, ParseSpec(tt.spec)) })
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatUint(t *testing.T) {
	tests := []struct {
		spec     string
		value    uint64
		expected string
	}{
		{"", math.MaxUint64, "18446744073709551615"},
		{"x", math.MaxUint64, "ffffffffffffffff"},
		{"+", 7, "+7"},
		{"05", 7, "00007"},
		{"c", 'z', "z"},
		{"#b", 2, "0b10"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got := render(func(w Writer) { FormatUint(w, tt.value, ParseSpec(tt.spec)) })
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		spec     string
		value    float64
		expected string
	}{
		{"", 3.14159, "3.14159"},
		{"", 1e21, "1e+21"},
		{"", -0.5, "-0.5"},
		{"f", 3.14159, "3.141590"},
		{".2f", 3.14159, "3.14"},
		{".0f", 2.5, "2"},
		{"e", 1234.5, "1.234500e+03"},
		{"E", 1234.5, "1.234500E+03"},
		{".3", 3.14159, "3.14"},
		{"G", 1e-10, "1E-10"},
		{"08.2f", -3.14159, "-0003.14"},
		{"+.1f", 2, "+2.0"},
		{" .1f", 2, " 2.0"},
		{"<8.1f", 2, "2.0     "},
		{"a", 1, "0x1p+00"},
		{"d", 1.5, "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got := render(func(w Writer) { FormatFloat64(w, tt.value, ParseSpec(tt.spec)) })
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatFloat_Special(t *testing.T) {
	assert.Equal(t, "NaN", render(func(w Writer) { FormatFloat64(w, math.NaN(), Spec{}) }))
	assert.Equal(t, "Inf", render(func(w Writer) { FormatFloat64(w, math.Inf(1), Spec{}) }))
	assert.Equal(t, "-Inf", render(func(w Writer) { FormatFloat64(w, math.Inf(-1), Spec{}) }))
	assert.Equal(t, "+Inf", render(func(w Writer) { FormatFloat64(w, math.Inf(1), ParseSpec("+")) }))
	assert.Equal(t, "     Inf", render(func(w Writer) { FormatFloat64(w, math.Inf(1), ParseSpec("08")) }))
	assert.Equal(t, "-0", render(func(w Writer) { FormatFloat64(w, math.Copysign(0, -1), Spec{}) }))
}

func TestFormatFloat32_Shortest(t *testing.T) {
	assert.Equal(t, "0.1", render(func(w Writer) { FormatFloat32(w, 0.1, Spec{}) }))
	assert.Equal(t, "0.100000", render(func(w Writer) { FormatFloat32(w, 0.1, ParseSpec("f")) }))
	assert.NotEqual(t, "0.1", render(func(w Writer) { FormatFloat64(w, float64(float32(0.1)), Spec{}) }))
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "true", render(func(w Writer) { FormatBool(w, true, Spec{}) }))
	assert.Equal(t, "false", render(func(w Writer) { FormatBool(w, false, Spec{}) }))
	assert.Equal(t, "1", render(func(w Writer) { FormatBool(w, true, ParseSpec("d")) }))
	assert.Equal(t, "0", render(func(w Writer) { FormatBool(w, false, ParseSpec("x")) }))
	assert.Equal(t, " false", render(func(w Writer) { FormatBool(w, false, ParseSpec(">6")) }))
	assert.Equal(t, "tr", render(func(w Writer) { FormatBool(w, true, ParseSpec(".2")) }))
}

func TestFormatChar(t *testing.T) {
	assert.Equal(t, "é", render(func(w Writer) { FormatChar(w, 'é', Spec{}) }))
	assert.Equal(t, "65", render(func(w Writer) { FormatChar(w, 'A', ParseSpec("d")) }))
	assert.Equal(t, "41", render(func(w Writer) { FormatChar(w, 'A', ParseSpec("x")) }))
	assert.Equal(t, "  x  ", render(func(w Writer) { FormatChar(w, 'x', ParseSpec("^5")) }))
	assert.Equal(t, "�", render(func(w Writer) { FormatChar(w, -1, Spec{}) }))
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "hello", render(func(w Writer) { FormatString(w, "hello", Spec{}) }))
	assert.Equal(t, "hel", render(func(w Writer) { FormatString(w, "hello", ParseSpec(".3")) }))
	assert.Equal(t, "hi      ", render(func(w Writer) { FormatString(w, "hi", ParseSpec("<8")) }))
	assert.Equal(t, "hi      ", render(func(w Writer) { FormatString(w, "hi", ParseSpec("-8")) }))
	assert.Equal(t, "   hi", render(func(w Writer) { FormatString(w, "hi", ParseSpec("5")) }))
	assert.Equal(t, "", render(func(w Writer) { FormatString(w, "é", ParseSpec(".1")) }))
	assert.Equal(t, "ü  ", render(func(w Writer) { FormatString(w, "ü", ParseSpec("<3")) }))
	assert.Equal(t, "ab", render(func(w Writer) { FormatString(w, "ab", ParseSpec("1")) }))
	assert.Equal(t, strings.Repeat(" ", 200)+"x", render(func(w Writer) { FormatString(w, "x", ParseSpec("201")) }))
}

func TestFormatPointer(t *testing.T) {
	assert.Equal(t, "0x0", render(func(w Writer) { FormatPointer(w, 0, Spec{}) }))
	assert.Equal(t, "0xdeadbeef", render(func(w Writer) { FormatPointer(w, 0xdeadbeef, Spec{}) }))
	assert.Equal(t, "0xDEADBEEF", render(func(w Writer) { FormatPointer(w, 0xdeadbeef, ParseSpec("X")) }))
	assert.Equal(t, "  0xdeadbeef", render(func(w Writer) { FormatPointer(w, 0xdeadbeef, ParseSpec("12")) }))

	x := 1
	got := render(func(w Writer) { defaultEngine.Registry().Invoke(w, Ptr(&x), Spec{}) })
	assert.True(t, strings.HasPrefix(got, "0x"))
	assert.Greater(t, len(got), 3)
}

func TestPad(t *testing.T) {
	assert.Equal(t, "--ok", render(func(w Writer) { Pad(w, "ok", ParseSpec("->4")) }))
	assert.Equal(t, "ok", render(func(w Writer) { Pad(w, "ok", Spec{}) }))
	assert.Equal(t, "o  ", render(func(w Writer) { Pad(w, "ok", ParseSpec("<3.1")) }))
}
