package fmtxx

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// countingFormatter records how often it is rendered.
type countingFormatter struct {
	calls int
}

func (c *countingFormatter) FormatTo(w Writer, spec Spec) {
	c.calls++
	w.Write("*")
}

// point renders itself through the package's own entry points.
type point struct {
	x, y int
}

func (p point) FormatTo(w Writer, spec Spec) {
	if spec.Alternate {
		_, _ = Format(w, "<{}|{}>", Int(p.x), Int(p.y))
		return
	}
	_, _ = Format(w, "({}, {})", Int(p.x), Int(p.y))
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
)

func TestFormat_Brace(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []Arg
		expected string
	}{
		{"empty template", "", nil, ""},
		{"plain text", "plain text", nil, "plain text"},
		{"sequential", "{} + {} = {}", []Arg{Int(2), Int(3), Int(5)}, "2 + 3 = 5"},
		{"explicit reorder", "{1} {0}", []Arg{Str("a"), Str("b")}, "b a"},
		{"escapes", "{{literal}}", nil, "{literal}"},
		{"escape next to directive", "{{{}}}", []Arg{Int(7)}, "{7}"},
		{"explicit then implicit", "{1} {}", []Arg{Str("a"), Str("b")}, "b b"},
		{"implicit around explicit", "{} {0} {}", []Arg{Str("a"), Str("b"), Str("c")}, "a a c"},
		{"repeated explicit", "{0}{0}{0}", []Arg{Char('x')}, "xxx"},
		{"right aligned", "{0:>5}|", []Arg{Int(42)}, "   42|"},
		{"default alignment", "[{:5}]", []Arg{Str("ab")}, "[   ab]"},
		{"left aligned fill", "{:*<6}", []Arg{Str("ab")}, "ab****"},
		{"center", "{:^6}", []Arg{Int(42)}, "  42  "},
		{"hex", "{:x}", []Arg{Int(255)}, "ff"},
		{"hex trailing code", "{:>10x}", []Arg{Int(255)}, "        ff"},
		{"alternate hex", "{:#x}", []Arg{Uint(uint8(255))}, "0xff"},
		{"zero padded float", "{:08.3f}", []Arg{Float(3.14159)}, "0003.142"},
		{"zero padded signed float", "{:+08.2f}", []Arg{Float(-1.5)}, "-0001.50"},
		{"signed", "{:+}", []Arg{Int(3)}, "+3"},
		{"bool", "{} {}", []Arg{Bool(true), Bool(false)}, "true false"},
		{"bool as number", "{:d}", []Arg{Bool(true)}, "1"},
		{"char", "{}", []Arg{Char('é')}, "é"},
		{"bytes", "{}", []Arg{Bytes([]byte("raw"))}, "raw"},
		{"named integer", "{} {}", []Arg{Int(levelInfo), Int(levelWarn)}, "1 2"},
		{"formatter", "p={}", []Arg{Value(point{1, 2})}, "p=(1, 2)"},
		{"formatter spec", "p={:#}", []Arg{Value(point{1, 2})}, "p=<1|2>"},
		{"zero arg", "[{}]", []Arg{{}}, "[]"},
		{"nil formatter", "[{}]", []Arg{Value(nil)}, "[]"},
		{"nil pointer", "{}", []Arg{Ptr[int](nil)}, "0x0"},
		{"multibyte literal", "héllo {} wörld", []Arg{Int(1)}, "héllo 1 wörld"},
		{"unused args", "{}", []Arg{Int(1), Int(2)}, "1"},
		{"spec with colon", "{:>5:}", []Arg{Str("a")}, "    a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Format(NewBufferWriter(0), tt.template, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, w.String())
		})
	}
}

func TestFormat_Idempotent(t *testing.T) {
	template := "{} is {:>4} and {1:x}"
	args := []Arg{Str("n"), Int(255)}

	first, err := Sformat(template, args...)
	require.NoError(t, err)
	second, err := Sformat(template, args...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "n is  255 and ff", first)
}

func TestFormat_ReturnsSameWriter(t *testing.T) {
	buf := NewBufferWriter(16)
	w, err := Format(buf, "{}", Int(1))
	require.NoError(t, err)
	assert.Same(t, buf, w)
}

func TestFormat_FixedWriterTruncates(t *testing.T) {
	storage := make([]byte, 8)
	w, err := Format(NewFixedWriter(storage), "{} {}", Str("hello"), Str("world"))
	require.NoError(t, err)

	assert.Equal(t, 7, w.Len())
	assert.Equal(t, "hello w", w.View())
	assert.True(t, w.Truncated())
	assert.Equal(t, byte(0), storage[7])
}

func TestFormat_Errors(t *testing.T) {
	tests := []struct {
		name      string
		template  string
		args      []Arg
		kind      ErrorKind
		msg       string
		written   string
		offset    string
		directive string
	}{
		{"index out of range", "x{5}", []Arg{Int(1), Int(2), Int(3)}, ErrorKindArgumentIndexOutOfRange, ErrMsgArgumentIndex, "x", "1", ""},
		{"implicit past end", "{} {}", []Arg{Int(1)}, ErrorKindArgumentIndexOutOfRange, ErrMsgArgumentIndex, "1 ", "3", ""},
		{"no args", "{}", nil, ErrorKindArgumentIndexOutOfRange, ErrMsgArgumentIndex, "", "0", ""},
		{"unterminated", "abc {", nil, ErrorKindMalformedTemplate, ErrMsgUnterminatedDirective, "abc ", "4", "{"},
		{"unterminated index", "ab {0", nil, ErrorKindMalformedTemplate, ErrMsgUnterminatedDirective, "ab ", "3", "{0"},
		{"unterminated spec", "{0:>5", nil, ErrorKindMalformedTemplate, ErrMsgUnterminatedDirective, "", "0", "{0:>5"},
		{"unexpected char", "a{x}b", []Arg{Int(1)}, ErrorKindMalformedTemplate, ErrMsgUnexpectedChar, "a", "2", "{x}"},
		{"stray close", "a } b", nil, ErrorKindMalformedTemplate, ErrMsgStrayMarker, "a ", "2", "}"},
		{"stray close at end", "a}", nil, ErrorKindMalformedTemplate, ErrMsgStrayMarker, "a", "1", "}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewBufferWriter(0)
			err := defaultEngine.Format(w, tt.template, tt.args...)
			require.Error(t, err)

			assert.Equal(t, tt.kind, KindOf(err))
			assert.Contains(t, err.Error(), tt.msg)
			assert.Equal(t, tt.written, w.String())

			var customErr *cuserr.CustomError
			require.True(t, errors.As(err, &customErr))

			offset, ok := customErr.GetMetadata(MetaKeyOffset)
			assert.True(t, ok)
			assert.Equal(t, tt.offset, offset)

			dialect, ok := customErr.GetMetadata(MetaKeyDialect)
			assert.True(t, ok)
			assert.Equal(t, DialectBrace.String(), dialect)

			if tt.directive != "" {
				directive, ok := customErr.GetMetadata(MetaKeyDirective)
				assert.True(t, ok)
				assert.Equal(t, tt.directive, directive)
			}
		})
	}
}

func TestFormat_IndexOutOfRangeSkipsRenderer(t *testing.T) {
	c := &countingFormatter{}
	args := []Arg{Value(c), Value(c), Value(c)}

	w := NewBufferWriter(0)
	err := defaultEngine.Format(w, "x{5}", args...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrArgumentIndexOutOfRange))
	assert.Equal(t, 0, c.calls)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	index, ok := customErr.GetMetadata(MetaKeyIndex)
	assert.True(t, ok)
	assert.Equal(t, "5", index)
	count, ok := customErr.GetMetadata(MetaKeyCount)
	assert.True(t, ok)
	assert.Equal(t, "3", count)
}

func TestFormat_OneRendererCallPerDirective(t *testing.T) {
	c := &countingFormatter{}
	out, err := Sformat("{}-{0}-{}", Value(c), Int(9), Value(c))
	require.NoError(t, err)
	assert.Equal(t, "*-*-*", out)
	assert.Equal(t, 3, c.calls)
}

func TestFormat_ErrorStrategies(t *testing.T) {
	template := "a {5} b {x} c } d"
	args := []Arg{Int(1)}

	t.Run("throw stops at first error", func(t *testing.T) {
		engine := MustNew(WithErrorStrategy(ErrorStrategyThrow))
		w := NewBufferWriter(0)
		err := engine.Format(w, template, args...)
		require.Error(t, err)
		assert.Equal(t, "a ", w.String())
		assert.Equal(t, ErrorKindArgumentIndexOutOfRange, KindOf(err))
	})

	t.Run("keepraw writes directives verbatim", func(t *testing.T) {
		engine := MustNew(WithErrorStrategy(ErrorStrategyKeepRaw))
		w := NewBufferWriter(0)
		err := engine.Format(w, template, args...)
		require.Error(t, err)
		assert.Equal(t, template, w.String())
		assert.True(t, errors.Is(err, ErrArgumentIndexOutOfRange))
		assert.True(t, errors.Is(err, ErrMalformedTemplate))
		assert.Equal(t, ErrorKindMalformedTemplate, KindOf(err))
	})

	t.Run("remove drops directives", func(t *testing.T) {
		engine := MustNew(WithErrorStrategy(ErrorStrategyRemove))
		w := NewBufferWriter(0)
		err := engine.Format(w, template, args...)
		require.Error(t, err)
		assert.Equal(t, "a  b  c  d", w.String())

		var joined interface{ Unwrap() []error }
		require.True(t, errors.As(err, &joined))
		assert.Len(t, joined.Unwrap(), 3)
	})

	t.Run("single error is returned unjoined", func(t *testing.T) {
		engine := MustNew(WithErrorStrategy(ErrorStrategyRemove))
		w := NewBufferWriter(0)
		err := engine.Format(w, "{} {}", Int(1))
		require.Error(t, err)
		assert.Equal(t, "1 ", w.String())

		var customErr *cuserr.CustomError
		assert.True(t, errors.As(err, &customErr))
	})
}

func TestFormat_Logging(t *testing.T) {
	t.Run("debug start and end", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		engine := MustNew(WithLogger(zap.New(core)))

		require.NoError(t, engine.Format(NewBufferWriter(0), "{}", Int(1)))

		assert.Equal(t, 1, logs.FilterMessage(LogMsgFormatStart).Len())
		assert.Equal(t, 1, logs.FilterMessage(LogMsgFormatEnd).Len())
		assert.Equal(t, 1, logs.FilterMessage(LogMsgEngineCreated).Len())
	})

	t.Run("warns for swallowed errors", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		engine := MustNew(WithLogger(zap.New(core)), WithErrorStrategy(ErrorStrategyKeepRaw))

		err := engine.Format(NewBufferWriter(0), "{5} {x}")
		require.Error(t, err)

		found := 0
		for _, entry := range logs.All() {
			if entry.Message == LogMsgDirectiveFailed {
				found++
			}
		}
		assert.Equal(t, 2, found)
	})

	t.Run("throw does not warn", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		engine := MustNew(WithLogger(zap.New(core)))

		err := engine.Format(NewBufferWriter(0), "{5}")
		require.Error(t, err)
		assert.Equal(t, 0, logs.Len())
	})
}

func TestEngine_Execute(t *testing.T) {
	engine := MustNew()

	t.Run("brace", func(t *testing.T) {
		w := NewBufferWriter(0)
		require.NoError(t, engine.Execute(w, DialectBrace, "{}", Int(1)))
		assert.Equal(t, "1", w.String())
	})

	t.Run("printf", func(t *testing.T) {
		w := NewBufferWriter(0)
		require.NoError(t, engine.Execute(w, DialectPrintf, "%d", Int(1)))
		assert.Equal(t, "1", w.String())
	})

	t.Run("unknown dialect", func(t *testing.T) {
		err := engine.Execute(NewBufferWriter(0), Dialect("jinja"), "{}")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnknownDialect)
	})
}

func TestEngine_WithRenderer(t *testing.T) {
	yesNo := func(w Writer, a Arg, spec Spec) {
		if a.Bool() {
			Pad(w, "yes", spec)
			return
		}
		Pad(w, "no", spec)
	}

	t.Run("overrides kind", func(t *testing.T) {
		engine, err := New(WithRenderer(KindBool, yesNo))
		require.NoError(t, err)

		w := NewBufferWriter(0)
		require.NoError(t, engine.Format(w, "{} {:>4} {}", Bool(true), Bool(false), Int(3)))
		assert.Equal(t, "yes   no 3", w.String())

		// the default engine is unaffected
		out, err := Sformat("{}", Bool(true))
		require.NoError(t, err)
		assert.Equal(t, "true", out)
	})

	t.Run("rejects nil thunk", func(t *testing.T) {
		_, err := New(WithRenderer(KindInt, nil))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrRegistry))
		assert.Contains(t, err.Error(), ErrMsgNilThunk)
	})

	t.Run("rejects fixed kinds", func(t *testing.T) {
		for _, kind := range []Kind{KindInvalid, KindFormatter, KindCount} {
			_, err := New(WithRenderer(kind, yesNo))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrRegistry))

			var customErr *cuserr.CustomError
			require.True(t, errors.As(err, &customErr))
			name, ok := customErr.GetMetadata(MetaKeyKind)
			assert.True(t, ok)
			assert.Equal(t, kind.String(), name)
		}
	})

	t.Run("must new panics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNew(WithRenderer(KindFormatter, yesNo))
		})
	})
}

func TestEngine_Accessors(t *testing.T) {
	engine := MustNew(WithErrorStrategy(ErrorStrategyRemove))
	assert.Equal(t, ErrorStrategyRemove, engine.ErrorStrategy())
	assert.NotNil(t, engine.Registry())
}
