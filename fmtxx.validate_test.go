package fmtxx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		template string
		errors   int
		kind     ErrorKind
	}{
		{"brace ok", DialectBrace, "{} {5} {{x}} {0:>8.2f}", 0, ErrorKindNone},
		{"brace bad", DialectBrace, "{a} } {", 3, ErrorKindMalformedTemplate},
		{"printf ok", DialectPrintf, "%d %-5s %% %08.3f %lld", 0, ErrorKindNone},
		{"printf bad conversion", DialectPrintf, "%y %d", 1, ErrorKindUnsupportedConversion},
		{"printf unterminated", DialectPrintf, "%d %", 1, ErrorKindMalformedTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.dialect, tt.template)
			assert.Equal(t, tt.kind, KindOf(err))
			switch tt.errors {
			case 0:
				assert.NoError(t, err)
			case 1:
				require.Error(t, err)
			default:
				var joined interface{ Unwrap() []error }
				require.True(t, errors.As(err, &joined))
				assert.Len(t, joined.Unwrap(), tt.errors)
			}
		})
	}
}

func TestValidate_UnknownDialect(t *testing.T) {
	err := Validate(Dialect("nope"), "{}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnknownDialect)
}

func TestCountDirectives(t *testing.T) {
	n, err := CountDirectives(DialectPrintf, "%d %s %%")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = CountDirectives(DialectBrace, "{} {{ {1:x}")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = CountDirectives(DialectBrace, "plain")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = CountDirectives(DialectBrace, "{")
	require.Error(t, err)
}
