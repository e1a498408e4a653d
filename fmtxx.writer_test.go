package fmtxx

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errWriteFailed = errors.New("write failed")

// failingWriter accepts limit bytes and then fails.
type failingWriter struct {
	limit int
	n     int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	room := f.limit - f.n
	if len(p) <= room {
		f.n += len(p)
		return len(p), nil
	}
	f.n += room
	return room, errWriteFailed
}

func TestFixedWriter(t *testing.T) {
	t.Run("keeps capacity minus one", func(t *testing.T) {
		buf := make([]byte, 6)
		w := NewFixedWriter(buf)
		assert.Equal(t, 5, w.Cap())

		w.Write("hello world")
		assert.Equal(t, 5, w.Len())
		assert.Equal(t, "hello", w.View())
		assert.Equal(t, []byte("hello"), w.Bytes())
		assert.Equal(t, []byte("hello\x00"), w.CString())
		assert.True(t, w.Truncated())
	})

	t.Run("sentinel follows content", func(t *testing.T) {
		buf := bytes.Repeat([]byte{'#'}, 8)
		w := NewFixedWriter(buf)
		assert.Equal(t, byte(0), buf[0])

		w.Write("ab")
		w.Write("c")
		assert.Equal(t, "abc", w.View())
		assert.Equal(t, byte(0), buf[3])
		assert.False(t, w.Truncated())
	})

	t.Run("clear keeps storage", func(t *testing.T) {
		buf := make([]byte, 4)
		w := NewFixedWriter(buf)
		w.Write("abcdef")
		require.True(t, w.Truncated())

		w.Clear()
		assert.Equal(t, 0, w.Len())
		assert.Equal(t, "", w.View())
		assert.False(t, w.Truncated())
		assert.Equal(t, byte(0), buf[0])

		w.Write("xy")
		assert.Equal(t, "xy", w.View())
	})

	t.Run("uses full capacity of the slice", func(t *testing.T) {
		buf := make([]byte, 0, 4)
		w := NewFixedWriter(buf)
		assert.Equal(t, 3, w.Cap())
	})

	t.Run("single byte holds nothing", func(t *testing.T) {
		w := NewFixedWriter(make([]byte, 1))
		w.Write("a")
		assert.Equal(t, 0, w.Len())
		assert.Equal(t, []byte{0}, w.CString())
		assert.True(t, w.Truncated())
	})

	t.Run("empty storage", func(t *testing.T) {
		w := NewFixedWriter(nil)
		w.Write("a")
		assert.Equal(t, 0, w.Cap())
		assert.Equal(t, "", w.View())
		assert.Nil(t, w.CString())
	})

	t.Run("truncation may split a multibyte sequence", func(t *testing.T) {
		w := NewFixedWriter(make([]byte, 2))
		w.Write("é")
		assert.Equal(t, 1, w.Len())
	})
}

func TestBufferWriter(t *testing.T) {
	w := NewBufferWriter(-1)
	w.Write("abc")
	w.Write("")
	w.Write("def")

	assert.Equal(t, "abcdef", w.View())
	assert.Equal(t, "abcdef", w.String())
	assert.Equal(t, []byte("abcdef"), w.Bytes())
	assert.Equal(t, 6, w.Len())

	s := w.String()
	w.Reset()
	w.Write("zz")
	assert.Equal(t, "abcdef", s)
	assert.Equal(t, "zz", w.View())
}

func TestStreamWriter(t *testing.T) {
	t.Run("forwards writes", func(t *testing.T) {
		var buf strings.Builder
		w := NewStreamWriter(&buf)
		w.Write("ab")
		w.Write("")
		w.Write("cd")

		assert.Equal(t, "abcd", buf.String())
		assert.Equal(t, int64(4), w.Count())
		assert.Equal(t, "", w.View())
		assert.NoError(t, w.Err())
	})

	t.Run("latches first error", func(t *testing.T) {
		out := &failingWriter{limit: 3}
		w := NewStreamWriter(out)
		w.Write("ab")
		w.Write("cd")
		w.Write("ef")

		assert.ErrorIs(t, w.Err(), errWriteFailed)
		assert.Equal(t, int64(3), w.Count())
		assert.Equal(t, 3, out.n)
	})
}

func TestDiscard(t *testing.T) {
	var d Discard
	_, err := Format(&d, "{:>10}|{}", Int(1), Str("abc"))
	require.NoError(t, err)
	assert.Equal(t, 14, d.Len())
	assert.Equal(t, "", d.View())
}

func TestSyncWriter(t *testing.T) {
	w := NewSyncWriter(NewBufferWriter(0))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				w.Locked(func(inner Writer) {
					_, _ = Format(inner, "[{}]", Int(j%10))
				})
			}
		}()
	}
	wg.Wait()

	view := w.View()
	assert.Len(t, view, 8*100*3)
	for i := 0; i < len(view); i += 3 {
		assert.Equal(t, byte('['), view[i])
		assert.Equal(t, byte(']'), view[i+2])
	}
}
