package fmtxx

import (
	"io"
	"strings"
	"sync"

	"github.com/itsatony/go-fmtxx/internal"
)

// Writer is the sink every formatting call writes into.
//
// Write appends s verbatim and never reports failure; a sink that cannot hold
// more output applies its own policy (truncation, error latching) and
// documents it. The span passed to Write may point into scratch storage that
// is reused after the call returns, so implementations must copy it.
//
// View returns everything written so far. The result is valid until the next
// Write.
type Writer interface {
	Write(s string)
	View() string
}

// FixedWriter writes into caller-supplied storage and never allocates.
//
// One byte of the storage is reserved for a NUL sentinel that always follows
// the last written byte. Writes that do not fit are truncated silently; use
// Truncated to find out whether that happened.
type FixedWriter struct {
	buf       []byte
	n         int
	truncated bool
}

// NewFixedWriter creates a FixedWriter over buf. A buffer of capacity N holds
// at most N-1 bytes of output. A zero-length buffer holds nothing.
func NewFixedWriter(buf []byte) *FixedWriter {
	w := &FixedWriter{buf: buf[:cap(buf)]}
	w.terminate()
	return w
}

// Write appends s, truncating whatever does not fit before the sentinel.
func (w *FixedWriter) Write(s string) {
	remaining := w.Cap() - w.n
	if len(s) > remaining {
		s = s[:remaining]
		w.truncated = true
	}
	w.n += copy(w.buf[w.n:], s)
	w.terminate()
}

// View returns the written content without the sentinel.
func (w *FixedWriter) View() string {
	return internal.View(w.buf[:w.n])
}

// Len returns the number of bytes written.
func (w *FixedWriter) Len() int {
	return w.n
}

// Cap returns how many bytes of output the writer can hold.
func (w *FixedWriter) Cap() int {
	if len(w.buf) == 0 {
		return 0
	}
	return len(w.buf) - 1
}

// Bytes returns the written content without the sentinel.
func (w *FixedWriter) Bytes() []byte {
	return w.buf[:w.n]
}

// CString returns the written content followed by the NUL sentinel.
// It returns nil for a writer without storage.
func (w *FixedWriter) CString() []byte {
	if len(w.buf) == 0 {
		return nil
	}
	return w.buf[:w.n+1]
}

// Truncated reports whether any write was cut short since the last Clear.
func (w *FixedWriter) Truncated() bool {
	return w.truncated
}

// Clear resets the length to zero and keeps the storage.
func (w *FixedWriter) Clear() {
	w.n = 0
	w.truncated = false
	w.terminate()
}

func (w *FixedWriter) terminate() {
	if w.n < len(w.buf) {
		w.buf[w.n] = 0
	}
}

// BufferWriter is a growable in-memory writer.
type BufferWriter struct {
	buf []byte
}

// NewBufferWriter creates a BufferWriter with room for capHint bytes.
func NewBufferWriter(capHint int) *BufferWriter {
	return &BufferWriter{buf: make([]byte, 0, max(capHint, 0))}
}

// Write appends s, growing the buffer as needed.
func (w *BufferWriter) Write(s string) {
	w.buf = append(w.buf, s...)
}

// View returns the written content without copying.
func (w *BufferWriter) View() string {
	return internal.View(w.buf)
}

// String returns a copy of the written content.
func (w *BufferWriter) String() string {
	return string(w.buf)
}

// Bytes returns the written content.
func (w *BufferWriter) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written.
func (w *BufferWriter) Len() int {
	return len(w.buf)
}

// Reset empties the buffer and keeps its storage.
func (w *BufferWriter) Reset() {
	w.buf = w.buf[:0]
}

// StreamWriter forwards writes to an io.Writer.
//
// The first error from the underlying writer is latched and returned by Err;
// later writes are dropped. Nothing is retained, so View is always empty.
type StreamWriter struct {
	out   io.Writer
	count int64
	err   error
}

// NewStreamWriter creates a StreamWriter over out.
func NewStreamWriter(out io.Writer) *StreamWriter {
	return &StreamWriter{out: out}
}

// Write forwards s unless an earlier write failed.
func (w *StreamWriter) Write(s string) {
	if w.err != nil || s == "" {
		return
	}
	n, err := io.WriteString(w.out, s)
	w.count += int64(n)
	if err != nil {
		w.err = err
	}
}

// View returns an empty string; stream output is not retained.
func (w *StreamWriter) View() string {
	return ""
}

// Count returns the number of bytes forwarded successfully.
func (w *StreamWriter) Count() int64 {
	return w.count
}

// Err returns the first error reported by the underlying writer.
func (w *StreamWriter) Err() error {
	return w.err
}

// Discard counts bytes and keeps nothing. Useful for measuring output size.
type Discard struct {
	n int
}

// Write counts s.
func (d *Discard) Write(s string) {
	d.n += len(s)
}

// View returns an empty string.
func (d *Discard) View() string {
	return ""
}

// Len returns the number of bytes written.
func (d *Discard) Len() int {
	return d.n
}

// SyncWriter serialises access to another writer. Each Write is atomic; a
// formatting call is not, so concurrent calls may interleave their pieces.
type SyncWriter struct {
	mu sync.Mutex
	w  Writer
}

// NewSyncWriter wraps w.
func NewSyncWriter(w Writer) *SyncWriter {
	return &SyncWriter{w: w}
}

// Write forwards s under the lock.
func (s *SyncWriter) Write(str string) {
	s.mu.Lock()
	s.w.Write(str)
	s.mu.Unlock()
}

// View returns a copy of the wrapped writer's content, taken under the lock.
func (s *SyncWriter) View() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Clone(s.w.View())
}

// Locked runs fn with exclusive access to the wrapped writer, so a whole
// formatting call can be made atomic.
func (s *SyncWriter) Locked(fn func(w Writer)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.w)
}
