package fmtxx

import (
	"errors"
	"strings"

	"github.com/itsatony/go-fmtxx/internal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// braceMarkers are the bytes that end a literal run in the brace dialect.
const braceMarkers = "{}"

// session holds the state of one interpreter run. It lives on the stack of the
// calling method.
type session struct {
	engine   *Engine
	w        Writer
	dialect  Dialect
	template string
	args     []Arg
	errs     []error

	strategy ErrorStrategy

	// syntaxOnly skips argument resolution and rendering.
	syntaxOnly bool
	directives int
}

// fail records err for the directive raw. It reports whether the run must stop.
func (s *session) fail(err error, raw string) bool {
	s.errs = append(s.errs, err)
	switch s.strategy {
	case ErrorStrategyKeepRaw:
		s.w.Write(raw)
	case ErrorStrategyRemove:
	default:
		return true
	}
	if ce := s.engine.logger.Check(zapcore.WarnLevel, LogMsgDirectiveFailed); ce != nil {
		ce.Write(
			zap.String(LogFieldDialect, s.dialect.String()),
			zap.String(LogFieldStrategy, s.strategy.String()),
			zap.Error(err),
		)
	}
	return false
}

// failScan converts a scanner error and records it. It returns the offset to
// resume at and whether the run must stop.
func (s *session) failScan(err error) (int, bool) {
	var scanErr *internal.ScanError
	if !errors.As(err, &scanErr) {
		s.errs = append(s.errs, err)
		return len(s.template), true
	}
	raw := s.template[scanErr.Start:scanErr.End]
	return scanErr.End, s.fail(fromScanError(s.dialect, s.template, scanErr), raw)
}

// resolve checks index against the argument list. It reports whether the
// directive can be rendered and whether the run must stop.
func (s *session) resolve(index, start, end int) (bool, bool) {
	s.directives++
	if s.syntaxOnly {
		return false, false
	}
	if index < len(s.args) {
		return true, false
	}
	err := NewArgumentIndexError(s.dialect, s.template, start, index, len(s.args))
	return false, s.fail(err, s.template[start:end])
}

func (s *session) result() error {
	switch len(s.errs) {
	case 0:
		return nil
	case 1:
		return s.errs[0]
	default:
		return errors.Join(s.errs...)
	}
}

// runBrace interprets the brace dialect in a single left-to-right pass.
// The implicit cursor advances once per directive; an explicit index selects
// an argument without moving it.
func (s *session) runBrace() {
	src := s.template
	lit := 0
	cursor := 0

	for i := 0; i < len(src); {
		next := strings.IndexAny(src[i:], braceMarkers)
		if next < 0 {
			break
		}
		i += next
		if lit < i {
			s.w.Write(src[lit:i])
		}

		// escapes: "{{" and "}}" write the second marker
		if i+1 < len(src) && src[i+1] == src[i] {
			s.w.Write(src[i+1 : i+2])
			i += 2
			lit = i
			continue
		}

		d, err := internal.ScanBraceDirective(src, i)
		if err != nil {
			resume, stop := s.failScan(err)
			if stop {
				return
			}
			i, lit = resume, resume
			continue
		}

		index := cursor
		if d.Explicit {
			index = d.Index
		}
		cursor++

		ok, stop := s.resolve(index, d.Start, d.End)
		if stop {
			return
		}
		if ok {
			s.engine.registry.Invoke(s.w, s.args[index], ParseSpec(d.Spec))
		}
		i, lit = d.End, d.End
	}

	if lit < len(src) {
		s.w.Write(src[lit:])
	}
}
