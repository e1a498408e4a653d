package fmtxx

import (
	"strings"

	"github.com/itsatony/go-fmtxx/internal"
)

// runPrintf interprets the printf dialect. Arguments are consumed in order,
// one per directive, including directives that fail to resolve.
func (s *session) runPrintf() {
	src := s.template
	lit := 0
	argi := 0

	for i := 0; i < len(src); {
		next := strings.IndexByte(src[i:], internal.CharPercent)
		if next < 0 {
			break
		}
		i += next
		if lit < i {
			s.w.Write(src[lit:i])
		}

		if i+1 < len(src) && src[i+1] == internal.CharPercent {
			s.w.Write(src[i+1 : i+2])
			i += 2
			lit = i
			continue
		}

		d, err := internal.ScanPrintfDirective(src, i)
		if err != nil {
			resume, stop := s.failScan(err)
			if stop {
				return
			}
			i, lit = resume, resume
			continue
		}

		index := argi
		argi++

		ok, stop := s.resolve(index, d.Start, d.End)
		if stop {
			return
		}
		if ok {
			s.engine.registry.Invoke(s.w, s.args[index], specFromPrintf(d))
		}
		i, lit = d.End, d.End
	}

	if lit < len(src) {
		s.w.Write(src[lit:])
	}
}
