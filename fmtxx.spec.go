package fmtxx

import (
	"github.com/itsatony/go-fmtxx/internal"
)

// SignPolicy controls how non-negative numbers are signed.
type SignPolicy uint8

const (
	// SignDefault prints a sign for negative numbers only
	SignDefault SignPolicy = iota
	// SignAlways prints '+' for non-negative numbers
	SignAlways
	// SignSpace prints a space for non-negative numbers
	SignSpace
)

// Spec is the per-directive format specification handed to renderers.
//
// Code, Sign and Alternate are the hints every renderer understands. Extra is
// the residual the renderer interprets itself (fill, alignment, width,
// precision); Raw is the whole specification text. Both are sub-strings of
// the template, never copies. The zero Spec means "render naturally".
type Spec struct {
	Code      byte
	Sign      SignPolicy
	Alternate bool
	Extra     string
	Raw       string
}

// layout parses the residual into fill, alignment, width and precision.
func (s Spec) layout() internal.Layout {
	return internal.ParseLayout(s.Extra)
}

// ParseSpec parses a brace-dialect specification:
//
//	spec := [code] [sign] ["#"] extra
//
// code is a leading type-code letter (one of "bcdeEfFgGiopsuxXaA"), sign is '+'
// or ' ', '#' requests the alternate form. When there is no leading code and
// extra ends with a type-code letter, that letter becomes the code, so both
// "x#08" and "#08x" select hex. A leading letter is always read as the code,
// never as a fill character.
func ParseSpec(s string) Spec {
	spec := Spec{Raw: s}
	pos := 0

	if pos < len(s) && internal.IsTypeCode(s[pos]) {
		spec.Code = s[pos]
		pos++
	}

	if pos < len(s) {
		switch s[pos] {
		case internal.CharFlagPlus:
			spec.Sign = SignAlways
			pos++
		case internal.CharFlagSpace:
			spec.Sign = SignSpace
			pos++
		}
	}

	if pos < len(s) && s[pos] == internal.CharFlagAlternate {
		spec.Alternate = true
		pos++
	}

	extra := s[pos:]
	if spec.Code == 0 && len(extra) > 0 && internal.IsTypeCode(extra[len(extra)-1]) {
		spec.Code = extra[len(extra)-1]
		extra = extra[:len(extra)-1]
	}
	spec.Extra = extra
	return spec
}

// specFromPrintf builds a Spec from a scanned printf directive.
// 'v' maps to the natural rendering.
func specFromPrintf(d internal.PrintfDirective) Spec {
	spec := Spec{
		Code:      d.Conv,
		Alternate: d.Alternate,
		Extra:     d.Extra,
		Raw:       d.Raw,
	}
	if spec.Code == 'v' {
		spec.Code = 0
	}
	switch d.Sign {
	case internal.CharFlagPlus:
		spec.Sign = SignAlways
	case internal.CharFlagSpace:
		spec.Sign = SignSpace
	}
	return spec
}
