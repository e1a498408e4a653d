// Package fmtxx formats typed values into text without reflection or hidden
// allocation.
//
// Two template dialects are supported. The brace dialect uses {} directives:
//
//	Hello, {}! You are {:>3} years old.
//
// The printf dialect uses C-style % directives:
//
//	%-8s|%05d|%.2f
//
// # Basic Usage
//
// Arguments are wrapped in typed constructors and written to a Writer:
//
//	s, err := fmtxx.Sformat("{} has {:#x} items", fmtxx.Str("box"), fmtxx.Int(255))
//	// s: "box has 0xff items"
//
//	buf := make([]byte, 64)
//	w, err := fmtxx.Format(fmtxx.NewFixedWriter(buf), "{1} {0}", fmtxx.Int(1), fmtxx.Int(2))
//	// w.View(): "2 1"
//
// # Brace Dialect
//
// A directive is {}, {N}, {:spec} or {N:spec}. {{ and }} write a single brace.
// The spec grammar is [code][sign][#][[fill]align][0][width][.precision], where
// code is a type letter such as x, e or s, sign is + or a space and align is
// one of < > ^. The code may also trail the spec, as in {:>8.2f}.
//
// # Printf Dialect
//
// A directive is %[flags][width][.precision][length]conversion. Length
// modifiers are accepted and ignored; %% writes a single percent sign.
//
// # Custom Types
//
// Types implementing Formatter are passed with Value:
//
//	func (m Money) FormatTo(w fmtxx.Writer, spec fmtxx.Spec) { ... }
//
//	fmtxx.Sformat("{:>10}", fmtxx.Value(Money(1234)))
//
// Built-in renderers can be replaced per engine with WithRenderer.
//
// # Error Handling
//
// The throw strategy is the default: formatting stops at the first bad
// directive and the error carries line and column metadata. KeepRaw and Remove
// continue past bad directives and return all errors joined:
//
//	engine, _ := fmtxx.New(
//	    fmtxx.WithErrorStrategy(fmtxx.ErrorStrategyKeepRaw),
//	    fmtxx.WithLogger(logger),
//	)
//
// KindOf classifies an error as MalformedTemplate, ArgumentIndexOutOfRange or
// UnsupportedConversion.
//
// # Catalogs
//
// Named templates can be kept in a Catalog (memory, YAML file or PostgreSQL)
// and rendered with Engine.Render.
package fmtxx
