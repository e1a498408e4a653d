package fmtxx

// Validate checks the syntax of a template without arguments: markers,
// escapes and, for the printf dialect, conversions. Argument indices are not
// checked. All problems are reported, joined.
func Validate(dialect Dialect, template string) error {
	s := session{
		engine:     defaultEngine,
		w:          &Discard{},
		dialect:    dialect,
		template:   template,
		strategy:   ErrorStrategyRemove,
		syntaxOnly: true,
	}
	switch dialect {
	case DialectBrace:
		s.runBrace()
	case DialectPrintf:
		s.runPrintf()
	default:
		return NewUnknownDialectError(dialect.String())
	}
	return s.result()
}

// CountDirectives returns how many directives a valid template contains.
// For the printf dialect this is the number of arguments it consumes.
func CountDirectives(dialect Dialect, template string) (int, error) {
	s := session{
		engine:     defaultEngine,
		w:          &Discard{},
		dialect:    dialect,
		template:   template,
		strategy:   ErrorStrategyThrow,
		syntaxOnly: true,
	}
	switch dialect {
	case DialectBrace:
		s.runBrace()
	case DialectPrintf:
		s.runPrintf()
	default:
		return 0, NewUnknownDialectError(dialect.String())
	}
	if err := s.result(); err != nil {
		return 0, err
	}
	return s.directives, nil
}
