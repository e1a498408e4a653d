package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	fmtxx "github.com/itsatony/go-fmtxx"
	"gopkg.in/yaml.v3"
)

// argList collects repeated -a flags.
type argList []string

func (l *argList) String() string {
	return strings.Join(*l, ",")
}

func (l *argList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// parseArg converts a kind:value string into a typed argument. A value whose
// prefix is not a known kind is taken whole as a string.
func parseArg(raw string) (fmtxx.Arg, error) {
	kind, value, found := strings.Cut(raw, ArgSeparator)
	if !found {
		return fmtxx.Str(raw), nil
	}

	switch kind {
	case ArgKindInt:
		n, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return fmtxx.Arg{}, fmt.Errorf("%s %q: %w", ErrMsgInvalidArg, raw, err)
		}
		return fmtxx.Int(n), nil
	case ArgKindUint:
		n, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return fmtxx.Arg{}, fmt.Errorf("%s %q: %w", ErrMsgInvalidArg, raw, err)
		}
		return fmtxx.Uint(n), nil
	case ArgKindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmtxx.Arg{}, fmt.Errorf("%s %q: %w", ErrMsgInvalidArg, raw, err)
		}
		return fmtxx.Float(f), nil
	case ArgKindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmtxx.Arg{}, fmt.Errorf("%s %q: %w", ErrMsgInvalidArg, raw, err)
		}
		return fmtxx.Bool(b), nil
	case ArgKindChar:
		r, size := utf8.DecodeRuneInString(value)
		if size == 0 || size != len(value) || r == utf8.RuneError {
			return fmtxx.Arg{}, fmt.Errorf("%s %q: %w", ErrMsgInvalidArg, raw, errors.New(ErrMsgInvalidCharArgument))
		}
		return fmtxx.Char(r), nil
	case ArgKindStr:
		return fmtxx.Str(value), nil
	default:
		return fmtxx.Str(raw), nil
	}
}

// loadArgs reads the argument file, if any, followed by the -a flags.
func loadArgs(filePath string, flags []string) ([]fmtxx.Arg, error) {
	var raw []string

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgInvalidArgsFile, err)
		}
	}
	raw = append(raw, flags...)

	args := make([]fmtxx.Arg, 0, len(raw))
	for _, r := range raw {
		arg, err := parseArg(r)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}
