package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// writeUsage prints help text verbatim. Usage strings carry printf examples,
// so they must never reach a format argument.
func writeUsage(w io.Writer, text string) {
	io.WriteString(w, text+FmtNewline)
}

// writeJSON prints v as indented JSON and reports encoding failures on stderr.
func writeJSON(v any, stdout, stderr io.Writer) int {
	data, err := json.MarshalIndent(v, "", JSONIndent)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgEncodeOutputFailed, err)
		return ExitCodeError
	}
	data = append(data, FmtNewline...)
	if _, err := stdout.Write(data); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}
	return ExitCodeSuccess
}
