package main

import (
	"fmt"
	"io"
)

func runHelp(args []string, stdout io.Writer) int {
	if len(args) == 0 {
		writeUsage(stdout, HelpMainUsage)
		return ExitCodeSuccess
	}

	cmd := args[0]
	switch cmd {
	case CmdNameRender:
		writeUsage(stdout, HelpRenderUsage)
	case CmdNameValidate:
		writeUsage(stdout, HelpValidateUsage)
	case CmdNameCatalog:
		writeUsage(stdout, HelpCatalogUsage)
	case CmdNameVersion:
		writeUsage(stdout, HelpVersionUsage)
	case CmdNameHelp:
		writeUsage(stdout, HelpHelpUsage)
	default:
		fmt.Fprintf(stdout, FmtErrorWithDetail, ErrMsgUnknownCommand, cmd)
		writeUsage(stdout, HelpMainUsage)
		return ExitCodeUsageError
	}

	return ExitCodeSuccess
}
