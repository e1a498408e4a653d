package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/itsatony/go-cuserr"
	fmtxx "github.com/itsatony/go-fmtxx"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	templatePath string
	dialect      fmtxx.Dialect
	format       string
}

// validationOutput represents JSON output for validation
type validationOutput struct {
	Valid      bool                    `json:"valid"`
	Directives int                     `json:"directives"`
	Issues     []validationIssueOutput `json:"issues,omitempty"`
}

type validationIssueOutput struct {
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	Directive string `json:"directive,omitempty"`
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, CmdNameValidate, err)
		return ExitCodeUsageError
	}

	templateSource, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	source := string(templateSource)
	output := validationOutput{Valid: true}
	if err := fmtxx.Validate(cfg.dialect, source); err != nil {
		output.Valid = false
		output.Issues = collectIssues(err)
	} else {
		output.Directives, _ = fmtxx.CountDirectives(cfg.dialect, source)
	}

	if cfg.format == OutputFormatJSON {
		return outputValidationJSON(output, stdout, stderr)
	}
	return outputValidationText(output, stdout)
}

func parseValidateFlags(args []string) (*validateConfig, error) {
	fs := flag.NewFlagSet(CmdNameValidate, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &validateConfig{}
	var dialect string

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&dialect, FlagDialect, FlagDefaultDialect, "")
	fs.StringVar(&dialect, FlagDialectShort, FlagDefaultDialect, "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}

	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	d, err := fmtxx.ParseDialect(dialect)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidDialect, err)
	}
	cfg.dialect = d

	return cfg, nil
}

// collectIssues flattens a joined validation error into one issue per directive.
func collectIssues(err error) []validationIssueOutput {
	errs := []error{err}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	}

	issues := make([]validationIssueOutput, 0, len(errs))
	for _, e := range errs {
		issue := validationIssueOutput{
			Kind:    fmtxx.KindOf(e).String(),
			Message: e.Error(),
		}
		var customErr *cuserr.CustomError
		if errors.As(e, &customErr) {
			if v, ok := customErr.GetMetadata(fmtxx.MetaKeyLine); ok {
				issue.Line, _ = strconv.Atoi(v)
			}
			if v, ok := customErr.GetMetadata(fmtxx.MetaKeyColumn); ok {
				issue.Column, _ = strconv.Atoi(v)
			}
			issue.Directive, _ = customErr.GetMetadata(fmtxx.MetaKeyDirective)
		}
		issues = append(issues, issue)
	}
	return issues
}

func outputValidationText(output validationOutput, stdout io.Writer) int {
	if output.Valid {
		fmt.Fprintf(stdout, ValidationTextSuccess+FmtNewline, output.Directives)
		return ExitCodeSuccess
	}

	fmt.Fprintln(stdout, ValidationTextIssueHeader)
	for _, issue := range output.Issues {
		fmt.Fprintf(stdout, ValidationTextIssueFormat+FmtNewline,
			issue.Kind, issue.Message, issue.Line, issue.Column)
	}
	fmt.Fprintf(stdout, ValidationTextErrorSummary+FmtNewline, len(output.Issues))
	return ExitCodeValidationError
}

func outputValidationJSON(output validationOutput, stdout, stderr io.Writer) int {
	if code := writeJSON(output, stdout, stderr); code != ExitCodeSuccess {
		return code
	}
	if !output.Valid {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}
