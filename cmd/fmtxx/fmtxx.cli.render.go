package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	fmtxx "github.com/itsatony/go-fmtxx"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	templatePath string
	name         string
	catalog      string
	dialect      fmtxx.Dialect
	args         argList
	argsFilePath string
	strategy     fmtxx.ErrorStrategy
	outputPath   string
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, CmdNameRender, err)
		return ExitCodeUsageError
	}

	values, err := loadArgs(cfg.argsFilePath, cfg.args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidArg, err)
		return ExitCodeInputError
	}

	engine, err := fmtxx.New(fmtxx.WithErrorStrategy(cfg.strategy))
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgExecuteFailed, err)
		return ExitCodeError
	}
	w := fmtxx.NewBufferWriter(0)

	if cfg.name != "" {
		catalog, err := openCatalog(cfg.catalog)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgOpenCatalogFailed, err)
			return ExitCodeInputError
		}
		defer catalog.Close()
		err = engine.Render(context.Background(), w, catalog, cfg.name, values...)
		return finishRender(cfg, w, err, stdout, stderr)
	}

	templateSource, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}
	err = engine.Execute(w, cfg.dialect, string(templateSource), values...)
	return finishRender(cfg, w, err, stdout, stderr)
}

// finishRender writes the output, which under a non-throw strategy is
// produced even when errors are reported.
func finishRender(cfg *renderConfig, w *fmtxx.BufferWriter, execErr error, stdout, stderr io.Writer) int {
	if execErr != nil && cfg.strategy == fmtxx.ErrorStrategyThrow {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgExecuteFailed, execErr)
		return ExitCodeError
	}

	if err := writeOutput(cfg.outputPath, w.Bytes(), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	if execErr != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgExecuteFailed, execErr)
		return ExitCodeError
	}
	return ExitCodeSuccess
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}
	var dialect, strategy string

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.name, FlagName, "", "")
	fs.StringVar(&cfg.name, FlagNameShort, "", "")
	fs.StringVar(&cfg.catalog, FlagCatalog, "", "")
	fs.StringVar(&dialect, FlagDialect, FlagDefaultDialect, "")
	fs.StringVar(&dialect, FlagDialectShort, FlagDefaultDialect, "")
	fs.Var(&cfg.args, FlagArg, "")
	fs.Var(&cfg.args, FlagArgShort, "")
	fs.StringVar(&cfg.argsFilePath, FlagArgsFile, "", "")
	fs.StringVar(&cfg.argsFilePath, FlagArgsFileShort, "", "")
	fs.StringVar(&strategy, FlagStrategy, FlagDefaultStrategy, "")
	fs.StringVar(&strategy, FlagStrategyShort, FlagDefaultStrategy, "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validation
	switch {
	case cfg.templatePath == "" && cfg.name == "":
		return nil, errors.New(ErrMsgMissingTemplate)
	case cfg.templatePath != "" && cfg.name != "":
		return nil, errors.New(ErrMsgTemplateOrName)
	case cfg.name != "" && cfg.catalog == "":
		return nil, errors.New(ErrMsgMissingCatalog)
	}

	d, err := fmtxx.ParseDialect(dialect)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidDialect, err)
	}
	cfg.dialect = d

	cfg.strategy = fmtxx.ParseErrorStrategy(strategy)
	if cfg.strategy.String() != strategy {
		return nil, fmt.Errorf("%s: %s", ErrMsgInvalidStrategy, strategy)
	}

	return cfg, nil
}
