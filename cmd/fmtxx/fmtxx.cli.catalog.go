package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	fmtxx "github.com/itsatony/go-fmtxx"
	"github.com/olekukonko/tablewriter"
)

// catalogConfig holds parsed catalog command configuration
type catalogConfig struct {
	location     string
	name         string
	templatePath string
	dialect      string
	description  string
	format       string
}

func runCatalog(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		writeUsage(stdout, HelpCatalogUsage)
		return ExitCodeUsageError
	}

	sub := args[0]
	switch sub {
	case SubCmdList, SubCmdGet, SubCmdPut, SubCmdDelete:
	default:
		fmt.Fprintf(stderr, FmtErrorWithDetail, ErrMsgUnknownSubcommand, sub)
		return ExitCodeUsageError
	}

	cfg, err := parseCatalogFlags(sub, args[1:])
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, CmdNameCatalog, err)
		return ExitCodeUsageError
	}

	catalog, err := openCatalog(cfg.location)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgOpenCatalogFailed, err)
		return ExitCodeInputError
	}
	defer catalog.Close()

	ctx := context.Background()
	switch sub {
	case SubCmdList:
		return catalogList(ctx, catalog, cfg, stdout, stderr)
	case SubCmdGet:
		return catalogGet(ctx, catalog, cfg, stdout, stderr)
	case SubCmdPut:
		return catalogPut(ctx, catalog, cfg, stdin, stdout, stderr)
	default:
		return catalogDelete(ctx, catalog, cfg, stdout, stderr)
	}
}

func parseCatalogFlags(sub string, args []string) (*catalogConfig, error) {
	fs := flag.NewFlagSet(CmdNameCatalog+" "+sub, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &catalogConfig{}

	fs.StringVar(&cfg.location, FlagCatalog, "", "")
	fs.StringVar(&cfg.name, FlagName, "", "")
	fs.StringVar(&cfg.name, FlagNameShort, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.dialect, FlagDialect, FlagDefaultDialect, "")
	fs.StringVar(&cfg.dialect, FlagDialectShort, FlagDefaultDialect, "")
	fs.StringVar(&cfg.description, FlagDescription, "", "")
	fs.StringVar(&cfg.description, FlagDescriptionShort, "", "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.location == "" {
		return nil, errors.New(ErrMsgMissingCatalog)
	}
	if sub != SubCmdList && cfg.name == "" {
		return nil, errors.New(ErrMsgMissingName)
	}
	if sub == SubCmdPut && cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

func catalogList(ctx context.Context, catalog fmtxx.Catalog, cfg *catalogConfig, stdout, stderr io.Writer) int {
	entries, err := catalog.List(ctx)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgCatalogOpFailed, err)
		return ExitCodeError
	}

	if cfg.format == OutputFormatJSON {
		return writeJSON(entries, stdout, stderr)
	}

	if len(entries) == 0 {
		fmt.Fprintln(stdout, CatalogTextEmpty)
		return ExitCodeSuccess
	}

	table := tablewriter.NewWriter(stdout)
	table.SetHeader([]string{TableHeaderName, TableHeaderDialect, TableHeaderUpdated, TableHeaderDescription})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetAutoWrapText(false)
	for _, entry := range entries {
		table.Append([]string{
			entry.Name,
			entry.Dialect.String(),
			entry.UpdatedAt.Format(TableTimeLayout),
			entry.Description,
		})
	}
	table.Render()
	return ExitCodeSuccess
}

func catalogGet(ctx context.Context, catalog fmtxx.Catalog, cfg *catalogConfig, stdout, stderr io.Writer) int {
	entry, err := catalog.Get(ctx, cfg.name)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgCatalogOpFailed, err)
		return ExitCodeError
	}

	if cfg.format == OutputFormatJSON {
		return writeJSON(entry, stdout, stderr)
	}
	fmt.Fprint(stdout, entry.Template)
	return ExitCodeSuccess
}

func catalogPut(ctx context.Context, catalog fmtxx.Catalog, cfg *catalogConfig, stdin io.Reader, stdout, stderr io.Writer) int {
	templateSource, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	entry := &fmtxx.Entry{
		Name:        cfg.name,
		Dialect:     fmtxx.Dialect(cfg.dialect),
		Template:    string(templateSource),
		Description: cfg.description,
	}
	if err := catalog.Put(ctx, entry); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgCatalogOpFailed, err)
		if errors.Is(err, fmtxx.ErrInvalidEntry) {
			return ExitCodeValidationError
		}
		return ExitCodeError
	}

	fmt.Fprintf(stdout, CatalogTextSaved+FmtNewline, entry.Name)
	return ExitCodeSuccess
}

func catalogDelete(ctx context.Context, catalog fmtxx.Catalog, cfg *catalogConfig, stdout, stderr io.Writer) int {
	if err := catalog.Delete(ctx, cfg.name); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgCatalogOpFailed, err)
		return ExitCodeError
	}

	fmt.Fprintf(stdout, CatalogTextDeleted+FmtNewline, cfg.name)
	return ExitCodeSuccess
}
