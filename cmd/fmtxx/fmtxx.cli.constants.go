package main

// Command names
const (
	CmdNameRender   = "render"
	CmdNameValidate = "validate"
	CmdNameCatalog  = "catalog"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Catalog subcommand names
const (
	SubCmdList   = "list"
	SubCmdGet    = "get"
	SubCmdPut    = "put"
	SubCmdDelete = "delete"
)

// Flag names - long form
const (
	FlagTemplate    = "template"
	FlagName        = "name"
	FlagCatalog     = "catalog"
	FlagDialect     = "dialect"
	FlagArg         = "arg"
	FlagArgsFile    = "args-file"
	FlagStrategy    = "strategy"
	FlagOutput      = "output"
	FlagFormat      = "format"
	FlagDescription = "description"
)

// Flag names - short form
const (
	FlagTemplateShort    = "t"
	FlagNameShort        = "n"
	FlagDialectShort     = "p"
	FlagArgShort         = "a"
	FlagArgsFileShort    = "f"
	FlagStrategyShort    = "s"
	FlagOutputShort      = "o"
	FlagFormatShort      = "F"
	FlagDescriptionShort = "D"
)

// Flag default values
const (
	FlagDefaultOutput   = "-" // stdout
	FlagDefaultFormat   = "text"
	FlagDefaultDialect  = "brace"
	FlagDefaultStrategy = "throw"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Argument kinds accepted by -a and argument files, written kind:value
const (
	ArgKindInt   = "int"
	ArgKindUint  = "uint"
	ArgKindFloat = "float"
	ArgKindBool  = "bool"
	ArgKindChar  = "char"
	ArgKindStr   = "str"
	ArgSeparator = ":"
)

// Catalog connection string prefixes routed to the postgres driver
const (
	CatalogPrefixPostgres   = "postgres://"
	CatalogPrefixPostgresQL = "postgresql://"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand      = "unknown command"
	ErrMsgUnknownSubcommand   = "unknown catalog subcommand"
	ErrMsgMissingTemplate     = "template source required"
	ErrMsgMissingName         = "entry name required"
	ErrMsgMissingCatalog      = "catalog location required"
	ErrMsgTemplateOrName      = "use either a template or a catalog entry, not both"
	ErrMsgInvalidArg          = "invalid argument"
	ErrMsgInvalidArgsFile     = "invalid argument file"
	ErrMsgInvalidDialect      = "invalid dialect"
	ErrMsgInvalidStrategy     = "invalid error strategy"
	ErrMsgReadFileFailed      = "failed to read file"
	ErrMsgWriteOutputFailed   = "failed to write output"
	ErrMsgEncodeOutputFailed  = "failed to encode output"
	ErrMsgExecuteFailed       = "template execution failed"
	ErrMsgInvalidFormat       = "invalid output format"
	ErrMsgOpenCatalogFailed   = "failed to open catalog"
	ErrMsgCatalogOpFailed     = "catalog operation failed"
	ErrMsgInvalidCharArgument = "char argument must be a single character"
)

// Help text templates
const (
	HelpMainUsage = `fmtxx - typed text formatting CLI

Usage:
    fmtxx <command> [options]

Commands:
    render      Render a template with typed arguments
    validate    Check a template without arguments
    catalog     Manage named templates
    version     Show version information
    help        Show help for a command

Use "fmtxx help <command>" for more information about a command.`

	HelpRenderUsage = `Render a template with typed arguments

Usage:
    fmtxx render [options]

Options:
    -t, --template <file>     Template file (use "-" for stdin)
    -n, --name <name>         Render a catalog entry instead of a file
    --catalog <location>      Catalog file or postgres:// DSN (with --name)
    -p, --dialect <dialect>   brace or printf (default: brace)
    -a, --arg <kind:value>    Argument, repeatable: int, uint, float, bool, char, str
    -f, --args-file <file>    YAML list of kind:value arguments
    -s, --strategy <name>     throw, keepraw or remove (default: throw)
    -o, --output <file>       Output file (default: stdout)

Examples:
    fmtxx render -t greeting.txt -a str:World
    echo 'id=%05d' | fmtxx render -t - -p printf -a int:42
    fmtxx render --catalog templates.yaml -n greeting -a str:World`

	HelpValidateUsage = `Check a template without arguments

Usage:
    fmtxx validate [options]

Options:
    -t, --template <file>     Template file (use "-" for stdin)
    -p, --dialect <dialect>   brace or printf (default: brace)
    -F, --format <format>     Output format: text, json (default: text)

Examples:
    fmtxx validate -t greeting.txt
    echo '%d %y' | fmtxx validate -t - -p printf -F json`

	HelpCatalogUsage = `Manage named templates

Usage:
    fmtxx catalog <list|get|put|delete> --catalog <location> [options]

Options:
    --catalog <location>         Catalog file or postgres:// DSN
    -n, --name <name>            Entry name (get, put, delete)
    -t, --template <file>        Template file for put (use "-" for stdin)
    -p, --dialect <dialect>      Dialect for put (default: brace)
    -D, --description <text>     Description for put
    -F, --format <format>        Output format for list and get: text, json

Examples:
    fmtxx catalog put --catalog templates.yaml -n greeting -t greeting.txt
    fmtxx catalog list --catalog templates.yaml
    fmtxx catalog get --catalog postgres://localhost/app -n greeting`

	HelpVersionUsage = `Show version information

Usage:
    fmtxx version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    fmtxx help [command]

Commands:
    render      Show help for render command
    validate    Show help for validate command
    catalog     Show help for catalog command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "fmtxx version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
	VersionsFileName    = "versions.yaml"
)

// Validation output format templates
const (
	ValidationTextSuccess      = "Template is valid: %d directive(s)"
	ValidationTextIssueHeader  = "Validation issues:"
	ValidationTextIssueFormat  = "  [%s] %s at line %d, column %d"
	ValidationTextErrorSummary = "%d error(s)"
)

// Catalog list table headers
const (
	TableHeaderName        = "NAME"
	TableHeaderDialect     = "DIALECT"
	TableHeaderUpdated     = "UPDATED"
	TableHeaderDescription = "DESCRIPTION"
	TableTimeLayout        = "2006-01-02 15:04:05"
	CatalogTextEmpty       = "No templates"
	CatalogTextSaved       = "Saved %s"
	CatalogTextDeleted     = "Deleted %s"
)

// CLI metadata
const (
	CLIName        = "fmtxx"
	CLIDescription = "typed text formatting CLI"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
	JSONIndent         = "  "
)
