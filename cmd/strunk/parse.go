package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/strunk/config"
	"github.com/revelaction/strunk/render"
)

// CheckerOptions are the flags shared by the commands that check text.
type CheckerOptions struct {
	ConfigPath string
	Dict       string
	Disabled   []string
	Verbose    bool
}

// Option structs for subcommands that have flags
type CheckOptions struct {
	CheckerOptions
	NoColor  bool
	NoPrefix bool
	Format   string
	JSON     bool
	Metrics  bool
	Save     string
}

type TreeOptions struct {
	CheckerOptions
	All bool
}

type ReplOptions struct {
	CheckerOptions
	NoColor  bool
	NoPrefix bool
	Format   string
}

type ServeOptions struct {
	CheckerOptions
	Addr string
	Repo string
}

type ImportOptions struct {
	CheckerOptions
	To string
}

type ExportOptions struct {
	From string
	To   string
}

type ShowOptions struct {
	Repo     string
	NoColor  bool
	NoPrefix bool
	Format   string
	JSON     bool
}

type FindOptions struct {
	Repo     string
	Id       string
	NoColor  bool
	NoPrefix bool
}

type MetricsOptions struct {
	CheckerOptions
}

// stringSliceFlag implements flag.Value for multi-value strings
type stringSliceFlag []string

func (s *stringSliceFlag) String() string {
	return strings.Join(*s, ", ")
}

func (s *stringSliceFlag) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*s = append(*s, v)
		}
	}
	return nil
}

// enumFlag implements flag.Value for restricted strings
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

func checkerFlags(fs *flag.FlagSet, opts *CheckerOptions) {
	fs.StringVar(&opts.ConfigPath, "config", os.Getenv(config.EnvConfig), "Path to the YAML config file (default strunk.yaml)")
	fs.StringVar(&opts.Dict, "dict", "", "Path or URL of the dictionary (or set "+config.EnvDict+")")
	fs.Var((*stringSliceFlag)(&opts.Disabled), "disable", "Check to disable, repeatable or comma separated")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Log debug information to stderr")
	fs.BoolVar(&opts.Verbose, "v", false, "alias for -verbose")
}

func renderFlags(fs *flag.FlagSet, noColor, noPrefix *bool, format *string) {
	fs.BoolVar(noColor, "no-color", false, "Show sentences without formatting (color)")
	fs.BoolVar(noColor, "c", false, "alias for -no-color")

	fs.BoolVar(noPrefix, "no-prefix", false, "Show sentences without prefixes with metadata")
	fs.BoolVar(noPrefix, "x", false, "alias for -no-prefix")

	*format = render.Defaultformat
	formatFlag := &enumFlag{allowed: render.SupportedFormats(), value: format}
	fs.Var(formatFlag, "format", "Show every sentence (all), only sentences with diagnostics (errs) or sentences with their parse (tree)")
	fs.Var(formatFlag, "f", "alias for -format")
}

// parseFlags parses args. The usage goes to Out on -help, to Err on a
// parse error.
func parseFlags(fs *flag.FlagSet, args []string, ui UI) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return err
	}
	return nil
}

func usage(fs *flag.FlagSet, synopsis, description string) {
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s %s\n", os.Args[0], synopsis)
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  %s\n", description)
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("strunk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := parseFlags(fs, args, ui); err != nil {
		return "", nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, errors.New("no command provided")
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return cmd, cmdArgs, nil
}

func parseCheckArgs(args []string, ui UI) (CheckOptions, []string, error) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts CheckOptions
	checkerFlags(fs, &opts.CheckerOptions)
	renderFlags(fs, &opts.NoColor, &opts.NoPrefix, &opts.Format)
	fs.BoolVar(&opts.JSON, "json", false, "Write the reports as JSON")
	fs.BoolVar(&opts.Metrics, "metrics", false, "Show the metrics of every text next to the reference books")
	fs.BoolVar(&opts.Metrics, "m", false, "alias for -metrics")
	fs.StringVar(&opts.Save, "save", "", "Store the reports in this directory or SQLite file")

	usage(fs, "check [options] file...", "Check the style of text, markdown or HTML files. Use - for stdin.")

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, nil, errors.New("check command needs at least one file")
	}

	return opts, fs.Args(), nil
}

func parseTreeArgs(args []string, ui UI) (TreeOptions, []string, error) {
	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts TreeOptions
	checkerFlags(fs, &opts.CheckerOptions)
	fs.BoolVar(&opts.All, "all", false, "Show the number of derivations of the root")

	usage(fs, "tree [options] file...", "Show the parse tree of every sentence. Use - for stdin.")

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, nil, errors.New("tree command needs at least one file")
	}

	return opts, fs.Args(), nil
}

func parseReplArgs(args []string, ui UI) (ReplOptions, error) {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ReplOptions
	checkerFlags(fs, &opts.CheckerOptions)
	renderFlags(fs, &opts.NoColor, &opts.NoPrefix, &opts.Format)

	usage(fs, "repl [options]", "Enter interactive mode: every line is checked.")

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	return opts, nil
}

func parseServeArgs(args []string, ui UI) (ServeOptions, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ServeOptions
	checkerFlags(fs, &opts.CheckerOptions)
	fs.StringVar(&opts.Addr, "addr", "127.0.0.1:8080", "Listen address")
	fs.StringVar(&opts.Repo, "repo", os.Getenv(config.EnvRepo), "Report directory or SQLite file (or set "+config.EnvRepo+")")
	fs.StringVar(&opts.Repo, "r", os.Getenv(config.EnvRepo), "alias for -repo")

	usage(fs, "serve [options]", "Serve the JSON API.")

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	return opts, nil
}

func parseImportArgs(args []string, ui UI) (ImportOptions, []string, error) {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ImportOptions
	checkerFlags(fs, &opts.CheckerOptions)
	fs.StringVar(&opts.To, "to", os.Getenv(config.EnvRepo), "Target report directory or SQLite file (or set "+config.EnvRepo+")")

	usage(fs, "import [options] --to <repo> file...", "Check many files and store their reports.")

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, nil, err
	}

	if opts.To == "" {
		return opts, nil, errors.New("--to is required")
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, nil, errors.New("import command needs at least one file")
	}

	return opts, fs.Args(), nil
}

func parseExportArgs(args []string, ui UI) (ExportOptions, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ExportOptions
	fs.StringVar(&opts.From, "from", "", "Source report directory or SQLite file")
	fs.StringVar(&opts.To, "to", "", "Target report directory or SQLite file")

	usage(fs, "export --from <repo> --to <repo>", "Copy every report of a repository to another one.")

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	if opts.From == "" || opts.To == "" {
		return opts, errors.New("--from and --to are required")
	}

	return opts, nil
}

func parseLsArgs(args []string, ui UI) (string, error) {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var repo string
	fs.StringVar(&repo, "repo", os.Getenv(config.EnvRepo), "Report directory or SQLite file (or set "+config.EnvRepo+")")
	fs.StringVar(&repo, "r", os.Getenv(config.EnvRepo), "alias for -repo")

	usage(fs, "ls [options]", "List the stored reports.")

	if err := parseFlags(fs, args, ui); err != nil {
		return "", err
	}

	if repo == "" {
		return "", errors.New("Repository must be specified via -r or " + config.EnvRepo)
	}

	return repo, nil
}

// parseShowArgs returns the report id, or the path of a JSON report file.
func parseShowArgs(args []string, ui UI) (ShowOptions, string, error) {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ShowOptions
	fs.StringVar(&opts.Repo, "repo", os.Getenv(config.EnvRepo), "Report directory or SQLite file (or set "+config.EnvRepo+")")
	fs.StringVar(&opts.Repo, "r", os.Getenv(config.EnvRepo), "alias for -repo")
	renderFlags(fs, &opts.NoColor, &opts.NoPrefix, &opts.Format)
	fs.BoolVar(&opts.JSON, "json", false, "Write the report as JSON")

	usage(fs, "show [options] <id|file.json>", "Show a stored report, or a JSON report file.")

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, "", err
	}

	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("show command needs exactly one argument")
	}

	arg := fs.Arg(0)
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return opts, arg, nil
	}

	if opts.Repo == "" {
		return opts, "", errors.New("Repository must be specified via -r or " + config.EnvRepo + " when not reading from a file")
	}

	return opts, arg, nil
}

// parseStatArgs returns the repository and the optional report id.
func parseStatArgs(args []string, ui UI) (string, string, error) {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var repo string
	fs.StringVar(&repo, "repo", os.Getenv(config.EnvRepo), "Report directory or SQLite file (or set "+config.EnvRepo+")")
	fs.StringVar(&repo, "r", os.Getenv(config.EnvRepo), "alias for -repo")

	usage(fs, "stat [options] [id]", "Show statistics for all the stored reports or one of them.")

	if err := parseFlags(fs, args, ui); err != nil {
		return "", "", err
	}

	if fs.NArg() > 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", "", errors.New("stat command accepts at most one argument")
	}

	if repo == "" {
		return "", "", errors.New("Repository must be specified via -r or " + config.EnvRepo)
	}

	return repo, fs.Arg(0), nil
}

// parseFindArgs returns the query, empty to match every diagnostic.
func parseFindArgs(args []string, ui UI) (FindOptions, string, error) {
	fs := flag.NewFlagSet("find", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts FindOptions
	fs.StringVar(&opts.Repo, "repo", os.Getenv(config.EnvRepo), "Report directory or SQLite file (or set "+config.EnvRepo+")")
	fs.StringVar(&opts.Repo, "r", os.Getenv(config.EnvRepo), "alias for -repo")
	fs.StringVar(&opts.Id, "id", "", "Search only the report with this id")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Show sentences without formatting (color)")
	fs.BoolVar(&opts.NoColor, "c", false, "alias for -no-color")
	fs.BoolVar(&opts.NoPrefix, "no-prefix", false, "Show sentences without prefixes with metadata")
	fs.BoolVar(&opts.NoPrefix, "x", false, "alias for -no-prefix")

	usage(fs, "find [options] [query]", "Find the stored sentences with a diagnostic containing query.")

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, "", err
	}

	if fs.NArg() > 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("find command accepts at most one query, quote it")
	}

	if opts.Repo == "" {
		return opts, "", errors.New("Repository must be specified via -r or " + config.EnvRepo)
	}

	return opts, fs.Arg(0), nil
}

func parseMetricsArgs(args []string, ui UI) (MetricsOptions, []string, error) {
	fs := flag.NewFlagSet("metrics", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts MetricsOptions
	checkerFlags(fs, &opts.CheckerOptions)

	usage(fs, "metrics [options] [file]", "Show the metrics of the reference books, and of file if given.")

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, nil, err
	}

	if fs.NArg() > 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, nil, errors.New("metrics command accepts at most one file")
	}

	return opts, fs.Args(), nil
}

// parseNoArgs parses the flags of a command without options or arguments.
func parseNoArgs(name, description string, args []string, ui UI) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	usage(fs, name, description)

	if err := parseFlags(fs, args, ui); err != nil {
		return err
	}

	if fs.NArg() > 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return fmt.Errorf("%s command accepts no arguments", name)
	}
	return nil
}

func parseCompleteArgs(args []string, ui UI) ([]string, error) {
	fs := flag.NewFlagSet("complete", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s command [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  Writing style checker after The Elements of Style\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  check     Check the style of files.\n")
		_, _ = fmt.Fprintf(output, "  tree      Show the parse tree of every sentence.\n")
		_, _ = fmt.Fprintf(output, "  repl      Enter interactive mode.\n")
		_, _ = fmt.Fprintf(output, "  serve     Serve the JSON API.\n")
		_, _ = fmt.Fprintf(output, "  import    Check files and store their reports.\n")
		_, _ = fmt.Fprintf(output, "  export    Copy the reports of a repository to another one.\n")
		_, _ = fmt.Fprintf(output, "  ls        List the stored reports.\n")
		_, _ = fmt.Fprintf(output, "  show      Show a stored report.\n")
		_, _ = fmt.Fprintf(output, "  stat      Show statistics for the stored reports.\n")
		_, _ = fmt.Fprintf(output, "  find      Find the stored sentences with a diagnostic.\n")
		_, _ = fmt.Fprintf(output, "  metrics   Show the metrics of the reference books.\n")
		_, _ = fmt.Fprintf(output, "  grammar   Show the grammar labels and rules.\n")
		_, _ = fmt.Fprintf(output, "  checks    List the checks.\n")
		_, _ = fmt.Fprintf(output, "  env       Show the environment variables.\n")
		_, _ = fmt.Fprintf(output, "  bash      Output bash completion script.\n")
		_, _ = fmt.Fprintf(output, "  version   Show the version.\n")
		_, _ = fmt.Fprintf(output, "  help      Show help for a command.\n")
	}
}

func parseGrammarArgs(args []string, ui UI) (CheckerOptions, error) {
	fs := flag.NewFlagSet("grammar", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts CheckerOptions
	checkerFlags(fs, &opts)

	usage(fs, "grammar [options]", "Show the grammar labels, the tags they claim and the binary rules.")

	if err := parseFlags(fs, args, ui); err != nil {
		return opts, err
	}

	return opts, nil
}
