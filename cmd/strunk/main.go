package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	cmd, args, err := parseMainArgs(os.Args[1:], ui)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runCommand(ctx, cmd, args, ui); err != nil {
		stop()
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "strunk: %v\n", err)
}

func runCommand(ctx context.Context, cmd string, args []string, ui UI) error {
	switch cmd {
	case "help":
		if len(args) > 0 {
			return runCommand(ctx, args[0], []string{"--help"}, ui)
		}
		fs := flag.NewFlagSet("strunk", flag.ContinueOnError)
		fs.SetOutput(ui.Out)
		setupUsage(fs)
		fs.Usage()
		return nil

	case "check":
		opts, files, err := parseCheckArgs(args, ui)
		if err != nil {
			return err
		}
		return checkCommand(ctx, opts, files, ui)

	case "tree":
		opts, files, err := parseTreeArgs(args, ui)
		if err != nil {
			return err
		}
		return treeCommand(ctx, opts, files, ui)

	case "repl":
		opts, err := parseReplArgs(args, ui)
		if err != nil {
			return err
		}
		return replCommand(ctx, opts, ui)

	case "serve":
		opts, err := parseServeArgs(args, ui)
		if err != nil {
			return err
		}
		return serveCommand(ctx, opts, ui)

	case "import":
		opts, files, err := parseImportArgs(args, ui)
		if err != nil {
			return err
		}
		return importCommand(ctx, opts, files, ui)

	case "export":
		opts, err := parseExportArgs(args, ui)
		if err != nil {
			return err
		}
		return exportCommand(opts, ui)

	case "ls":
		repoPath, err := parseLsArgs(args, ui)
		if err != nil {
			return err
		}
		p := &Pool{}
		defer p.Close()
		repo, err := NewDocRepository(p, repoPath, false, newLogger(ui.Err, false))
		if err != nil {
			return err
		}
		return lsCommand(repo, ui)

	case "show":
		opts, arg, err := parseShowArgs(args, ui)
		if err != nil {
			return err
		}
		return showCommand(opts, arg, ui)

	case "stat":
		repoPath, id, err := parseStatArgs(args, ui)
		if err != nil {
			return err
		}
		p := &Pool{}
		defer p.Close()
		repo, err := NewDocRepository(p, repoPath, false, newLogger(ui.Err, false))
		if err != nil {
			return err
		}
		return statCommand(repo, id, ui)

	case "find":
		opts, query, err := parseFindArgs(args, ui)
		if err != nil {
			return err
		}
		p := &Pool{}
		defer p.Close()
		repo, err := NewDocRepository(p, opts.Repo, false, newLogger(ui.Err, false))
		if err != nil {
			return err
		}
		return findCommand(repo, opts, query, ui)

	case "metrics":
		opts, files, err := parseMetricsArgs(args, ui)
		if err != nil {
			return err
		}
		return metricsCommand(ctx, opts, files, ui)

	case "grammar":
		opts, err := parseGrammarArgs(args, ui)
		if err != nil {
			return err
		}
		return grammarCommand(ctx, opts, ui)

	case "checks":
		if err := parseNoArgs("checks", "List the checks.", args, ui); err != nil {
			return err
		}
		return checksCommand(ui)

	case "env":
		if err := parseNoArgs("env", "Show the environment variables.", args, ui); err != nil {
			return err
		}
		return envCommand(ui)

	case "bash":
		if err := parseNoArgs("bash", "Output bash completion script.", args, ui); err != nil {
			return err
		}
		return bashCommand(ui)

	case "complete":
		completeArgs, err := parseCompleteArgs(args, ui)
		if err != nil {
			return err
		}
		return completeCommand(completeArgs, ui)

	case "version":
		if err := parseNoArgs("version", "Show the version.", args, ui); err != nil {
			return err
		}
		return versionCommand(ui)
	}

	return fmt.Errorf("unknown command: %s", cmd)
}
