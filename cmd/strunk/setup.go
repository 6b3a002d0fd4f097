package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/revelaction/strunk/check"
	"github.com/revelaction/strunk/config"
	"github.com/revelaction/strunk/grammar"
	"github.com/revelaction/strunk/storage"
	"github.com/revelaction/strunk/storage/filesystem"
	"github.com/revelaction/strunk/storage/sqlite/zombiezen"
)

// isSQLitePath reports whether a missing repository at path is created as a
// SQLite file rather than a directory.
func isSQLitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// NewDocRepository opens the report repository at path: a directory of JSON
// reports or a SQLite file. With create, a missing repository is created.
// Unreadable files of a report directory are logged to logger, if not nil,
// and skipped.
func NewDocRepository(p *Pool, path string, create bool, logger *slog.Logger) (storage.DocRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		if !create || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("repository not found: %s", path)
		}
		if !isSQLitePath(path) {
			return newDocStore(path, logger)
		}
	} else if info.IsDir() {
		return newDocStore(path, logger)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}

func newDocStore(dir string, logger *slog.Logger) (storage.DocRepository, error) {
	ds, err := filesystem.NewDocStore(dir)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		ds.Reporter = func(err error) {
			logger.Warn("repository", "warning", err)
		}
	}
	return ds, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newChecker loads the configuration. POS tags without a grammar label are
// common and logged at debug level, other warnings at warn level.
func newChecker(ctx context.Context, opts CheckerOptions, logger *slog.Logger) (*check.Checker, error) {
	l := &config.Loader{
		ConfigPath: opts.ConfigPath,
		DictSource: opts.Dict,
		Disabled:   opts.Disabled,
		Reporter: func(err error) {
			if errors.Is(err, grammar.ErrUnsupportedTag) {
				logger.Debug("parse", "warning", err)
				return
			}
			logger.Warn("config", "warning", err)
		},
	}

	ck, err := l.Load(ctx)
	if err != nil {
		return nil, err
	}

	if ck.Dictionary != nil {
		logger.Debug("dictionary loaded", "words", ck.Dictionary.Len())
	}
	logger.Debug("checker ready", "wordmatch", ck.Words.Len(), "labels", len(ck.Grammar.Labels()), "disabled", len(ck.Disabled))
	return ck, nil
}
