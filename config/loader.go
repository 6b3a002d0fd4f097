package config

import (
	"context"
	"fmt"

	"github.com/revelaction/strunk/check"
	"github.com/revelaction/strunk/dictionary"
	"github.com/revelaction/strunk/grammar"
	"github.com/revelaction/strunk/tagger"
	"github.com/revelaction/strunk/wordmatch"
)

// Loader builds a Checker from the config file and its overrides.
type Loader struct {
	// ConfigPath is the YAML config, DefaultPath when empty.
	ConfigPath string

	// DictSource overrides the dictionary of the config file.
	DictSource string

	// Disabled is added to the disabled checks of the config file.
	Disabled []string

	// Reporter receives the warnings found while loading and checking.
	Reporter func(error)
}

// Load reads the configuration and returns the Checker it describes.
func (l *Loader) Load(ctx context.Context) (*check.Checker, error) {
	f, err := LoadFile(l.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	ck := &check.Checker{
		Disabled: map[string]bool{},
		Reporter: l.Reporter,
	}

	// Load grammar
	ck.Grammar = grammar.Default()
	if f.Grammar != nil {
		ck.Grammar, err = f.Grammar.Table()
		if err != nil {
			return nil, fmt.Errorf("load grammar: %w", err)
		}
	}

	// Load word match catalogue
	entries := wordmatch.Default()
	if f.Wordmatch != nil {
		entries = f.Wordmatch.Merge()
	}
	ck.Words = wordmatch.New(entries, l.Reporter)

	ck.Tagger = tagger.New(f.Lexicon)

	// Load dictionary
	if src := Value(l.DictSource, EnvDict, f.Dictionary); src != "" {
		ck.Dictionary, err = dictionary.Open(ctx, src)
		if err != nil {
			return nil, fmt.Errorf("load dictionary: %w", err)
		}
	}

	for _, name := range append(f.Disabled, l.Disabled...) {
		if !check.IsName(name) {
			return nil, fmt.Errorf("unknown check %q", name)
		}
		ck.Disabled[name] = true
	}

	return ck, nil
}
