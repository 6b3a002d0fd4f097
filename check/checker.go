package check

import (
	"context"

	"github.com/revelaction/strunk/corpus"
	"github.com/revelaction/strunk/dictionary"
	"github.com/revelaction/strunk/grammar"
	sent "github.com/revelaction/strunk/sentence"
	"github.com/revelaction/strunk/tagger"
	"github.com/revelaction/strunk/wordmatch"
)

// Checker checks whole texts with a fixed grammar, lexicon, dictionary and
// word match catalogue. Nil fields mean the built-in ones. A Checker is safe
// for concurrent use once built.
type Checker struct {
	Grammar    *grammar.Table
	Tagger     *tagger.Tagger
	Dictionary *dictionary.Dictionary
	Words      *wordmatch.Checks
	Disabled   map[string]bool

	// Reporter receives the parse warnings. It must be safe for concurrent
	// use when the Checker is.
	Reporter func(error)

	// KeepDerivations keeps every derivation of a chart label.
	KeepDerivations bool
}

// Check splits, tags and parses text, runs the enabled checks and returns the
// report titled title, with its metrics. The corpus holds the charts of the
// report sentences.
func (ck *Checker) Check(ctx context.Context, title, text string) (*corpus.Corpus, sent.Doc, error) {
	opts := []corpus.Option{
		corpus.WithGrammar(ck.Grammar),
		corpus.WithTagger(ck.Tagger),
		corpus.WithReporter(ck.Reporter),
	}
	if ck.KeepDerivations {
		opts = append(opts, corpus.KeepDerivations())
	}

	c, err := corpus.New(ctx, text, opts...)
	if err != nil {
		return nil, sent.Doc{}, err
	}

	v := New(c, ck.Dictionary)
	if ck.Words != nil {
		v.Words = ck.Words
	}
	v.Disabled = ck.Disabled

	doc := c.Doc(title)
	doc.Metrics = v.RunAll()
	return c, doc, nil
}
