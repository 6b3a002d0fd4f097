package main

import (
	"context"
	"fmt"

	"github.com/revelaction/strunk/corpus"
	"github.com/revelaction/strunk/file"
	"github.com/revelaction/strunk/grammar"
	"github.com/revelaction/strunk/render"
)

func treeCommand(ctx context.Context, opts TreeOptions, files []string, ui UI) error {
	logger := newLogger(ui.Err, opts.Verbose)

	ck, err := newChecker(ctx, opts.CheckerOptions, logger)
	if err != nil {
		return err
	}

	r := &render.TextRenderer{W: ui.Out}

	for _, path := range files {
		text, err := file.ReadText(path)
		if err != nil {
			return err
		}

		copts := []corpus.Option{
			corpus.WithGrammar(ck.Grammar),
			corpus.WithTagger(ck.Tagger),
			corpus.WithReporter(ck.Reporter),
		}
		if opts.All {
			copts = append(copts, corpus.KeepDerivations())
		}

		c, err := corpus.New(ctx, text, copts...)
		if err != nil {
			return err
		}

		for i, s := range c.Sentences() {
			if s.IsBreak() {
				fmt.Fprintln(ui.Out)
				continue
			}

			p := c.Parsed(i)
			tree := p.String()
			if tree == "" {
				tree = "(no parse)"
			}

			fmt.Fprintf(ui.Out, "%3d ✍  %s\n", s.Id, r.SentenceString(s.Tokens))
			fmt.Fprintf(ui.Out, "        %s\n", tree)

			if opts.All && p.Len() > 0 {
				n := len(p.Derivations(0, p.Len()-1, grammar.Top))
				fmt.Fprintf(ui.Out, "        %d derivation(s) of %s\n", n, grammar.Top)
			}
		}
	}

	return nil
}
