package main

import (
	"context"

	"github.com/revelaction/strunk/render"
)

func grammarCommand(ctx context.Context, opts CheckerOptions, ui UI) error {
	ck, err := newChecker(ctx, opts, newLogger(ui.Err, opts.Verbose))
	if err != nil {
		return err
	}

	render.GrammarTables(ui.Out, ck.Grammar)
	return nil
}
