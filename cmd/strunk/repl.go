package main

import (
	"context"

	"github.com/revelaction/strunk/query"
	"github.com/revelaction/strunk/render"
)

func replCommand(ctx context.Context, opts ReplOptions, ui UI) error {
	logger := newLogger(ui.Err, opts.Verbose)

	ck, err := newChecker(ctx, opts.CheckerOptions, logger)
	if err != nil {
		return err
	}

	r := render.NewRenderer()
	r.W = ui.Out
	r.HasColor = !opts.NoColor
	r.HasPrefix = !opts.NoPrefix
	r.Format = opts.Format

	h := query.NewHandler(ck, r, ui.Out)
	return h.Run(ctx)
}
