package main

import (
	"context"

	"github.com/revelaction/strunk/file"
	"github.com/revelaction/strunk/render"
)

// metricsCommand prints the reference distributions, next to the metrics of
// the file if one is given.
func metricsCommand(ctx context.Context, opts MetricsOptions, files []string, ui UI) error {
	if len(files) == 0 {
		return render.MetricsTable(ui.Out, nil)
	}

	logger := newLogger(ui.Err, opts.Verbose)
	ck, err := newChecker(ctx, opts.CheckerOptions, logger)
	if err != nil {
		return err
	}

	text, err := file.ReadText(files[0])
	if err != nil {
		return err
	}

	_, doc, err := ck.Check(ctx, files[0], text)
	if err != nil {
		return err
	}

	return render.MetricsTable(ui.Out, doc.Metrics)
}
