package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/revelaction/strunk/file"
	"github.com/revelaction/strunk/render"
	"github.com/revelaction/strunk/storage"
)

func checkCommand(ctx context.Context, opts CheckOptions, files []string, ui UI) error {
	logger := newLogger(ui.Err, opts.Verbose)

	ck, err := newChecker(ctx, opts.CheckerOptions, logger)
	if err != nil {
		return err
	}

	var repo storage.DocRepository
	if opts.Save != "" {
		p := &Pool{}
		defer p.Close()
		repo, err = NewDocRepository(p, opts.Save, true, logger)
		if err != nil {
			return err
		}
	}

	var r render.Renderer
	if opts.JSON {
		r = render.NewJSONRenderer(ui.Out)
	} else {
		tr := render.NewRenderer()
		tr.W = ui.Out
		tr.HasColor = !opts.NoColor
		tr.HasPrefix = !opts.NoPrefix
		tr.Format = opts.Format
		r = tr
	}

	for _, path := range files {
		text, err := file.ReadText(path)
		if err != nil {
			return err
		}

		title := filepath.Base(path)
		if path == "-" {
			title = "stdin"
		}

		c, doc, err := ck.Check(ctx, title, text)
		if err != nil {
			return err
		}
		logger.Debug("checked", "file", path, "sentences", c.Len(), "errs", doc.NumErrs())

		var trees []string
		if opts.Format == "tree" {
			trees = c.Trees()
		}
		if err := r.Render(doc, trees); err != nil {
			return err
		}

		if opts.Metrics && !opts.JSON {
			fmt.Fprintln(ui.Out)
			if err := render.MetricsTable(ui.Out, doc.Metrics); err != nil {
				return err
			}
		}

		if repo != nil {
			if err := repo.Write(doc); err != nil {
				return fmt.Errorf("save %s: %w", path, err)
			}
			logger.Info("report saved", "id", doc.Id, "title", doc.Title)
			if !opts.JSON {
				fmt.Fprintf(ui.Out, "📖 %s %s\n", doc.Id, doc.Title)
			}
		}
	}

	return nil
}
