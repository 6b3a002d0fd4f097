package main

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/gosuri/uiprogress"
	"golang.org/x/sync/errgroup"

	"github.com/revelaction/strunk/file"
)

func importCommand(ctx context.Context, opts ImportOptions, files []string, ui UI) error {
	logger := newLogger(ui.Err, opts.Verbose)

	ck, err := newChecker(ctx, opts.CheckerOptions, logger)
	if err != nil {
		return err
	}

	p := &Pool{}
	defer p.Close()
	dst, err := NewDocRepository(p, opts.To, true, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Checking %d files...\n", len(files))

	uiprogress.Start()
	bar := uiprogress.AddBar(len(files))
	bar.AppendCompleted()
	bar.PrependElapsed()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, path := range files {
		g.Go(func() error {
			text, err := file.ReadText(path)
			if err != nil {
				return err
			}

			_, doc, err := ck.Check(ctx, filepath.Base(path), text)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", path, err)
			}

			if err := dst.Write(doc); err != nil {
				return fmt.Errorf("failed to write report %s: %w", path, err)
			}
			logger.Debug("imported", "file", path, "id", doc.Id)
			bar.Incr()
			return nil
		})
	}

	err = g.Wait()
	uiprogress.Stop()
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Successfully imported %d files to %s\n", len(files), opts.To)
	return nil
}
