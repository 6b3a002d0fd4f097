package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
)

func exportCommand(opts ExportOptions, ui UI) error {
	logger := newLogger(ui.Err, false)
	srcPool, dstPool := &Pool{}, &Pool{}
	defer srcPool.Close()
	defer dstPool.Close()

	src, err := NewDocRepository(srcPool, opts.From, false, logger)
	if err != nil {
		return err
	}
	dst, err := NewDocRepository(dstPool, opts.To, true, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Reading reports from %s...\n", opts.From)
	infos, err := src.List()
	if err != nil {
		return err
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(infos))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for _, info := range infos {
		doc, err := src.Read(info.Id)
		if err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to read report %s (%s): %w", info.Id, info.Title, err)
		}

		if err := dst.Write(doc); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write report %s (%s): %w", info.Id, info.Title, err)
		}
		count++
		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Fprintf(ui.Out, "Successfully exported %d reports from %s to %s\n", count, opts.From, opts.To)
	return nil
}
