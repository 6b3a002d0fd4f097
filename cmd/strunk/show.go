package main

import (
	"fmt"
	"os"

	"github.com/revelaction/strunk/file"
	"github.com/revelaction/strunk/render"
	sent "github.com/revelaction/strunk/sentence"
)

// showCommand prints a stored report. arg is a JSON report file or a report
// id of the repository.
func showCommand(opts ShowOptions, arg string, ui UI) error {
	doc, err := readReport(opts.Repo, arg)
	if err != nil {
		return err
	}

	if opts.JSON {
		return render.NewJSONRenderer(ui.Out).Render(doc, nil)
	}

	r := render.NewRenderer()
	r.W = ui.Out
	r.HasColor = !opts.NoColor
	r.HasPrefix = !opts.NoPrefix
	r.Format = opts.Format

	if err := r.Render(doc, nil); err != nil {
		return err
	}

	if doc.Metrics != nil {
		fmt.Fprintln(ui.Out)
		return render.MetricsTable(ui.Out, doc.Metrics)
	}
	return nil
}

func readReport(repoPath, arg string) (sent.Doc, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return file.ReadDoc(arg)
	}

	p := &Pool{}
	defer p.Close()
	repo, err := NewDocRepository(p, repoPath, false, nil)
	if err != nil {
		return sent.Doc{}, err
	}
	return repo.Read(arg)
}
