package main

import (
	"fmt"

	"github.com/revelaction/strunk/render"
	"github.com/revelaction/strunk/search"
	"github.com/revelaction/strunk/storage"
)

// findCommand prints the stored sentences with a diagnostic containing query.
func findCommand(repo storage.DocReader, opts FindOptions, query string, ui UI) error {
	r := render.NewRenderer()
	r.W = ui.Out
	r.HasColor = !opts.NoColor
	r.HasPrefix = !opts.NoPrefix

	s := search.New(repo)
	if opts.Id != "" {
		s = s.WithDocId(opts.Id)
	}

	n := 0
	lastDoc := ""
	err := s.Sentences(query, func(m search.Match) error {
		if m.DocId != lastDoc {
			if _, err := fmt.Fprintf(ui.Out, "📖 %s %s\n", m.DocId, m.Title); err != nil {
				return err
			}
			lastDoc = m.DocId
		}
		r.Sentence(m.Sentence, "")
		n++
		return nil
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(ui.Out, "%d sentence(s) found\n", n)
	return err
}
