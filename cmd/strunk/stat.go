package main

import (
	"fmt"
	"sort"

	"github.com/revelaction/strunk/stat"
	"github.com/revelaction/strunk/storage"
)

// statCommand aggregates the counts of one report, or of every report when id
// is empty.
func statCommand(repo storage.DocReader, id string, ui UI) error {
	hdl := stat.NewHandler()

	if id != "" {
		doc, err := repo.Read(id)
		if err != nil {
			return err
		}
		hdl.Aggregate(doc)
	} else {
		infos, err := repo.List()
		if err != nil {
			return err
		}
		for _, info := range infos {
			doc, err := repo.Read(info.Id)
			if err != nil {
				return err
			}
			hdl.Aggregate(doc)
		}
	}

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num reports %d, num paragraphs %d, num sentences %d\n", stats.NumDocs, stats.NumParagraphs, stats.NumSentences)
	fmt.Fprintf(ui.Out, "Num tokens %d, num tokens per sentence %d, num diagnostics %d\n", stats.NumTokens, stats.TokensPerSentenceMean, stats.NumErrs)

	msgs := make([]string, 0, len(stats.ErrsPerMsg))
	for m := range stats.ErrsPerMsg {
		msgs = append(msgs, m)
	}
	sort.Slice(msgs, func(i, j int) bool {
		if stats.ErrsPerMsg[msgs[i]] != stats.ErrsPerMsg[msgs[j]] {
			return stats.ErrsPerMsg[msgs[i]] > stats.ErrsPerMsg[msgs[j]]
		}
		return msgs[i] < msgs[j]
	})

	for _, m := range msgs {
		fmt.Fprintf(ui.Out, "%5d  %s\n", stats.ErrsPerMsg[m], m)
	}

	return nil
}
