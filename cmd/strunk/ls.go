package main

import (
	"strconv"
	"time"

	"github.com/revelaction/strunk/render"
	"github.com/revelaction/strunk/storage"
)

func lsCommand(repo storage.DocReader, ui UI) error {
	infos, err := repo.List()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{
			info.Id,
			info.Title,
			info.Created.Local().Format(time.DateTime),
			strconv.Itoa(info.NumSentences),
			strconv.Itoa(info.NumErrs),
		})
	}

	render.DocTable(ui.Out, rows)
	return nil
}
