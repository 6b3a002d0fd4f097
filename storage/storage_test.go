package storage

import (
	"testing"
	"time"

	sent "github.com/revelaction/strunk/sentence"
)

func TestInfo(t *testing.T) {
	created := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
	doc := sent.Doc{
		Id:      "01JB3V8V6E0000000000000001",
		Title:   "essay.txt",
		Created: created,
		Sentences: []sent.Sentence{
			{Id: 0, Tokens: []sent.Token{{Text: "I", Errs: []string{"first person"}}}},
			{Id: 1},
			{Id: 2, Tokens: []sent.Token{{Text: "Go"}}},
		},
	}

	info := Info(doc)
	if info.Id != doc.Id || info.Title != doc.Title || !info.Created.Equal(created) {
		t.Errorf("unexpected info %+v", info)
	}
	if info.NumSentences != 2 || info.NumErrs != 1 {
		t.Errorf("expected 2 sentences and 1 diagnostic, got %+v", info)
	}
}
