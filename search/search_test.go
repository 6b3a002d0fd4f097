package search

import (
	"errors"
	"testing"

	sent "github.com/revelaction/strunk/sentence"
	"github.com/revelaction/strunk/storage"
)

type memRepo map[string]sent.Doc

func (m memRepo) List() ([]storage.DocInfo, error) {
	var infos []storage.DocInfo
	for _, id := range []string{"a", "b"} {
		if doc, ok := m[id]; ok {
			infos = append(infos, storage.Info(doc))
		}
	}
	return infos, nil
}

func (m memRepo) Read(id string) (sent.Doc, error) {
	doc, ok := m[id]
	if !ok {
		return sent.Doc{}, storage.ErrNotFound
	}
	return doc, nil
}

func testRepo() memRepo {
	return memRepo{
		"a": {Id: "a", Title: "first", Sentences: []sent.Sentence{
			{Id: 0, Tokens: []sent.Token{
				{Index: 0, Text: "I", Errs: []string{"Do not use the first person in formal writing."}},
				{Index: 1, Text: "ran"},
				{Index: 2, Text: "!", Errs: []string{"Do not attempt to emphasize simple statements by using a mark of exclamation."}},
			}},
			{Id: 1},
			{Id: 2, Tokens: []sent.Token{{Index: 0, Text: "Fine"}}},
		}},
		"b": {Id: "b", Title: "second", Sentences: []sent.Sentence{
			{Id: 0, Tokens: []sent.Token{
				{Index: 0, Text: "We", Errs: []string{"Do not use the first person in formal writing."}},
				{Index: 1, Text: "won"},
			}},
		}},
	}
}

func TestSentences(t *testing.T) {
	var got []Match
	err := New(testRepo()).Sentences("FIRST PERSON", func(m Match) error {
		got = append(got, m)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].DocId != "a" || got[0].Title != "first" || len(got[0].Tokens) != 1 || got[0].Tokens[0] != 0 {
		t.Errorf("unexpected match %+v", got[0])
	}
	if got[1].DocId != "b" {
		t.Errorf("expected the second report, got %s", got[1].DocId)
	}
}

func TestSentencesAllDiagnostics(t *testing.T) {
	var got []Match
	err := New(testRepo()).WithDocId("a").Sentences("", func(m Match) error {
		got = append(got, m)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 1 || len(got[0].Tokens) != 2 {
		t.Fatalf("expected one sentence with two tokens, got %+v", got)
	}
}

func TestSentencesErrors(t *testing.T) {
	if err := New(testRepo()).WithDocId("z").Sentences("", func(Match) error { return nil }); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	stop := errors.New("stop")
	calls := 0
	err := New(testRepo()).Sentences("", func(Match) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Errorf("expected the callback error after one call, got %v after %d", err, calls)
	}
}
