// Package search finds the sentences of stored reports that carry a
// diagnostic.
package search

import (
	"fmt"
	"strings"

	sent "github.com/revelaction/strunk/sentence"
	"github.com/revelaction/strunk/storage"
)

// Match is a sentence of a report with the tokens whose diagnostics match.
type Match struct {
	DocId    string
	Title    string
	Sentence sent.Sentence
	// Indexes of the matched tokens in the sentence
	Tokens []int
}

// Search matches diagnostics against a report repository.
type Search struct {
	repo  storage.DocReader
	docId string
}

// New creates a new Search over the reports of dr.
func New(dr storage.DocReader) *Search {
	return &Search{repo: dr}
}

// WithDocId restricts the search to a single report.
func (s *Search) WithDocId(id string) *Search {
	s.docId = id
	return s
}

// Sentences calls onMatch for every sentence with a token whose diagnostic
// contains query, case insensitive. An empty query matches every diagnostic.
// The reports are visited in id order.
func (s *Search) Sentences(query string, onMatch func(Match) error) error {
	if s.docId != "" {
		doc, err := s.repo.Read(s.docId)
		if err != nil {
			return err
		}
		return matchDoc(doc, query, onMatch)
	}

	infos, err := s.repo.List()
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	for _, info := range infos {
		doc, err := s.repo.Read(info.Id)
		if err != nil {
			return fmt.Errorf("failed to read report %s: %w", info.Id, err)
		}
		if err := matchDoc(doc, query, onMatch); err != nil {
			return err
		}
	}

	return nil
}

func matchDoc(doc sent.Doc, query string, onMatch func(Match) error) error {
	query = strings.ToLower(query)

	for _, s := range doc.Sentences {
		var idx []int
		for i, tok := range s.Tokens {
			if matchErrs(tok.Errs, query) {
				idx = append(idx, i)
			}
		}

		if len(idx) == 0 {
			continue
		}

		m := Match{DocId: doc.Id, Title: doc.Title, Sentence: s, Tokens: idx}
		if err := onMatch(m); err != nil {
			return err
		}
	}
	return nil
}

func matchErrs(errs []string, query string) bool {
	for _, e := range errs {
		if strings.Contains(strings.ToLower(e), query) {
			return true
		}
	}
	return false
}
