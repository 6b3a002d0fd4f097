package storage

import (
	"errors"
	"time"

	sent "github.com/revelaction/strunk/sentence"
)

// ErrNotFound is returned when a report id is not in the repository.
var ErrNotFound = errors.New("report not found")

// DocInfo is the metadata of a stored report.
type DocInfo struct {
	Id           string    `json:"id"`
	Title        string    `json:"title"`
	Created      time.Time `json:"created"`
	NumSentences int       `json:"num_sentences"`
	NumErrs      int       `json:"num_errs"`
}

// Info returns the metadata of doc.
func Info(doc sent.Doc) DocInfo {
	n := 0
	for _, s := range doc.Sentences {
		if !s.IsBreak() {
			n++
		}
	}

	return DocInfo{
		Id:           doc.Id,
		Title:        doc.Title,
		Created:      doc.Created,
		NumSentences: n,
		NumErrs:      doc.NumErrs(),
	}
}

// DocReader defines read operations for report storage
type DocReader interface {
	// List returns the metadata of the reports, oldest first.
	// Content (Sentences) is not loaded.
	List() ([]DocInfo, error)

	// Read returns a report by id, ErrNotFound if there is none.
	Read(id string) (sent.Doc, error)
}

// DocWriter defines write operations for report storage
type DocWriter interface {
	// Write persists a report, replacing a report with the same id.
	Write(doc sent.Doc) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}
