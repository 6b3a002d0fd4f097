package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/revelaction/strunk/file"
	sent "github.com/revelaction/strunk/sentence"
	"github.com/revelaction/strunk/storage"
)

// DocStore keeps one JSON file per report, named after the report id.
type DocStore struct {
	docDir string

	// Reporter receives the files List skips. May be nil.
	Reporter func(error)
}

// docHeader decodes the fields of a report needed by List. Tokens keep only
// their diagnostics.
type docHeader struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	Created   time.Time `json:"created"`
	Sentences []struct {
		Tokens []struct {
			Errs []string `json:"errs"`
		} `json:"tokens"`
	} `json:"sentences"`
}

func (d docHeader) info() storage.DocInfo {
	info := storage.DocInfo{Id: d.Id, Title: d.Title, Created: d.Created}
	for _, s := range d.Sentences {
		if len(s.Tokens) == 0 {
			continue
		}
		info.NumSentences++
		for _, t := range s.Tokens {
			info.NumErrs += len(t.Errs)
		}
	}
	return info
}

func readHeader(path string) (docHeader, error) {
	var d docHeader
	data, err := os.ReadFile(path)
	if err != nil {
		return d, err
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return d, err
	}
	if _, err := ulid.ParseStrict(d.Id); err != nil {
		return d, fmt.Errorf("invalid report id %q: %w", d.Id, err)
	}
	return d, nil
}

var _ storage.DocRepository = (*DocStore)(nil)

// NewDocStore creates a filesystem report store. The directory is created if
// it does not exist.
func NewDocStore(docDir string) (*DocStore, error) {
	if err := os.MkdirAll(docDir, 0o755); err != nil {
		return nil, err
	}

	return &DocStore{docDir: docDir}, nil
}

func (h *DocStore) path(id string) string {
	return filepath.Join(h.docDir, id+".json")
}

func (h *DocStore) List() ([]storage.DocInfo, error) {
	files, err := os.ReadDir(h.docDir)
	if err != nil {
		return nil, err
	}

	infos := make([]storage.DocInfo, 0, len(files))
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".json" {
			continue
		}

		d, err := readHeader(filepath.Join(h.docDir, f.Name()))
		if err != nil {
			h.report(fmt.Errorf("skipping %s: %w", f.Name(), err))
			continue
		}
		infos = append(infos, d.info())
	}

	// ulids sort by creation time
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Id < infos[j].Id
	})

	return infos, nil
}

func (h *DocStore) report(err error) {
	if h.Reporter != nil {
		h.Reporter(err)
	}
}

func (h *DocStore) Read(id string) (sent.Doc, error) {
	if _, err := ulid.ParseStrict(id); err != nil {
		return sent.Doc{}, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}

	doc, err := file.ReadDoc(h.path(id))
	if errors.Is(err, os.ErrNotExist) {
		return sent.Doc{}, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	return doc, err
}

func (h *DocStore) Write(doc sent.Doc) error {
	if _, err := ulid.ParseStrict(doc.Id); err != nil {
		return fmt.Errorf("invalid report id %q: %w", doc.Id, err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	// write then rename, readers never see a partial file
	tmp, err := os.CreateTemp(h.docDir, "."+doc.Id+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), h.path(doc.Id))
}
