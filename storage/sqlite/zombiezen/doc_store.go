package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sent "github.com/revelaction/strunk/sentence"
	"github.com/revelaction/strunk/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type DocStore struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

func (h *DocStore) List() ([]storage.DocInfo, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var infos []storage.DocInfo
	err = sqlitex.Execute(conn, "SELECT id, title, created, num_sentences, num_errs FROM docs ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			created, err := time.Parse(time.RFC3339Nano, stmt.ColumnText(2))
			if err != nil {
				return err
			}
			infos = append(infos, storage.DocInfo{
				Id:           stmt.ColumnText(0),
				Title:        stmt.ColumnText(1),
				Created:      created,
				NumSentences: stmt.ColumnInt(3),
				NumErrs:      stmt.ColumnInt(4),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return infos, nil
}

func (h *DocStore) Read(id string) (sent.Doc, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return sent.Doc{}, err
	}
	defer h.pool.Put(conn)

	doc := sent.Doc{}
	found := false

	err = sqlitex.Execute(conn, "SELECT id, title, created, metrics FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Id = stmt.ColumnText(0)
			doc.Title = stmt.ColumnText(1)
			created, err := time.Parse(time.RFC3339Nano, stmt.ColumnText(2))
			if err != nil {
				return err
			}
			doc.Created = created
			return json.Unmarshal([]byte(stmt.ColumnText(3)), &doc.Metrics)
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}
	if !found {
		return sent.Doc{}, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}

	err = sqlitex.Execute(conn, "SELECT data FROM sentences WHERE doc_id = ? ORDER BY idx", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var s sent.Sentence
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &s); err != nil {
				return err
			}
			doc.Sentences = append(doc.Sentences, s)
			return nil
		},
	})
	if err != nil {
		return sent.Doc{}, err
	}

	return doc, nil
}

func (h *DocStore) Write(doc sent.Doc) (err error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	metrics, err := json.Marshal(doc.Metrics)
	if err != nil {
		return err
	}
	if doc.Metrics == nil {
		metrics = []byte("{}")
	}

	info := storage.Info(doc)

	// a report with the same id is replaced
	err = sqlitex.Execute(conn, "DELETE FROM sentences WHERE doc_id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Id},
	})
	if err != nil {
		return fmt.Errorf("failed to delete sentences: %w", err)
	}

	err = sqlitex.Execute(conn, "INSERT OR REPLACE INTO docs (id, title, created, metrics, num_sentences, num_errs) VALUES (?, ?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Id, doc.Title, doc.Created.UTC().Format(time.RFC3339Nano), string(metrics), info.NumSentences, info.NumErrs},
	})
	if err != nil {
		return fmt.Errorf("failed to insert doc: %w", err)
	}

	for i, sentence := range doc.Sentences {
		data, marshalErr := json.Marshal(sentence)
		if marshalErr != nil {
			return marshalErr
		}

		err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_id, idx, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{doc.Id, i, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence: %w", err)
		}
	}

	return nil
}
