package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/tokmark/storage"
	"github.com/revelaction/tokmark/token"
)

// DocStore persists annotated documents in sqlite, one row per sentence in
// wire form, keyed by document and paragraph.
type DocStore struct {
	pool *sqlitex.Pool
}

var _ storage.DocRepository = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

func (h *DocStore) List(labelMatch string) ([]token.Document, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var docs []token.Document
	err = sqlitex.Execute(conn, "SELECT id, title, labels FROM docs ORDER BY title", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			doc := token.Document{
				Id:    stmt.ColumnInt(0),
				Title: stmt.ColumnText(1),
			}
			labelsStr := stmt.ColumnText(2)
			if labelsStr != "" {
				doc.Labels = strings.Split(labelsStr, ",")
			}
			docs = append(docs, doc)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	if labelMatch == "" {
		return docs, nil
	}
	var out []token.Document
	for _, d := range docs {
		for _, l := range d.Labels {
			if strings.Contains(l, labelMatch) {
				out = append(out, d)
				break
			}
		}
	}
	return out, nil
}

func (h *DocStore) Read(id int) (token.Document, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return token.Document{}, err
	}
	defer h.pool.Put(conn)

	doc := token.Document{Id: id}
	found := false

	err = sqlitex.Execute(conn, "SELECT id, title, labels, stats FROM docs WHERE id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			doc.Title = stmt.ColumnText(1)
			if labelsStr := stmt.ColumnText(2); labelsStr != "" {
				doc.Labels = strings.Split(labelsStr, ",")
			}
			if statsStr := stmt.ColumnText(3); statsStr != "" {
				var st token.Stats
				if err := json.Unmarshal([]byte(statsStr), &st); err != nil {
					return err
				}
				doc.Stats = &st
			}
			return nil
		},
	})
	if err != nil {
		return token.Document{}, err
	}
	if !found {
		return token.Document{}, fmt.Errorf("doc not found: %d", id)
	}

	// Sentence rows carry their paragraph index; rowid order preserves the
	// sentence order within a paragraph.
	err = sqlitex.Execute(conn, "SELECT p_ix, data FROM sentences WHERE doc_id = ? ORDER BY p_ix, rowid", &sqlitex.ExecOptions{
		Args: []interface{}{id},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			pIx := stmt.ColumnInt(0)
			var s token.Sentence
			if err := json.Unmarshal([]byte(stmt.ColumnText(1)), &s); err != nil {
				return err
			}
			for len(doc.Paragraphs) <= pIx {
				doc.Paragraphs = append(doc.Paragraphs, token.Paragraph{})
			}
			doc.Paragraphs[pIx] = append(doc.Paragraphs[pIx], s)
			return nil
		},
	})
	if err != nil {
		return token.Document{}, err
	}

	return doc, nil
}

func (h *DocStore) Write(doc token.Document) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	labels := strings.Join(doc.Labels, ",")
	stats := ""
	if doc.Stats != nil {
		data, marshalErr := json.Marshal(doc.Stats)
		if marshalErr != nil {
			return marshalErr
		}
		stats = string(data)
	}

	err = sqlitex.Execute(conn, "INSERT INTO docs (title, labels, stats) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
		Args: []interface{}{doc.Title, labels, stats},
	})
	if err != nil {
		return fmt.Errorf("failed to insert doc: %w", err)
	}
	docID := conn.LastInsertRowID()

	for pIx, p := range doc.Paragraphs {
		for _, s := range p {
			data, marshalErr := json.Marshal(s)
			if marshalErr != nil {
				return marshalErr
			}

			err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_id, p_ix, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
				Args: []interface{}{docID, pIx, string(data)},
			})
			if err != nil {
				return fmt.Errorf("failed to insert sentence: %w", err)
			}
		}
	}

	return nil
}
