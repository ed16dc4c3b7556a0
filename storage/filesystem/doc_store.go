package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/revelaction/tokmark/storage"
	"github.com/revelaction/tokmark/token"
)

// DocStore serves token-stream documents from a directory of .json files,
// sorted by file name. Document ids are positions in that listing.
type DocStore struct {
	docDir string

	// In-memory cache
	docs   []token.Document
	loaded []bool
}

var _ storage.DocRepository = (*DocStore)(nil)
var _ storage.Preloader = (*DocStore)(nil)

// NewDocStore creates a filesystem document store over docDir.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	docs := make([]token.Document, 0, len(files))
	idx := 0
	for _, file := range files {
		if filepath.Ext(file.Name()) == ".json" {
			docs = append(docs, token.Document{
				Id:    idx,
				Title: file.Name(),
			})
			idx++
		}
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
		loaded: make([]bool, len(docs)),
	}, nil
}

// Preload loads all documents into memory, reporting progress per file.
func (h *DocStore) Preload(cb func(current, total int, name string)) error {
	total := len(h.docs)
	for i := range h.docs {
		if cb != nil {
			cb(i+1, total, h.docs[i].Title)
		}
		if _, err := h.Read(i); err != nil {
			return err
		}
	}
	return nil
}

// List returns document metadata. Labels live in the file content, so a
// label filter reads any document not yet loaded.
func (h *DocStore) List(labelMatch string) ([]token.Document, error) {
	if labelMatch == "" {
		return h.docs, nil
	}
	var out []token.Document
	for i := range h.docs {
		d, err := h.Read(i)
		if err != nil {
			return nil, err
		}
		for _, l := range d.Labels {
			if strings.Contains(l, labelMatch) {
				out = append(out, d)
				break
			}
		}
	}
	return out, nil
}

// Read returns a document by id, loading it from disk on first access.
func (h *DocStore) Read(id int) (token.Document, error) {
	if id < 0 || id >= len(h.docs) {
		return token.Document{}, fmt.Errorf("doc id out of range: %d", id)
	}
	if h.loaded[id] {
		return h.docs[id], nil
	}

	doc, err := ReadDoc(filepath.Join(h.docDir, h.docs[id].Title))
	if err != nil {
		return token.Document{}, err
	}

	// Keep the listing identity; the file content fills in the rest.
	doc.Id = id
	if doc.Title == "" {
		doc.Title = h.docs[id].Title
	}
	h.docs[id] = doc
	h.loaded[id] = true
	return doc, nil
}

// Write persists a document as <title>.json in the store directory.
func (h *DocStore) Write(doc token.Document) error {
	if doc.Title == "" {
		return fmt.Errorf("document has no title")
	}
	name := doc.Title
	if filepath.Ext(name) != ".json" {
		name += ".json"
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON encoding error: %w", err)
	}
	return os.WriteFile(filepath.Join(h.docDir, name), data, 0o644)
}

// ReadDoc reads a document JSON from the given path and unmarshals it.
// Both the corpus object form and the bare token-stream array form are
// accepted.
func ReadDoc(path string) (token.Document, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return token.Document{}, fmt.Errorf("IO error: %w", err)
	}

	var doc token.Document
	if err := json.Unmarshal(f, &doc); err != nil {
		return token.Document{}, fmt.Errorf("JSON decoding error: %w", err)
	}
	return doc, nil
}
