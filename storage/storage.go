package storage

import (
	"github.com/revelaction/tokmark/token"
)

// DocReader defines read operations for document storage
type DocReader interface {
	// List returns the metadata (Id, Title, Labels) of documents.
	// If labelMatch is not empty, only documents with at least one label
	// containing the string are returned. Content (tokens) is not loaded.
	List(labelMatch string) ([]token.Document, error)

	// Read returns a document by ID
	Read(id int) (token.Document, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document
	Write(doc token.Document) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}

// TitleSource resolves descriptive strings for name-registry entries: the
// title of a person and the definition of a named entity.
type TitleSource interface {
	PersonTitle(name string) (string, bool, error)
	EntityDefinition(name string) (string, bool, error)
}

// RegistrySaver persists registry names so titles and definitions
// accumulate across documents.
type RegistrySaver interface {
	SavePerson(name, title string) error
	SaveEntity(name, definition string) error
}

// Preloader defines an optional capability for repositories that require
// or support eager loading of data into memory.
type Preloader interface {
	Preload(cb func(current, total int, name string)) error
}
