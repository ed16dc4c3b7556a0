package zombiezen

import (
	"context"
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/tokmark/register"
	"github.com/revelaction/tokmark/storage"
)

// RegistryStore persists person titles and entity definitions so that names
// seen in one document enrich the registry of the next.
type RegistryStore struct {
	pool *sqlitex.Pool
}

var _ storage.TitleSource = (*RegistryStore)(nil)
var _ storage.RegistrySaver = (*RegistryStore)(nil)

func NewRegistryStore(pool *sqlitex.Pool) *RegistryStore {
	return &RegistryStore{pool: pool}
}

// PersonTitle returns the stored descriptive title of a person.
func (s *RegistryStore) PersonTitle(name string) (string, bool, error) {
	return s.lookup("SELECT title FROM persons WHERE name = ?", name)
}

// EntityDefinition returns the stored definition of a named entity.
func (s *RegistryStore) EntityDefinition(name string) (string, bool, error) {
	return s.lookup("SELECT definition FROM entities WHERE name = ?", name)
}

func (s *RegistryStore) lookup(query, name string) (string, bool, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return "", false, err
	}
	defer s.pool.Put(conn)

	var value string
	found := false
	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: []interface{}{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			value = stmt.ColumnText(0)
			return nil
		},
	})
	if err != nil {
		return "", false, err
	}
	if value == "" {
		return "", false, nil
	}
	return value, found, nil
}

// SavePerson upserts a person. An empty title never overwrites a stored one.
func (s *RegistryStore) SavePerson(name, title string) error {
	return s.save(`INSERT INTO persons (name, title) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET title = excluded.title
		WHERE excluded.title != ''`, name, title)
}

// SaveEntity upserts an entity. An empty definition never overwrites a
// stored one.
func (s *RegistryStore) SaveEntity(name, definition string) error {
	return s.save(`INSERT INTO entities (name, definition) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET definition = excluded.definition
		WHERE excluded.definition != ''`, name, definition)
}

func (s *RegistryStore) save(query, name, value string) error {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	err = sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: []interface{}{name, value},
	})
	if err != nil {
		return fmt.Errorf("failed to save %q: %w", name, err)
	}
	return nil
}

// SaveRegistry persists every displayable entry of a registry.
func (s *RegistryStore) SaveRegistry(reg *register.Registry) error {
	for _, e := range reg.Sorted() {
		var err error
		switch e.Kind {
		case register.Name:
			err = s.SavePerson(e.Name, e.Title)
		case register.Entity:
			err = s.SaveEntity(e.Name, e.Title)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
