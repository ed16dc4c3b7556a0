package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/tokmark/storage"
	"github.com/revelaction/tokmark/storage/filesystem"
	"github.com/revelaction/tokmark/storage/sqlite/zombiezen"
)

// newDocRepository opens the corpus named by --corpus: a directory is served
// from its JSON files, anything else is treated as a sqlite database.
func newDocRepository(c *cli.Context, p *Pool) (storage.DocRepository, error) {
	path := c.String("corpus")
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("corpus not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	if err := zombiezen.CreateSchemas(pool, "docs.sql"); err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}

// newRegistryStore opens the registry database named by --db, creating the
// schema on first use. Without --db it returns nil: the registry then lives
// in memory only.
func newRegistryStore(c *cli.Context, p *Pool) (*zombiezen.RegistryStore, error) {
	path := c.String("db")
	if path == "" {
		return nil, nil
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	if err := zombiezen.CreateSchemas(pool, "registry.sql"); err != nil {
		return nil, err
	}
	return zombiezen.NewRegistryStore(pool), nil
}
