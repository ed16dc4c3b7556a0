// Package zombiezen persists corpus documents and registry names in sqlite.
package zombiezen

import (
	"context"
	"embed"
	"fmt"
	"path"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"
)

//go:embed sql/*.sql
var schemas embed.FS

// NewPool opens the database at dbPath, creating the file if needed, with
// one connection per CPU. The sqlitex defaults include WAL mode.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	pool, err := sqlitex.NewPool("file:"+dbPath, sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", dbPath, err)
	}
	return pool, nil
}

// CreateSchemas runs the named embedded schema script ("docs.sql",
// "registry.sql"). The scripts use IF NOT EXISTS throughout, so running
// them against an existing database is a no-op.
func CreateSchemas(pool *sqlitex.Pool, schemaName string) error {
	script, err := schemas.ReadFile(path.Join("sql", schemaName))
	if err != nil {
		return fmt.Errorf("no embedded schema %s: %w", schemaName, err)
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("schema %s: %w", schemaName, err)
	}
	return nil
}
