package zombiezen

import (
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool opens a connection pool on the report database at dbPath, creating
// the file and its schema if needed.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	initString := fmt.Sprintf("file:%s", dbPath)

	// default flags: ReadWrite | Create | WAL | URI
	pool, err := sqlitex.NewPool(initString, sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open report database %s: %w", dbPath, err)
	}

	if err := CreateSchemas(pool, "docs.sql"); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
