package main

import (
	"fmt"

	"github.com/revelaction/strunk/storage/sqlite/zombiezen"
	"zombiezen.com/go/sqlite/sqlitex"
)

// Pool holds the SQLite connection pool of the report repository a command
// works on. The pool is opened on the first Open, which also creates the
// schema, so commands using a report directory never touch SQLite. A
// command works on one database per Pool: export keeps a Pool for each
// side.
type Pool struct {
	path string
	p    *sqlitex.Pool
}

// Open returns the pool of the database at path, opening it on first use.
func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if p.p != nil {
		if path != p.path {
			return nil, fmt.Errorf("pool already open on %s, not %s", p.path, path)
		}
		return p.p, nil
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}
	p.path, p.p = path, pool
	return p.p, nil
}

// Close closes the pool if it was opened.
func (p *Pool) Close() error {
	if p.p == nil {
		return nil
	}
	err := p.p.Close()
	p.p = nil
	return err
}
