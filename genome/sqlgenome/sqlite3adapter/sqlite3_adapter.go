/*
Package sqlite3adapter provides a sqlgenome.Adapter for SQLite3
database files.
*/
package sqlite3adapter

import (
	"database/sql"
	"fmt"

	"github.com/CanDIG/ID3-Sickkids-Project/genome/sqlgenome"
	_ "github.com/mattn/go-sqlite3"
)

type adapter struct {
	db *sql.DB
}

/*
New takes the path of a SQLite3 database file and a limit of open
connections (0 for no limit) and returns a sqlgenome.Adapter over it or
an error if the database cannot be opened.
*/
func New(path string, maxConns int) (sqlgenome.Adapter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database %s: %v", path, err)
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) Placeholder(i int) string {
	return "?"
}

func (a *adapter) CreateTableStatements() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS genome_variants (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS genome_individuals (
			position INTEGER PRIMARY KEY,
			individual_id TEXT NOT NULL,
			population TEXT NOT NULL,
			genotypes TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS genome_populations (
			label TEXT PRIMARY KEY
		)`,
	}
}
