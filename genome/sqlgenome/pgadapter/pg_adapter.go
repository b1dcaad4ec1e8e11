/*
Package pgadapter provides a sqlgenome.Adapter for PostgreSQL
databases.
*/
package pgadapter

import (
	"database/sql"
	"fmt"

	"github.com/CanDIG/ID3-Sickkids-Project/genome/sqlgenome"
	_ "github.com/lib/pq"
)

type adapter struct {
	db *sql.DB
}

/*
New takes a PostgreSQL connection URL and returns a sqlgenome.Adapter
over it or an error if the database cannot be opened.
*/
func New(url string) (sqlgenome.Adapter, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("opening postgresql database: %v", err)
	}
	return &adapter{db}, nil
}

func (a *adapter) DB() *sql.DB {
	return a.db
}

func (a *adapter) Placeholder(i int) string {
	return fmt.Sprintf("$%d", i)
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
