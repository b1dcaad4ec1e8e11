package sqlgenome

import "database/sql"

/*
Adapter is an interface for the database-specific details of a SQL
backend holding a genotype matrix and ancestry catalog.

Its DB method returns the underlying sql.DB handle.

Its Placeholder method returns the parameter placeholder for the
one-based i-th argument of a statement, as the backend dialect expects
it.

Its CreateTableStatements method returns the statements that create the
backend tables when they do not exist yet.
*/
type Adapter interface {
	DB() *sql.DB
	Placeholder(i int) string
	CreateTableStatements() []string
}
