/*
Package sqlgenome stores genotype matrices and ancestry catalogs on SQL
databases, so that a matrix built once from VCF sources can be reused
across runs without parsing them again.

Database-specific details are delegated to an Adapter; see the
sqlite3adapter and pgadapter packages for implementations.
*/
package sqlgenome

import (
	"context"
	"fmt"
	"strings"

	"github.com/CanDIG/ID3-Sickkids-Project/genome"
)

/*
Save takes a context, an adapter and a genotype matrix with its
ancestry catalog and stores them on the adapter's database, replacing
any previously saved ones. It returns an error if the tables cannot be
created or the data cannot be written.

Each individual is stored as a single row with its genotype flags
packed as a string of '0' and '1' characters in variant order.
*/
func Save(ctx context.Context, a Adapter, m *genome.Matrix, c *genome.Catalog) error {
	if m.NumRows() != c.NumIndividuals() {
		return fmt.Errorf("saving genome: matrix has %d rows but catalog has %d individuals", m.NumRows(), c.NumIndividuals())
	}
	err := createTables(ctx, a)
	if err != nil {
		return err
	}
	tx, err := a.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("saving genome: opening transaction: %v", err)
	}
	for _, table := range []string{"genome_variants", "genome_individuals", "genome_populations"} {
		_, err = tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("saving genome: emptying %s: %v", table, err)
		}
	}
	insertVariant := fmt.Sprintf("INSERT INTO genome_variants (position, name) VALUES (%s, %s)", a.Placeholder(1), a.Placeholder(2))
	for i, name := range m.Variants() {
		_, err = tx.ExecContext(ctx, insertVariant, i, name)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("saving genome: inserting variant %q: %v", name, err)
		}
	}
	insertIndividual := fmt.Sprintf(
		"INSERT INTO genome_individuals (position, individual_id, population, genotypes) VALUES (%s, %s, %s, %s)",
		a.Placeholder(1), a.Placeholder(2), a.Placeholder(3), a.Placeholder(4))
	for row := 0; row < m.NumRows(); row++ {
		_, err = tx.ExecContext(ctx, insertIndividual, row, c.IndividualID(row), c.Population(row), packRow(m, row))
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("saving genome: inserting individual %q: %v", c.IndividualID(row), err)
		}
	}
	insertPopulation := fmt.Sprintf("INSERT INTO genome_populations (label) VALUES (%s)", a.Placeholder(1))
	for _, label := range c.Universe() {
		_, err = tx.ExecContext(ctx, insertPopulation, label)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("saving genome: inserting population %q: %v", label, err)
		}
	}
	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("saving genome: committing transaction: %v", err)
	}
	return nil
}

/*
Open takes a context and an adapter and returns the genotype matrix and
ancestry catalog previously saved on the adapter's database, or an
error if they cannot be read or are inconsistent.
*/
func Open(ctx context.Context, a Adapter) (*genome.Matrix, *genome.Catalog, error) {
	db := a.DB()
	var variantNames []string
	rowsV, err := db.QueryContext(ctx, "SELECT name FROM genome_variants ORDER BY position")
	if err != nil {
		return nil, nil, fmt.Errorf("opening genome: reading variants: %v", err)
	}
	defer rowsV.Close()
	for rowsV.Next() {
		var name string
		if err := rowsV.Scan(&name); err != nil {
			return nil, nil, fmt.Errorf("opening genome: reading variants: %v", err)
		}
		variantNames = append(variantNames, name)
	}
	if err := rowsV.Err(); err != nil {
		return nil, nil, fmt.Errorf("opening genome: reading variants: %v", err)
	}
	var ids, populations []string
	var matrixRows [][]uint8
	rowsI, err := db.QueryContext(ctx, "SELECT individual_id, population, genotypes FROM genome_individuals ORDER BY position")
	if err != nil {
		return nil, nil, fmt.Errorf("opening genome: reading individuals: %v", err)
	}
	defer rowsI.Close()
	for rowsI.Next() {
		var id, population, genotypes string
		if err := rowsI.Scan(&id, &population, &genotypes); err != nil {
			return nil, nil, fmt.Errorf("opening genome: reading individuals: %v", err)
		}
		row, err := unpackRow(genotypes)
		if err != nil {
			return nil, nil, fmt.Errorf("opening genome: individual %q: %v", id, err)
		}
		ids = append(ids, id)
		populations = append(populations, population)
		matrixRows = append(matrixRows, row)
	}
	if err := rowsI.Err(); err != nil {
		return nil, nil, fmt.Errorf("opening genome: reading individuals: %v", err)
	}
	var universe []string
	rowsP, err := db.QueryContext(ctx, "SELECT label FROM genome_populations")
	if err != nil {
		return nil, nil, fmt.Errorf("opening genome: reading populations: %v", err)
	}
	defer rowsP.Close()
	for rowsP.Next() {
		var label string
		if err := rowsP.Scan(&label); err != nil {
			return nil, nil, fmt.Errorf("opening genome: reading populations: %v", err)
		}
		universe = append(universe, label)
	}
	if err := rowsP.Err(); err != nil {
		return nil, nil, fmt.Errorf("opening genome: reading populations: %v", err)
	}
	matrix, err := genome.NewMatrix(variantNames, matrixRows)
	if err != nil {
		return nil, nil, fmt.Errorf("opening genome: %v", err)
	}
	catalog, err := genome.NewCatalog(ids, populations, universe)
	if err != nil {
		return nil, nil, fmt.Errorf("opening genome: %v", err)
	}
	return matrix, catalog, nil
}

func createTables(ctx context.Context, a Adapter) error {
	for _, statement := range a.CreateTableStatements() {
		_, err := a.DB().ExecContext(ctx, statement)
		if err != nil {
			return fmt.Errorf("saving genome: creating tables: %v", err)
		}
	}
	return nil
}

func packRow(m *genome.Matrix, row int) string {
	var sb strings.Builder
	sb.Grow(m.NumVariants())
	for column := 0; column < m.NumVariants(); column++ {
		sb.WriteByte('0' + m.Value(row, column))
	}
	return sb.String()
}

func unpackRow(genotypes string) ([]uint8, error) {
	row := make([]uint8, len(genotypes))
	for i := 0; i < len(genotypes); i++ {
		switch genotypes[i] {
		case '0':
			row[i] = 0
		case '1':
			row[i] = 1
		default:
			return nil, fmt.Errorf("invalid genotype character %q", genotypes[i])
		}
	}
	return row, nil
}
