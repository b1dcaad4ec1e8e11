package split

import (
	"fmt"

	"github.com/CanDIG/ID3-Sickkids-Project/genome"
)

/*
Engine answers the counting queries tree growing is made of: which
individuals remain eligible under a split path, how their ancestry
labels distribute, and what distribution every candidate variant would
produce if split on next.

An engine only reads its matrix and catalog, so a single engine can be
shared by any number of workers developing tree nodes concurrently, as
long as each worker builds its own paths.
*/
type Engine struct {
	matrix  *genome.Matrix
	catalog *genome.Catalog
}

/*
NewEngine takes a genotype matrix and an ancestry catalog and returns
an engine querying them, or an error if the catalog is not row-aligned
with the matrix.
*/
func NewEngine(m *genome.Matrix, c *genome.Catalog) (*Engine, error) {
	if m.NumRows() != c.NumIndividuals() {
		return nil, fmt.Errorf("building split engine: matrix has %d rows but catalog has %d individuals", m.NumRows(), c.NumIndividuals())
	}
	return &Engine{m, c}, nil
}

// Matrix returns the genotype matrix the engine queries.
func (e *Engine) Matrix() *genome.Matrix {
	return e.matrix
}

// Catalog returns the ancestry catalog the engine queries.
func (e *Engine) Catalog() *genome.Catalog {
	return e.catalog
}

/*
IgnoreRows takes a split path and returns a mask over the matrix rows
with true for every row that violates at least one constraint on the
path, or an UnknownVariantError if the path references a variant the
matrix has no column for.

A row is eligible only if it satisfies every constraint, so a row
flagged by one constraint stays flagged regardless of the rest. All
path variants are resolved to columns before any row is visited, so an
unknown variant fails the query without scanning.
*/
func (e *Engine) IgnoreRows(p Path) ([]bool, error) {
	columns, err := e.pathColumns(p)
	if err != nil {
		return nil, err
	}
	ignored := make([]bool, e.matrix.NumRows())
	for i, column := range columns {
		_, direction := p.At(i)
		for row := range ignored {
			if !ignored[row] && e.matrix.Value(row, column) != uint8(direction) {
				ignored[row] = true
			}
		}
	}
	return ignored, nil
}

/*
Distribution takes a split path and returns the population counts of
the rows eligible under it, keyed by every label on the ancestry
universe, or an UnknownVariantError if the path references an unknown
variant. With an empty path it matches TargetDistribution.
*/
func (e *Engine) Distribution(p Path) (genome.Distribution, error) {
	ignored, err := e.IgnoreRows(p)
	if err != nil {
		return nil, err
	}
	d := e.catalog.EmptyDistribution()
	for row, skip := range ignored {
		if skip {
			continue
		}
		d[e.catalog.Population(row)]++
	}
	return d, nil
}

/*
Subset takes a split path and a candidate variant name and partitions
the rows eligible under the path into those carrying the candidate and
those lacking it, returning the population counts of each group. Both
distributions carry an explicit entry for every label on the ancestry
universe.

An empty candidate is not an error: both distributions are returned
all-zero, after the path itself has been validated. An unknown path or
candidate variant makes the query fail with an UnknownVariantError
before any row is scanned.
*/
func (e *Engine) Subset(p Path, candidate string) (with, without genome.Distribution, err error) {
	ignored, err := e.IgnoreRows(p)
	if err != nil {
		return nil, nil, err
	}
	with = e.catalog.EmptyDistribution()
	without = e.catalog.EmptyDistribution()
	if candidate == "" {
		return with, without, nil
	}
	column, err := e.matrix.VariantIndex(candidate)
	if err != nil {
		return nil, nil, err
	}
	for row, skip := range ignored {
		if skip {
			continue
		}
		population := e.catalog.Population(row)
		if e.matrix.Value(row, column) == 1 {
			with[population]++
		} else {
			without[population]++
		}
	}
	return with, without, nil
}

/*
CandidateCounts takes a split path and computes, for every variant on
the matrix at once, the population counts of the eligible rows carrying
that variant. The result holds one distribution per variant, in matrix
column order, each keyed by every label on the ancestry universe.

It is equivalent to calling Subset once per variant and keeping the
with-variant distribution, but determines eligibility a single time and
scans the matrix in one pass, which keeps the cost of evaluating a node
at O(rows x variants).
*/
func (e *Engine) CandidateCounts(p Path) ([]genome.Distribution, error) {
	ignored, err := e.IgnoreRows(p)
	if err != nil {
		return nil, err
	}
	counts := make([]genome.Distribution, e.matrix.NumVariants())
	for i := range counts {
		counts[i] = e.catalog.EmptyDistribution()
	}
	for row, skip := range ignored {
		if skip {
			continue
		}
		population := e.catalog.Population(row)
		for column := range counts {
			if e.matrix.Value(row, column) == 1 {
				counts[column][population]++
			}
		}
	}
	return counts, nil
}

/*
TargetDistribution returns the population counts over every individual
on the matrix, ignoring any split path: the root-node baseline
distribution. Its total equals the number of individuals.
*/
func (e *Engine) TargetDistribution() genome.Distribution {
	d := e.catalog.EmptyDistribution()
	for row := 0; row < e.catalog.NumIndividuals(); row++ {
		d[e.catalog.Population(row)]++
	}
	return d
}

/*
VariantCounts returns, for each variant, the total number of
individuals on the matrix carrying it. Variants with no carrier are
omitted from the result instead of reported as zero.
*/
func (e *Engine) VariantCounts() map[string]int {
	counts := make(map[string]int)
	variants := e.matrix.Variants()
	for row := 0; row < e.matrix.NumRows(); row++ {
		for column, name := range variants {
			if e.matrix.Value(row, column) == 1 {
				counts[name]++
			}
		}
	}
	return counts
}

func (e *Engine) pathColumns(p Path) ([]int, error) {
	columns := make([]int, p.Len())
	for i := range columns {
		variant, _ := p.At(i)
		column, err := e.matrix.VariantIndex(variant)
		if err != nil {
			return nil, err
		}
		columns[i] = column
	}
	return columns, nil
}
