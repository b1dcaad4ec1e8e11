package genome

import "fmt"

/*
Matrix is an immutable binary genotype table: each row holds the
presence flags of one individual for every known variant, in variant
order. Variants are identified by their "chromosome:start:end" key,
with start and end delimiting the zero-based half-open single-base
interval of the variant position.

A Matrix is built once from a genomic source and only queried
afterwards, so it is safe for concurrent use by any number of
goroutines.
*/
type Matrix struct {
	variantNames []string
	variantIndex map[string]int
	rows         [][]uint8
}

/*
NewMatrix takes a slice of variant names and a slice of presence rows and
returns a matrix with them or an error if a variant name is repeated or a
row does not have exactly one value per variant.

The variant name to column index mapping is precomputed here so that
lookups during filtering and scanning stay constant-time.
*/
func NewMatrix(variantNames []string, rows [][]uint8) (*Matrix, error) {
	index := make(map[string]int, len(variantNames))
	for i, vn := range variantNames {
		if _, ok := index[vn]; ok {
			return nil, fmt.Errorf("building genotype matrix: duplicated variant %q", vn)
		}
		index[vn] = i
	}
	for i, r := range rows {
		if len(r) != len(variantNames) {
			return nil, fmt.Errorf("building genotype matrix: row %d has %d values for %d variants", i, len(r), len(variantNames))
		}
	}
	return &Matrix{variantNames, index, rows}, nil
}

/*
Variants returns a slice with the names of the variants on the matrix,
in column order.
*/
func (m *Matrix) Variants() []string {
	variants := make([]string, len(m.variantNames))
	copy(variants, m.variantNames)
	return variants
}

// NumVariants returns the number of variant columns on the matrix.
func (m *Matrix) NumVariants() int {
	return len(m.variantNames)
}

// NumRows returns the number of individual rows on the matrix.
func (m *Matrix) NumRows() int {
	return len(m.rows)
}

/*
VariantIndex takes a variant name and returns its column index on the
matrix or an UnknownVariantError if the matrix has no column for it.
*/
func (m *Matrix) VariantIndex(name string) (int, error) {
	i, ok := m.variantIndex[name]
	if !ok {
		return 0, &UnknownVariantError{Variant: name}
	}
	return i, nil
}

// Value returns the presence flag at the given row and variant column.
func (m *Matrix) Value(row, column int) uint8 {
	return m.rows[row][column]
}

/*
Sample is an interface for something whose variant presence can be
queried, such as an individual to predict an ancestry for.

Its HasVariant method returns whether the sample carries the variant
with the given name, or an error if that cannot be determined.
*/
type Sample interface {
	HasVariant(name string) (bool, error)
}

type rowSample struct {
	m   *Matrix
	row int
}

/*
RowSample returns the row with the given index on the matrix as a
Sample. Its HasVariant method returns an UnknownVariantError when asked
about a variant the matrix has no column for.
*/
func (m *Matrix) RowSample(row int) Sample {
	return &rowSample{m, row}
}

func (rs *rowSample) HasVariant(name string) (bool, error) {
	i, err := rs.m.VariantIndex(name)
	if err != nil {
		return false, err
	}
	return rs.m.Value(rs.row, i) == 1, nil
}

func (rs *rowSample) String() string {
	return fmt.Sprintf("[row %d]", rs.row)
}
