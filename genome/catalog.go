package genome

import (
	"fmt"
	"sort"
)

/*
Catalog holds the ancestry metadata for the individuals on a genotype
matrix: their ids and population labels, index-aligned 1:1 with the
matrix rows, plus the ancestry universe.

The universe is the sorted set of every distinct population label known
from the mapping source. It may be a superset of the labels present on
the rows, since mapped individuals without genotype data contribute
their label to the universe but have no row.
*/
type Catalog struct {
	individualIDs []string
	populations   []string
	universe      []string
}

/*
NewCatalog takes a slice of individual ids, a slice of population
labels index-aligned with it and a slice with every population label
known from the mapping source, and returns a catalog with them or an
error if the ids and populations are not aligned.

The given universe labels are copied, deduplicated and sorted; they do
not need to include the labels on populations, those are always added.
*/
func NewCatalog(individualIDs, populations, universe []string) (*Catalog, error) {
	if len(individualIDs) != len(populations) {
		return nil, fmt.Errorf("building ancestry catalog: %d individuals for %d population labels", len(individualIDs), len(populations))
	}
	seen := make(map[string]bool)
	var sorted []string
	for _, labels := range [][]string{universe, populations} {
		for _, l := range labels {
			if !seen[l] {
				seen[l] = true
				sorted = append(sorted, l)
			}
		}
	}
	sort.Strings(sorted)
	ids := make([]string, len(individualIDs))
	copy(ids, individualIDs)
	pops := make([]string, len(populations))
	copy(pops, populations)
	return &Catalog{ids, pops, sorted}, nil
}

// NumIndividuals returns the number of individuals on the catalog.
func (c *Catalog) NumIndividuals() int {
	return len(c.individualIDs)
}

// IndividualIDs returns a slice with the ids of the individuals on the
// catalog, in row order.
func (c *Catalog) IndividualIDs() []string {
	ids := make([]string, len(c.individualIDs))
	copy(ids, c.individualIDs)
	return ids
}

// IndividualID returns the id of the individual at the given row.
func (c *Catalog) IndividualID(row int) string {
	return c.individualIDs[row]
}

// Population returns the population label of the individual at the
// given row.
func (c *Catalog) Population(row int) string {
	return c.populations[row]
}

// Populations returns a slice with the population labels of the
// individuals on the catalog, in row order.
func (c *Catalog) Populations() []string {
	pops := make([]string, len(c.populations))
	copy(pops, c.populations)
	return pops
}

// Universe returns a sorted slice with every distinct population label
// known to the catalog.
func (c *Catalog) Universe() []string {
	u := make([]string, len(c.universe))
	copy(u, c.universe)
	return u
}

/*
EmptyDistribution returns a distribution with an explicit zero count
for every population label on the universe, so that absent populations
show up as zeros instead of missing keys.
*/
func (c *Catalog) EmptyDistribution() Distribution {
	d := make(Distribution, len(c.universe))
	for _, label := range c.universe {
		d[label] = 0
	}
	return d
}
