package vcfgenome

import (
	"bufio"
	"io"
	"strings"

	"github.com/CanDIG/ID3-Sickkids-Project/genome"
)

const (
	mappingIndividualColumn = 1
	mappingPopulationColumn = 6
	mappingMinColumns       = 7
)

/*
ReadMapping takes an io.Reader for a tab-delimited population mapping
and a predicate telling which individual ids have genotype data, and
returns the ids and population labels of the genotyped individuals in
mapping order, plus the population labels of every mapped individual.

The first row of the mapping is a header and is skipped. Each following
row must have at least seven columns, with the individual id on column
1 and its population label on column 6; a shorter row makes the read
fail with a MalformedMappingError, since it signals corrupted upstream
data. Every mapped individual contributes its label to the universe,
whether genotyped or not.
*/
func ReadMapping(r io.Reader, genotyped func(id string) bool) (ids, populations, universe []string, err error) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue
		}
		row := strings.TrimRight(scanner.Text(), "\r\n")
		if row == "" {
			continue
		}
		columns := strings.Split(row, "\t")
		if len(columns) < mappingMinColumns {
			return nil, nil, nil, &genome.MalformedMappingError{Line: line, Columns: len(columns)}
		}
		id := columns[mappingIndividualColumn]
		population := columns[mappingPopulationColumn]
		universe = append(universe, population)
		if genotyped(id) {
			ids = append(ids, id)
			populations = append(populations, population)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, err
	}
	return ids, populations, universe, nil
}
