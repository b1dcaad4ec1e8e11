/*
Package vcfgenome builds the genotype matrix and ancestry catalog from
their external sources: VCF genomic files for the matrix rows and a
tab-delimited population mapping for the catalog.
*/
package vcfgenome

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/CanDIG/ID3-Sickkids-Project/genome"
	vcfgo "github.com/brentp/vcfgo"
	gzip "github.com/klauspost/compress/gzip"
)

/*
Load takes a Config and returns the genotype matrix and ancestry
catalog built from the VCF files and population mapping it points to,
or an error.

Each variant overlapping a configured range becomes a matrix column
named "chromosome:start:end", with start and end the zero-based
half-open single-base interval of the variant position. A genotype call
counts as present unless it is homozygous reference or missing.
Individuals become matrix rows in mapping order, and only if they have
genotype data; every mapped individual still contributes its population
label to the catalog's universe.
*/
func Load(config *Config) (*genome.Matrix, *genome.Catalog, error) {
	var variantNames []string
	presence := make(map[string][]uint8)
	for _, vr := range config.VariantRanges {
		path := config.ChrPaths[vr.Chr]
		names, err := readVCFFile(path, vr, presence)
		if err != nil {
			return nil, nil, fmt.Errorf("reading VCF %s: %v", path, err)
		}
		variantNames = append(variantNames, names...)
		for id, flags := range presence {
			if len(flags) != len(variantNames) {
				return nil, nil, fmt.Errorf("reading VCF %s: individual %q has calls for %d of %d variants", path, id, len(flags), len(variantNames))
			}
		}
	}
	mf, err := os.Open(config.UserMappingPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening population mapping %s: %v", config.UserMappingPath, err)
	}
	defer mf.Close()
	ids, populations, universe, err := ReadMapping(mf, func(id string) bool {
		_, ok := presence[id]
		return ok
	})
	if err != nil {
		return nil, nil, fmt.Errorf("reading population mapping %s: %v", config.UserMappingPath, err)
	}
	rows := make([][]uint8, len(ids))
	for i, id := range ids {
		rows[i] = presence[id]
	}
	matrix, err := genome.NewMatrix(variantNames, rows)
	if err != nil {
		return nil, nil, err
	}
	catalog, err := genome.NewCatalog(ids, populations, universe)
	if err != nil {
		return nil, nil, err
	}
	return matrix, catalog, nil
}

func readVCFFile(path string, vr VariantRange, presence map[string][]uint8) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	return ReadVCF(r, vr, presence)
}

/*
ReadVCF takes an io.Reader for a VCF stream, a variant range and a map
of individual id to presence flags, appends one flag per individual for
every variant of the stream overlapping the range, and returns the
names of the appended variants or an error.
*/
func ReadVCF(r io.Reader, vr VariantRange, presence map[string][]uint8) ([]string, error) {
	rdr, err := vcfgo.NewReader(r, false)
	if err != nil {
		return nil, err
	}
	samples := rdr.Header.SampleNames
	var names []string
	for {
		variant := rdr.Read()
		if variant == nil {
			break
		}
		pos := int(variant.Pos)
		if variant.Chromosome != vr.Chr || pos-1 < vr.Start || pos-1 >= vr.End {
			continue
		}
		names = append(names, fmt.Sprintf("%s:%d:%d", variant.Chromosome, pos-1, pos))
		for i, sample := range variant.Samples {
			var flag uint8
			if genotypePresent(sample) {
				flag = 1
			}
			presence[samples[i]] = append(presence[samples[i]], flag)
		}
	}
	return names, nil
}

// genotypePresent reports whether a genotype call carries the variant.
// Homozygous reference and missing calls count as reference.
func genotypePresent(s *vcfgo.SampleGenotype) bool {
	if s == nil {
		return false
	}
	for _, allele := range s.GT {
		if allele > 0 {
			return true
		}
	}
	return false
}
