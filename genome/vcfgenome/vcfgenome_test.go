package vcfgenome_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CanDIG/ID3-Sickkids-Project/genome/vcfgenome"
	"github.com/stretchr/testify/require"
)

const testVCF = `##fileformat=VCFv4.2
##FORMAT=<ID=GT,Number=1,Type=String,Description="Genotype">
#CHROM	POS	ID	REF	ALT	QUAL	FILTER	INFO	FORMAT	HG001	HG002
1	101	.	A	T	29	PASS	.	GT	0|1	0|0
1	102	.	G	C	29	PASS	.	GT	./.	1|1
1	200	.	T	A	29	PASS	.	GT	1|1	0|0
2	5	.	T	A	29	PASS	.	GT	1|0	0|0
`

func TestReadVCF(t *testing.T) {
	presence := make(map[string][]uint8)
	vr := vcfgenome.VariantRange{Chr: "1", Start: 100, End: 102}
	names, err := vcfgenome.ReadVCF(strings.NewReader(testVCF), vr, presence)
	require.NoError(t, err)
	require.Equal(t, []string{"1:100:101", "1:101:102"}, names)
	require.Equal(t, []uint8{1, 0}, presence["HG001"])
	require.Equal(t, []uint8{0, 1}, presence["HG002"])
}

func TestReadVCFFiltersByChromosome(t *testing.T) {
	presence := make(map[string][]uint8)
	vr := vcfgenome.VariantRange{Chr: "2", Start: 0, End: 50}
	names, err := vcfgenome.ReadVCF(strings.NewReader(testVCF), vr, presence)
	require.NoError(t, err)
	require.Equal(t, []string{"2:4:5"}, names)
	require.Equal(t, []uint8{1}, presence["HG001"])
	require.Equal(t, []uint8{0}, presence["HG002"])
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	vcfPath := filepath.Join(dir, "chr1.vcf")
	require.NoError(t, os.WriteFile(vcfPath, []byte(testVCF), 0o644))
	mappingPath := filepath.Join(dir, "mapping.tsv")
	require.NoError(t, os.WriteFile(mappingPath, []byte(testMapping), 0o644))
	configData := fmt.Sprintf(`
variant_ranges:
  - chr: "1"
    start: 100
    end: 102
chr_paths:
  "1": %s
user_mapping_path: %s
`, vcfPath, mappingPath)

	config, err := vcfgenome.ReadConfig([]byte(configData))
	require.NoError(t, err)
	matrix, catalog, err := vcfgenome.Load(config)
	require.NoError(t, err)

	require.Equal(t, []string{"1:100:101", "1:101:102"}, matrix.Variants())
	require.Equal(t, 2, matrix.NumRows())
	require.Equal(t, []string{"HG001", "HG002"}, catalog.IndividualIDs())
	require.Equal(t, []string{"GBR", "YRI"}, catalog.Populations())
	require.Equal(t, []string{"GBR", "PUR", "YRI"}, catalog.Universe())
	require.Equal(t, uint8(1), matrix.Value(0, 0))
	require.Equal(t, uint8(0), matrix.Value(0, 1))
	require.Equal(t, uint8(0), matrix.Value(1, 0))
	require.Equal(t, uint8(1), matrix.Value(1, 1))
}

func TestLoadWithConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(testConfig), 0o644))
	config, err := vcfgenome.ReadConfigFromFile(configPath)
	require.NoError(t, err)
	require.Len(t, config.VariantRanges, 2)

	_, err = vcfgenome.ReadConfigFromFile(filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
}
