package vcfgenome_test

import (
	"testing"

	"github.com/CanDIG/ID3-Sickkids-Project/genome/vcfgenome"
	"github.com/stretchr/testify/require"
)

const testConfig = `
variant_ranges:
  - chr: "1"
    start: 100
    end: 102
  - chr: "2"
    start: 0
    end: 50
chr_paths:
  "1": /data/chr1.vcf.gz
  "2": /data/chr2.vcf
user_mapping_path: /data/mapping.tsv
`

func TestReadConfig(t *testing.T) {
	config, err := vcfgenome.ReadConfig([]byte(testConfig))
	require.NoError(t, err)
	require.Equal(t, []vcfgenome.VariantRange{
		{Chr: "1", Start: 100, End: 102},
		{Chr: "2", Start: 0, End: 50},
	}, config.VariantRanges)
	require.Equal(t, "/data/chr1.vcf.gz", config.ChrPaths["1"])
	require.Equal(t, "/data/mapping.tsv", config.UserMappingPath)
}

func TestReadConfigRejectsInvalidYAML(t *testing.T) {
	_, err := vcfgenome.ReadConfig([]byte("variant_ranges: {"))
	require.Error(t, err)
}

func TestReadConfigRequiresVariantRanges(t *testing.T) {
	_, err := vcfgenome.ReadConfig([]byte("user_mapping_path: /data/mapping.tsv"))
	require.Error(t, err)
}

func TestReadConfigRequiresMappingPath(t *testing.T) {
	config := `
variant_ranges:
  - chr: "1"
    start: 100
    end: 102
chr_paths:
  "1": /data/chr1.vcf
`
	_, err := vcfgenome.ReadConfig([]byte(config))
	require.Error(t, err)
}

func TestReadConfigRequiresAPathPerChromosome(t *testing.T) {
	config := `
variant_ranges:
  - chr: "1"
    start: 100
    end: 102
user_mapping_path: /data/mapping.tsv
`
	_, err := vcfgenome.ReadConfig([]byte(config))
	require.Error(t, err)
}
