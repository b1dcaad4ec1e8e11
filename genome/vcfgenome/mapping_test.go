package vcfgenome_test

import (
	"strings"
	"testing"

	"github.com/CanDIG/ID3-Sickkids-Project/genome"
	"github.com/CanDIG/ID3-Sickkids-Project/genome/vcfgenome"
	"github.com/stretchr/testify/require"
)

const testMapping = `Family ID	Individual ID	Paternal ID	Maternal ID	Gender	Phenotype	Population
f1	HG001	0	0	1	0	GBR
f2	HG002	0	0	2	0	YRI

f3	HG999	0	0	1	0	PUR
`

func genotypedSet(ids ...string) func(string) bool {
	set := make(map[string]bool)
	for _, id := range ids {
		set[id] = true
	}
	return func(id string) bool { return set[id] }
}

func TestReadMapping(t *testing.T) {
	ids, populations, universe, err := vcfgenome.ReadMapping(strings.NewReader(testMapping), genotypedSet("HG001", "HG002"))
	require.NoError(t, err)
	require.Equal(t, []string{"HG001", "HG002"}, ids)
	require.Equal(t, []string{"GBR", "YRI"}, populations)
	require.Equal(t, []string{"GBR", "YRI", "PUR"}, universe)
}

func TestReadMappingSkipsHeaderAndBlankRows(t *testing.T) {
	ids, _, universe, err := vcfgenome.ReadMapping(strings.NewReader(testMapping), genotypedSet())
	require.NoError(t, err)
	require.Empty(t, ids)
	require.Len(t, universe, 3)
}

func TestReadMappingMalformedRow(t *testing.T) {
	mapping := "header\nf1\tHG001\t0\t0\t1\t0\tGBR\nf2\tHG002\tshort\n"
	_, _, _, err := vcfgenome.ReadMapping(strings.NewReader(mapping), genotypedSet("HG001", "HG002"))
	require.Error(t, err)
	mme, ok := err.(*genome.MalformedMappingError)
	require.True(t, ok)
	require.Equal(t, 3, mme.Line)
	require.Equal(t, 3, mme.Columns)
}
