package genome_test

import (
	"testing"

	"github.com/CanDIG/ID3-Sickkids-Project/genome"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogRejectsMisalignedPopulations(t *testing.T) {
	_, err := genome.NewCatalog([]string{"HG001", "HG002"}, []string{"GBR"}, nil)
	require.Error(t, err)
}

func TestCatalogUniverseMergesAndSorts(t *testing.T) {
	c, err := genome.NewCatalog(
		[]string{"HG001", "HG002", "HG003"},
		[]string{"GBR", "YRI", "GBR"},
		[]string{"PUR", "YRI", "PUR"},
	)
	require.NoError(t, err)
	require.Equal(t, 3, c.NumIndividuals())
	require.Equal(t, []string{"GBR", "PUR", "YRI"}, c.Universe())
}

func TestCatalogAccessors(t *testing.T) {
	c, err := genome.NewCatalog([]string{"HG001", "HG002"}, []string{"GBR", "YRI"}, nil)
	require.NoError(t, err)
	require.Equal(t, "HG002", c.IndividualID(1))
	require.Equal(t, "YRI", c.Population(1))
	require.Equal(t, []string{"HG001", "HG002"}, c.IndividualIDs())
	require.Equal(t, []string{"GBR", "YRI"}, c.Populations())
}

func TestCatalogEmptyDistributionCoversUniverse(t *testing.T) {
	c, err := genome.NewCatalog([]string{"HG001"}, []string{"GBR"}, []string{"PUR"})
	require.NoError(t, err)
	d := c.EmptyDistribution()
	require.Equal(t, genome.Distribution{"GBR": 0, "PUR": 0}, d)
}

func TestDistributionTotalAndPopulations(t *testing.T) {
	d := genome.Distribution{"GBR": 3, "YRI": 0, "PUR": 2}
	require.Equal(t, 5, d.Total())
	require.Equal(t, 2, d.Populations())
}

func TestDistributionMinus(t *testing.T) {
	d := genome.Distribution{"GBR": 3, "YRI": 2}
	other := genome.Distribution{"GBR": 1, "YRI": 2}
	require.Equal(t, genome.Distribution{"GBR": 2, "YRI": 0}, d.Minus(other))
}
