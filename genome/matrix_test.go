package genome_test

import (
	"testing"

	"github.com/CanDIG/ID3-Sickkids-Project/genome"
	"github.com/stretchr/testify/require"
)

func TestNewMatrixRejectsDuplicatedVariants(t *testing.T) {
	_, err := genome.NewMatrix([]string{"1:100:101", "1:100:101"}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "1:100:101")
}

func TestNewMatrixRejectsMisalignedRows(t *testing.T) {
	_, err := genome.NewMatrix([]string{"1:100:101", "2:50:51"}, [][]uint8{{1, 0}, {1}})
	require.Error(t, err)
}

func TestMatrixAccessors(t *testing.T) {
	variants := []string{"1:100:101", "2:50:51", "X:7:8"}
	m, err := genome.NewMatrix(variants, [][]uint8{
		{1, 0, 1},
		{0, 0, 1},
	})
	require.NoError(t, err)
	require.Equal(t, 3, m.NumVariants())
	require.Equal(t, 2, m.NumRows())
	require.Equal(t, variants, m.Variants())
	require.Equal(t, uint8(1), m.Value(0, 0))
	require.Equal(t, uint8(0), m.Value(1, 1))

	i, err := m.VariantIndex("2:50:51")
	require.NoError(t, err)
	require.Equal(t, 1, i)

	_, err = m.VariantIndex("3:0:1")
	require.Error(t, err)
	uve, ok := err.(*genome.UnknownVariantError)
	require.True(t, ok)
	require.Equal(t, "3:0:1", uve.Variant)
}

func TestMatrixVariantsReturnsACopy(t *testing.T) {
	m, err := genome.NewMatrix([]string{"1:100:101", "2:50:51"}, nil)
	require.NoError(t, err)
	variants := m.Variants()
	variants[0] = "clobbered"
	require.Equal(t, []string{"1:100:101", "2:50:51"}, m.Variants())
}

func TestRowSample(t *testing.T) {
	m, err := genome.NewMatrix([]string{"1:100:101", "2:50:51"}, [][]uint8{{1, 0}})
	require.NoError(t, err)
	s := m.RowSample(0)

	has, err := s.HasVariant("1:100:101")
	require.NoError(t, err)
	require.True(t, has)

	has, err = s.HasVariant("2:50:51")
	require.NoError(t, err)
	require.False(t, has)

	_, err = s.HasVariant("3:0:1")
	require.Error(t, err)
	require.IsType(t, &genome.UnknownVariantError{}, err)
}
