package split_test

import (
	"testing"

	"github.com/CanDIG/ID3-Sickkids-Project/split"
	"github.com/stretchr/testify/require"
)

func TestZeroPathIsRoot(t *testing.T) {
	var p split.Path
	require.Equal(t, 0, p.Len())
	require.Empty(t, p.Variants())
	require.Equal(t, "(root)", p.String())
}

func TestNewPathRejectsMisalignedSlices(t *testing.T) {
	_, err := split.NewPath([]string{"1:100:101"}, nil)
	require.Error(t, err)
}

func TestNewPathCopiesItsSlices(t *testing.T) {
	variants := []string{"1:100:101"}
	directions := []split.Direction{split.With}
	p, err := split.NewPath(variants, directions)
	require.NoError(t, err)
	variants[0] = "clobbered"
	directions[0] = split.Without

	v, d := p.At(0)
	require.Equal(t, "1:100:101", v)
	require.Equal(t, split.With, d)
}

func TestExtend(t *testing.T) {
	var root split.Path
	with, without := root.Extend("1:100:101")

	require.Equal(t, 0, root.Len())
	require.Equal(t, 1, with.Len())
	require.Equal(t, 1, without.Len())

	v, d := with.At(0)
	require.Equal(t, "1:100:101", v)
	require.Equal(t, split.With, d)

	v, d = without.At(0)
	require.Equal(t, "1:100:101", v)
	require.Equal(t, split.Without, d)
}

func TestExtendedPathsShareNoStorage(t *testing.T) {
	var root split.Path
	with, _ := root.Extend("1:100:101")
	deeper, _ := with.Extend("2:50:51")
	sibling, _ := with.Extend("X:7:8")

	v, _ := deeper.At(1)
	require.Equal(t, "2:50:51", v)
	v, _ = sibling.At(1)
	require.Equal(t, "X:7:8", v)
	require.Equal(t, []string{"1:100:101"}, with.Variants())
}

func TestPathString(t *testing.T) {
	p, err := split.NewPath(
		[]string{"1:100:101", "2:50:51"},
		[]split.Direction{split.With, split.Without},
	)
	require.NoError(t, err)
	require.Equal(t, "1:100:101=1 > 2:50:51=0", p.String())
}

func TestDirectionString(t *testing.T) {
	require.Equal(t, "with", split.With.String())
	require.Equal(t, "without", split.Without.String())
}
