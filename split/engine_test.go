package split_test

import (
	"testing"

	"github.com/CanDIG/ID3-Sickkids-Project/genome"
	"github.com/CanDIG/ID3-Sickkids-Project/split"
	"github.com/stretchr/testify/require"
)

/*
testEngine returns an engine over 4 individuals and 3 variants:

	             1:100:101  2:50:51  X:7:8  population
	HG001            1         0       0    GBR
	HG002            1         1       0    GBR
	HG003            0         0       0    YRI
	HG004            0         1       0    YRI

X:7:8 has no carriers.
*/
func testEngine(t *testing.T) *split.Engine {
	t.Helper()
	m, err := genome.NewMatrix(
		[]string{"1:100:101", "2:50:51", "X:7:8"},
		[][]uint8{
			{1, 0, 0},
			{1, 1, 0},
			{0, 0, 0},
			{0, 1, 0},
		},
	)
	require.NoError(t, err)
	c, err := genome.NewCatalog(
		[]string{"HG001", "HG002", "HG003", "HG004"},
		[]string{"GBR", "GBR", "YRI", "YRI"},
		nil,
	)
	require.NoError(t, err)
	e, err := split.NewEngine(m, c)
	require.NoError(t, err)
	return e
}

func TestNewEngineRejectsMisalignedCatalog(t *testing.T) {
	m, err := genome.NewMatrix([]string{"1:100:101"}, [][]uint8{{1}, {0}})
	require.NoError(t, err)
	c, err := genome.NewCatalog([]string{"HG001"}, []string{"GBR"}, nil)
	require.NoError(t, err)
	_, err = split.NewEngine(m, c)
	require.Error(t, err)
}

func TestIgnoreRows(t *testing.T) {
	e := testEngine(t)

	ignored, err := e.IgnoreRows(split.Path{})
	require.NoError(t, err)
	require.Equal(t, []bool{false, false, false, false}, ignored)

	with, without := split.Path{}.Extend("1:100:101")
	ignored, err = e.IgnoreRows(with)
	require.NoError(t, err)
	require.Equal(t, []bool{false, false, true, true}, ignored)

	ignored, err = e.IgnoreRows(without)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, false, false}, ignored)
}

func TestIgnoreRowsAccumulatesConstraints(t *testing.T) {
	e := testEngine(t)
	with, _ := split.Path{}.Extend("1:100:101")
	deeper, _ := with.Extend("2:50:51")

	ignored, err := e.IgnoreRows(deeper)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true, true}, ignored)
}

func TestIgnoreRowsUnknownVariant(t *testing.T) {
	e := testEngine(t)
	p, _ := split.Path{}.Extend("3:0:1")
	_, err := e.IgnoreRows(p)
	require.Error(t, err)
	require.IsType(t, &genome.UnknownVariantError{}, err)
}

func TestDistribution(t *testing.T) {
	e := testEngine(t)

	d, err := e.Distribution(split.Path{})
	require.NoError(t, err)
	require.Equal(t, genome.Distribution{"GBR": 2, "YRI": 2}, d)

	with, without := split.Path{}.Extend("2:50:51")
	d, err = e.Distribution(with)
	require.NoError(t, err)
	require.Equal(t, genome.Distribution{"GBR": 1, "YRI": 1}, d)

	d, err = e.Distribution(without)
	require.NoError(t, err)
	require.Equal(t, genome.Distribution{"GBR": 1, "YRI": 1}, d)
}

func TestSubset(t *testing.T) {
	e := testEngine(t)

	with, without, err := e.Subset(split.Path{}, "1:100:101")
	require.NoError(t, err)
	require.Equal(t, genome.Distribution{"GBR": 2, "YRI": 0}, with)
	require.Equal(t, genome.Distribution{"GBR": 0, "YRI": 2}, without)
}

func TestSubsetPartitionsTheParentDistribution(t *testing.T) {
	e := testEngine(t)
	p, _ := split.Path{}.Extend("1:100:101")

	parent, err := e.Distribution(p)
	require.NoError(t, err)
	for _, candidate := range e.Matrix().Variants() {
		with, without, err := e.Subset(p, candidate)
		require.NoError(t, err)
		require.Equal(t, parent.Total(), with.Total()+without.Total(), "candidate %s", candidate)
		for label, count := range parent {
			require.Equal(t, count, with[label]+without[label], "candidate %s label %s", candidate, label)
		}
	}
}

func TestSubsetEmptyCandidate(t *testing.T) {
	e := testEngine(t)
	with, without, err := e.Subset(split.Path{}, "")
	require.NoError(t, err)
	require.Equal(t, genome.Distribution{"GBR": 0, "YRI": 0}, with)
	require.Equal(t, genome.Distribution{"GBR": 0, "YRI": 0}, without)
}

func TestSubsetEmptyCandidateStillValidatesThePath(t *testing.T) {
	e := testEngine(t)
	p, _ := split.Path{}.Extend("3:0:1")
	_, _, err := e.Subset(p, "")
	require.Error(t, err)
	require.IsType(t, &genome.UnknownVariantError{}, err)
}

func TestSubsetUnknownCandidate(t *testing.T) {
	e := testEngine(t)
	_, _, err := e.Subset(split.Path{}, "3:0:1")
	require.Error(t, err)
	require.IsType(t, &genome.UnknownVariantError{}, err)
}

func TestSubsetIsIdempotent(t *testing.T) {
	e := testEngine(t)
	p, _ := split.Path{}.Extend("1:100:101")

	with1, without1, err := e.Subset(p, "2:50:51")
	require.NoError(t, err)
	with2, without2, err := e.Subset(p, "2:50:51")
	require.NoError(t, err)
	require.Equal(t, with1, with2)
	require.Equal(t, without1, without2)
}

func TestCandidateCountsMatchesSubset(t *testing.T) {
	e := testEngine(t)
	paths := []split.Path{{}}
	with, without := split.Path{}.Extend("1:100:101")
	paths = append(paths, with, without)

	for _, p := range paths {
		counts, err := e.CandidateCounts(p)
		require.NoError(t, err)
		variants := e.Matrix().Variants()
		require.Len(t, counts, len(variants))
		for i, candidate := range variants {
			expected, _, err := e.Subset(p, candidate)
			require.NoError(t, err)
			require.Equal(t, expected, counts[i], "path %v candidate %s", p, candidate)
		}
	}
}

func TestDistributionsShrinkAlongAPath(t *testing.T) {
	e := testEngine(t)
	p := split.Path{}
	previous, err := e.Distribution(p)
	require.NoError(t, err)
	for _, variant := range []string{"1:100:101", "2:50:51"} {
		p, _ = p.Extend(variant)
		d, err := e.Distribution(p)
		require.NoError(t, err)
		require.LessOrEqual(t, d.Total(), previous.Total())
		for label, count := range d {
			require.LessOrEqual(t, count, previous[label])
		}
		previous = d
	}
}

func TestTargetDistribution(t *testing.T) {
	e := testEngine(t)
	d := e.TargetDistribution()
	require.Equal(t, genome.Distribution{"GBR": 2, "YRI": 2}, d)
	require.Equal(t, e.Matrix().NumRows(), d.Total())
}

func TestVariantCountsOmitsVariantsWithoutCarriers(t *testing.T) {
	e := testEngine(t)
	counts := e.VariantCounts()
	require.Equal(t, map[string]int{"1:100:101": 2, "2:50:51": 2}, counts)
	_, ok := counts["X:7:8"]
	require.False(t, ok)
}
