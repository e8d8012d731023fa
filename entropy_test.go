package arbor

import (
	"context"
	"testing"

	"arbor/category"
	"arbor/table"

	"github.com/stretchr/testify/require"
)

// newTestBuilder encodes the whole table and returns a builder over
// it, with the goal column marked used.
func newTestBuilder(t *testing.T, tbl *table.Table, goal, threshold int) *builder {
	t.Helper()
	rows, cols := tbl.Rows(), tbl.Cols()
	cats := make([]*category.Categorizer, cols)
	maxCats := 0
	for c := 0; c < cols; c++ {
		cat, err := category.Build(tbl, c, 0, rows, category.Config{})
		require.NoError(t, err)
		cats[c] = cat
		if cat.Count() > maxCats {
			maxCats = cat.Count()
		}
	}
	b := &builder{
		scratch:   newScratch(rows, cols, maxCats, cats[goal].Count()),
		cats:      cats,
		goal:      goal,
		goalCats:  cats[goal].Count(),
		threshold: threshold,
		ctx:       context.Background(),
	}
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			b.enc[c*rows+r] = cats[c].CategoryOf(tbl.Cell(r, c))
		}
	}
	b.used[goal] = true
	b.remaining = cols - 1
	return b
}

func abgTable(t *testing.T) *table.Table {
	t.Helper()
	tbl := table.New([]string{"A", "B", "G"})
	rows := [][]table.Cell{
		{table.StringCell("x"), table.IntegerCell(0), table.StringCell("Y")},
		{table.StringCell("x"), table.IntegerCell(1), table.StringCell("Y")},
		{table.StringCell("y"), table.IntegerCell(0), table.StringCell("N")},
		{table.StringCell("y"), table.IntegerCell(1), table.StringCell("N")},
	}
	for _, row := range rows {
		require.NoError(t, tbl.AppendRow(row))
	}
	return tbl
}

func TestSplitEntropy(t *testing.T) {
	b := newTestBuilder(t, abgTable(t), 2, 0)

	// Splitting on A separates the goal perfectly; splitting on B
	// tells nothing.
	require.InDelta(t, 0.0, b.splitEntropy(0, 0, b.rows), 1e-12)
	require.InDelta(t, 1.0, b.splitEntropy(1, 0, b.rows), 1e-12)
}

func TestSplitEntropyLeavesRowIndexAlone(t *testing.T) {
	b := newTestBuilder(t, abgTable(t), 2, 0)
	before := append([]int(nil), b.rowIdx...)
	b.splitEntropy(0, 0, b.rows)
	require.Equal(t, before, b.rowIdx)
}

func TestMajorityClassFirstSeenTieBreak(t *testing.T) {
	b := newTestBuilder(t, abgTable(t), 2, 0)
	// Y and N tie 2-2; Y reached the maximum first.
	class, pure := b.majorityClass(0, b.rows)
	require.Equal(t, category.ID(0), class)
	require.False(t, pure)

	class, pure = b.majorityClass(0, 2)
	require.Equal(t, category.ID(0), class)
	require.True(t, pure)
}

func TestPartition(t *testing.T) {
	tbl := table.New([]string{"A", "G"})
	values := []string{"b", "a", "b", "a", "c"}
	for i, v := range values {
		require.NoError(t, tbl.AppendRow([]table.Cell{
			table.StringCell(v), table.IntegerCell(int64(i)),
		}))
	}
	b := newTestBuilder(t, tbl, 1, 0)

	// Fill headerLive with the histogram of column 0 the way the
	// selection scan would.
	b.splitEntropy(0, 0, b.rows)
	b.headerLive, b.headerScratch = b.headerScratch, b.headerLive

	offsets := b.bucketOffsets(0, b.cats[0].Count())
	require.Equal(t, []int{0, 2, 4, 5}, offsets)

	b.partition(0, 0, b.rows, offsets)
	// Categories are assigned first-seen: b=0, a=1, c=2. The scatter
	// is stable within each bucket.
	require.Equal(t, []int{0, 2, 1, 3, 4}, b.rowIdx)
}
