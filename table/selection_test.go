package table

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	sel, err := ParseSelection("r1-5,c0-3")
	require.NoError(t, err)
	require.Equal(t, Selection{RowBeg: 1, RowEnd: 5, ColBeg: 0, ColEnd: 3}, sel)

	sel, err = ParseSelection("r-5")
	require.NoError(t, err)
	require.Equal(t, 0, sel.RowBeg)
	require.Equal(t, 5, sel.RowEnd)

	sel, err = ParseSelection("c2-")
	require.NoError(t, err)
	require.Equal(t, 2, sel.ColBeg)

	sel, err = ParseSelection("")
	require.NoError(t, err)
	require.Equal(t, 0, sel.RowBeg)
	require.Equal(t, 0, sel.ColBeg)

	// Inverted bounds are swapped at parse time.
	sel, err = ParseSelection("r5-1")
	require.NoError(t, err)
	require.Equal(t, 1, sel.RowBeg)
	require.Equal(t, 5, sel.RowEnd)

	_, err = ParseSelection("x1-2")
	require.Error(t, err)
	_, err = ParseSelection("r12")
	require.Error(t, err)
	_, err = ParseSelection("ra-2")
	require.Error(t, err)
}

func TestSelectionClampValidate(t *testing.T) {
	tbl := buildTable(t, []string{"a", "b", "c"},
		[]Cell{IntegerCell(1), IntegerCell(2), IntegerCell(3)},
		[]Cell{IntegerCell(4), IntegerCell(5), IntegerCell(6)},
	)
	sel, err := ParseSelection("")
	require.NoError(t, err)
	sel = sel.Clamp(tbl)
	require.Equal(t, Select(tbl), sel)
	require.NoError(t, sel.Validate(tbl))
	require.Equal(t, 2, sel.Rows())
	require.Equal(t, 3, sel.Cols())

	require.Error(t, Selection{RowBeg: 3, RowEnd: 2, ColEnd: 3}.Validate(tbl))
	require.Error(t, Selection{RowEnd: 5, ColEnd: 3}.Validate(tbl))
	require.Error(t, Selection{RowEnd: 2, ColEnd: 9}.Validate(tbl))
	require.Error(t, Selection{RowBeg: -1, RowEnd: 2, ColEnd: 3}.Validate(tbl))
}
