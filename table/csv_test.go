package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	const data = "name,age,height,range\nalice,30,1.75,10-20\nbob,25,1.80,<5\n"
	tbl, err := ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Rows())
	require.Equal(t, 4, tbl.Cols())
	require.Equal(t, "name", tbl.ColumnName(0))
	require.Equal(t, StringCell("alice"), tbl.Cell(0, 0))
	require.Equal(t, IntegerCell(30), tbl.Cell(0, 1))
	require.Equal(t, RealCell(1.75), tbl.Cell(0, 2))
	require.Equal(t, KindInterval, tbl.Cell(0, 3).Kind())
	require.Equal(t, Interval{Min: 10, Max: 20}, tbl.Cell(0, 3).Interval())
}

func TestReadCSVNoTrailingNewline(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("a,b\n1,2"))
	require.NoError(t, err)
	require.Equal(t, 1, tbl.Rows())
	require.Equal(t, IntegerCell(2), tbl.Cell(0, 1))
}

func TestReadCSVWrongCellCount(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("a,b\n1,2\n3\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 3")
}

func TestReadSamplesCSV(t *testing.T) {
	tbl, err := ReadSamplesCSV(strings.NewReader("x,0\ny,1\n"))
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Rows())
	require.Equal(t, 2, tbl.Cols())
	require.Equal(t, StringCell("x"), tbl.Cell(0, 0))
	require.Equal(t, IntegerCell(1), tbl.Cell(1, 1))
}

func TestReadSamplesCSVEmpty(t *testing.T) {
	tbl, err := ReadSamplesCSV(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 0, tbl.Rows())
}
