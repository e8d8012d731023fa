package main

import (
	"io"

	"arbor/category"
	"arbor/table"
	"arbor/tree"

	prettytable "github.com/jedib0t/go-pretty/v6/table"
)

// nullClass is what an unclassifiable sample row is rendered as.
const nullClass = "(null)"

func renderTable(w io.Writer, t *table.Table) {
	tw := prettytable.NewWriter()
	tw.SetOutputMirror(w)
	header := make(prettytable.Row, t.Cols())
	for col := 0; col < t.Cols(); col++ {
		header[col] = t.ColumnName(col)
	}
	tw.AppendHeader(header)
	for row := 0; row < t.Rows(); row++ {
		cells := make(prettytable.Row, t.Cols())
		for col := 0; col < t.Cols(); col++ {
			cells[col] = t.Cell(row, col).String()
		}
		tw.AppendRow(cells)
	}
	tw.Render()
}

func renderResults(w io.Writer, t *tree.Tree, classes []category.ID) {
	tw := prettytable.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(prettytable.Row{"Row", "Class"})
	for row, class := range classes {
		name := nullClass
		if class != category.Invalid {
			if s, err := t.ClassName(class); err == nil {
				name = s
			}
		}
		tw.AppendRow(prettytable.Row{row, name})
	}
	tw.Render()
}
