package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

/*
Selection is a half-open row/column rectangle that scopes an operation
to a sub-table: rows [RowBeg, RowEnd) and columns [ColBeg, ColEnd).
*/
type Selection struct {
	RowBeg, RowEnd int
	ColBeg, ColEnd int
}

/*
Select returns a selection covering the whole table.
*/
func Select(t *Table) Selection {
	return Selection{RowEnd: t.rows, ColEnd: t.cols}
}

/*
Rows returns the number of rows in the selection.
*/
func (s Selection) Rows() int {
	return s.RowEnd - s.RowBeg
}

/*
Cols returns the number of columns in the selection.
*/
func (s Selection) Cols() int {
	return s.ColEnd - s.ColBeg
}

/*
Clamp caps the selection's end bounds to the table's dimensions and
returns the result.
*/
func (s Selection) Clamp(t *Table) Selection {
	if s.RowEnd > t.rows {
		s.RowEnd = t.rows
	}
	if s.ColEnd > t.cols {
		s.ColEnd = t.cols
	}
	return s
}

/*
Validate checks the selection against the table: begin bounds must not
exceed end bounds, and end bounds must not exceed the table's
dimensions.
*/
func (s Selection) Validate(t *Table) error {
	if s.RowBeg < 0 || s.ColBeg < 0 {
		return fmt.Errorf("selection %v has negative bounds", s)
	}
	if s.RowBeg > s.RowEnd {
		return fmt.Errorf("selection rows %d-%d are inverted", s.RowBeg, s.RowEnd)
	}
	if s.ColBeg > s.ColEnd {
		return fmt.Errorf("selection columns %d-%d are inverted", s.ColBeg, s.ColEnd)
	}
	if s.RowEnd > t.rows {
		return fmt.Errorf("selection rows %d-%d exceed the table's %d rows", s.RowBeg, s.RowEnd, t.rows)
	}
	if s.ColEnd > t.cols {
		return fmt.Errorf("selection columns %d-%d exceed the table's %d columns", s.ColBeg, s.ColEnd, t.cols)
	}
	return nil
}

func (s Selection) String() string {
	return fmt.Sprintf("r%d-%d,c%d-%d", s.RowBeg, s.RowEnd, s.ColBeg, s.ColEnd)
}

/*
ParseSelection parses a selection of the form "rX-Y,cX-Y". Both parts
are optional and either bound of a part may be omitted: an omitted
begin means 0 and an omitted end means "to the end of the table"
(represented as a very large bound, to be capped with Clamp).
*/
func ParseSelection(text string) (Selection, error) {
	sel := Selection{RowEnd: math.MaxInt, ColEnd: math.MaxInt}
	if text == "" {
		return sel, nil
	}
	for _, part := range strings.Split(text, ",") {
		if part == "" {
			continue
		}
		var beg, end *int
		switch part[0] {
		case 'r':
			beg, end = &sel.RowBeg, &sel.RowEnd
		case 'c':
			beg, end = &sel.ColBeg, &sel.ColEnd
		default:
			return Selection{}, fmt.Errorf("invalid selection prefix %q in %q", part[0], text)
		}
		if err := parseBounds(part[1:], beg, end); err != nil {
			return Selection{}, fmt.Errorf("parsing selection %q: %v", text, err)
		}
	}
	return sel, nil
}

func parseBounds(text string, beg, end *int) error {
	lo, hi, ok := strings.Cut(text, "-")
	if !ok {
		return fmt.Errorf("bounds %q lack a '-'", text)
	}
	if lo != "" {
		v, err := strconv.Atoi(lo)
		if err != nil {
			return fmt.Errorf("bad begin bound %q", lo)
		}
		*beg = v
	}
	if hi != "" {
		v, err := strconv.Atoi(hi)
		if err != nil {
			return fmt.Errorf("bad end bound %q", hi)
		}
		*end = v
	}
	if *beg > *end {
		*beg, *end = *end, *beg
	}
	return nil
}
