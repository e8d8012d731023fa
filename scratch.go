package arbor

import "arbor/category"

/*
scratch carries the buffers a single build owns and reuses across the
whole recursion: the encoded category matrix, the live/scratch split
histograms, the per-split sample count matrix, the used-column path
flags and the row index permutation. Everything is allocated once,
before the root node is processed.
*/
type scratch struct {
	// enc is the encoded category matrix, column-major: the category
	// id of row r, column c is enc[c*rows+r]. Per-column scans during
	// entropy computation walk it sequentially.
	enc  []category.ID
	rows int
	cols int

	// headerLive holds the per-category histogram of the best split
	// candidate found so far; headerScratch is where the next
	// candidate's histogram is computed. They are swapped whenever a
	// strictly better candidate appears, so that after scanning all
	// attributes headerLive describes the winner.
	headerLive    []int
	headerScratch []int

	// samples is the |A categories| x |goal categories| count matrix
	// backing every entropy computation, sized for the widest column.
	samples []int

	// used flags the columns already split on along the current path,
	// plus the goal and the excluded columns.
	used []bool

	// rowIdx is the row index permutation partitioned in place as the
	// recursion descends; rowScratch is the temporary copy used by
	// the stable two-pass scatter.
	rowIdx     []int
	rowScratch []int
}

func newScratch(rows, cols, maxCats, goalCats int) *scratch {
	s := &scratch{
		enc:           make([]category.ID, cols*rows),
		rows:          rows,
		cols:          cols,
		headerLive:    make([]int, maxCats),
		headerScratch: make([]int, maxCats),
		samples:       make([]int, maxCats*goalCats),
		used:          make([]bool, cols),
		rowIdx:        make([]int, rows),
		rowScratch:    make([]int, rows),
	}
	for i := range s.rowIdx {
		s.rowIdx[i] = i
	}
	return s
}

// at returns the encoded category of the given column and row.
func (s *scratch) at(col, row int) category.ID {
	return s.enc[col*s.rows+row]
}
