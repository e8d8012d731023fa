/*
Package arbor grows classification decision trees over typed tabular
data. Columns are discretized into dense categories, the attribute
whose split minimizes the expected conditional entropy of the goal is
chosen at every node, and the row set is partitioned in place as the
recursion descends. Grown trees classify unseen rows through the
tree package.
*/
package arbor

import (
	"context"
	"fmt"
	"math"

	"arbor/category"
	"arbor/table"
	"arbor/tree"
)

// DefaultThreshold is the default stopping threshold: node sample
// sets of this size or smaller become leaves.
const DefaultThreshold = 3

/*
Params configures a single build.
*/
type Params struct {
	// Goal is the absolute index of the column the tree predicts. A
	// negative value selects the last column of the selection.
	Goal int
	// Threshold is the stopping threshold tau; sample sets of this
	// size or smaller are not split further. A negative value selects
	// DefaultThreshold.
	Threshold int
	// Excluded lists absolute indices of columns that must not be
	// split on. The goal column is implicitly excluded.
	Excluded []int
	// Categories carries the discretization constants.
	Categories category.Config
}

type builder struct {
	*scratch
	cats      []*category.Categorizer
	goal      int
	goalCats  int
	threshold int
	// remaining counts the columns still available for splitting on
	// the current path.
	remaining int
	ctx       context.Context
}

/*
Grow builds a decision tree from the selected rectangle of the table
according to the given parameters. The selection must hold at least
one row and two columns, the goal and every excluded column must lie
inside it, and each selected column must hold cells of a single
variant. The returned tree owns its categorizers and is independent
of the table.
*/
func Grow(ctx context.Context, t *table.Table, sel table.Selection, p Params) (*tree.Tree, error) {
	if err := sel.Validate(t); err != nil {
		return nil, err
	}
	rows, cols := sel.Rows(), sel.Cols()
	if cols < 2 {
		return nil, fmt.Errorf("cannot build a tree from %d columns, need at least 2", cols)
	}
	if rows < 1 {
		return nil, fmt.Errorf("cannot build a tree from an empty row range")
	}
	goal := p.Goal
	if goal < 0 {
		goal = sel.ColEnd - 1
	}
	if goal < sel.ColBeg || goal >= sel.ColEnd {
		return nil, fmt.Errorf("goal column %d is outside the selection %v", goal, sel)
	}
	for _, col := range p.Excluded {
		if col < sel.ColBeg || col >= sel.ColEnd {
			return nil, fmt.Errorf("excluded column %d is outside the selection %v", col, sel)
		}
	}
	threshold := p.Threshold
	if threshold < 0 {
		threshold = DefaultThreshold
	}

	cats := make([]*category.Categorizer, cols)
	names := make([]string, cols)
	maxCats := 0
	for c := 0; c < cols; c++ {
		cat, err := category.Build(t, sel.ColBeg+c, sel.RowBeg, sel.RowEnd, p.Categories)
		if err != nil {
			return nil, err
		}
		cats[c] = cat
		names[c] = t.ColumnName(sel.ColBeg + c)
		if cat.Count() > maxCats {
			maxCats = cat.Count()
		}
	}

	goalRel := goal - sel.ColBeg
	b := &builder{
		scratch:   newScratch(rows, cols, maxCats, cats[goalRel].Count()),
		cats:      cats,
		goal:      goalRel,
		goalCats:  cats[goalRel].Count(),
		threshold: threshold,
		ctx:       ctx,
	}
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			id := cats[c].CategoryOf(t.Cell(sel.RowBeg+r, sel.ColBeg+c))
			if id == category.Invalid {
				return nil, fmt.Errorf("row %d, column %d: cell does not fit its column's categories", sel.RowBeg+r, sel.ColBeg+c)
			}
			b.enc[c*rows+r] = id
		}
	}
	b.used[goalRel] = true
	for _, col := range p.Excluded {
		b.used[col-sel.ColBeg] = true
	}
	for _, u := range b.used {
		if !u {
			b.remaining++
		}
	}

	root := &tree.Node{}
	if err := b.build(root, 0, rows); err != nil {
		return nil, err
	}
	return &tree.Tree{
		Root:         root,
		Categorizers: cats,
		Goal:         goalRel,
		ColOffset:    sel.ColBeg,
		Names:        names,
	}, nil
}

/*
build fills in the node for the sample set rowIdx[start:end): a leaf
carrying the majority goal class when the set is small enough, pure,
or no attribute remains; otherwise an internal node split on the
attribute with the lowest expected conditional entropy, its children
built over the partitioned sub-ranges.
*/
func (b *builder) build(n *tree.Node, start, end int) error {
	if err := b.ctx.Err(); err != nil {
		return err
	}
	class, pure := b.majorityClass(start, end)
	if end-start <= b.threshold || b.remaining == 0 || pure {
		*n = tree.Node{Class: class, Samples: end - start}
		return nil
	}

	best := -1
	bestEntropy := math.Inf(1)
	for col := 0; col < b.cols; col++ {
		if b.used[col] {
			continue
		}
		entropy := b.splitEntropy(col, start, end)
		if entropy < bestEntropy {
			// Keep the winner's histogram: the scratch header holds
			// the candidate just computed.
			b.headerLive, b.headerScratch = b.headerScratch, b.headerLive
			bestEntropy = entropy
			best = col
		}
	}
	if best < 0 {
		*n = tree.Node{Class: class, Samples: end - start}
		return nil
	}

	k := b.cats[best].Count()
	offsets := b.bucketOffsets(start, k)
	b.partition(best, start, end, offsets)

	n.Column = best
	n.Samples = end - start
	n.Children = make([]tree.Node, k)
	b.used[best] = true
	b.remaining--
	for i := 0; i < k; i++ {
		bucketStart, bucketEnd := offsets[i], offsets[i+1]
		if bucketEnd-bucketStart <= b.threshold {
			cls := class
			if bucketEnd > bucketStart {
				cls, _ = b.majorityClass(bucketStart, bucketEnd)
			}
			n.Children[i] = tree.Node{Class: cls, Samples: bucketEnd - bucketStart}
			continue
		}
		if err := b.build(&n.Children[i], bucketStart, bucketEnd); err != nil {
			return err
		}
	}
	b.used[best] = false
	b.remaining++
	return nil
}

/*
majorityClass returns the goal category with the most samples in
rowIdx[start:end), ties broken in favor of the category that reached
the maximum first, and whether the range is pure (all samples share
one goal category).
*/
func (b *builder) majorityClass(start, end int) (category.ID, bool) {
	counts := b.headerScratch[:b.goalCats]
	for i := range counts {
		counts[i] = 0
	}
	best := category.Invalid
	bestCount := 0
	for _, r := range b.rowIdx[start:end] {
		g := int(b.at(b.goal, r))
		counts[g]++
		if counts[g] > bestCount {
			bestCount = counts[g]
			best = category.ID(g)
		}
	}
	return best, bestCount == end-start && end > start
}
