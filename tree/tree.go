package tree

import (
	"context"
	"fmt"
	"strings"

	"arbor/category"
	"arbor/table"
)

/*
ClassifyError represents an error related with classifying samples.
*/
type ClassifyError string

/*
ErrUnclassifiable is the error returned by Classify when a sample's
value at the split column of some node matches no category of that
column, so no child can be selected for it.
*/
const ErrUnclassifiable = ClassifyError("sample does not fit any category of the split column")

func (ce ClassifyError) Error() string {
	return string(ce)
}

/*
Tree is a grown decision tree: the root node, the per-column
categorizers the tree was built with, and the index of the goal
column whose categories the leaves predict. Column indices in nodes,
Goal and Names are relative to ColOffset, the first training-table
column the tree covers.
*/
type Tree struct {
	Root         *Node
	Categorizers []*category.Categorizer
	Goal         int
	ColOffset    int
	Names        []string
}

/*
Cols returns the number of training-table columns the tree covers.
*/
func (t *Tree) Cols() int {
	return len(t.Categorizers)
}

/*
Classify walks the tree against a row of cells aligned by column
index to the training table's columns and returns the goal category
the reached leaf predicts. The row may omit the last column the tree
covers (such as the goal column); if the walk visits that column as a
split column, the row is unclassifiable. A row missing more than that
one column is rejected with an error. It returns ErrUnclassifiable if
some split column's value fits no category.
*/
func (t *Tree) Classify(row []table.Cell) (category.ID, error) {
	if t == nil || t.Root == nil {
		return category.Invalid, fmt.Errorf("nil tree cannot classify samples")
	}
	if len(row)+1 < t.ColOffset+t.Cols() {
		return category.Invalid, fmt.Errorf("sample has %d cells, tree covers columns %d-%d", len(row), t.ColOffset, t.ColOffset+t.Cols())
	}
	n := t.Root
	for !n.Leaf() {
		col := t.ColOffset + n.Column
		if col >= len(row) {
			return category.Invalid, ErrUnclassifiable
		}
		id := t.Categorizers[n.Column].CategoryOf(row[col])
		if id == category.Invalid || int(id) >= len(n.Children) {
			return category.Invalid, ErrUnclassifiable
		}
		n = &n.Children[id]
	}
	return n.Class, nil
}

/*
ClassifyTable classifies every row of a samples table whose columns
are aligned by index to the training table's columns. Columns the
tree categorizes as intervals are promoted up-front with
Table.PromoteColumn. A row that cannot be classified does not abort
the batch: its result is category.Invalid. That covers rows holding a
non-promotable cell where an interval is required; such cells keep
their value through the partial promotion and then fit no category.
*/
func (t *Tree) ClassifyTable(ctx context.Context, samples *table.Table) ([]category.ID, error) {
	if err := t.promoteIntervalColumns(samples); err != nil {
		return nil, err
	}
	results := make([]category.ID, samples.Rows())
	for row := 0; row < samples.Rows(); row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		id, err := t.Classify(samples.Row(row))
		if err != nil {
			results[row] = category.Invalid
			continue
		}
		results[row] = id
	}
	return results, nil
}

func (t *Tree) promoteIntervalColumns(samples *table.Table) error {
	for i, c := range t.Categorizers {
		if i == t.Goal || c.Kind() != category.OfIntervals {
			continue
		}
		col := t.ColOffset + i
		if col >= samples.Cols() {
			continue
		}
		// A partial promotion is fine: the rows whose cells stayed
		// behind come back unclassifiable on their own.
		if _, err := samples.PromoteColumn(col); err != nil {
			return fmt.Errorf("classifying samples: %v", err)
		}
	}
	return nil
}

/*
ClassName returns the printable form of a goal category id via the
goal column's inverse mapping.
*/
func (t *Tree) ClassName(id category.ID) (string, error) {
	cell, err := t.Categorizers[t.Goal].ValueOf(id)
	if err != nil {
		return "", err
	}
	return cell.String(), nil
}

/*
String renders the tree with one node per line: internal nodes as
<name (samples)> with their categories indented below, leaves as
'class' (samples).
*/
func (t *Tree) String() string {
	var b strings.Builder
	t.writeNode(&b, t.Root, 0)
	return b.String()
}

const tabWidth = 2

func (t *Tree) writeNode(b *strings.Builder, n *Node, offset int) {
	indent := strings.Repeat(" ", offset)
	if n.Leaf() {
		class, err := t.ClassName(n.Class)
		if err != nil {
			class = fmt.Sprintf("!%v", err)
		}
		fmt.Fprintf(b, "%s'%s' (%d)\n", indent, class, n.Samples)
		return
	}
	fmt.Fprintf(b, "%s<%s (%d)>\n", indent, t.Names[n.Column], n.Samples)
	for id := range n.Children {
		value, err := t.Categorizers[n.Column].ValueOf(category.ID(id))
		label := value.String()
		if err != nil {
			label = fmt.Sprintf("!%v", err)
		}
		fmt.Fprintf(b, "%s%s:\n", strings.Repeat(" ", offset+tabWidth), label)
		t.writeNode(b, &n.Children[id], offset+2*tabWidth)
	}
}
