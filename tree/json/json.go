/*
Package json encodes grown decision trees to JSON and decodes them
back, categorizers and column names included, so that a tree grown in
one invocation can classify samples in another.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"arbor/category"
	"arbor/tree"
)

type jsonNode struct {
	Column   int         `json:"col,omitempty"`
	Children []jsonNode  `json:"children,omitempty"`
	Class    category.ID `json:"class,omitempty"`
	Samples  int         `json:"samples"`
}

type jsonTree struct {
	Root         jsonNode                `json:"root"`
	Categorizers []*category.Categorizer `json:"categorizers"`
	Goal         int                     `json:"goal"`
	ColOffset    int                     `json:"colOffset,omitempty"`
	Names        []string                `json:"names"`
}

/*
WriteTree encodes the tree as JSON on the given writer.
*/
func WriteTree(w io.Writer, t *tree.Tree) error {
	if t == nil || t.Root == nil {
		return fmt.Errorf("cannot encode a nil tree")
	}
	jt := &jsonTree{
		Root:         encodeNode(t.Root),
		Categorizers: t.Categorizers,
		Goal:         t.Goal,
		ColOffset:    t.ColOffset,
		Names:        t.Names,
	}
	err := json.NewEncoder(w).Encode(jt)
	if err != nil {
		return fmt.Errorf("encoding tree: %v", err)
	}
	return nil
}

/*
ReadTree decodes a tree previously encoded with WriteTree from the
given reader.
*/
func ReadTree(r io.Reader) (*tree.Tree, error) {
	jt := &jsonTree{}
	err := json.NewDecoder(r).Decode(jt)
	if err != nil {
		return nil, fmt.Errorf("decoding tree: %v", err)
	}
	if len(jt.Categorizers) == 0 {
		return nil, fmt.Errorf("decoding tree: no categorizers")
	}
	if jt.Goal < 0 || jt.Goal >= len(jt.Categorizers) {
		return nil, fmt.Errorf("decoding tree: goal column %d out of range", jt.Goal)
	}
	root := decodeNode(&jt.Root)
	return &tree.Tree{
		Root:         root,
		Categorizers: jt.Categorizers,
		Goal:         jt.Goal,
		ColOffset:    jt.ColOffset,
		Names:        jt.Names,
	}, nil
}

func encodeNode(n *tree.Node) jsonNode {
	jn := jsonNode{Samples: n.Samples}
	if n.Leaf() {
		jn.Class = n.Class
		return jn
	}
	jn.Column = n.Column
	jn.Children = make([]jsonNode, len(n.Children))
	for i := range n.Children {
		jn.Children[i] = encodeNode(&n.Children[i])
	}
	return jn
}

func decodeNode(jn *jsonNode) *tree.Node {
	n := &tree.Node{
		Column:  jn.Column,
		Class:   jn.Class,
		Samples: jn.Samples,
	}
	if len(jn.Children) > 0 {
		n.Children = make([]tree.Node, len(jn.Children))
		for i := range jn.Children {
			n.Children[i] = *decodeNode(&jn.Children[i])
		}
	}
	return n
}
