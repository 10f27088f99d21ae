package tt

import (
	"errors"
	"fmt"

	"go.trai.ch/zerr"
)

// Flat encoding errors.
var (
	// ErrFlatShape is returned when the parallel arrays of a FlatTree disagree in length.
	ErrFlatShape = zerr.New("flat tree arrays have mismatched lengths")

	// ErrFlatTruncated is returned when a FlatTree ends before all announced children appear.
	ErrFlatTruncated = zerr.New("flat tree is truncated")

	// ErrFlatTrailing is returned when a FlatTree contains nodes past the end of the root subtree.
	ErrFlatTrailing = zerr.New("flat tree has trailing nodes")
)

// FlatTree is the linearized wire form of a Tree: nodes in preorder, with
// parallel arrays for kind, text and direct child count. An empty FlatTree
// encodes the absence of a tree.
type FlatTree struct {
	Kinds       []uint32 `json:"kinds"`
	Texts       []string `json:"texts"`
	ChildCounts []uint32 `json:"child_counts"`
}

// IsEmpty reports whether the flat tree encodes no tree at all.
func (f *FlatTree) IsEmpty() bool {
	return f == nil || len(f.Kinds) == 0
}

// Flatten linearizes a tree into its wire form. A nil tree produces an empty
// FlatTree.
func Flatten(t *Tree) *FlatTree {
	f := &FlatTree{}
	if t == nil {
		return f
	}
	n := t.Len()
	f.Kinds = make([]uint32, 0, n)
	f.Texts = make([]string, 0, n)
	f.ChildCounts = make([]uint32, 0, n)
	flattenInto(t, f)
	return f
}

func flattenInto(t *Tree, f *FlatTree) {
	f.Kinds = append(f.Kinds, uint32(t.Kind))
	f.Texts = append(f.Texts, t.Text)
	f.ChildCounts = append(f.ChildCounts, uint32(len(t.Children)))
	for _, c := range t.Children {
		flattenInto(c, f)
	}
}

// Inflate reconstructs a tree from its wire form. It validates the shape of
// the parallel arrays and the child spans; an empty FlatTree yields nil.
func Inflate(f *FlatTree) (*Tree, error) {
	if f.IsEmpty() {
		return nil, nil
	}
	if len(f.Kinds) != len(f.Texts) || len(f.Kinds) != len(f.ChildCounts) {
		return nil, ErrFlatShape
	}
	pos := 0
	root, err := inflateAt(f, &pos)
	if err != nil {
		return nil, err
	}
	if pos != len(f.Kinds) {
		return nil, errors.Join(ErrFlatTrailing, zerr.New(fmt.Sprintf("consumed %d of %d nodes", pos, len(f.Kinds))))
	}
	return root, nil
}

func inflateAt(f *FlatTree, pos *int) (*Tree, error) {
	if *pos >= len(f.Kinds) {
		return nil, ErrFlatTruncated
	}
	i := *pos
	*pos++
	node := &Tree{
		Kind: Kind(f.Kinds[i]),
		Text: f.Texts[i],
	}
	count := int(f.ChildCounts[i])
	if count > 0 {
		// The announced count is wire data; never size an allocation by it
		// beyond what the arrays can still hold.
		if count > len(f.Kinds)-*pos {
			return nil, ErrFlatTruncated
		}
		node.Children = make([]*Tree, 0, count)
		for range count {
			child, err := inflateAt(f, pos)
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, child)
		}
	}
	return node, nil
}
