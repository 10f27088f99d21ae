// Package tt defines the token tree exchanged between the expansion service
// and transformer plugins, together with its flat wire encoding.
package tt

// Kind classifies a single tree node.
type Kind uint8

const (
	// KindGroup is a delimited subtree; Text holds the delimiter ("(", "[", "{" or "").
	KindGroup Kind = iota
	// KindIdent is an identifier or keyword.
	KindIdent
	// KindLiteral is a literal token (string, number, char).
	KindLiteral
	// KindPunct is a punctuation token.
	KindPunct
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindIdent:
		return "ident"
	case KindLiteral:
		return "literal"
	case KindPunct:
		return "punct"
	default:
		return "unknown"
	}
}

// Tree is a decoded token tree node. Only KindGroup nodes carry children.
type Tree struct {
	Kind     Kind
	Text     string
	Children []*Tree
}

// Group builds a delimited subtree node.
func Group(delim string, children ...*Tree) *Tree {
	return &Tree{Kind: KindGroup, Text: delim, Children: children}
}

// Ident builds an identifier leaf.
func Ident(text string) *Tree {
	return &Tree{Kind: KindIdent, Text: text}
}

// Literal builds a literal leaf.
func Literal(text string) *Tree {
	return &Tree{Kind: KindLiteral, Text: text}
}

// Punct builds a punctuation leaf.
func Punct(text string) *Tree {
	return &Tree{Kind: KindPunct, Text: text}
}

// Len returns the total number of nodes in the tree, including the root.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	n := 1
	for _, c := range t.Children {
		n += c.Len()
	}
	return n
}
