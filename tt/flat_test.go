package tt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mexp.dev/mexpd/tt"
)

func TestFlattenInflateRoundTrip(t *testing.T) {
	tree := tt.Group("(",
		tt.Ident("derive"),
		tt.Group("[",
			tt.Ident("Clone"),
			tt.Punct(","),
			tt.Ident("Debug"),
		),
		tt.Literal(`"x"`),
	)

	flat := tt.Flatten(tree)
	require.Len(t, flat.Kinds, tree.Len())

	got, err := tt.Inflate(flat)
	require.NoError(t, err)
	assert.Equal(t, tree, got)
}

func TestFlattenNil(t *testing.T) {
	flat := tt.Flatten(nil)
	assert.True(t, flat.IsEmpty())

	got, err := tt.Inflate(flat)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInflateMismatchedArrays(t *testing.T) {
	flat := &tt.FlatTree{
		Kinds:       []uint32{uint32(tt.KindIdent)},
		Texts:       []string{"x", "y"},
		ChildCounts: []uint32{0},
	}

	_, err := tt.Inflate(flat)
	assert.ErrorIs(t, err, tt.ErrFlatShape)
}

func TestInflateTruncated(t *testing.T) {
	// Root announces two children but only one node follows.
	flat := &tt.FlatTree{
		Kinds:       []uint32{uint32(tt.KindGroup), uint32(tt.KindIdent)},
		Texts:       []string{"(", "x"},
		ChildCounts: []uint32{2, 0},
	}

	_, err := tt.Inflate(flat)
	assert.ErrorIs(t, err, tt.ErrFlatTruncated)
}

func TestInflateOversizedChildCount(t *testing.T) {
	// A hostile count must fail as truncation, not size an allocation.
	flat := &tt.FlatTree{
		Kinds:       []uint32{uint32(tt.KindGroup), uint32(tt.KindIdent)},
		Texts:       []string{"(", "x"},
		ChildCounts: []uint32{4_000_000_000, 0},
	}

	_, err := tt.Inflate(flat)
	assert.ErrorIs(t, err, tt.ErrFlatTruncated)
}

func TestInflateTrailingNodes(t *testing.T) {
	// A leaf root followed by an unreachable node.
	flat := &tt.FlatTree{
		Kinds:       []uint32{uint32(tt.KindIdent), uint32(tt.KindIdent)},
		Texts:       []string{"x", "y"},
		ChildCounts: []uint32{0, 0},
	}

	_, err := tt.Inflate(flat)
	assert.ErrorIs(t, err, tt.ErrFlatTrailing)
}
