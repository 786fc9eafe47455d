package join

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrsd/exodusII-utils/exodus"
)

func TestBlockMergerAppendOrder(t *testing.T) {
	bm := NewBlockMerger()
	require.NoError(t, bm.Declare("a.e", 1, exodus.Triangle))
	bm.Append(1, []int{0, 1, 2})

	// Same block from a second file lands after the first file's elements
	require.NoError(t, bm.Declare("b.e", 1, exodus.Triangle))
	bm.Append(1, []int{3, 4, 5, 5, 4, 6})

	blocks := bm.Blocks()
	require.Len(t, blocks, 1)
	b := blocks[0]
	assert.Equal(t, 1, b.ID)
	assert.Equal(t, exodus.Triangle, b.Type)
	assert.Equal(t, 3, b.NodesPerElem)
	assert.Equal(t, 3, b.NumElements())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 5, 4, 6}, b.Connectivity)
}

func TestBlockMergerTypeConflict(t *testing.T) {
	bm := NewBlockMerger()
	require.NoError(t, bm.Declare("a.e", 7, exodus.Quad))

	err := bm.Declare("b.e", 7, exodus.Triangle)
	require.Error(t, err)
	var cerr *ConsistencyError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "b.e", cerr.File)
	assert.Equal(t, 7, cerr.Block)
	assert.Equal(t, exodus.Triangle, cerr.Type)
	assert.Equal(t, exodus.Quad, cerr.Want)
}

func TestBlockMergerUnsupportedType(t *testing.T) {
	bm := NewBlockMerger()
	for _, et := range []exodus.ElementType{exodus.Hex, exodus.Prism, exodus.Pyramid, exodus.Point} {
		err := bm.Declare("a.e", 1, et)
		require.Error(t, err)
		var uerr *UnsupportedElementTypeError
		require.True(t, errors.As(err, &uerr))
		assert.Equal(t, et.String(), uerr.Type)
	}
	// The supported table
	for et, npe := range map[exodus.ElementType]int{
		exodus.Line:     2,
		exodus.Triangle: 3,
		exodus.Quad:     4,
		exodus.Tet:      4,
	} {
		require.NoError(t, bm.Declare("a.e", int(et), et))
		assert.Equal(t, npe, et.NumNodes())
	}
}

func TestBlockMergerSortsByID(t *testing.T) {
	bm := NewBlockMerger()
	for _, id := range []int{20, 3, 100, 7} {
		require.NoError(t, bm.Declare("a.e", id, exodus.Tet))
		bm.Append(id, []int{0, 1, 2, 3})
	}
	blocks := bm.Blocks()
	require.Len(t, blocks, 4)
	ids := make([]int, len(blocks))
	for i, b := range blocks {
		ids[i] = b.ID
	}
	assert.Equal(t, []int{3, 7, 20, 100}, ids)
	assert.Equal(t, 4, bm.Len())
	assert.Equal(t, 4, bm.NumElements())
}
