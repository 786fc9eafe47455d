package join

import (
	"sort"

	"github.com/andrsd/exodusII-utils/exodus"
)

// elementNodes is the element table the join understands. Meshes may
// contain further types; blocks carrying one are rejected.
var elementNodes = map[exodus.ElementType]int{
	exodus.Line:     2,
	exodus.Triangle: 3,
	exodus.Quad:     4,
	exodus.Tet:      4,
}

// MergedBlock accumulates one output element block. Connectivity holds
// 0-based global ids, NodesPerElem entries per element, contributions
// in file-processing order.
type MergedBlock struct {
	ID           int
	Type         exodus.ElementType
	NodesPerElem int
	Connectivity []int
}

// NumElements returns the element count derived from the connectivity
func (b *MergedBlock) NumElements() int {
	return len(b.Connectivity) / b.NodesPerElem
}

// BlockMerger folds per-file block contributions into one block per
// id, checking that every file declares the same element type for a
// given id
type BlockMerger struct {
	blocks map[int]*MergedBlock
}

// NewBlockMerger creates an empty merger
func NewBlockMerger() *BlockMerger {
	return &BlockMerger{blocks: make(map[int]*MergedBlock)}
}

// Declare records block id with element type et when first seen, and
// verifies the type against earlier files otherwise. Declare must
// succeed before Append may be called for the same id.
func (bm *BlockMerger) Declare(file string, id int, et exodus.ElementType) error {
	npe, ok := elementNodes[et]
	if !ok {
		return &UnsupportedElementTypeError{File: file, Block: id, Type: et.String()}
	}
	if b, ok := bm.blocks[id]; ok {
		if b.Type != et {
			return &ConsistencyError{File: file, Block: id, Type: et, Want: b.Type}
		}
		return nil
	}
	bm.blocks[id] = &MergedBlock{ID: id, Type: et, NodesPerElem: npe}
	return nil
}

// Append adds one file's already remapped connectivity to block id,
// after all earlier files' elements for that block
func (bm *BlockMerger) Append(id int, conn []int) {
	b := bm.blocks[id]
	b.Connectivity = append(b.Connectivity, conn...)
}

// Blocks returns the merged blocks in ascending block id order
func (bm *BlockMerger) Blocks() []*MergedBlock {
	ids := make([]int, 0, len(bm.blocks))
	for id := range bm.blocks {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]*MergedBlock, len(ids))
	for i, id := range ids {
		out[i] = bm.blocks[id]
	}
	return out
}

// Len returns the number of distinct block ids seen
func (bm *BlockMerger) Len() int {
	return len(bm.blocks)
}

// NumElements returns the total element count over all blocks
func (bm *BlockMerger) NumElements() int {
	var total int
	for _, b := range bm.blocks {
		total += b.NumElements()
	}
	return total
}
