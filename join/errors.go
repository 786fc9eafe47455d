package join

import (
	"fmt"

	"github.com/andrsd/exodusII-utils/exodus"
)

// Every error type below is fatal: the join aborts before any output
// is written and no recovery is attempted.

// UnsupportedDimensionError reports a mesh outside 2D/3D, or a
// dimension mismatch between input files when Want is set
type UnsupportedDimensionError struct {
	File string
	Dim  int
	Want int
}

func (e *UnsupportedDimensionError) Error() string {
	if e.Want != 0 {
		return fmt.Sprintf("file %s: dimension %d does not match dimension %d of earlier files",
			e.File, e.Dim, e.Want)
	}
	return fmt.Sprintf("file %s: unsupported dimension %d", e.File, e.Dim)
}

// UnsupportedElementTypeError reports a block whose element type the
// join cannot carry
type UnsupportedElementTypeError struct {
	File  string
	Block int
	Type  string
}

func (e *UnsupportedElementTypeError) Error() string {
	return fmt.Sprintf("file %s: block %d: unsupported element type %q", e.File, e.Block, e.Type)
}

// ConsistencyError reports a block id that appears with different
// element types in different input files
type ConsistencyError struct {
	File  string
	Block int
	Type  exodus.ElementType
	Want  exodus.ElementType
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("file %s: block %d has inconsistent element type (%s, earlier files have %s)",
		e.File, e.Block, e.Type, e.Want)
}

// IndexError reports connectivity referencing a node outside the local
// node range of its file. Callers wrap it with the file and block.
type IndexError struct {
	Ref   int
	Nodes int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("node reference %d out of range [1, %d]", e.Ref, e.Nodes)
}
