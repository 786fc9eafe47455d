package join

// NodeIndex assigns stable global ids to distinct node positions
// across any number of input files. The Nth distinct quantized
// position receives id N, counting from zero in insertion order. The
// original coordinates of the first instance are kept as the canonical
// geometry; later instances of the same position are dropped even when
// their sub-tolerance digits differ.
type NodeIndex struct {
	tol    float64
	ids    map[Point]int
	points []Point
}

// NewNodeIndex creates an empty index. tol <= 0 selects
// DefaultTolerance.
func NewNodeIndex(tol float64) *NodeIndex {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	return &NodeIndex{
		tol: tol,
		ids: make(map[Point]int),
	}
}

// GetOrInsert returns the global id of p, assigning the next
// sequential id when its quantized position has not been seen before
func (ni *NodeIndex) GetOrInsert(p Point) int {
	qp := Quantize(p, ni.tol)
	if id, ok := ni.ids[qp]; ok {
		return id
	}
	id := len(ni.points)
	ni.ids[qp] = id
	ni.points = append(ni.points, p)
	return id
}

// Len returns the number of distinct positions seen so far
func (ni *NodeIndex) Len() int {
	return len(ni.points)
}

// Points returns the canonical coordinates in global id order. The
// slice is owned by the index.
func (ni *NodeIndex) Points() []Point {
	return ni.points
}

// IndexSet maps the local node ordinals of one input file to global
// ids: entry i holds the global id of the file's node i. Built once
// per file and never modified afterwards.
type IndexSet []int

// NewIndexSet folds pts into the index in file order and records the
// assigned global id of every local node
func NewIndexSet(ni *NodeIndex, pts []Point) IndexSet {
	is := make(IndexSet, len(pts))
	for i, p := range pts {
		is[i] = ni.GetOrInsert(p)
	}
	return is
}

// Remap rewrites a connectivity array in place from 1-based local node
// references to 0-based global ids. Element order and the node order
// within each element are preserved.
func (is IndexSet) Remap(conn []int) error {
	for i, ref := range conn {
		if ref < 1 || ref > len(is) {
			return &IndexError{Ref: ref, Nodes: len(is)}
		}
		conn[i] = is[ref-1]
	}
	return nil
}
