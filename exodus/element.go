package exodus

import (
	"fmt"
	"strings"
)

// ElementType represents the element topologies stored in exodusII files
type ElementType int

const (
	Point ElementType = iota
	Line
	Triangle
	Quad
	Tet
	Hex
	Prism
	Pyramid
)

// String returns the canonical exodusII type tag written to files
func (e ElementType) String() string {
	return [...]string{"POINT", "BAR2", "TRI3", "QUAD4", "TET4", "HEX8", "PRISM6", "PYRAMID5"}[e]
}

// NumNodes returns the nodes per element for the type
func (e ElementType) NumNodes() int {
	return [...]int{1, 2, 3, 4, 4, 8, 6, 5}[e]
}

// ParseElementType maps an element type tag from a file to its ElementType.
// Both the short and the node-count suffixed spellings are accepted.
func ParseElementType(tag string) (ElementType, error) {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "POINT", "POINT1":
		return Point, nil
	case "BAR2":
		return Line, nil
	case "TRI", "TRI3":
		return Triangle, nil
	case "QUAD", "QUAD4":
		return Quad, nil
	case "TETRA", "TET4":
		return Tet, nil
	case "HEX", "HEX8":
		return Hex, nil
	case "PRISM6":
		return Prism, nil
	case "PYRAMID5":
		return Pyramid, nil
	}
	return 0, fmt.Errorf("unknown element type %q", tag)
}
