package info

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/andrsd/exodusII-utils/exodus"
)

// BlockInfo describes one element block
type BlockInfo struct {
	ID       int    `json:"id"`
	Name     string `json:"name,omitempty"`
	Type     string `json:"type"`
	Elements int    `json:"elements"`
}

// SideSetInfo describes one side set
type SideSetInfo struct {
	ID    int    `json:"id"`
	Name  string `json:"name,omitempty"`
	Sides int    `json:"sides"`
}

// Bounds holds per-axis coordinate extents, x first
type Bounds struct {
	Min []float64 `json:"min"`
	Max []float64 `json:"max"`
}

// Summary is everything the info command reports about one mesh file
type Summary struct {
	File      string        `json:"file"`
	Title     string        `json:"title,omitempty"`
	Dimension int           `json:"dimension"`
	Nodes     int           `json:"nodes"`
	Elements  int           `json:"elements"`
	Blocks    []BlockInfo   `json:"blocks,omitempty"`
	SideSets  []SideSetInfo `json:"side_sets,omitempty"`
	Bounds    *Bounds       `json:"bounds,omitempty"`
}

// Read collects the summary of the mesh at path. Coordinate extents
// are only computed when withBounds is set; they need the full
// coordinate arrays, everything else comes from the file structure.
func Read(path string, withBounds bool) (*Summary, error) {
	f, err := exodus.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s := &Summary{
		File:      path,
		Title:     f.Title(),
		Dimension: f.Dimension(),
		Nodes:     f.NumNodes(),
		Elements:  f.NumElements(),
	}
	blocks, err := f.ElementBlocks()
	if err != nil {
		return nil, err
	}
	for _, b := range blocks {
		et, err := exodus.ParseElementType(b.Type)
		if err != nil {
			return nil, fmt.Errorf("%s: block %d: %w", path, b.ID, err)
		}
		s.Blocks = append(s.Blocks, BlockInfo{
			ID:       b.ID,
			Name:     b.Name,
			Type:     et.String(),
			Elements: b.NumElements(),
		})
	}
	sets, err := f.SideSets()
	if err != nil {
		return nil, err
	}
	for _, ss := range sets {
		s.SideSets = append(s.SideSets, SideSetInfo{ID: ss.ID, Name: ss.Name, Sides: ss.NumSides})
	}
	if withBounds {
		x, y, z, err := f.Coordinates()
		if err != nil {
			return nil, err
		}
		if len(x) > 0 {
			b := &Bounds{
				Min: []float64{floats.Min(x), floats.Min(y)},
				Max: []float64{floats.Max(x), floats.Max(y)},
			}
			if z != nil {
				b.Min = append(b.Min, floats.Min(z))
				b.Max = append(b.Max, floats.Max(z))
			}
			s.Bounds = b
		}
	}
	return s, nil
}

// Print writes the summary in the plain report layout
func (s *Summary) Print(w io.Writer) {
	fmt.Fprintf(w, "\nGlobal:\n")
	fmt.Fprintf(w, "- %s elements\n", humanNumber(s.Elements))
	fmt.Fprintf(w, "- %s nodes\n", humanNumber(s.Nodes))
	s.printBlocks(w)
	s.printSideSets(w)
	s.printBounds(w)
}

func (s *Summary) printBlocks(w io.Writer) {
	if len(s.Blocks) == 0 {
		return
	}
	var wdID, wdName, wdNum int
	for _, b := range s.Blocks {
		wdID = max(wdID, len(strconv.Itoa(b.ID)))
		wdName = max(wdName, len(displayName(b.Name)))
		wdNum = max(wdNum, len(humanNumber(b.Elements)))
	}
	wdName++

	fmt.Fprintf(w, "\nCell sets [%d]:\n", len(s.Blocks))
	for _, b := range s.Blocks {
		fmt.Fprintf(w, "- %*d: %-*s %*s elements  (%s)\n",
			wdID, b.ID, wdName, displayName(b.Name), wdNum, humanNumber(b.Elements), b.Type)
	}
}

func (s *Summary) printSideSets(w io.Writer) {
	if len(s.SideSets) == 0 {
		return
	}
	var wdID, wdName, wdNum int
	for _, ss := range s.SideSets {
		wdID = max(wdID, len(strconv.Itoa(ss.ID)))
		wdName = max(wdName, len(displayName(ss.Name)))
		wdNum = max(wdNum, len(humanNumber(ss.Sides)))
	}
	wdName++

	fmt.Fprintf(w, "\nSide sets [%d]:\n", len(s.SideSets))
	for _, ss := range s.SideSets {
		fmt.Fprintf(w, "- %*d: %-*s %*s sides\n",
			wdID, ss.ID, wdName, displayName(ss.Name), wdNum, humanNumber(ss.Sides))
	}
}

func (s *Summary) printBounds(w io.Writer) {
	if s.Bounds == nil {
		return
	}
	fmt.Fprintf(w, "\nBounds:\n")
	axes := []string{"x", "y", "z"}
	for i := range s.Bounds.Min {
		fmt.Fprintf(w, "- %s: [%g, %g]\n", axes[i], s.Bounds.Min[i], s.Bounds.Max[i])
	}
}

func displayName(name string) string {
	if name == "" {
		return "<no name>"
	}
	return name
}

// humanNumber formats a non-negative count with thousands separators
func humanNumber(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	first := len(s) % 3
	if first == 0 {
		first = 3
	}
	parts := []string{s[:first]}
	for i := first; i < len(s); i += 3 {
		parts = append(parts, s[i:i+3])
	}
	return strings.Join(parts, ",")
}
