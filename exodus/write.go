package exodus

import (
	"fmt"
	"io"
	"os"

	"github.com/ctessum/cdf"
)

// FileWriter writes a new exodusII file. The NetCDF classic layout
// needs the complete structure before any data lands on disk, so
// Init/WriteCoordinates/WriteBlock/WriteNodalVariableNames only stage
// their inputs; the header is defined and the structural variables are
// flushed when the first time-dependent write (or Close) arrives.
type FileWriter struct {
	path     string
	f        *os.File
	cf       *cdf.File
	title    string
	dim      int
	numNodes int
	numElems int
	numBlks  int
	x, y, z  []float64
	blocks   []Block
	varNames []string
	defined  bool
}

// Create opens a new exodusII file for writing, truncating any
// previous file at path
func Create(path string) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &FileWriter{path: path, f: f}, nil
}

// Init declares the mesh size. Node sets and side sets are part of the
// exodusII init call but are not written by this tool; both counts
// must be zero.
func (w *FileWriter) Init(title string, dim, numNodes, numElems, numBlocks, numNodeSets, numSideSets int) error {
	if w.defined {
		return fmt.Errorf("%s: Init after structure was committed", w.path)
	}
	if dim != 2 && dim != 3 {
		return fmt.Errorf("%s: cannot write a %d dimensional mesh", w.path, dim)
	}
	if numNodeSets != 0 || numSideSets != 0 {
		return fmt.Errorf("%s: node sets and side sets are not supported on write", w.path)
	}
	w.title = title
	w.dim = dim
	w.numNodes = numNodes
	w.numElems = numElems
	w.numBlks = numBlocks
	return nil
}

// WriteCoordinates stages the per-axis coordinate arrays. z is ignored
// for 2D meshes.
func (w *FileWriter) WriteCoordinates(x, y, z []float64) error {
	if len(x) != w.numNodes || len(y) != w.numNodes {
		return fmt.Errorf("%s: coordinate length %d does not match %d nodes", w.path, len(x), w.numNodes)
	}
	if w.dim == 3 && len(z) != w.numNodes {
		return fmt.Errorf("%s: coordinate length %d does not match %d nodes", w.path, len(z), w.numNodes)
	}
	w.x, w.y, w.z = x, y, z
	return nil
}

// WriteBlock stages one element block. Connectivity is 1-based, flat,
// with numElems*nodesPerElem entries. Blocks land on file in call
// order.
func (w *FileWriter) WriteBlock(id int, elemType string, numElems int, conn []int) error {
	if w.defined {
		return fmt.Errorf("%s: block %d after structure was committed", w.path, id)
	}
	if numElems <= 0 || len(conn)%numElems != 0 {
		return fmt.Errorf("%s: block %d: connectivity length %d does not divide into %d elements",
			w.path, id, len(conn), numElems)
	}
	w.blocks = append(w.blocks, Block{
		ID:           id,
		Type:         elemType,
		NodesPerElem: len(conn) / numElems,
		Connectivity: conn,
	})
	return nil
}

// WriteNodalVariableNames stages the nodal variable names
func (w *FileWriter) WriteNodalVariableNames(names []string) error {
	if w.defined {
		return fmt.Errorf("%s: variable names after structure was committed", w.path)
	}
	w.varNames = names
	return nil
}

// WriteTime writes the time value of step (0-based)
func (w *FileWriter) WriteTime(step int, t float64) error {
	if err := w.ensureDefined(); err != nil {
		return err
	}
	wr := w.cf.Writer(varTimeWhole, []int{step}, []int{step + 1})
	if _, err := wr.Write([]float64{t}); err != nil && err != io.EOF {
		return fmt.Errorf("%s: writing %s: %w", w.path, varTimeWhole, err)
	}
	return nil
}

// WriteNodalVariable writes variable v at step (both 0-based), one
// value per node
func (w *FileWriter) WriteNodalVariable(step, v int, vals []float64) error {
	if err := w.ensureDefined(); err != nil {
		return err
	}
	if v < 0 || v >= len(w.varNames) {
		return fmt.Errorf("%s: nodal variable index %d out of range", w.path, v)
	}
	if len(vals) != w.numNodes {
		return fmt.Errorf("%s: %s: value length %d does not match %d nodes",
			w.path, valsNodVar(v), len(vals), w.numNodes)
	}
	wr := w.cf.Writer(valsNodVar(v), []int{step, 0}, []int{step + 1, w.numNodes})
	if _, err := wr.Write(vals); err != nil && err != io.EOF {
		return fmt.Errorf("%s: writing %s: %w", w.path, valsNodVar(v), err)
	}
	return nil
}

// Update commits the record count, making every time step written so
// far visible to readers
func (w *FileWriter) Update() error {
	if err := w.ensureDefined(); err != nil {
		return err
	}
	return cdf.UpdateNumRecs(w.f)
}

// Close flushes any staged structure and closes the file
func (w *FileWriter) Close() error {
	err := w.ensureDefined()
	if err == nil {
		err = cdf.UpdateNumRecs(w.f)
	}
	if cerr := w.f.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func (w *FileWriter) ensureDefined() error {
	if w.defined {
		return nil
	}
	return w.define()
}

// define builds the NetCDF header from the staged structure, creates
// the file layout and writes every fixed-size variable
func (w *FileWriter) define() error {
	if len(w.blocks) != w.numBlks {
		return fmt.Errorf("%s: %d blocks declared, %d written", w.path, w.numBlks, len(w.blocks))
	}
	if w.x == nil {
		return fmt.Errorf("%s: no coordinates written", w.path)
	}
	dims := []string{dimLenString, dimLenLine, dimFour, dimTimeStep, dimNumDim, dimNumNodes, dimNumElem}
	lengths := []int{lenString, lenLine, 4, 0, w.dim, w.numNodes, w.numElems}
	if len(w.blocks) > 0 {
		dims = append(dims, dimNumElBlk)
		lengths = append(lengths, len(w.blocks))
	}
	for i, b := range w.blocks {
		dims = append(dims, blockSizeDim(i), blockNodesDim(i))
		lengths = append(lengths, b.NumElements(), b.NodesPerElem)
	}
	if len(w.varNames) > 0 {
		dims = append(dims, dimNumNodVar)
		lengths = append(lengths, len(w.varNames))
	}

	h := cdf.NewHeader(dims, lengths)
	h.AddAttribute("", attrTitle, w.title)
	h.AddAttribute("", attrVersion, []float32{5.1})
	h.AddAttribute("", attrAPIVer, []float32{5.1})
	h.AddAttribute("", attrWordSize, []int32{8})
	h.AddAttribute("", attrFileSize, []int32{1})

	h.AddVariable(varTimeWhole, []string{dimTimeStep}, []float64{0})
	axes := []string{varCoordX, varCoordY, varCoordZ}[:w.dim]
	for _, ax := range axes {
		h.AddVariable(ax, []string{dimNumNodes}, []float64{0})
	}
	h.AddVariable(varCoorNames, []string{dimNumDim, dimLenString}, []byte{0})
	if len(w.blocks) > 0 {
		h.AddVariable(varEbStatus, []string{dimNumElBlk}, []int32{0})
		h.AddVariable(varEbProp1, []string{dimNumElBlk}, []int32{0})
		h.AddAttribute(varEbProp1, attrName, "ID")
		h.AddVariable(varEbNames, []string{dimNumElBlk, dimLenString}, []byte{0})
	}
	for i, b := range w.blocks {
		h.AddVariable(connectVar(i), []string{blockSizeDim(i), blockNodesDim(i)}, []int32{0})
		h.AddAttribute(connectVar(i), attrElemType, b.Type)
	}
	if len(w.varNames) > 0 {
		h.AddVariable(varNameNodVar, []string{dimNumNodVar, dimLenString}, []byte{0})
		for i := range w.varNames {
			h.AddVariable(valsNodVar(i), []string{dimTimeStep, dimNumNodes}, []float64{0})
		}
	}
	h.Define()

	cf, err := cdf.Create(w.f, h)
	if err != nil {
		return fmt.Errorf("%s: %w", w.path, err)
	}
	w.cf = cf
	w.defined = true

	coords := [][]float64{w.x, w.y, w.z}
	for i, ax := range axes {
		if err := w.writeAll(ax, coords[i]); err != nil {
			return err
		}
	}
	if err := w.writeAll(varCoorNames, packNames([]string{"x", "y", "z"}[:w.dim])); err != nil {
		return err
	}
	if len(w.blocks) > 0 {
		var (
			status = make([]int32, len(w.blocks))
			ids    = make([]int32, len(w.blocks))
			names  = make([]string, len(w.blocks))
		)
		for i, b := range w.blocks {
			status[i] = 1
			ids[i] = int32(b.ID)
			names[i] = b.Name
		}
		if err := w.writeAll(varEbStatus, status); err != nil {
			return err
		}
		if err := w.writeAll(varEbProp1, ids); err != nil {
			return err
		}
		if err := w.writeAll(varEbNames, packNames(names)); err != nil {
			return err
		}
	}
	for i, b := range w.blocks {
		conn := make([]int32, len(b.Connectivity))
		for j, c := range b.Connectivity {
			conn[j] = int32(c)
		}
		if err := w.writeAll(connectVar(i), conn); err != nil {
			return err
		}
	}
	if len(w.varNames) > 0 {
		if err := w.writeAll(varNameNodVar, packNames(w.varNames)); err != nil {
			return err
		}
	}
	return nil
}

func (w *FileWriter) writeAll(name string, data interface{}) error {
	wr := w.cf.Writer(name, nil, nil)
	if _, err := wr.Write(data); err != nil && err != io.EOF {
		return fmt.Errorf("%s: writing %s: %w", w.path, name, err)
	}
	return nil
}
