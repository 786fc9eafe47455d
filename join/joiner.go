package join

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/andrsd/exodusII-utils/exodus"
)

// Options configure a join. The zero value selects the defaults.
type Options struct {
	// Tolerance is the absolute snap tolerance for node matching.
	// Zero selects DefaultTolerance.
	Tolerance float64
	// Title is written into the output file.
	Title string
	// Log receives progress; nil selects the standard logger.
	Log *logrus.Logger
}

// joinContext owns every accumulator of one join: the global node
// index, the per-file index sets, the merged blocks, and the per-file
// variable buffers. One value per Join call; no state survives it.
type joinContext struct {
	log      *logrus.Logger
	dim      int
	nodes    *NodeIndex
	sets     []IndexSet
	blocks   *BlockMerger
	varNames []string
	times    []float64
	vals     [][][][]float64 // vals[file][step][variable] = local values
}

// Join merges the meshes in inputs into one mesh at output,
// deduplicating nodes that coincide within the snap tolerance and
// re-indexing connectivity and nodal variables into the merged node
// space. Inputs are processed strictly in order; the output file is
// only created after every input was read successfully, so a failing
// join leaves no partial output behind.
func Join(inputs []string, output string, opts Options) error {
	if len(inputs) == 0 {
		return fmt.Errorf("no input files")
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	jc := &joinContext{
		log:    log,
		nodes:  NewNodeIndex(opts.Tolerance),
		blocks: NewBlockMerger(),
	}
	for i, path := range inputs {
		if err := jc.readFile(i, path); err != nil {
			return err
		}
	}
	jc.log.WithFields(logrus.Fields{
		"nodes":    jc.nodes.Len(),
		"elements": jc.blocks.NumElements(),
		"blocks":   jc.blocks.Len(),
	}).Info("merged mesh")

	w, err := exodus.Create(output)
	if err != nil {
		return err
	}
	jc.log.WithField("file", output).Info("writing mesh")
	if err := jc.writeMesh(w, opts.Title); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// readFile folds one input file into the context
func (jc *joinContext) readFile(idx int, path string) error {
	f, err := exodus.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dim := f.Dimension()
	if dim != 2 && dim != 3 {
		return &UnsupportedDimensionError{File: path, Dim: dim}
	}
	if jc.dim == 0 {
		jc.dim = dim
	} else if dim != jc.dim {
		return &UnsupportedDimensionError{File: path, Dim: dim, Want: jc.dim}
	}

	x, y, z, err := f.Coordinates()
	if err != nil {
		return err
	}
	pts := make([]Point, len(x))
	for i := range pts {
		pts[i] = Point{X: x[i], Y: y[i]}
		if z != nil {
			pts[i].Z = z[i]
		}
	}
	is := NewIndexSet(jc.nodes, pts)
	jc.sets = append(jc.sets, is)

	blocks, err := f.ElementBlocks()
	if err != nil {
		return err
	}
	for _, b := range blocks {
		et, err := exodus.ParseElementType(b.Type)
		if err != nil {
			return &UnsupportedElementTypeError{File: path, Block: b.ID, Type: b.Type}
		}
		if err := jc.blocks.Declare(path, b.ID, et); err != nil {
			return err
		}
		if err := is.Remap(b.Connectivity); err != nil {
			return fmt.Errorf("file %s: block %d: %w", path, b.ID, err)
		}
		jc.blocks.Append(b.ID, b.Connectivity)
	}

	if err := jc.readVariables(idx, path, f); err != nil {
		return err
	}
	jc.log.WithFields(logrus.Fields{
		"file":   path,
		"nodes":  len(pts),
		"blocks": len(blocks),
	}).Info("read mesh")
	return nil
}

// readVariables buffers the file's nodal variable values. Variable
// names and time values come from the first file; later files only
// have their counts checked against it.
func (jc *joinContext) readVariables(idx int, path string, f *exodus.File) error {
	names, err := f.NodalVariableNames()
	if err != nil {
		return err
	}
	times, err := f.TimeValues()
	if err != nil {
		return err
	}
	if idx == 0 {
		jc.varNames = names
		jc.times = times
	} else {
		if len(names) != len(jc.varNames) {
			return fmt.Errorf("file %s: %d nodal variables, earlier files have %d",
				path, len(names), len(jc.varNames))
		}
		if len(times) != len(jc.times) {
			return fmt.Errorf("file %s: %d time steps, earlier files have %d",
				path, len(times), len(jc.times))
		}
	}
	fileVals := make([][][]float64, len(jc.times))
	for t := range jc.times {
		fileVals[t] = make([][]float64, len(jc.varNames))
		for v := range jc.varNames {
			vals, err := f.NodalVariableValues(t, v)
			if err != nil {
				return err
			}
			fileVals[t][v] = vals
		}
	}
	jc.vals = append(jc.vals, fileVals)
	return nil
}

// writeMesh serializes the merged mesh: coordinates in global id
// order, blocks in block id order, then per time step the time value
// and every variable's scattered global array, flushed step by step
func (jc *joinContext) writeMesh(w *exodus.FileWriter, title string) error {
	var (
		n      = jc.nodes.Len()
		blocks = jc.blocks.Blocks()
	)
	if err := w.Init(title, jc.dim, n, jc.blocks.NumElements(), len(blocks), 0, 0); err != nil {
		return err
	}
	var (
		x = make([]float64, n)
		y = make([]float64, n)
		z = make([]float64, n)
	)
	for i, p := range jc.nodes.Points() {
		x[i], y[i], z[i] = p.X, p.Y, p.Z
	}
	if err := w.WriteCoordinates(x, y, z); err != nil {
		return err
	}
	for _, b := range blocks {
		wire := make([]int, len(b.Connectivity))
		for i, c := range b.Connectivity {
			wire[i] = c + 1
		}
		if err := w.WriteBlock(b.ID, b.Type.String(), b.NumElements(), wire); err != nil {
			return err
		}
	}
	if err := w.WriteNodalVariableNames(jc.varNames); err != nil {
		return err
	}
	for t, tv := range jc.times {
		if err := w.WriteTime(t, tv); err != nil {
			return err
		}
		for v := range jc.varNames {
			global := make([]float64, n)
			for fi := range jc.vals {
				Scatter(jc.vals[fi][t][v], jc.sets[fi], global)
			}
			if err := w.WriteNodalVariable(t, v, global); err != nil {
				return err
			}
		}
		if err := w.Update(); err != nil {
			return err
		}
	}
	return nil
}
