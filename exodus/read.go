package exodus

// Title returns the title the mesh was written with
func (f *File) Title() string {
	return attrString(f.cf.Header.GetAttribute("", attrTitle))
}

// Dimension returns the spatial dimension of the mesh
func (f *File) Dimension() int {
	if n, ok := f.dims[dimNumDim]; ok && n > 0 {
		return n
	}
	if f.hasVar(varCoordZ) {
		return 3
	}
	return 2
}

// NumNodes returns the node count
func (f *File) NumNodes() int {
	return f.dimLen(dimNumNodes)
}

// NumElementBlocks returns the element block count
func (f *File) NumElementBlocks() int {
	return f.dimLen(dimNumElBlk)
}

// NumElements returns the total element count over all blocks
func (f *File) NumElements() int {
	var total int
	for i := 0; i < f.NumElementBlocks(); i++ {
		total += f.dimLen(blockSizeDim(i))
	}
	return total
}

// NumTimeSteps returns the number of time steps on file
func (f *File) NumTimeSteps() int {
	return f.dimLen(dimTimeStep)
}

// NumNodalVariables returns the number of nodal variables
func (f *File) NumNodalVariables() int {
	return f.dimLen(dimNumNodVar)
}

// NumSideSets returns the side set count
func (f *File) NumSideSets() int {
	return f.dimLen(dimNumSideSets)
}

// Coordinates returns the per-axis coordinate arrays. z is nil for 2D
// meshes. Files written by current tools carry one variable per axis;
// the packed legacy layout is accepted as well.
func (f *File) Coordinates() (x, y, z []float64, err error) {
	var (
		n   = f.NumNodes()
		dim = f.Dimension()
	)
	if f.hasVar(varCoordX) {
		if x, err = f.readDoubles(varCoordX, nil, nil, n); err != nil {
			return
		}
		if y, err = f.readDoubles(varCoordY, nil, nil, n); err != nil {
			return
		}
		if dim == 3 {
			z, err = f.readDoubles(varCoordZ, nil, nil, n)
		}
		return
	}
	all, err := f.readDoubles(varCoord, nil, nil, dim*n)
	if err != nil {
		return nil, nil, nil, err
	}
	x = all[:n]
	y = all[n : 2*n]
	if dim == 3 {
		z = all[2*n : 3*n]
	}
	return
}

// ElementBlocks reads every element block in file order
func (f *File) ElementBlocks() ([]Block, error) {
	nblk := f.NumElementBlocks()
	if nblk == 0 {
		return nil, nil
	}
	ids, err := f.readInts(varEbProp1, nblk)
	if err != nil {
		return nil, err
	}
	var names []string
	if f.hasVar(varEbNames) {
		raw, err := f.readChars(varEbNames, nblk*lenString)
		if err != nil {
			return nil, err
		}
		names = unpackNames(raw, nblk)
	}
	blocks := make([]Block, nblk)
	for i := range blocks {
		var (
			ne  = f.dimLen(blockSizeDim(i))
			npe = f.dimLen(blockNodesDim(i))
		)
		conn, err := f.readInts(connectVar(i), ne*npe)
		if err != nil {
			return nil, err
		}
		blocks[i] = Block{
			ID:           ids[i],
			Type:         attrString(f.cf.Header.GetAttribute(connectVar(i), attrElemType)),
			NodesPerElem: npe,
			Connectivity: conn,
		}
		if names != nil {
			blocks[i].Name = names[i]
		}
	}
	return blocks, nil
}

// TimeValues returns the time value of every time step
func (f *File) TimeValues() ([]float64, error) {
	n := f.NumTimeSteps()
	if n == 0 || !f.hasVar(varTimeWhole) {
		return nil, nil
	}
	return f.readDoubles(varTimeWhole, []int{0}, []int{n}, n)
}

// NodalVariableNames returns the nodal variable names in variable order
func (f *File) NodalVariableNames() ([]string, error) {
	nvar := f.NumNodalVariables()
	if nvar == 0 || !f.hasVar(varNameNodVar) {
		return nil, nil
	}
	raw, err := f.readChars(varNameNodVar, nvar*lenString)
	if err != nil {
		return nil, err
	}
	return unpackNames(raw, nvar), nil
}

// NodalVariableValues reads the local value array of one nodal variable
// at one time step. Both step and v are 0-based; the wire names are
// 1-based.
func (f *File) NodalVariableValues(step, v int) ([]float64, error) {
	n := f.NumNodes()
	return f.readDoubles(valsNodVar(v), []int{step, 0}, []int{step + 1, n}, n)
}

// SideSets reads side set identities and sizes. The side lists
// themselves are not needed for reporting and are left on file.
func (f *File) SideSets() ([]SideSet, error) {
	nss := f.NumSideSets()
	if nss == 0 {
		return nil, nil
	}
	ids, err := f.readInts(varSsProp1, nss)
	if err != nil {
		return nil, err
	}
	var names []string
	if f.hasVar(varSsNames) {
		raw, err := f.readChars(varSsNames, nss*lenString)
		if err != nil {
			return nil, err
		}
		names = unpackNames(raw, nss)
	}
	sets := make([]SideSet, nss)
	for i := range sets {
		sets[i] = SideSet{ID: ids[i], NumSides: f.dimLen(sideSetSizeDim(i))}
		if names != nil {
			sets[i].Name = names[i]
		}
	}
	return sets, nil
}
