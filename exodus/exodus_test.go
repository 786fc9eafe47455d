package exodus

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameRecords(t *testing.T) {
	names := []string{"temperature", "", "vel_x"}
	raw := packNames(names)
	require.Len(t, raw, 3*lenString)
	assert.Equal(t, names, unpackNames(raw, 3))

	// Names longer than a record are cut at the record boundary
	long := strings.Repeat("a", 40)
	raw = packNames([]string{long})
	require.Len(t, raw, lenString)
	assert.Equal(t, long[:lenString], unpackNames(raw, 1)[0])
}

func TestAttrString(t *testing.T) {
	assert.Equal(t, "QUAD4", attrString("QUAD4"))
	assert.Equal(t, "QUAD4", attrString("QUAD4\x00\x00"))
	assert.Equal(t, "QUAD4", attrString([]byte("QUAD4 \x00")))
	assert.Equal(t, "", attrString(nil))
	assert.Equal(t, "", attrString(42))
}

// Write a small mesh and read it back through the public surface
func TestFileRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesh.e")

	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Init("two triangles", 3, 4, 2, 1, 0, 0))
	require.NoError(t, w.WriteCoordinates(
		[]float64{0, 1, 1, 0},
		[]float64{0, 0, 1, 1},
		[]float64{0, 0, 0, 0}))
	require.NoError(t, w.WriteBlock(10, "TRI3", 2, []int{1, 2, 3, 1, 3, 4}))
	require.NoError(t, w.WriteNodalVariableNames([]string{"temperature", "pressure"}))
	require.NoError(t, w.WriteTime(0, 0))
	require.NoError(t, w.WriteNodalVariable(0, 0, []float64{1, 2, 3, 4}))
	require.NoError(t, w.WriteNodalVariable(0, 1, []float64{10, 20, 30, 40}))
	require.NoError(t, w.WriteTime(1, 0.5))
	require.NoError(t, w.WriteNodalVariable(1, 0, []float64{5, 6, 7, 8}))
	require.NoError(t, w.WriteNodalVariable(1, 1, []float64{50, 60, 70, 80}))
	require.NoError(t, w.Close())

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "two triangles", f.Title())
	assert.Equal(t, 3, f.Dimension())
	assert.Equal(t, 4, f.NumNodes())
	assert.Equal(t, 2, f.NumElements())
	assert.Equal(t, 1, f.NumElementBlocks())
	assert.Equal(t, 2, f.NumTimeSteps())
	assert.Equal(t, 2, f.NumNodalVariables())
	assert.Equal(t, 0, f.NumSideSets())

	x, y, z, err := f.Coordinates()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1, 0}, x)
	assert.Equal(t, []float64{0, 0, 1, 1}, y)
	assert.Equal(t, []float64{0, 0, 0, 0}, z)

	blocks, err := f.ElementBlocks()
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, 10, blocks[0].ID)
	assert.Equal(t, "TRI3", blocks[0].Type)
	assert.Equal(t, 3, blocks[0].NodesPerElem)
	assert.Equal(t, 2, blocks[0].NumElements())
	assert.Equal(t, []int{1, 2, 3, 1, 3, 4}, blocks[0].Connectivity)

	times, err := f.TimeValues()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5}, times)

	names, err := f.NodalVariableNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"temperature", "pressure"}, names)

	vals, err := f.NodalVariableValues(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, vals)
	vals, err = f.NodalVariableValues(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{50, 60, 70, 80}, vals)
}

func TestFileRoundtrip2D(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesh2d.e")

	w, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Init("flat", 2, 3, 1, 1, 0, 0))
	require.NoError(t, w.WriteCoordinates([]float64{0, 1, 0}, []float64{0, 0, 1}, nil))
	require.NoError(t, w.WriteBlock(1, "TRI3", 1, []int{1, 2, 3}))
	require.NoError(t, w.Close())

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, 2, f.Dimension())
	assert.Equal(t, 0, f.NumTimeSteps())

	x, y, z, err := f.Coordinates()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, x)
	assert.Equal(t, []float64{0, 0, 1}, y)
	assert.Nil(t, z)
}

func TestWriterValidation(t *testing.T) {
	dir := t.TempDir()

	{
		w, err := Create(filepath.Join(dir, "bad-dim.e"))
		require.NoError(t, err)
		assert.Error(t, w.Init("", 1, 0, 0, 0, 0, 0))
		assert.Error(t, w.Init("", 4, 0, 0, 0, 0, 0))
	}
	{
		w, err := Create(filepath.Join(dir, "bad-sets.e"))
		require.NoError(t, err)
		assert.Error(t, w.Init("", 3, 1, 0, 0, 1, 0))
		assert.Error(t, w.Init("", 3, 1, 0, 0, 0, 2))
	}
	{
		w, err := Create(filepath.Join(dir, "bad-coords.e"))
		require.NoError(t, err)
		require.NoError(t, w.Init("", 3, 4, 0, 0, 0, 0))
		assert.Error(t, w.WriteCoordinates([]float64{0}, []float64{0}, []float64{0}))
	}
	{
		w, err := Create(filepath.Join(dir, "bad-conn.e"))
		require.NoError(t, err)
		require.NoError(t, w.Init("", 3, 3, 1, 1, 0, 0))
		require.NoError(t, w.WriteCoordinates([]float64{0, 1, 0}, []float64{0, 0, 1}, []float64{0, 0, 0}))
		// Seven entries do not divide into two elements
		assert.Error(t, w.WriteBlock(1, "TRI3", 2, []int{1, 2, 3, 1, 2, 3, 1}))
		assert.Error(t, w.WriteBlock(1, "TRI3", 0, nil))
	}
	{
		// Block count promised in Init must match the blocks written
		w, err := Create(filepath.Join(dir, "missing-block.e"))
		require.NoError(t, err)
		require.NoError(t, w.Init("", 3, 3, 1, 1, 0, 0))
		require.NoError(t, w.WriteCoordinates([]float64{0, 1, 0}, []float64{0, 0, 1}, []float64{0, 0, 0}))
		assert.Error(t, w.Close())
	}
}
