package join

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScatter(t *testing.T) {
	global := make([]float64, 4)
	Scatter([]float64{10, 20}, IndexSet{0, 1}, global)
	assert.Equal(t, []float64{10, 20, 0, 0}, global)

	// Second file shares global node 1; its value wins
	Scatter([]float64{99, 30}, IndexSet{1, 2}, global)
	assert.Equal(t, []float64{10, 99, 30, 0}, global)

	// Untouched positions keep their zero value
	assert.Equal(t, 0., global[3])
}

func TestScatterLastWriterWins(t *testing.T) {
	// Both files cover the same two nodes; scattering in processing
	// order leaves only the later file's values
	global := make([]float64, 2)
	Scatter([]float64{1, 2}, IndexSet{0, 1}, global)
	Scatter([]float64{3, 4}, IndexSet{0, 1}, global)
	assert.Equal(t, []float64{3, 4}, global)
}
