package join

// Scatter writes a file's local nodal values into the global array at
// the positions its index set assigns: global[is[i]] = local[i].
// Scattering the files of a join in processing order makes the last
// file win wherever files share a node; positions no file touches keep
// their zero value. local must not be longer than is.
func Scatter(local []float64, is IndexSet, global []float64) {
	for i, v := range local {
		global[is[i]] = v
	}
}
