package join

import "math"

// DefaultTolerance is the absolute snap tolerance used when none is
// configured. Positions closer than this collapse to one node.
const DefaultTolerance = 1.e-10

// Point is one node position. Z is zero for 2D meshes.
type Point struct {
	X, Y, Z float64
}

// Quantize snaps every coordinate of p to the nearest multiple of tol
// so that positions differing below the tolerance compare equal
func Quantize(p Point, tol float64) Point {
	return Point{
		X: math.Round(p.X/tol) * tol,
		Y: math.Round(p.Y/tol) * tol,
		Z: math.Round(p.Z/tol) * tol,
	}
}
