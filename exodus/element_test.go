package exodus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseElementType(t *testing.T) {
	cases := []struct {
		tag  string
		want ElementType
	}{
		{"BAR2", Line},
		{"TRI", Triangle},
		{"TRI3", Triangle},
		{"QUAD", Quad},
		{"QUAD4", Quad},
		{"TETRA", Tet},
		{"TET4", Tet},
		{"HEX", Hex},
		{"HEX8", Hex},
		{"PRISM6", Prism},
		{"PYRAMID5", Pyramid},
		{"POINT", Point},
		{"POINT1", Point},
		// Tags come off fixed-width char records, case and padding vary
		{"quad4", Quad},
		{" TRI3 ", Triangle},
		{"tetra", Tet},
	}
	for _, c := range cases {
		et, err := ParseElementType(c.tag)
		require.NoError(t, err, "tag %q", c.tag)
		assert.Equal(t, c.want, et, "tag %q", c.tag)
	}

	for _, tag := range []string{"", "WEDGE", "SHELL4", "TRI6"} {
		_, err := ParseElementType(tag)
		assert.Error(t, err, "tag %q", tag)
	}
}

func TestElementTypeNodes(t *testing.T) {
	assert.Equal(t, 2, Line.NumNodes())
	assert.Equal(t, 3, Triangle.NumNodes())
	assert.Equal(t, 4, Quad.NumNodes())
	assert.Equal(t, 4, Tet.NumNodes())
	assert.Equal(t, 8, Hex.NumNodes())
	assert.Equal(t, 6, Prism.NumNodes())
	assert.Equal(t, 5, Pyramid.NumNodes())
	assert.Equal(t, 1, Point.NumNodes())
}

func TestElementTypeString(t *testing.T) {
	// The canonical tag parses back to the same type
	for _, et := range []ElementType{Point, Line, Triangle, Quad, Tet, Hex, Prism, Pyramid} {
		back, err := ParseElementType(et.String())
		require.NoError(t, err)
		assert.Equal(t, et, back)
	}
}
